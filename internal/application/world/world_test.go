package world

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/persistence"
)

const testConfigDir = "../../../cmd/game/configs"

var holdRight = system.InputState{Right: true}

func loadTestGame(t *testing.T) *config.GameConfig {
	t.Helper()
	game, err := config.NewLoader(testConfigDir).LoadGame()
	require.NoError(t, err)
	return game
}

func emptyLevel(id int, width float64) config.LevelConfig {
	return config.LevelConfig{ID: id, Name: fmt.Sprintf("L%d", id), Width: width, Height: 600}
}

func newTestWorld(t *testing.T, levels ...config.LevelConfig) *World {
	t.Helper()
	game := loadTestGame(t)
	builder := system.NewLevelBuilder(game, &config.LevelsConfig{Levels: levels}, rand.New(rand.NewSource(1)))
	w, err := New(game, builder)
	require.NoError(t, err)
	return w
}

func step(t *testing.T, w *World, input system.ActionQuery) Outcome {
	t.Helper()
	out, err := w.Step(input)
	require.NoError(t, err)
	return out
}

func TestNew_SpawnsAtViewportCenter(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 1000))

	cx, cy := w.Player().Box.Center()
	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 300.0, cy)
	assert.Equal(t, state.StatePlaying, w.State())
	assert.Equal(t, 100, w.Player().Health)
	assert.Equal(t, 1, w.Player().ExtraLives)

	out := step(t, w, system.NoInput)
	assert.True(t, out.Has(EventLevelEntered), "first outcome reports the starting level")
}

func TestNew_NoLevels(t *testing.T) {
	game := loadTestGame(t)
	builder := system.NewLevelBuilder(game, &config.LevelsConfig{}, rand.New(rand.NewSource(1)))

	_, err := New(game, builder)
	assert.ErrorIs(t, err, config.ErrNoLevels)
}

func TestStep_LevelTransition(t *testing.T) {
	// Level 1 entities sit above the player's path
	first := emptyLevel(1, 1000)
	first.Enemies = []config.SpawnConfig{{Type: entity.VariantBasic, X: 50, Y: 20}}
	first.Collectibles = []config.PositionConfig{{X: 100, Y: 20}}

	second := emptyLevel(2, 2000)
	second.BossLevel = true
	second.Platforms = []config.PlatformSpawnConfig{{X: 100, Y: 500, W: 200, H: 20, Axis: "horizontal", Speed: 1}}
	second.Enemies = []config.SpawnConfig{{Type: entity.VariantBasic, X: 600, Y: 400}}
	second.Collectibles = []config.PositionConfig{{X: 700, Y: 450}, {X: 750, Y: 450}}
	second.PowerUps = []config.PowerUpSpawnConfig{{Effect: "extra_life", X: 800, Y: 450}}
	second.Obstacles = []config.ObstacleSpawnConfig{{X: 900, Y: 100, Axis: "horizontal", Direction: 1}}
	second.Bosses = []config.SpawnConfig{{Type: "boss", X: 1500, Y: 400}}

	w := newTestWorld(t, first, second)
	w.Player().Score = 7
	old := w.Level()
	oldEntities := old.All()
	require.Len(t, oldEntities, 2)

	// Right edge starts at 425 and must pass 1000-50
	for range 105 {
		out := step(t, w, holdRight)
		require.Equal(t, 1, out.LevelID)
	}

	out := step(t, w, holdRight)
	assert.Equal(t, 2, out.LevelID)
	assert.Equal(t, state.StatePlaying, out.State)
	assert.True(t, out.Has(EventLevelEntered))
	assert.True(t, out.Has(EventAchievement), "explorer is awarded for reaching level 2")

	cx, cy := w.Player().Box.Center()
	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 300.0, cy)
	assert.Equal(t, 7, w.Player().Score)
	assert.Equal(t, 100, w.Player().Health)
	assert.True(t, w.Player().HasAchievement("explorer"))

	lvl := w.Level()
	assert.Equal(t, 2000.0, lvl.Width)
	assert.True(t, lvl.BossLevel)
	assert.Len(t, lvl.Platforms, 1)
	assert.Len(t, lvl.Enemies, 1)
	assert.Len(t, lvl.Collectibles, 2)
	assert.Len(t, lvl.PowerUps, 1)
	assert.Len(t, lvl.Obstacles, 1)
	assert.Len(t, lvl.Bosses, 1)

	origins := []struct {
		name string
		e    *entity.Entity
		x, y float64
	}{
		{"platform", lvl.Platforms[0], 100, 500},
		{"enemy", lvl.Enemies[0], 600, 400},
		{"collectible", lvl.Collectibles[1], 750, 450},
		{"power-up", lvl.PowerUps[0], 800, 450},
		{"obstacle", lvl.Obstacles[0], 900, 100},
		{"boss", lvl.Bosses[0], 1500, 400},
	}
	for _, o := range origins {
		assert.Equal(t, o.x, o.e.Box.X, o.name)
		assert.Equal(t, o.y, o.e.Box.Y, o.name)
		assert.Equal(t, o.x, o.e.OriginX, o.name)
	}

	// Nothing from level 1 survives the swap
	assert.Zero(t, old.Count())
	for _, e := range lvl.All() {
		for _, o := range oldEntities {
			assert.NotSame(t, o, e)
		}
	}
}

func TestStep_CompletesAfterLastLevel(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 1000))

	out, err := Run(w, &Repeat{Input: holdRight, Count: 1000}, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, state.StateCompleted, out.State)
	assert.True(t, out.Has(EventCompleted))
	assert.Equal(t, uint64(106), out.Tick)

	// Terminal worlds do not advance
	again := step(t, w, holdRight)
	assert.Equal(t, uint64(106), again.Tick)
	assert.Equal(t, state.StateCompleted, again.State)
	assert.Empty(t, again.Events)
}

func TestStep_LethalHazard(t *testing.T) {
	lvl := emptyLevel(1, 1000)
	lvl.Enemies = []config.SpawnConfig{{Type: entity.VariantBasic, X: 380, Y: 280}}
	w := newTestWorld(t, lvl)
	w.Player().ExtraLives = 0
	w.Player().Health = 10

	out := step(t, w, system.NoInput)

	assert.Equal(t, state.StateGameOver, out.State)
	assert.True(t, out.Has(EventDamaged))
	assert.True(t, out.Has(EventGameOver))
	assert.LessOrEqual(t, w.Player().Health, 0)

	again := step(t, w, system.NoInput)
	assert.Equal(t, out.Tick, again.Tick)
}

func TestStep_LifeLostRespawns(t *testing.T) {
	lvl := emptyLevel(1, 1000)
	lvl.Obstacles = []config.ObstacleSpawnConfig{{X: 380, Y: 280, Axis: "horizontal", Direction: 1}}
	w := newTestWorld(t, lvl)
	w.Player().Health = 20

	out := step(t, w, system.NoInput)

	assert.Equal(t, state.StatePlaying, out.State)
	assert.True(t, out.Has(EventLifeLost))
	assert.Equal(t, 0, w.Player().ExtraLives)
	assert.Equal(t, 100, w.Player().Health)
	assert.Zero(t, w.Player().VY)
	cx, cy := w.Player().Box.Center()
	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 300.0, cy)
}

func TestStep_DamagePerCategory(t *testing.T) {
	lvl := emptyLevel(1, 1000)
	lvl.Enemies = []config.SpawnConfig{
		{Type: entity.VariantBasic, X: 380, Y: 280},
		{Type: entity.VariantBasic, X: 390, Y: 290},
	}
	lvl.Obstacles = []config.ObstacleSpawnConfig{{X: 380, Y: 280, Axis: "vertical", Direction: 1}}
	w := newTestWorld(t, lvl)

	step(t, w, system.NoInput)

	// enemy 10 once, obstacle 20
	assert.Equal(t, 70, w.Player().Health)
}

func TestStep_InvincibilityWindow(t *testing.T) {
	lvl := emptyLevel(1, 1000)
	lvl.PowerUps = []config.PowerUpSpawnConfig{{Effect: "invincibility", X: 390, Y: 290}}
	w := newTestWorld(t, lvl)

	out := step(t, w, system.NoInput)
	require.True(t, out.Has(EventPowerUp))
	require.True(t, w.Player().Invincible)
	assert.Equal(t, uint64(1), w.Player().InvincibleSince)
	assert.Empty(t, w.Level().PowerUps)

	// 5000ms at 60 TPS is 300 ticks: still active at tick 300
	for w.Tick() < 300 {
		step(t, w, system.NoInput)
	}
	assert.True(t, w.Player().Invincible)
	assert.Equal(t, uint64(1), w.Frame().HUD.InvincibleLeft)

	// and cleared at tick 301
	out = step(t, w, system.NoInput)
	assert.False(t, w.Player().Invincible)
	assert.True(t, out.Has(EventInvincibleEnd))
}

func TestStep_InvincibleIgnoresHazards(t *testing.T) {
	lvl := emptyLevel(1, 1000)
	lvl.Enemies = []config.SpawnConfig{{Type: entity.VariantBasic, X: 380, Y: 280}}
	w := newTestWorld(t, lvl)
	w.Player().GrantInvincibility(0)

	out := step(t, w, system.NoInput)

	assert.False(t, out.Has(EventDamaged))
	assert.Equal(t, 100, w.Player().Health)
}

func TestStep_CollectOnce(t *testing.T) {
	lvl := emptyLevel(1, 1000)
	lvl.Collectibles = []config.PositionConfig{{X: 390, Y: 290}, {X: 400, Y: 300}}
	w := newTestWorld(t, lvl)

	out := step(t, w, system.NoInput)
	collected := 0
	for _, e := range out.Events {
		if e.Kind == EventCollected {
			collected++
		}
	}
	assert.Equal(t, 2, collected)
	assert.Equal(t, 2, w.Player().Score)
	assert.True(t, w.Player().HasAchievement("first_coin"))

	out = step(t, w, system.NoInput)
	assert.False(t, out.Has(EventCollected))
	assert.Equal(t, 2, w.Player().Score)
}

func TestStep_LandsOnPlatform(t *testing.T) {
	lvl := emptyLevel(1, 1000)
	lvl.Platforms = []config.PlatformSpawnConfig{{X: 300, Y: 400, W: 200, H: 20}}
	w := newTestWorld(t, lvl)

	for range 60 {
		step(t, w, system.NoInput)
	}

	assert.True(t, w.Player().OnGround)
	assert.Equal(t, 400.0, w.Player().Box.Bottom())
}

func TestStep_BossDefeated(t *testing.T) {
	lvl := emptyLevel(1, 2000)
	lvl.BossLevel = true
	lvl.Bosses = []config.SpawnConfig{{Type: entity.VariantBoss, X: 1500, Y: 450}}
	w := newTestWorld(t, lvl)

	out := step(t, w, system.NoInput)
	require.Equal(t, state.StatePlaying, out.State)

	// Nothing in play lowers boss health
	assert.Equal(t, 500, w.Level().Bosses[0].Health)

	w.Level().Bosses[0].Health = 0
	out = step(t, w, system.NoInput)
	assert.Equal(t, state.StateBossDefeated, out.State)
	assert.True(t, out.Has(EventBossDefeated))
}

func TestPause(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 1000))
	step(t, w, system.NoInput)

	w.SetPaused(true)
	assert.Equal(t, state.StatePaused, w.State())
	x := w.Player().Box.X

	out := step(t, w, holdRight)
	assert.Equal(t, uint64(1), out.Tick)
	assert.Equal(t, state.StatePaused, out.State)
	assert.Equal(t, x, w.Player().Box.X)

	w.TogglePause()
	out = step(t, w, holdRight)
	assert.Equal(t, uint64(2), out.Tick)
	assert.Equal(t, state.StatePlaying, out.State)
}

func TestFrame(t *testing.T) {
	lvl := emptyLevel(1, 2400)
	lvl.Platforms = []config.PlatformSpawnConfig{{X: 0, Y: 500, W: 200, H: 20}}
	lvl.Collectibles = []config.PositionConfig{{X: 1000, Y: 100}}
	lvl.Enemies = []config.SpawnConfig{{Type: entity.VariantBasic, X: 2000, Y: 560}}
	w := newTestWorld(t, lvl)

	f := w.Frame()

	require.Len(t, f.Sprites, 4)
	assert.Equal(t, entity.KindPlatform, f.Sprites[0].Kind)
	assert.Equal(t, "green", f.Sprites[0].Tag)
	assert.Equal(t, entity.KindCollectible, f.Sprites[1].Kind)
	assert.Equal(t, entity.KindEnemy, f.Sprites[2].Kind)
	assert.Equal(t, entity.KindPlayer, f.Sprites[3].Kind)
	assert.Equal(t, "blue", f.Sprites[3].Tag)
	assert.Equal(t, 2400.0, f.WorldW)
	assert.Zero(t, f.OffsetX)
	assert.Equal(t, 100, f.HUD.Health)
	assert.Equal(t, "L1", f.HUD.LevelName)
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 2400))

	for range 100 {
		step(t, w, holdRight)
	}

	// Player center is 400 + 500, view center 400
	f := w.Frame()
	assert.Equal(t, -500.0, f.OffsetX)

	player := f.Sprites[len(f.Sprites)-1]
	assert.Equal(t, player.Box.X-500, player.Screen.X)
	assert.Equal(t, player.Box.Y, player.Screen.Y)
	assert.Equal(t, player.Box.W, player.Screen.W)
}

func TestSnapshotRestore(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 1000))
	w.Player().Score = 9
	w.Player().Award("collector")

	snap := w.Snapshot()
	assert.Equal(t, 9, snap.Score)
	assert.Equal(t, []string{"collector"}, snap.Achievements)

	w.Restore(persistence.PlayerState{
		X: 120, Y: 200, Score: 3, Health: 250, ExtraLives: 4,
		Achievements: []string{"first_coin"},
	})

	p := w.Player()
	assert.Equal(t, 120.0, p.Box.X)
	assert.Equal(t, 200.0, p.Box.Y)
	assert.Equal(t, 3, p.Score)
	assert.Equal(t, 100, p.Health, "health is capped")
	assert.Equal(t, 4, p.ExtraLives)
	assert.Equal(t, []string{"first_coin"}, p.AchievementList())
}

func TestRestoreResumesFinishedRun(t *testing.T) {
	lvl := emptyLevel(1, 1000)
	lvl.Enemies = []config.SpawnConfig{{Type: entity.VariantBasic, X: 380, Y: 280}}
	w := newTestWorld(t, lvl)
	w.Player().ExtraLives = 0
	w.Player().Health = 10
	snap := w.Snapshot()

	step(t, w, system.NoInput)
	require.Equal(t, state.StateGameOver, w.State())

	snap.X = 0
	w.Restore(snap)
	assert.Equal(t, state.StatePlaying, w.State())
	assert.Equal(t, 10, w.Player().Health)
}

func TestRestart(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 1000), emptyLevel(2, 1000))
	_, err := Run(w, &Repeat{Input: holdRight, Count: 106}, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 2, w.Level().ID)
	w.Player().Score = 5

	require.NoError(t, w.Restart())

	assert.Equal(t, 1, w.Level().ID)
	assert.Zero(t, w.Player().Score)
	assert.Zero(t, w.Tick())
	assert.Empty(t, w.Player().AchievementList())
}

func TestReloadLevels(t *testing.T) {
	named := func(lc config.LevelConfig, name string) config.LevelConfig {
		lc.Name = name
		return lc
	}

	tests := []struct {
		name      string
		reloaded  []config.LevelConfig
		wantID    int
		wantName  string
		wantWidth float64
	}{
		{
			name:      "changed next level",
			reloaded:  []config.LevelConfig{emptyLevel(1, 1000), named(emptyLevel(2, 3000), "Reloaded")},
			wantID:    2,
			wantName:  "Reloaded",
			wantWidth: 3000,
		},
		{
			name:      "renumbered next level",
			reloaded:  []config.LevelConfig{emptyLevel(1, 1000), emptyLevel(3, 1500)},
			wantID:    3,
			wantName:  "L3",
			wantWidth: 1500,
		},
		{
			name:      "current level dropped",
			reloaded:  []config.LevelConfig{emptyLevel(5, 1200), emptyLevel(6, 1000)},
			wantID:    5,
			wantName:  "L5",
			wantWidth: 1200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, emptyLevel(1, 1000), emptyLevel(2, 1000))

			w.ReloadLevels(&config.LevelsConfig{Levels: tt.reloaded})
			assert.Equal(t, 1000.0, w.Level().Width, "current level is untouched")

			out, err := Run(w, &Repeat{Input: holdRight, Count: 106}, 0, nil)
			require.NoError(t, err)

			assert.Equal(t, state.StatePlaying, out.State)
			assert.Equal(t, tt.wantID, w.Level().ID)
			assert.Equal(t, tt.wantName, w.Level().Name)
			assert.Equal(t, tt.wantWidth, w.Level().Width)
		})
	}
}

func TestReloadLevels_AddsLevelAfterLast(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 1000))
	w.ReloadLevels(&config.LevelsConfig{Levels: []config.LevelConfig{emptyLevel(1, 1000), emptyLevel(2, 1000)}})

	out, err := Run(w, &Repeat{Input: holdRight, Count: 106}, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, state.StatePlaying, out.State, "the added level is played instead of completing")
	assert.Equal(t, 2, w.Level().ID)
}

func TestReloadLevels_AppliedOnRestart(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 1000))
	w.ReloadLevels(&config.LevelsConfig{Levels: []config.LevelConfig{emptyLevel(4, 1800)}})

	require.NoError(t, w.Restart())
	assert.Equal(t, 4, w.Level().ID)
	assert.Equal(t, 1800.0, w.Level().Width)
}

func TestReloadLevels_BuildFailureKeepsLevel(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 1000), emptyLevel(2, 1000))

	broken := emptyLevel(2, 1000)
	broken.Enemies = []config.SpawnConfig{{Type: "dragon", X: 10, Y: 10}}
	w.ReloadLevels(&config.LevelsConfig{Levels: []config.LevelConfig{emptyLevel(1, 1000), broken}})

	_, err := Run(w, &Repeat{Input: holdRight, Count: 106}, 0, nil)
	require.ErrorIs(t, err, system.ErrUnknownArchetype)

	assert.Equal(t, state.StatePlaying, w.State())
	assert.Equal(t, 1, w.Level().ID)
}

func TestWithStartLevel(t *testing.T) {
	game := loadTestGame(t)
	levels := &config.LevelsConfig{Levels: []config.LevelConfig{emptyLevel(1, 1000), emptyLevel(2, 1000)}}
	builder := system.NewLevelBuilder(game, levels, rand.New(rand.NewSource(1)))

	w, err := New(game, builder, WithStartLevel(2))
	require.NoError(t, err)
	assert.Equal(t, 2, w.Level().ID)

	_, err = New(game, builder, WithStartLevel(9))
	assert.ErrorIs(t, err, system.ErrUnknownLevel)
}

func TestRun_SameSeedSameRun(t *testing.T) {
	game := loadTestGame(t)
	levels, err := config.NewLoader(testConfigDir).LoadLevels()
	require.NoError(t, err)

	play := func() (Outcome, int) {
		builder := system.NewLevelBuilder(game, levels, rand.New(rand.NewSource(42)))
		w, err := New(game, builder, WithStartLevel(3))
		require.NoError(t, err)
		out, err := Run(w, &Repeat{Input: system.InputState{Right: true, Jump: true}, Count: 2000}, 0, nil)
		require.NoError(t, err)
		return out, w.Player().Score
	}

	a, scoreA := play()
	b, scoreB := play()
	assert.Equal(t, a.Tick, b.Tick)
	assert.Equal(t, a.State, b.State)
	assert.Equal(t, scoreA, scoreB)
}

func TestRun_MaxTicks(t *testing.T) {
	w := newTestWorld(t, emptyLevel(1, 5000))
	seen := 0

	out, err := Run(w, &Repeat{Input: holdRight, Count: 100}, 10, func(Outcome) { seen++ })

	require.NoError(t, err)
	assert.Equal(t, uint64(10), out.Tick)
	assert.Equal(t, 10, seen)
}

func BenchmarkStep(b *testing.B) {
	game, err := config.NewLoader(testConfigDir).LoadGame()
	require.NoError(b, err)
	levels, err := config.NewLoader(testConfigDir).LoadLevels()
	require.NoError(b, err)

	builder := system.NewLevelBuilder(game, levels, rand.New(rand.NewSource(1)))
	w, err := New(game, builder, WithStartLevel(3))
	require.NoError(b, err)
	input := system.InputState{Right: true, Jump: true}

	b.ResetTimer()
	for b.Loop() {
		if w.State().IsTerminal() {
			_ = w.Restart()
		}
		_, _ = w.Step(input)
	}
}
