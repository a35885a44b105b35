package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func newTestBuilder(t *testing.T) *LevelBuilder {
	t.Helper()
	cfg := loadTestConfig(t)
	return NewLevelBuilder(cfg.Game, cfg.Levels, rand.New(rand.NewSource(1)))
}

func TestLevelBuilder_BuildLayout(t *testing.T) {
	b := newTestBuilder(t)

	level, err := b.Build(1)
	require.NoError(t, err)

	assert.Equal(t, 1, level.ID)
	assert.Equal(t, "Meadow", level.Name)
	assert.Equal(t, 2400.0, level.Width)
	assert.Equal(t, 600.0, level.Height)
	assert.Len(t, level.Platforms, 6)
	assert.Len(t, level.Enemies, 2)
	assert.Len(t, level.Collectibles, 4)
	assert.Len(t, level.PowerUps, 1)
	assert.Len(t, level.Obstacles, 1)
	assert.Empty(t, level.Bosses)
	assert.False(t, level.BossLevel)
}

func TestLevelBuilder_BuildProcedural(t *testing.T) {
	b := newTestBuilder(t)

	level, err := b.Build(3)
	require.NoError(t, err)

	assert.Equal(t, "Wilds", level.Name)
	assert.GreaterOrEqual(t, len(level.Platforms), 5)
}

func TestLevelBuilder_BuildBossLevel(t *testing.T) {
	b := newTestBuilder(t)

	level, err := b.Build(4)
	require.NoError(t, err)

	assert.True(t, level.BossLevel)
	require.Len(t, level.Bosses, 1)
	assert.Equal(t, entity.VariantFinalBoss, level.Bosses[0].Variant)
	assert.Equal(t, 1000, level.Bosses[0].Health)
}

func TestLevelBuilder_UnknownLevel(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Build(99)
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLevelBuilder_Order(t *testing.T) {
	b := newTestBuilder(t)

	first, err := b.First()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	next, ok := b.Next(1)
	assert.True(t, ok)
	assert.Equal(t, 2, next)

	_, ok = b.Next(4)
	assert.False(t, ok)

	assert.NoError(t, b.Check())
}

func TestLevelBuilder_BadLayout(t *testing.T) {
	cfg := loadTestConfig(t)

	tests := []struct {
		name    string
		level   config.LevelConfig
		wantErr error
	}{
		{
			name: "unknown enemy",
			level: config.LevelConfig{ID: 1, Width: 800, Height: 600,
				Enemies: []config.SpawnConfig{{Type: "dragon"}}},
			wantErr: ErrUnknownArchetype,
		},
		{
			name: "unknown boss",
			level: config.LevelConfig{ID: 1, Width: 800, Height: 600,
				Bosses: []config.SpawnConfig{{Type: "dragon"}}},
			wantErr: ErrUnknownArchetype,
		},
		{
			name: "unknown effect",
			level: config.LevelConfig{ID: 1, Width: 800, Height: 600,
				PowerUps: []config.PowerUpSpawnConfig{{Effect: "flight"}}},
			wantErr: config.ErrInvalid,
		},
		{
			name: "flat platform",
			level: config.LevelConfig{ID: 1, Width: 800, Height: 600,
				Platforms: []config.PlatformSpawnConfig{{X: 10, Y: 500, W: 0, H: 20}}},
			wantErr: config.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := &config.LevelsConfig{Levels: []config.LevelConfig{tt.level}}
			b := NewLevelBuilder(cfg.Game, levels, rand.New(rand.NewSource(1)))

			_, err := b.Build(1)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, b.Check(), tt.wantErr)
		})
	}
}

func TestLevelBuilder_SetLevels(t *testing.T) {
	b := newTestBuilder(t)

	b.SetLevels(&config.LevelsConfig{})

	_, err := b.First()
	assert.ErrorIs(t, err, config.ErrNoLevels)
}

func TestLevelBuilder_FlatPickups(t *testing.T) {
	cfg := loadTestConfig(t)
	game := *cfg.Game
	game.Pickups.Collectible.Width = 0

	levels := &config.LevelsConfig{Levels: []config.LevelConfig{{
		ID: 1, Width: 800, Height: 600,
		Collectibles: []config.PositionConfig{{X: 100, Y: 100}},
	}}}
	b := NewLevelBuilder(&game, levels, rand.New(rand.NewSource(1)))

	_, err := b.Build(1)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
