// Package world owns the whole simulation: the player, the active level,
// the camera and the state machine. Step advances it one fixed tick.
package world

import (
	"fmt"

	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/persistence"
)

// World is the simulation aggregate. It is not safe for concurrent use;
// the game loop owns it.
type World struct {
	cfg     *config.GameConfig
	builder *system.LevelBuilder

	physics      *system.PhysicsSystem
	patrol       *system.PatrolSystem
	collision    *system.CollisionSystem
	achievements *system.AchievementSystem
	camera       *system.Camera

	player *entity.Player
	level  *entity.Level

	state  state.GameState
	paused bool
	tick   uint64

	startLevel         int
	spawnX, spawnY     float64
	invincibilityTicks uint64

	// levels.yaml reloaded while playing, applied on the next level entry
	pendingLevels *config.LevelsConfig

	events []Event
}

// Option configures a World
type Option func(*World)

// WithStartLevel starts the run on the given level instead of the first
func WithStartLevel(id int) Option {
	return func(w *World) {
		w.startLevel = id
	}
}

// New creates a world and enters the starting level
func New(cfg *config.GameConfig, builder *system.LevelBuilder, opts ...Option) (*World, error) {
	ticks := cfg.Combat.InvincibilityTicks(cfg.Display.Framerate)
	w := &World{
		cfg:                cfg,
		builder:            builder,
		physics:            system.NewPhysicsSystem(&cfg.Physics),
		patrol:             system.NewPatrolSystem(),
		collision:          system.NewCollisionSystem(&cfg.Combat, ticks),
		achievements:       system.NewAchievementSystem(cfg.Achievements),
		spawnX:             float64(cfg.Display.ScreenWidth) / 2,
		spawnY:             float64(cfg.Display.ScreenHeight) / 2,
		invincibilityTicks: ticks,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// reset creates a fresh player and enters the starting level
func (w *World) reset() error {
	w.applyPendingLevels()

	start := w.startLevel
	if start == 0 {
		first, err := w.builder.First()
		if err != nil {
			return err
		}
		start = first
	}

	pc := w.cfg.Player
	w.player = entity.NewPlayer(w.spawnX, w.spawnY, pc.Width, pc.Height, pc.MaxHealth, pc.ExtraLives)
	w.camera = system.NewCamera(
		float64(w.cfg.Display.ScreenWidth),
		float64(w.cfg.Display.ScreenHeight),
		0, 0,
	)
	w.tick = 0
	w.paused = false
	w.events = nil

	if err := w.enterLevel(start); err != nil {
		return err
	}
	w.camera.Follow(w.player.Box)
	return nil
}

// Step advances the simulation one tick.
// Terminal and paused worlds do not advance. The error is non-nil only
// when the next level cannot be built.
func (w *World) Step(input system.ActionQuery) (Outcome, error) {
	if w.state.IsTerminal() || w.paused {
		return w.outcome(), nil
	}

	w.tick++
	p := w.player
	lvl := w.level

	worldW, worldH := lvl.Bounds()
	w.patrol.Update(lvl.Movers(), worldW, worldH)
	w.physics.Update(p, input, worldH)
	w.collision.ResolvePlatforms(p, lvl.Platforms)

	for _, hit := range w.collision.ResolveHazards(p, lvl) {
		w.emit(Event{Kind: EventDamaged, Source: hit.Kind, Value: hit.Damage})
	}
	if p.Health <= 0 {
		if p.ExtraLives == 0 {
			w.state = state.StateGameOver
			w.emit(Event{Kind: EventGameOver, Value: p.Score})
			w.camera.Follow(p.Box)
			return w.outcome(), nil
		}
		p.ExtraLives--
		p.Health = p.MaxHealth
		p.Respawn(w.spawnX, w.spawnY)
		w.emit(Event{Kind: EventLifeLost, Value: p.ExtraLives})
	}

	for _, c := range w.collision.CollectPickups(p, lvl) {
		w.emit(Event{Kind: EventCollected, Entity: c.ID, Value: p.Score})
	}
	for _, pu := range w.collision.CollectPowerUps(p, lvl, w.tick) {
		w.emit(Event{Kind: EventPowerUp, Entity: pu.ID, Detail: pu.Effect.String()})
	}
	if w.collision.ExpireInvincibility(p, w.tick) {
		w.emit(Event{Kind: EventInvincibleEnd})
	}

	if bossesDefeated(lvl) {
		w.state = state.StateBossDefeated
		w.emit(Event{Kind: EventBossDefeated, Value: p.Score})
	} else if p.Box.Right() > worldW-w.cfg.Rules.ExitMargin {
		if err := w.advance(); err != nil {
			return w.outcome(), err
		}
	}

	for _, id := range w.achievements.Evaluate(p, w.level.ID) {
		w.emit(Event{Kind: EventAchievement, Detail: id})
	}

	w.camera.Follow(p.Box)
	return w.outcome(), nil
}

// advance leaves the current level through Transitioning into the next
// level, or Completed when it was the last. A failed build leaves the
// world playing the current level.
func (w *World) advance() error {
	w.applyPendingLevels()
	w.state = state.StateTransitioning

	next, ok := w.nextLevel()
	if !ok {
		w.state = state.StateCompleted
		w.emit(Event{Kind: EventCompleted, Value: w.player.Score})
		return nil
	}
	if err := w.enterLevel(next); err != nil {
		w.state = state.StatePlaying
		return err
	}
	return nil
}

// nextLevel follows the layout table from the current level. A level
// dropped by a reload continues from the first level of the new table.
func (w *World) nextLevel() (int, bool) {
	if w.builder.Has(w.level.ID) {
		return w.builder.Next(w.level.ID)
	}
	first, err := w.builder.First()
	if err != nil {
		return 0, false
	}
	return first, true
}

// applyPendingLevels swaps in a reloaded layout table
func (w *World) applyPendingLevels() {
	if w.pendingLevels == nil {
		return
	}
	w.builder.SetLevels(w.pendingLevels)
	w.pendingLevels = nil
}

// enterLevel swaps in a freshly built level and respawns the player.
// Score, health, lives and achievements carry over.
func (w *World) enterLevel(id int) error {
	level, err := w.builder.Build(id)
	if err != nil {
		return fmt.Errorf("enter level %d: %w", id, err)
	}

	if w.level != nil {
		w.level.Clear()
	}
	w.level = level
	w.camera.SetWorld(level.Bounds())
	w.player.Respawn(w.spawnX, w.spawnY)
	w.state = state.StatePlaying
	w.emit(Event{Kind: EventLevelEntered, Detail: level.Name})
	return nil
}

// bossesDefeated reports whether a boss level has bosses and all of them
// are out of health. Nothing in play lowers boss health.
func bossesDefeated(lvl *entity.Level) bool {
	if !lvl.BossLevel || len(lvl.Bosses) == 0 {
		return false
	}
	for _, b := range lvl.Bosses {
		if !b.Defeated() {
			return false
		}
	}
	return true
}

func (w *World) emit(e Event) {
	e.Tick = w.tick
	if e.Level == 0 && w.level != nil {
		e.Level = w.level.ID
	}
	w.events = append(w.events, e)
}

// outcome drains the pending events
func (w *World) outcome() Outcome {
	o := Outcome{
		Tick:    w.tick,
		State:   w.State(),
		LevelID: w.level.ID,
		Events:  w.events,
	}
	w.events = nil
	return o
}

// SetPaused pauses or resumes a running world. Terminal worlds ignore it.
func (w *World) SetPaused(paused bool) {
	if w.state.IsTerminal() {
		return
	}
	w.paused = paused
}

// TogglePause flips the pause state
func (w *World) TogglePause() {
	w.SetPaused(!w.paused)
}

// Restart begins a new run from the starting level
func (w *World) Restart() error {
	return w.reset()
}

// ReloadLevels queues a new layout table. It takes effect when the
// current level is left or the run restarts.
func (w *World) ReloadLevels(levels *config.LevelsConfig) {
	w.pendingLevels = levels
}

// Snapshot returns the saved subset of the player
func (w *World) Snapshot() persistence.PlayerState {
	p := w.player
	return persistence.PlayerState{
		X:            p.Box.X,
		Y:            p.Box.Y,
		Score:        p.Score,
		Health:       p.Health,
		ExtraLives:   p.ExtraLives,
		Achievements: p.AchievementList(),
	}
}

// Restore applies a saved player state to the current level.
// A finished run resumes play.
func (w *World) Restore(s persistence.PlayerState) {
	p := w.player
	p.Box.X = s.X
	p.Box.Y = s.Y
	p.VY = 0
	p.OnGround = false
	p.Score = s.Score
	p.Health = min(max(s.Health, 1), p.MaxHealth)
	p.ExtraLives = max(s.ExtraLives, 0)
	p.Invincible = false
	p.Achievements = make(map[string]struct{}, len(s.Achievements))
	for _, id := range s.Achievements {
		p.Award(id)
	}

	if w.state.IsTerminal() || w.state == state.StateTransitioning {
		w.state = state.StatePlaying
	}
	w.camera.Follow(p.Box)
}

// State returns the current state. A paused world reports Paused.
func (w *World) State() state.GameState {
	if w.paused && !w.state.IsTerminal() {
		return state.StatePaused
	}
	return w.state
}

// Tick returns the number of ticks simulated in this run
func (w *World) Tick() uint64 { return w.tick }

// Player returns the player
func (w *World) Player() *entity.Player { return w.player }

// Level returns the active level
func (w *World) Level() *entity.Level { return w.level }

// Camera returns the camera
func (w *World) Camera() *system.Camera { return w.camera }

// AchievementName returns the display name of an achievement
func (w *World) AchievementName(id string) string {
	return w.achievements.Name(id)
}
