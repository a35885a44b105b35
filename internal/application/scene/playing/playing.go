// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/application/world"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/persistence"
)

// ChangeSource reports changed config file names without blocking.
// config.Watcher implements it.
type ChangeSource interface {
	Poll() (string, bool)
}

// RunRecorder keeps the history of finished runs
type RunRecorder interface {
	RecordRun(run persistence.Run) (int64, error)
}

// Options configures the scene. Only the zero-value-safe fields are optional.
type Options struct {
	// Seed for level generation. Zero picks one from the clock.
	Seed int64
	// StartLevel is the level ID to begin on. Zero starts at the first level.
	StartLevel int
	// RecordPath enables input recording when set
	RecordPath string

	Store   persistence.Store // F5/F9 save slot
	Runs    RunRecorder       // finished-run history
	Watcher ChangeSource      // hot reload of the config directory
	Loader  *config.Loader    // reads levels.yaml on reload
	Logger  *log.Logger
	Keys    Keys

	// Input replaces the keyboard for movement, e.g. a replay.Replayer.
	// Save, load and restart are disabled while it is set.
	Input world.InputSource
}

// Playing is the main gameplay scene
type Playing struct {
	cfg    *config.Config
	opts   Options
	logger *log.Logger
	keys   Keys

	world    *world.World
	frame    world.RenderFrame
	weather  *Weather
	recorder *replay.Recorder
	seed     int64
	run      int // runs started by this scene, numbering recordings

	screenW   int
	screenH   int
	framerate int

	// Banner text and the ticks it stays up
	message      string
	messageTicks int

	// Set once the end of a run has been persisted
	finished   bool
	replayDone bool
}

// New creates the scene and enters the starting level
func New(cfg *config.Config, opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keys := opts.Keys
	if keys == nil {
		keys = Keyboard{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := &Playing{
		cfg:       cfg,
		opts:      opts,
		logger:    logger,
		keys:      keys,
		screenW:   cfg.Game.Display.ScreenWidth,
		screenH:   cfg.Game.Display.ScreenHeight,
		framerate: cfg.Game.Display.Framerate,
	}
	if err := p.start(seed); err != nil {
		return nil, err
	}
	return p, nil
}

// start builds a fresh world for seed
func (p *Playing) start(seed int64) error {
	builder := system.NewLevelBuilder(p.cfg.Game, p.cfg.Levels, rand.New(rand.NewSource(seed)))
	w, err := world.New(p.cfg.Game, builder, world.WithStartLevel(p.opts.StartLevel))
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}

	p.world = w
	p.seed = seed
	p.run++
	p.frame = w.Frame()
	p.weather = NewWeather(p.cfg.Game.Weather, p.screenW, p.screenH, seed)
	p.finished = false
	p.replayDone = false

	p.recorder = nil
	if p.opts.RecordPath != "" && p.opts.Input == nil {
		p.recorder = replay.NewRecorder(seed, p.opts.StartLevel)
		p.logger.Info("recording enabled", "path", p.recordPath(), "seed", seed)
	}
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.messageTicks > 0 {
		p.messageTicks--
	}
	p.pollConfig()

	if p.keys.JustPressed(ebiten.KeyQ) {
		return nil, scene.ErrQuit
	}
	if err := p.handleKeys(); err != nil {
		return nil, err
	}

	st := p.world.State()
	if st == state.StatePaused || st.IsTerminal() || p.replayDone {
		return nil, nil
	}

	input, ok := p.nextInput()
	if !ok {
		p.replayDone = true
		p.notify("Replay finished")
		p.logger.Info("replay finished", "tick", p.world.Tick())
		return nil, nil
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	out, err := p.world.Step(input)
	if err != nil {
		return nil, err
	}
	p.handleEvents(out.Events)
	p.weather.Update()
	p.frame = p.world.Frame()

	if out.State.IsTerminal() {
		p.finish(out)
	}
	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleKeys() error {
	k := p.keys
	if k.JustPressed(ebiten.KeyEscape) {
		p.world.TogglePause()
		p.frame = p.world.Frame()
	}
	if p.opts.Input != nil {
		return nil
	}

	if k.JustPressed(ebiten.KeyF5) {
		p.save()
	}
	if k.JustPressed(ebiten.KeyF9) {
		p.load()
	}

	restart := k.JustPressed(ebiten.KeyR)
	if p.world.State().IsTerminal() {
		restart = restart ||
			k.JustPressed(ebiten.KeyZ) ||
			k.JustPressed(ebiten.KeySpace) ||
			k.JustPressed(ebiten.KeyEnter)
	}
	if restart {
		return p.restart()
	}
	return nil
}

func (p *Playing) nextInput() (system.InputState, bool) {
	if p.opts.Input != nil {
		return p.opts.Input.Next()
	}
	return p.keys.Input(), true
}

// restart begins a new run with a new seed so a recording stays replayable
func (p *Playing) restart() error {
	if !p.finished {
		p.saveRecording()
	}
	if err := p.start(time.Now().UnixNano()); err != nil {
		return err
	}
	p.logger.Info("run restarted", "seed", p.seed)
	p.notify("Restarted")
	return nil
}

func (p *Playing) save() {
	if p.opts.Store == nil {
		p.notify("Saving is not available")
		return
	}
	if err := p.opts.Store.Save(p.world.Snapshot()); err != nil {
		p.logger.Error("save failed", "error", err)
		p.notify("Save failed")
		return
	}
	p.logger.Info("game saved", "tick", p.world.Tick())
	p.notify("Game saved")
}

func (p *Playing) load() {
	if p.opts.Store == nil {
		p.notify("Loading is not available")
		return
	}
	s, ok, err := p.opts.Store.Load()
	switch {
	case err != nil:
		p.logger.Error("load failed", "error", err)
		p.notify("Load failed")
		return
	case !ok:
		p.notify("No saved game")
		return
	}

	p.world.Restore(s)
	p.frame = p.world.Frame()
	p.finished = false

	// Restored state is not reproducible from the seed
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.logger.Warn("recording stopped after load", "frames", p.recorder.FrameCount())
	}
	p.logger.Info("game loaded", "score", s.Score, "health", s.Health)
	p.notify("Game loaded")
}

// pollConfig applies changed config files. Level tables swap in on the
// next level entry; game.yaml needs a restart of the program.
func (p *Playing) pollConfig() {
	if p.opts.Watcher == nil {
		return
	}
	for {
		name, ok := p.opts.Watcher.Poll()
		if !ok {
			return
		}
		switch name {
		case config.LevelsFile:
			if p.opts.Loader == nil {
				continue
			}
			levels, err := p.opts.Loader.LoadLevels()
			if err == nil {
				// Build the layouts once so a bad archetype is caught here
				// rather than when the level is entered
				err = system.NewLevelBuilder(p.cfg.Game, levels, rand.New(rand.NewSource(p.seed))).Check()
			}
			if err != nil {
				p.logger.Warn("levels reload rejected", "error", err)
				p.notify("levels.yaml has errors")
				continue
			}
			p.cfg.Levels = levels
			p.world.ReloadLevels(levels)
			p.logger.Info("levels reloaded", "levels", len(levels.Levels))
			p.notify("Levels reloaded")
		case config.GameFile:
			p.logger.Warn("game.yaml changed; restart the game to apply it")
		}
	}
}

func (p *Playing) handleEvents(events []world.Event) {
	for _, e := range events {
		switch e.Kind {
		case world.EventLevelEntered:
			p.logger.Info("level entered", "level", e.Level, "name", e.Detail, "tick", e.Tick)
			p.notify(fmt.Sprintf("Level %d: %s", e.Level, e.Detail))
		case world.EventDamaged:
			p.logger.Debug("damaged", "source", e.Source, "amount", e.Value)
		case world.EventLifeLost:
			p.logger.Warn("life lost", "lives", e.Value)
			p.notify("Life lost")
		case world.EventCollected:
			p.logger.Debug("collected", "entity", e.Entity, "score", e.Value)
		case world.EventPowerUp:
			p.logger.Debug("power up", "effect", e.Detail)
		case world.EventInvincibleEnd:
			p.logger.Debug("invincibility ended", "tick", e.Tick)
		case world.EventAchievement:
			name := p.world.AchievementName(e.Detail)
			p.logger.Info("achievement unlocked", "id", e.Detail, "name", name)
			p.notify("Achievement: " + name)
		case world.EventCompleted, world.EventGameOver, world.EventBossDefeated:
			p.logger.Info("run ended", "outcome", e.Kind, "score", e.Value, "tick", e.Tick)
		}
	}
}

// finish persists the end of a run once
func (p *Playing) finish(out world.Outcome) {
	if p.finished {
		return
	}
	p.finished = true
	p.saveRecording()

	if p.opts.Runs == nil || p.opts.Input != nil {
		return
	}
	id, err := p.opts.Runs.RecordRun(persistence.Run{
		Seed:    p.seed,
		Score:   p.world.Player().Score,
		Level:   out.LevelID,
		Outcome: out.State.String(),
		Ticks:   out.Tick,
	})
	if err != nil {
		p.logger.Error("could not record run", "error", err)
		return
	}
	p.logger.Debug("run recorded", "id", id)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath()
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "error", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// recordPath numbers the recordings of restarted runs so earlier ones
// are kept: run.json, run-2.json, run-3.json
func (p *Playing) recordPath() string {
	path := p.opts.RecordPath
	if path == "" {
		return replay.GenerateFilename()
	}
	if p.run <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), p.run, ext)
}

func (p *Playing) notify(msg string) {
	p.message = msg
	p.messageTicks = 2 * max(p.framerate, 1)
}

// World returns the running simulation
func (p *Playing) World() *world.World { return p.world }

// Seed returns the seed of the current run
func (p *Playing) Seed() int64 { return p.seed }

// Message returns the banner text, empty once it has timed out
func (p *Playing) Message() string {
	if p.messageTicks == 0 {
		return ""
	}
	return p.message
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawWorld(screen)
	p.weather.Draw(screen)
	p.drawHUD(screen)
	p.drawMinimap(screen)

	if text, c, ok := overlay(p.frame.HUD); ok {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
		ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
	}
}

func (p *Playing) drawWorld(screen *ebiten.Image) {
	f := p.frame
	sw, sh := float64(p.screenW), float64(p.screenH)
	for _, s := range f.Sprites {
		b := s.Screen
		if b.Right() < 0 || b.X > sw || b.Bottom() < 0 || b.Y > sh {
			continue
		}

		c := colorFor(s.Kind, s.Tag)
		if s.Kind == entity.KindPlayer && flashing(f.HUD) {
			c = colorFlash
		}
		ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, c)
	}
}

// flashing blinks the player every few ticks while invincible
func flashing(h world.HUD) bool {
	return h.Invincible && (h.Tick/6)%2 == 0
}

// overlay returns the full-screen banner for paused and finished runs
func overlay(h world.HUD) (string, color.RGBA, bool) {
	switch h.State {
	case state.StatePaused:
		return "PAUSED\n\nPress ESC to resume", color.RGBA{0, 0, 0, 128}, true
	case state.StateGameOver:
		return fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress Z to restart", h.Score),
			color.RGBA{100, 0, 0, 180}, true
	case state.StateCompleted:
		return fmt.Sprintf("ALL LEVELS COMPLETE\n\nScore: %d\n\nPress Z to play again", h.Score),
			color.RGBA{0, 80, 40, 180}, true
	case state.StateBossDefeated:
		return fmt.Sprintf("BOSS DEFEATED\n\nScore: %d\n\nPress Z to play again", h.Score),
			color.RGBA{120, 90, 0, 180}, true
	default:
		return "", color.RGBA{}, false
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("run started", "seed", p.seed, "level", p.world.Level().ID)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if !p.finished {
		p.saveRecording()
	}
}
