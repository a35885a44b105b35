package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/persistence"
)

var (
	flagRecord string
	flagSave   string
	flagWatch  bool
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open the game window and start a run.

Controls:
  Arrows/A/D     - Move
  Space/W/Up     - Jump
  Esc            - Pause
  F5 / F9        - Save / load the save slot
  R              - Restart with a new seed
  Z/Space/Enter  - Restart after the run ends
  Q              - Quit

The save slot lives in the runs database unless --save names a JSON file.
--watch reloads levels.yaml while playing and needs --config.

Examples:
  game play
  game play --level 3 --seed 7
  game play --record run.json
  game play --save ./save.json
  game play --config ./cmd/game/configs --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	playCmd.Flags().StringVar(&flagSave, "save", "", "Keep the save slot in this JSON file")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels.yaml on change (requires --config)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level ID to start on (0 = first)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	loader, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := playing.Options{
		Seed:       flagSeed,
		StartLevel: flagLevel,
		RecordPath: flagRecord,
		Loader:     loader,
		Logger:     logger,
	}

	// Run history and the default save slot share one database
	db, err := persistence.OpenSQLite(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		// Continue without history
	} else {
		defer func() { _ = db.Close() }()
		opts.Runs = db
		opts.Store = db
	}
	if flagSave != "" {
		js := persistence.NewJSONStore(flagSave)
		defer func() { _ = js.Close() }()
		opts.Store = js
	}

	if flagWatch {
		if flagConfigDir == "" {
			return fmt.Errorf("--watch needs --config")
		}
		watcher, err := config.NewWatcher(flagConfigDir)
		if err != nil {
			return fmt.Errorf("watch %s: %w", flagConfigDir, err)
		}
		defer func() { _ = watcher.Close() }()
		opts.Watcher = watcher
		logger.Info("watching config", "dir", flagConfigDir)
	}

	scn, err := playing.New(cfg, opts)
	if err != nil {
		return err
	}
	return runWindow(cfg.Game, scn, "Platformer")
}

// runWindow sets up ebiten and blocks until the window closes or the
// scene quits
func runWindow(gc *config.GameConfig, scn *playing.Playing, title string) error {
	d := gc.Display
	scale := max(d.Scale, 1)
	ebiten.SetWindowSize(d.ScreenWidth*scale, d.ScreenHeight*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(d.Framerate)

	return ebiten.RunGame(game.New(scn, d.ScreenWidth, d.ScreenHeight, d.Framerate))
}
