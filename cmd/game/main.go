// game is a 2D side-scrolling platformer.
//
// Usage:
//
//	game play               - Play in a window
//	game replay <file>      - Re-simulate a recorded run
//	game scores             - Show the best finished runs
//	game generate           - Print a procedurally generated level
//	game check              - Validate the config directory
//
// Global flags:
//
//	--config <dir>  - Read game.yaml and levels.yaml from dir (default: embedded)
//	--seed <value>  - Set RNG seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.platformer/runs.db)
//	--verbose       - Log per-tick events
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagSeed      int64
	flagDBPath    string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "A 2D side-scrolling platformer",
	Long: `A side-scrolling platformer with hand-made and procedural levels.

Available commands:
  play      - Play in a window
  replay    - Re-simulate a recorded run and print the result
  scores    - View the best finished runs
  generate  - Print a procedurally generated level
  check     - Validate game.yaml and levels.yaml

Examples:
  game play
  game play --record run.json --seed 42
  game replay run.json
  game play --config ./configs --watch`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log every game event")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newLoader reads from --config when given, else from the embedded configs
func newLoader() (*config.Loader, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func loadConfig() (*config.Loader, *config.Config, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return loader, cfg, nil
}
