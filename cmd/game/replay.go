package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/application/world"
)

var (
	flagView     bool
	flagMaxTicks uint64
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Feed a recording made with 'game play --record' back through the
simulation with the recorded seed and print where the run ends up.
The same config produces the same result every time.

Examples:
  game replay run.json
  game replay run.json --view
  game replay run.json --max-ticks 600 --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagView, "view", false, "Watch the replay in a window")
	replayCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = no limit)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	if data.Version != replay.FormatVersion {
		logger.Warn("replay format differs", "file", data.Version, "supported", replay.FormatVersion)
	}

	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	replayer := replay.NewReplayer(*data)

	if flagView {
		scn, err := playing.New(cfg, playing.Options{
			Seed:       data.Seed,
			StartLevel: data.Level,
			Input:      replayer,
			Logger:     logger,
		})
		if err != nil {
			return err
		}
		return runWindow(cfg.Game, scn, "Platformer - Replay")
	}

	builder := system.NewLevelBuilder(cfg.Game, cfg.Levels, rand.New(rand.NewSource(data.Seed)))
	w, err := world.New(cfg.Game, builder, world.WithStartLevel(data.Level))
	if err != nil {
		return err
	}

	out, err := world.Run(w, replayer, flagMaxTicks, func(o world.Outcome) {
		for _, e := range o.Events {
			logger.Debug("event", "tick", e.Tick, "kind", e.Kind, "level", e.Level, "value", e.Value, "detail", e.Detail)
		}
	})
	if err != nil {
		return err
	}

	p := w.Player()
	fmt.Printf("Replay %s\n", args[0])
	fmt.Println()
	fmt.Printf("  %-12s %d\n", "Seed", data.Seed)
	fmt.Printf("  %-12s %d / %d\n", "Frames", replayer.CurrentFrame(), replayer.TotalFrames())
	fmt.Printf("  %-12s %d\n", "Ticks", out.Tick)
	fmt.Printf("  %-12s %s\n", "State", w.State())
	fmt.Printf("  %-12s %d (%s)\n", "Level", w.Level().ID, w.Level().Name)
	fmt.Printf("  %-12s %d\n", "Score", p.Score)
	fmt.Printf("  %-12s %d/%d\n", "Health", p.Health, p.MaxHealth)
	fmt.Printf("  %-12s %d\n", "Lives", p.ExtraLives)
	return nil
}
