package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/sim"
)

var (
	flagAutoplay   bool
	flagMaxSeconds float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one round headless and print the score",
	Long: `Run a single round without a terminal, using a fixed frame time of
1/fps seconds, then print the final score screen. Logs go to stderr.

With --autoplay the nozzles fire whenever a shot brings the bucket below
closer to its label.

Examples:
  paints simulate --seed 42
  paints simulate --autoplay --debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Fire nozzles automatically")
	simulateCmd.Flags().Float64Var(&flagMaxSeconds, "max-seconds", 120, "Give up after this much simulated time")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	s, err := sim.New(cfg, core.DefaultAssets(), logger)
	if err != nil {
		return err
	}

	dt := time.Second / time.Duration(flagFPS)
	in := core.NewInputFrame()
	in.Set(core.ActionPlay)

	for s.Phase() != sim.PhaseScoreDisplay {
		if s.Elapsed() > flagMaxSeconds {
			return fmt.Errorf("round did not finish within %gs", flagMaxSeconds)
		}
		if flagAutoplay {
			sim.Autopilot(s, &in)
		}
		s.Frame(dt, &in)
		in.Clear()
	}

	gs := s.Game()
	logger.Info("simulation finished",
		"elapsed", fmt.Sprintf("%.2fs", s.Elapsed()),
		"ticks", s.Ticks(),
		"buckets", gs.BucketsScored,
	)
	fmt.Fprintln(cmd.OutOrStdout(), sim.ScoreText(gs.Score))
	return nil
}
