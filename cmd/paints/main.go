// paints is a terminal color-mixing game: buckets ride a conveyor under three
// paint nozzles and the player tries to match each bucket's label color.
//
// Usage:
//
//	paints play              - Play in the terminal
//	paints simulate          - Run one round headless and print the score
//	paints config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible label colors
//	--config <path>      - Load a YAML or TOML config file
//	--log-file <path>    - Write logs to a file while playing
//	--debug              - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paints/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paints",
	Short: "Paints - mix colors into buckets on a conveyor",
	Long: `Paints is a terminal game about mixing colors. Buckets move along a
conveyor under red, green and blue nozzles. Fire the nozzles to tint each
bucket towards the color on its label. The score is the total color
distance when the buckets leave the screen: lower is better.

Available commands:
  play      - Play in the terminal
  simulate  - Run one round without a terminal
  config    - Print the effective configuration

Examples:
  paints play
  paints play --seed 42 --log-file paints.log
  paints simulate --autoplay
  paints config --format toml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "paints",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig() (config.PaintsConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}
	return cfg, nil
}
