package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paints/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search
order and flag overrides are applied. The output can be saved and edited.

Search order:
  --config path, ~/.paints/paints.yaml, ./configs/paints.yaml, built-in defaults

Examples:
  paints config > ~/.paints/paints.yaml
  paints config --format toml > paints.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", string(config.FormatYAML), "Output format: yaml, toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q", flagFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
