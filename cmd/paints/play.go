package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/platform/tui"
	"github.com/vovakirdan/paints/internal/sim"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space      - Play (main menu)
  Esc        - Pause/resume, or exit from the main menu
  Enter      - Back to the main menu (paused or score screen)
  1/2/3      - Fire the red/green/blue nozzle
  Click      - Fire the nozzle nearest to the pointer
  ?          - Toggle help
  Ctrl+C     - Quit

Examples:
  paints play
  paints play --fps 30
  paints play --config ./my-paints.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	// Get terminal size early so the first frame is laid out
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	assets := core.DefaultAssets()
	s, err := sim.New(cfg, assets, logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	return tui.Run(s, tui.Options{
		FPS:    flagFPS,
		Width:  width,
		Height: height,
		Assets: assets,
		Logger: logger,
	})
}
