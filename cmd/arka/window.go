package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arka/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open arka in a desktop window at the playfield's size.

Controls:
  Left/Right, A/D - Move the paddle
  Enter/Space     - Start
  R               - Restart (after game over)
  Esc/Q           - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "arka")
	if err != nil {
		return err
	}

	snd, closeAudio := openAudio(cfg.Audio, logger)
	defer closeAudio()

	return window.Run(cfg,
		window.WithAudio(snd),
		window.WithLogger(logger),
	)
}
