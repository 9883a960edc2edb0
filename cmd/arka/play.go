package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arka/internal/audio"
	"github.com/vovakirdan/arka/internal/config"
	"github.com/vovakirdan/arka/internal/game"
	"github.com/vovakirdan/arka/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start arka in the terminal.

Controls:
  Left/Right, A/D, H/L - Move the paddle
  Enter/Space          - Start
  R                    - Restart (after game over)
  ?                    - Toggle help
  Q/Ctrl+C             - Quit

Examples:
  arka play
  arka play --config ./my-arka.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "arka")
	if err != nil {
		return err
	}

	// Get terminal size before the first resize message
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	snd, closeAudio := openAudio(cfg.Audio, logger)
	defer closeAudio()

	return tui.Run(cfg,
		tui.WithAudio(snd),
		tui.WithLogger(logger),
		tui.WithSize(width, height),
	)
}

// openAudio starts the sound engine when enabled. The game still works
// silently when no output device is available.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (game.Audio, func()) {
	if !cfg.Enabled {
		return game.NopAudio{}, func() {}
	}
	engine := audio.NewEngine(cfg, logger)
	if err := engine.Open(); err != nil {
		return game.NopAudio{}, func() {}
	}
	return engine, engine.Close
}
