// arka is a brick breaker played in the terminal, over SSH or in a window.
//
// Usage:
//
//	arka play     - Play in the terminal
//	arka window   - Play in a desktop window
//	arka serve    - Start SSH server for remote play
//	arka levels   - List the level catalog
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: XDG config, then ./configs/arka.yaml)
//	--fps <rate>        - Override the frame rate
//	--log-level <level> - debug, info, warn or error (default: info)
//	--mute              - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arka/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arka",
	Short: "Arka - break every brick across four levels",
	Long: `Arka is a brick breaker. Bounce the ball off the paddle and clear
the Rectangle, Pyramid, Zigzag and Diamond levels to win.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  levels   - Show the level catalog

Examples:
  arka play
  arka play --mute --fps 30
  arka window
  arka serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig reads the game config and applies flag overrides.
func loadConfig() (config.ArkaConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

// newLogger writes to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// openLogFile opens the log file under the XDG state directory.
// Frontends that own the terminal log there instead of to stderr.
func openLogFile() (*os.File, error) {
	path, err := xdg.StateFile("arka/arka.log")
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
