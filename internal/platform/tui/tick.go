// Package tui provides the Bubble Tea frontend for arka.
// It owns the frame clock, maps keys to paddle input and rasterizes the game
// canvas into terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to run the pending game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after a frame interval.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
