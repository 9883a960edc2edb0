package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arka/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected game.Direction
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, game.DirLeft},
		{"a", runeKey('a'), game.DirLeft},
		{"h", runeKey('h'), game.DirLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, game.DirRight},
		{"d", runeKey('d'), game.DirRight},
		{"l", runeKey('l'), game.DirRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, game.DirNone},
		{"x", runeKey('x'), game.DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Direction(tc.msg); got != tc.expected {
				t.Errorf("Direction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	if !key.Matches(enter, km.Start) || !key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.Start) {
		t.Error("enter and space should start")
	}
	if !key.Matches(runeKey('r'), km.Restart) || !key.Matches(enter, km.Restart) {
		t.Error("r and enter should restart")
	}
	if !key.Matches(enter, km.Confirm) {
		t.Error("enter should confirm")
	}
	if !key.Matches(runeKey('q'), km.Quit) || !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit) {
		t.Error("q and ctrl+c should quit")
	}
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) == 0 {
		t.Error("help bindings should not be empty")
	}
}
