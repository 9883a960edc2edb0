package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arka/internal/core"
	"github.com/vovakirdan/arka/internal/game"
)

// overlayStyles holds the styles of the start and end screens.
type overlayStyles struct {
	title  lipgloss.Style
	accent lipgloss.Style
	dim    lipgloss.Style
	box    lipgloss.Style
	button lipgloss.Style
}

func newOverlayStyles(r *lipgloss.Renderer) overlayStyles {
	return overlayStyles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(core.Hex(core.ColorBall))),
		accent: r.NewStyle().Bold(true).Foreground(lipgloss.Color(core.Hex(core.ColorPaddle))),
		dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(core.Hex(core.ColorBrick))).
			Padding(1, 4).
			Align(lipgloss.Center),
		button: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(core.Hex(core.ColorPaddle))).
			Padding(0, 2),
	}
}

// newLevelTable lists the levels shown on the start screen.
func newLevelTable(r *lipgloss.Renderer, levels []game.LevelDefinition) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 10},
		{Title: "Bricks", Width: 7},
		{Title: "Hits", Width: 5},
	}
	rows := make([]table.Row, len(levels))
	for i, def := range levels {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			def.Name,
			strconv.Itoa(def.BrickCount()),
			strconv.Itoa(def.BrickStrength),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)

	t.SetStyles(levelTableStyles(r))
	return t
}

// levelTableStyles builds the table styles on r, so an SSH session gets its
// own color profile.
func levelTableStyles(r *lipgloss.Renderer) table.Styles {
	return table.Styles{
		Header: r.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true),
		Cell:     r.NewStyle().Padding(0, 1),
		Selected: r.NewStyle(),
	}
}

func (m Model) startView() string {
	st := m.styles
	body := strings.Join([]string{
		st.title.Render("A R K A"),
		"",
		m.levels.View(),
		"",
		st.button.Render("Start"),
		st.dim.Render(m.keys.Start.Help().Key + " to start"),
	}, "\n")
	return m.place(st.box.Render(body))
}

func (m Model) gameOverView() string {
	st := m.styles
	body := strings.Join([]string{
		st.title.Render("GAME OVER"),
		"",
		st.accent.Render(fmt.Sprintf("Final Score: %d", m.view.FinalScore())),
		"",
		st.button.Render("Play Again"),
		st.dim.Render(m.keys.Restart.Help().Key + " to play again"),
	}, "\n")
	return m.place(st.box.Render(body))
}

func (m Model) victoryView() string {
	st := m.styles
	body := strings.Join([]string{
		st.accent.Render(game.VictoryMessage),
		"",
		st.dim.Render(fmt.Sprintf("Final Score: %d", m.view.FinalScore())),
		"",
		st.button.Render("OK"),
	}, "\n")
	return m.place(st.box.Render(body))
}

// place centers content in the area above the help line.
func (m Model) place(content string) string {
	w, h := m.width, m.height-1
	if w <= 0 || h <= 0 {
		return content
	}
	return m.renderer.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}
