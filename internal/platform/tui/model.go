package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arka/internal/config"
	"github.com/vovakirdan/arka/internal/core"
	"github.com/vovakirdan/arka/internal/game"
)

// Model is the Bubble Tea model that plays one arka session.
// The game and its loop are shared pointers, so copies of Model made by
// Bubble Tea all drive the same game.
type Model struct {
	cfg    config.ArkaConfig
	game   *game.Game
	loop   *game.Loop
	sched  *game.ManualScheduler
	canvas *core.Canvas
	screen *core.Screen
	input  *game.InputHandler
	hold   *holdTracker
	view   *game.ViewState
	logger *log.Logger

	renderer *lipgloss.Renderer
	styles   overlayStyles
	keys     KeyMap
	help     help.Model
	levels   table.Model

	width    int
	height   int
	ticking  bool
	quitting bool
	err      error
}

// modelOptions collects ModelOption values.
type modelOptions struct {
	audio    game.Audio
	logger   *log.Logger
	renderer *lipgloss.Renderer
	width    int
	height   int
}

// ModelOption configures a Model.
type ModelOption func(*modelOptions)

// WithAudio sets the sound collaborator. The default is silent.
func WithAudio(a game.Audio) ModelOption {
	return func(o *modelOptions) { o.audio = a }
}

// WithLogger sets the logger passed to the game.
func WithLogger(l *log.Logger) ModelOption {
	return func(o *modelOptions) { o.logger = l }
}

// WithRenderer sets the lipgloss renderer, e.g. one per SSH session.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(o *modelOptions) { o.renderer = r }
}

// WithSize sets the initial terminal size before the first resize message.
func WithSize(width, height int) ModelOption {
	return func(o *modelOptions) {
		o.width = width
		o.height = height
	}
}

// NewModel creates a model showing the start screen.
func NewModel(cfg config.ArkaConfig, opts ...ModelOption) (Model, error) {
	o := modelOptions{
		audio:  game.NopAudio{},
		logger: log.New(io.Discard),
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = lipgloss.DefaultRenderer()
	}

	view := &game.ViewState{}
	g, err := game.New(cfg,
		game.WithAudio(o.audio),
		game.WithDisplay(view),
		game.WithLogger(o.logger),
	)
	if err != nil {
		return Model{}, err
	}

	sched := &game.ManualScheduler{}
	canvas := core.NewCanvas(cfg.Playfield.Width, cfg.Playfield.Height)
	input := &game.InputHandler{}

	h := help.New()
	h.ShowAll = false

	return Model{
		cfg:      cfg,
		game:     g,
		loop:     game.NewLoop(g, sched, canvas, input),
		sched:    sched,
		canvas:   canvas,
		screen:   core.NewScreen(o.width, max(o.height-1, 1)),
		input:    input,
		hold:     newHoldTracker(cfg.Loop.HoldTicks),
		view:     view,
		logger:   o.logger,
		renderer: o.renderer,
		styles:   newOverlayStyles(o.renderer),
		keys:     DefaultKeyMap(),
		help:     h,
		levels:   newLevelTable(o.renderer, game.Catalog()),
		width:    o.width,
		height:   o.height,
	}, nil
}

// Init shows the start screen; frames only tick while a session runs.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input for the visible screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.view.Current() {
	case game.ViewStart:
		if key.Matches(msg, m.keys.Start) {
			return m.start()
		}

	case game.ViewPlaying:
		if dir := m.keys.Direction(msg); dir != game.DirNone {
			m.hold.Press(dir, m.input)
		}

	case game.ViewGameOver:
		if key.Matches(msg, m.keys.Restart) {
			return m.start()
		}

	case game.ViewVictory:
		if key.Matches(msg, m.keys.Confirm) {
			if err := m.game.Reload(); err != nil {
				m.logger.Error("reload", "err", err)
				m.err = err
			}
		}
	}
	return m, nil
}

// start begins a new session and the frame clock.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.hold.Reset(m.input)
	m.sched.Drop()
	if err := m.loop.Start(); err != nil {
		m.logger.Error("start session", "err", err)
		m.err = err
		return m, nil
	}
	m.err = nil
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.cfg.Loop.FPS)
}

// handleTick runs the pending frame and re-arms the clock while the game runs.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Tick(m.input)
	m.sched.RunPending()

	if !m.game.Running() {
		m.ticking = false
		m.hold.Reset(m.input)
		return m, nil
	}
	return m, tickCmd(m.cfg.Loop.FPS)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.view.Current() {
	case game.ViewStart:
		body = m.startView()
	case game.ViewGameOver:
		body = m.gameOverView()
	case game.ViewVictory:
		body = m.victoryView()
	default:
		m.screen.Paint(m.canvas)
		body = RenderScreen(m.renderer, m.screen)
	}

	footer := m.help.View(m.keys)
	if m.err != nil {
		footer = m.styles.title.Render(m.err.Error())
	}
	return body + "\n" + footer
}

// Game returns the game driven by the model.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg config.ArkaConfig, opts ...ModelOption) error {
	model, err := NewModel(cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
