// Package window plays arka in a desktop window drawn with ebiten.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arka/internal/config"
	"github.com/vovakirdan/arka/internal/core"
	"github.com/vovakirdan/arka/internal/game"
)

// Title is the window title.
const Title = "Arka"

// debugGlyphHeight is the line height of ebitenutil's debug font.
const debugGlyphHeight = 16

// Physical keys for each paddle direction.
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// heldState reports a direction as held while any of its keys is down, so
// releasing one key does not cancel another still pressed.
func heldState(pressed func(ebiten.Key) bool) game.InputState {
	anyDown := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return game.InputState{Left: anyDown(leftKeys), Right: anyDown(rightKeys)}
}

// Window implements ebiten.Game. Ebiten calls Update at the configured
// tick rate; every tick runs the frame the loop queued on the previous one.
type Window struct {
	cfg    config.ArkaConfig
	game   *game.Game
	loop   *game.Loop
	sched  *game.ManualScheduler
	canvas *core.Canvas
	input  *game.InputHandler
	view   *game.ViewState
	logger *log.Logger
	err    error
}

type options struct {
	audio  game.Audio
	logger *log.Logger
}

// Option configures a Window.
type Option func(*options)

// WithAudio sets the sound collaborator. The default is silent.
func WithAudio(a game.Audio) Option {
	return func(o *options) { o.audio = a }
}

// WithLogger sets the logger passed to the game.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a window showing the start screen.
func New(cfg config.ArkaConfig, opts ...Option) (*Window, error) {
	o := options{audio: game.NopAudio{}, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}

	view := &game.ViewState{}
	g, err := game.New(cfg,
		game.WithAudio(o.audio),
		game.WithDisplay(view),
		game.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}

	sched := &game.ManualScheduler{}
	canvas := core.NewCanvas(cfg.Playfield.Width, cfg.Playfield.Height)
	input := &game.InputHandler{}
	return &Window{
		cfg:    cfg,
		game:   g,
		loop:   game.NewLoop(g, sched, canvas, input),
		sched:  sched,
		canvas: canvas,
		input:  input,
		view:   view,
		logger: o.logger,
	}, nil
}

// Update handles input for the visible screen and runs the pending frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch w.view.Current() {
	case game.ViewStart:
		if justPressed(ebiten.KeyEnter, ebiten.KeySpace) {
			w.start()
		}
	case game.ViewPlaying:
		w.applyHeld(heldState(ebiten.IsKeyPressed))
	case game.ViewGameOver:
		if justPressed(ebiten.KeyR, ebiten.KeyEnter) {
			w.start()
		}
	case game.ViewVictory:
		if justPressed(ebiten.KeyEnter) {
			if err := w.game.Reload(); err != nil {
				w.logger.Error("reload", "err", err)
				w.err = err
			}
		}
	}

	w.sched.RunPending()
	return nil
}

// applyHeld copies the polled key state into the input handler.
func (w *Window) applyHeld(s game.InputState) {
	w.input.Reset()
	if s.Left {
		w.input.Press(game.DirLeft)
	}
	if s.Right {
		w.input.Press(game.DirRight)
	}
}

func (w *Window) start() {
	w.input.Reset()
	w.sched.Drop()
	if err := w.loop.Start(); err != nil {
		w.logger.Error("start session", "err", err)
		w.err = err
		return
	}
	w.err = nil
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Draw replays the canvas while playing and draws the overlays otherwise.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorBackground)

	switch w.view.Current() {
	case game.ViewStart:
		w.drawLines(screen, "A R K A", "", "Press Enter to start", "Arrow keys move the paddle")
	case game.ViewGameOver:
		w.drawLines(screen, "GAME OVER", fmt.Sprintf("Final Score: %d", w.view.FinalScore()), "", "Press R to restart")
	case game.ViewVictory:
		w.drawLines(screen, game.VictoryMessage, fmt.Sprintf("Final Score: %d", w.view.FinalScore()), "", "Press Enter")
	default:
		replay(screen, w.canvas.Ops())
	}

	if w.err != nil {
		ebitenutil.DebugPrintAt(screen, w.err.Error(), 8, int(w.cfg.Playfield.Height)-debugGlyphHeight-4)
	}
}

// drawLines prints centered lines in the middle of the playfield.
func (w *Window) drawLines(screen *ebiten.Image, lines ...string) {
	// The debug font is 6 pixels wide.
	const glyphWidth = 6
	top := int(w.cfg.Playfield.Height)/2 - len(lines)*debugGlyphHeight/2
	for i, line := range lines {
		x := (int(w.cfg.Playfield.Width) - len(line)*glyphWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*debugGlyphHeight)
	}
}

// replay draws recorded canvas primitives onto an ebiten image.
func replay(dst *ebiten.Image, ops []core.DrawOp) {
	for _, op := range ops {
		switch op.Kind {
		case core.OpClear:
			dst.Fill(core.ColorBackground)
		case core.OpRect:
			vector.DrawFilledRect(dst, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), op.Color, false)
		case core.OpCircle:
			vector.DrawFilledCircle(dst, float32(op.X), float32(op.Y), float32(op.R), op.Color, true)
		case core.OpText:
			// The debug font ignores size and color; Y is the baseline.
			ebitenutil.DebugPrintAt(dst, op.Text, int(op.X), int(op.Y)-debugGlyphHeight)
		}
	}
}

// Layout keeps the logical playfield size regardless of the window size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.cfg.Playfield.Width), int(w.cfg.Playfield.Height)
}

// Game returns the game driven by the window.
func (w *Window) Game() *game.Game {
	return w.game
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.ArkaConfig, opts ...Option) error {
	w, err := New(cfg, opts...)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Loop.FPS)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
