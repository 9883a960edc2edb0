package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arka/internal/config"
)

// ErrNoLevels is returned by New for an empty level list.
var ErrNoLevels = errors.New("no levels")

// Game is one player's brick-breaker session and its board.
// It is not safe for concurrent use; the frame loop and the input boundary
// must run on the same goroutine.
type Game struct {
	cfg    config.ArkaConfig
	geo    Geometry
	levels []LevelDefinition

	board   Board
	session Session
	frame   uint64

	audio   Audio
	display Display
	logger  *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithAudio sets the sound collaborator.
func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithDisplay sets the screen collaborator.
func WithDisplay(d Display) Option {
	return func(g *Game) {
		if d != nil {
			g.display = d
		}
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithLevels replaces the built-in catalog.
func WithLevels(levels []LevelDefinition) Option {
	return func(g *Game) {
		g.levels = levels
	}
}

// New creates a game in the NotStarted phase with the first level on the board.
func New(cfg config.ArkaConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		geo:     GeometryFromConfig(cfg),
		levels:  Catalog(),
		audio:   NopAudio{},
		display: nopDisplay{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	if len(g.levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, def := range g.levels {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}

	if err := g.StartNextLevel(); err != nil {
		return nil, err
	}
	g.display.Show(ViewStart)
	return g, nil
}

// StartSession begins a new play-through from the first level with a zero score.
// It is legal from NotStarted, Won and Lost.
func (g *Game) StartSession() error {
	if err := g.session.transition(PhaseRunning); err != nil {
		return err
	}
	g.session.Score = 0
	g.session.LevelIndex = 0
	g.frame = 0

	g.audio.StartMusic()
	g.display.Show(ViewPlaying)

	if err := g.StartNextLevel(); err != nil {
		return err
	}
	g.logger.Info("session started", "levels", len(g.levels))
	return nil
}

// StartNextLevel rebuilds the grid for the current level index and resets the
// ball and paddle. The score is kept.
func (g *Game) StartNextLevel() error {
	if g.session.LevelIndex < 0 || g.session.LevelIndex >= len(g.levels) {
		return fmt.Errorf("start level %d: index outside %d levels", g.session.LevelIndex, len(g.levels))
	}
	def := g.levels[g.session.LevelIndex]

	grid, err := BuildGrid(def, g.geo)
	if err != nil {
		return err
	}
	g.board.Grid = grid
	g.board.resetActors(g.cfg)

	g.logger.Debug("level loaded", "index", g.session.LevelIndex, "name", def.Name, "bricks", grid.ActiveCount())
	return nil
}

// EndSession stops a running session with the given outcome.
// Music stops, the game-over cue plays and the matching end screen is shown.
func (g *Game) EndSession(outcome Outcome) error {
	if err := g.session.transition(outcome.Phase()); err != nil {
		return err
	}

	g.audio.StopMusic()
	g.audio.PlayCue(CueGameOver)
	g.display.SetFinalScore(g.session.Score)
	if outcome == OutcomeWon {
		g.display.Show(ViewVictory)
	} else {
		g.display.Show(ViewGameOver)
	}

	g.logger.Info("session ended", "outcome", outcome, "score", g.session.Score, "level", g.session.LevelIndex, "frames", g.frame)
	return nil
}

// Reload returns a finished session to NotStarted and shows the start screen.
func (g *Game) Reload() error {
	if err := g.session.transition(PhaseNotStarted); err != nil {
		return err
	}
	g.session.Score = 0
	g.session.LevelIndex = 0
	g.frame = 0

	if err := g.StartNextLevel(); err != nil {
		return err
	}
	g.display.Show(ViewStart)
	g.logger.Debug("session reloaded")
	return nil
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.session.Phase
}

// Running reports whether frames should be scheduled.
func (g *Game) Running() bool {
	return g.session.Phase == PhaseRunning
}

// Score returns the session score.
func (g *Game) Score() int {
	return g.session.Score
}

// LevelIndex returns the index of the current level. After a win it is one
// past the last level.
func (g *Game) LevelIndex() int {
	return g.session.LevelIndex
}

// Level returns the definition the board was built from.
func (g *Game) Level() LevelDefinition {
	return g.levels[min(g.session.LevelIndex, len(g.levels)-1)]
}

// LevelCount returns the number of levels in this game.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// Ball returns the ball.
func (g *Game) Ball() Ball {
	return g.board.Ball
}

// Paddle returns the paddle.
func (g *Game) Paddle() Paddle {
	return g.board.Paddle
}

// Grid returns the brick grid. Callers must not modify it.
func (g *Game) Grid() Grid {
	return g.board.Grid
}

// Frame returns the number of physics steps run in this session.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.ArkaConfig {
	return g.cfg
}
