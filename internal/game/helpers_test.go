package game

import (
	"testing"

	"github.com/vovakirdan/arka/internal/config"
)

type recordingAudio struct {
	cues   []Cue
	music  bool
	starts int
	stops  int
}

func (a *recordingAudio) PlayCue(c Cue) {
	a.cues = append(a.cues, c)
}

func (a *recordingAudio) StartMusic() {
	a.music = true
	a.starts++
}

func (a *recordingAudio) StopMusic() {
	a.music = false
	a.stops++
}

func (a *recordingAudio) count(c Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, opts ...Option) (*Game, *recordingAudio, *ViewState) {
	t.Helper()
	audio := &recordingAudio{}
	view := &ViewState{}
	opts = append([]Option{WithAudio(audio), WithDisplay(view)}, opts...)

	g, err := New(config.DefaultArkaConfig(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, audio, view
}

func newRunningGame(t *testing.T, opts ...Option) (*Game, *recordingAudio, *ViewState) {
	t.Helper()
	g, audio, view := newTestGame(t, opts...)
	if err := g.StartSession(); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return g, audio, view
}

// aimAtFirstBrick puts the ball on the center of the first active brick.
func aimAtFirstBrick(t *testing.T, g *Game) {
	t.Helper()
	bw, bh := g.cfg.Bricks.Width, g.cfg.Bricks.Height
	for c := range g.board.Grid {
		for r := range g.board.Grid[c] {
			b := g.board.Grid[c][r]
			if b.Active() {
				g.board.Ball.X = b.X + bw/2
				g.board.Ball.Y = b.Y + bh/2
				return
			}
		}
	}
	t.Fatal("no active brick to aim at")
}

// clearLevel hits bricks until the level index changes or the session ends.
func clearLevel(t *testing.T, g *Game) {
	t.Helper()
	start := g.LevelIndex()
	for i := 0; g.Running() && g.LevelIndex() == start; i++ {
		if i > 1000 {
			t.Fatalf("level %d did not clear", start)
		}
		aimAtFirstBrick(t, g)
		g.Step(InputState{})
	}
}
