package game

import "testing"

func pairLevel(strength int) []LevelDefinition {
	// Two bricks: 160 wide grid, offset 320, bricks at x=320 and x=405, y=30.
	return []LevelDefinition{{Name: "pair", Layout: ParseLayout([]string{"##"}), BrickStrength: strength}}
}

func TestStepIgnoredUnlessRunning(t *testing.T) {
	g, _, _ := newTestGame(t)
	before := g.Snapshot()

	res := g.Step(InputState{Right: true})
	after := g.Snapshot()

	if res.Phase != PhaseNotStarted {
		t.Errorf("phase = %s", res.Phase)
	}
	if before.Hash() != after.Hash() {
		t.Error("Step changed state before the session started")
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name       string
		x, dx      float64
		expectedDX float64
		expectedX  float64
	}{
		{"right wall", 790, 4, -4, 794},
		{"left wall", 10, -4, 4, 6},
		{"open field", 400, 4, 4, 404},
		{"next step lands on the limit", 784, 4, 4, 788},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _, _ := newRunningGame(t)
			g.board.Ball = Ball{X: tc.x, Y: 300, DX: tc.dx, DY: -4}

			g.Step(InputState{})

			b := g.Ball()
			if b.X != tc.expectedX || b.DX != tc.expectedDX {
				t.Errorf("ball X=%v DX=%v, expected X=%v DX=%v", b.X, b.DX, tc.expectedX, tc.expectedDX)
			}
			if b.DY != -4 {
				t.Errorf("DY changed to %v", b.DY)
			}
		})
	}
}

func TestTopWallBounce(t *testing.T) {
	g, _, _ := newRunningGame(t)
	g.board.Ball = Ball{X: 20, Y: 12, DX: 4, DY: -4}

	g.Step(InputState{})

	if b := g.Ball(); b.Y != 8 || b.DY != 4 {
		t.Errorf("ball Y=%v DY=%v, expected Y=8 DY=4", b.Y, b.DY)
	}
}

func TestPaddleBounce(t *testing.T) {
	g, audio, _ := newRunningGame(t)
	// Paddle starts at 340 and covers (340, 460).
	g.board.Ball = Ball{X: 400, Y: 536, DX: 4, DY: 4}

	res := g.Step(InputState{})

	if !res.PaddleBounce || g.Ball().DY != -4 {
		t.Errorf("expected a paddle bounce, got %+v ball %+v", res, g.Ball())
	}
	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %s", g.Phase())
	}
	if audio.count(CuePaddle) != 1 {
		t.Errorf("paddle cue played %d times", audio.count(CuePaddle))
	}
}

func TestMissLosesAndFreezesPaddle(t *testing.T) {
	g, audio, view := newRunningGame(t)
	g.session.Score = 7
	g.board.Ball = Ball{X: 100, Y: 536, DX: 4, DY: 4}

	res := g.Step(InputState{Right: true})

	if res.Phase != PhaseLost || g.Phase() != PhaseLost {
		t.Fatalf("phase = %s, expected lost", g.Phase())
	}
	if g.Paddle().X != 340 {
		t.Errorf("paddle moved to %v on the losing frame", g.Paddle().X)
	}
	if audio.music || audio.count(CueGameOver) != 1 {
		t.Errorf("music=%v game-over cues=%d", audio.music, audio.count(CueGameOver))
	}
	if view.Current() != ViewGameOver || view.FinalScore() != 7 {
		t.Errorf("view=%s final=%d", view.Current(), view.FinalScore())
	}
}

func TestPaddleEdgeIsAMiss(t *testing.T) {
	g, _, _ := newRunningGame(t)
	// After moving, the ball center sits exactly on the paddle's left edge.
	g.board.Ball = Ball{X: 336, Y: 536, DX: 4, DY: 4}

	g.Step(InputState{})

	if g.Phase() != PhaseLost {
		t.Errorf("ball on the paddle edge should miss, phase = %s", g.Phase())
	}
}

func TestBrickHitScores(t *testing.T) {
	g, audio, _ := newRunningGame(t)
	// Brick (0,0) of the first level spans x 65-140, y 30-50.
	g.board.Ball = Ball{X: 100, Y: 40, DX: 4, DY: -4}

	res := g.Step(InputState{})

	if res.BricksHit != 1 || res.BricksDestroyed != 1 {
		t.Errorf("result = %+v", res)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d", g.Score())
	}
	if g.Grid()[0][0].Active() {
		t.Error("brick should be destroyed")
	}
	if b := g.Ball(); b.DY != 4 || b.Y != 44 {
		t.Errorf("ball = %+v, expected DY inverted then moved", b)
	}
	if audio.count(CueBrick) != 1 {
		t.Errorf("brick cue played %d times", audio.count(CueBrick))
	}
}

func TestBrickSurvivesUntilStrengthExhausted(t *testing.T) {
	g, audio, _ := newRunningGame(t, WithLevels(pairLevel(2)))

	g.board.Ball = Ball{X: 360, Y: 40, DX: 0, DY: -4}
	g.Step(InputState{})

	brick := g.Grid()[0][0]
	if !brick.Active() || brick.Strength != 1 || g.Score() != 0 {
		t.Fatalf("after one hit: brick %+v score %d", brick, g.Score())
	}
	if audio.count(CueBrick) != 0 {
		t.Error("brick cue should only play on destruction")
	}

	g.board.Ball = Ball{X: 360, Y: 40, DX: 0, DY: -4}
	g.Step(InputState{})

	brick = g.Grid()[0][0]
	if brick.Active() || g.Score() != 1 {
		t.Errorf("after two hits: brick %+v score %d", brick, g.Score())
	}
}

func TestBrickEdgeIsNotAHit(t *testing.T) {
	// Brick 0 spans x 320-395, y 30-50.
	tests := []struct {
		name string
		ball Ball
	}{
		{"left edge", Ball{X: 320, Y: 40, DX: 0, DY: -4}},
		{"right edge", Ball{X: 395, Y: 40, DX: 0, DY: -4}},
		{"top edge", Ball{X: 360, Y: 30, DX: 0, DY: 4}},
		{"bottom edge", Ball{X: 360, Y: 50, DX: 0, DY: -4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _, _ := newRunningGame(t, WithLevels(pairLevel(1)))
			g.board.Ball = tc.ball

			res := g.Step(InputState{})

			if res.BricksHit != 0 || g.Grid().ActiveCount() != 2 {
				t.Errorf("ball on a brick edge hit it: %+v", res)
			}
		})
	}
}

func TestBrickJustInsideEdgeIsAHit(t *testing.T) {
	g, _, _ := newRunningGame(t, WithLevels(pairLevel(1)))
	g.board.Ball = Ball{X: 320.5, Y: 40, DX: 0, DY: -4}

	res := g.Step(InputState{})

	if res.BricksHit != 1 || g.Grid().ActiveCount() != 1 {
		t.Errorf("ball inside the brick missed it: %+v", res)
	}
}

func TestFastBallTunnelsThroughBrick(t *testing.T) {
	g, _, _ := newRunningGame(t, WithLevels(pairLevel(1)))
	// The brick spans y 30-50; a ball moving 30 per frame jumps from 25 to 55.
	g.board.Ball = Ball{X: 360, Y: 25, DX: 0, DY: 30}

	g.Step(InputState{})
	g.Step(InputState{})

	if g.Grid().ActiveCount() != 2 {
		t.Error("point test should miss a brick the ball skipped over")
	}
	if g.Ball().Y != 85 {
		t.Errorf("ball Y = %v, expected 85", g.Ball().Y)
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	g, _, _ := newRunningGame(t)
	maxX := g.cfg.Playfield.Width - g.cfg.Paddle.Width

	for range 500 {
		g.movePaddle(InputState{Right: true})
		if x := g.Paddle().X; x < 0 || x > maxX {
			t.Fatalf("paddle at %v outside [0, %v]", x, maxX)
		}
	}
	if g.Paddle().X != maxX {
		t.Errorf("paddle should rest on the right wall, got %v", g.Paddle().X)
	}

	for range 500 {
		g.movePaddle(InputState{Left: true})
		if x := g.Paddle().X; x < 0 || x > maxX {
			t.Fatalf("paddle at %v outside [0, %v]", x, maxX)
		}
	}
	if g.Paddle().X != 0 {
		t.Errorf("paddle should rest on the left wall, got %v", g.Paddle().X)
	}
}

func TestRightWinsWhenBothHeld(t *testing.T) {
	g, _, _ := newRunningGame(t)

	g.movePaddle(InputState{Left: true, Right: true})

	if g.Paddle().X != 348 {
		t.Errorf("paddle X = %v, expected 348", g.Paddle().X)
	}
}

func TestLevelClearAdvances(t *testing.T) {
	g, _, _ := newRunningGame(t)

	clearLevel(t, g)

	if g.LevelIndex() != 1 || g.Phase() != PhaseRunning {
		t.Fatalf("level=%d phase=%s", g.LevelIndex(), g.Phase())
	}
	if g.Score() != 50 {
		t.Errorf("score = %d, expected 50", g.Score())
	}
	if g.Grid().ActiveCount() != 19 {
		t.Errorf("pyramid should have 19 bricks, got %d", g.Grid().ActiveCount())
	}
	// The clearing frame continues from the reset state: one step from (400, 520).
	if b := g.Ball(); b != (Ball{X: 404, Y: 516, DX: 4, DY: -4}) {
		t.Errorf("ball = %+v, expected reset then one step", b)
	}
	if g.Paddle().X != 340 {
		t.Errorf("paddle X = %v, expected 340", g.Paddle().X)
	}
}

func TestAllLevelsClearedWins(t *testing.T) {
	g, audio, view := newRunningGame(t)

	total := 0
	for _, def := range Catalog() {
		total += def.BrickCount()
	}

	for range LevelCount() {
		clearLevel(t, g)
	}

	if g.Phase() != PhaseWon {
		t.Fatalf("phase = %s, expected won", g.Phase())
	}
	if g.Score() != total {
		t.Errorf("score = %d, expected %d", g.Score(), total)
	}
	if g.LevelIndex() != LevelCount() {
		t.Errorf("level index = %d, expected %d", g.LevelIndex(), LevelCount())
	}
	if view.Current() != ViewVictory || view.FinalScore() != total {
		t.Errorf("view=%s final=%d", view.Current(), view.FinalScore())
	}
	if audio.stops != 1 {
		t.Errorf("music stopped %d times", audio.stops)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g, _, _ := newRunningGame(t)

	last := 0
	for range 2000 {
		g.Step(InputState{Right: true})
		if g.Score() < last {
			t.Fatalf("score went from %d to %d", last, g.Score())
		}
		last = g.Score()
		if !g.Running() {
			break
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _, _ := newRunningGame(t)
		for i := range 600 {
			g.Step(InputState{Left: i%40 < 15, Right: i%40 >= 25})
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hashes differ: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Frame != s2.Frame {
		t.Errorf("runs differ: %+v vs %+v", s1, s2)
	}
}
