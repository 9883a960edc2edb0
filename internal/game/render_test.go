package game

import (
	"testing"

	"github.com/vovakirdan/arka/internal/core"
)

func TestRenderDrawOrder(t *testing.T) {
	g, _, _ := newRunningGame(t)
	c := core.NewCanvas(800, 550)

	g.Render(c)

	ops := c.Ops()
	if ops[0].Kind != core.OpClear {
		t.Fatalf("first op = %s, expected clear", ops[0].Kind)
	}
	if c.Count(core.OpRect) != 51 {
		t.Errorf("rects = %d, expected 50 bricks and the paddle", c.Count(core.OpRect))
	}
	if c.Count(core.OpCircle) != 1 || c.Count(core.OpText) != 1 {
		t.Errorf("circles=%d texts=%d", c.Count(core.OpCircle), c.Count(core.OpText))
	}

	n := len(ops)
	ball, paddle, score := ops[n-3], ops[n-2], ops[n-1]

	if ball.Kind != core.OpCircle || ball.X != 400 || ball.Y != 520 || ball.R != 8 || ball.Color != core.ColorBall {
		t.Errorf("ball op = %+v", ball)
	}
	if paddle.Kind != core.OpRect || paddle.X != 340 || paddle.Y != 540 || paddle.W != 120 || paddle.H != 10 || paddle.Color != core.ColorPaddle {
		t.Errorf("paddle op = %+v", paddle)
	}
	if score.Text != "Score: 0" || score.X != 8 || score.Y != 20 || score.Font.String() != "16px Arial" || score.Color != core.ColorText {
		t.Errorf("score op = %+v", score)
	}
}

func TestRenderBrickOpacity(t *testing.T) {
	g, _, _ := newRunningGame(t, WithLevels(pairLevel(3)))
	g.board.Grid[0][0].Hit()

	c := core.NewCanvas(800, 550)
	g.Render(c)

	ops := c.Ops()
	damaged, fresh := ops[1], ops[2]
	if damaged.Color.A != 170 {
		t.Errorf("2/3 strength brick alpha = %d, expected 170", damaged.Color.A)
	}
	if fresh.Color.A != 255 {
		t.Errorf("full strength brick alpha = %d, expected 255", fresh.Color.A)
	}
	if damaged.W != 75 || damaged.H != 20 {
		t.Errorf("brick size %vx%v", damaged.W, damaged.H)
	}
}

func TestRenderSkipsDestroyedBricks(t *testing.T) {
	g, _, _ := newRunningGame(t, WithLevels(pairLevel(1)))
	g.board.Grid[1][0].Hit()

	c := core.NewCanvas(800, 550)
	g.Render(c)

	if c.Count(core.OpRect) != 2 {
		t.Errorf("rects = %d, expected one brick and the paddle", c.Count(core.OpRect))
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g, _, _ := newRunningGame(t)
	for range 30 {
		g.Step(InputState{Right: true})
	}

	before := g.Snapshot()
	g.Render(core.NewCanvas(800, 550))
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Render changed game state")
	}
}
