package game

import "github.com/vovakirdan/arka/internal/core"

// StepResult reports what happened during one physics step.
type StepResult struct {
	BricksHit       int
	BricksDestroyed int
	LevelAdvanced   bool
	PaddleBounce    bool
	Phase           Phase
}

// Step advances the simulation by one frame. It does nothing unless the
// session is running.
//
// Order: brick collisions, win check, ball motion, wall bounces, bottom edge
// (paddle bounce or loss), paddle motion.
func (g *Game) Step(in InputState) StepResult {
	if g.session.Phase != PhaseRunning {
		return StepResult{Phase: g.session.Phase}
	}
	g.frame++

	var res StepResult
	res.BricksHit, res.BricksDestroyed = g.collideBricks()

	if g.board.Grid.ActiveCount() == 0 {
		g.session.LevelIndex++
		res.LevelAdvanced = true
		if g.session.LevelIndex >= len(g.levels) {
			g.endSession(OutcomeWon)
			res.Phase = g.session.Phase
			return res
		}
		if err := g.StartNextLevel(); err != nil {
			g.logger.Error("level start failed", "index", g.session.LevelIndex, "err", err)
		}
		g.logger.Info("level cleared", "next", g.session.LevelIndex, "score", g.session.Score)
	}

	ball := &g.board.Ball
	ball.Move()

	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	r := g.cfg.Ball.Radius

	if ball.X+ball.DX > w-r || ball.X+ball.DX < r {
		ball.BounceX()
	}
	if ball.Y+ball.DY < r {
		ball.BounceY()
	} else if ball.Y+ball.DY > h-r {
		if g.board.Paddle.Covers(ball.X, g.cfg.Paddle.Width) {
			ball.BounceY()
			g.audio.PlayCue(CuePaddle)
			res.PaddleBounce = true
		} else {
			g.endSession(OutcomeLost)
			res.Phase = g.session.Phase
			return res
		}
	}

	g.movePaddle(in)
	res.Phase = g.session.Phase
	return res
}

// collideBricks tests the ball center against every active brick.
// Edges do not count as inside, and a fast ball can pass through a brick
// between two frames.
func (g *Game) collideBricks() (hit, destroyed int) {
	ball := &g.board.Ball
	bw, bh := g.cfg.Bricks.Width, g.cfg.Bricks.Height

	for c := range g.board.Grid {
		for r := range g.board.Grid[c] {
			brick := &g.board.Grid[c][r]
			if !brick.Active() {
				continue
			}
			if !core.NewRectF(brick.X, brick.Y, bw, bh).ContainsOpen(ball.X, ball.Y) {
				continue
			}

			ball.BounceY()
			hit++
			if brick.Hit() {
				destroyed++
				g.session.Score++
				g.audio.PlayCue(CueBrick)
			}
		}
	}
	return hit, destroyed
}

// movePaddle moves the paddle one step. Right wins when both keys are held.
func (g *Game) movePaddle(in InputState) {
	p := &g.board.Paddle
	maxX := g.cfg.Playfield.Width - g.cfg.Paddle.Width
	speed := g.cfg.Paddle.Speed

	switch {
	case in.Right && p.X < maxX:
		p.X += speed
	case in.Left && p.X > 0:
		p.X -= speed
	}
	p.X = core.ClampF(p.X, 0, maxX)
}

// endSession is EndSession for the physics step, where the phase is known to be Running.
func (g *Game) endSession(outcome Outcome) {
	if err := g.EndSession(outcome); err != nil {
		g.logger.Error("end session", "outcome", outcome, "err", err)
	}
}
