package game

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/arka/internal/core"
)

// Surface is a fixed-size logical drawing target.
// core.Canvas implements it.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, clr color.NRGBA)
	FillCircle(cx, cy, r float64, clr color.NRGBA)
	FillText(text string, x, y float64, font core.Font, clr color.NRGBA)
}

// ScoreFont is the font of the score line.
var ScoreFont = core.Font{Size: 16, Family: "Arial"}

// Score text position (baseline origin).
const (
	ScoreX = 8
	ScoreY = 20
)

// Render draws the board: bricks, ball, paddle, score. It does not change any state.
// Brick opacity is the remaining share of the level's brick strength.
func (g *Game) Render(s Surface) {
	s.Clear()

	def := g.Level()
	bw, bh := g.cfg.Bricks.Width, g.cfg.Bricks.Height
	for c := range g.board.Grid {
		for r := range g.board.Grid[c] {
			b := g.board.Grid[c][r]
			if !b.Active() {
				continue
			}
			alpha := float64(b.Strength) / float64(def.BrickStrength)
			s.FillRect(b.X, b.Y, bw, bh, core.WithAlpha(core.ColorBrick, alpha))
		}
	}

	ball := g.board.Ball
	s.FillCircle(ball.X, ball.Y, g.cfg.Ball.Radius, core.ColorBall)

	pw, ph := g.cfg.Paddle.Width, g.cfg.Paddle.Height
	s.FillRect(g.board.Paddle.X, g.cfg.Playfield.Height-ph, pw, ph, core.ColorPaddle)

	s.FillText(fmt.Sprintf("Score: %d", g.session.Score), ScoreX, ScoreY, ScoreFont, core.ColorText)
}
