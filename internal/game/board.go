package game

import "github.com/vovakirdan/arka/internal/config"

// Ball is the single ball in play. X, Y is the center; DX, DY is the velocity per frame.
type Ball struct {
	X, Y   float64
	DX, DY float64
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle is the player's paddle. Only its left edge moves; it sits on the bottom edge.
type Paddle struct {
	X float64
}

// Covers reports whether x lies strictly between the paddle's edges.
func (p Paddle) Covers(x, width float64) bool {
	return x > p.X && x < p.X+width
}

// Board is the mutable playfield of one level.
type Board struct {
	Paddle Paddle
	Ball   Ball
	Grid   Grid
}

// resetActors puts the ball and paddle at their level start positions.
func (b *Board) resetActors(cfg config.ArkaConfig) {
	b.Paddle = Paddle{X: (cfg.Playfield.Width - cfg.Paddle.Width) / 2}
	b.Ball = Ball{
		X:  cfg.Playfield.Width / 2,
		Y:  cfg.Playfield.Height - cfg.Ball.StartOffsetY,
		DX: cfg.Ball.SpeedX,
		DY: cfg.Ball.SpeedY,
	}
}
