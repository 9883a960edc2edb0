package game

import "math"

// Snapshot is a flat copy of the game state for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Frame      uint64
	Phase      Phase
	Score      int
	LevelIndex int

	PaddleX float64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64

	BricksRemaining int

	// Brick strengths, column-major; destroyed bricks are 0.
	BrickData []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, g.board.Grid.Columns()*g.board.Grid.Rows())
	for c := range g.board.Grid {
		for r := range g.board.Grid[c] {
			b := g.board.Grid[c][r]
			if b.Active() {
				brickData = append(brickData, b.Strength)
			} else {
				brickData = append(brickData, 0)
			}
		}
	}

	return Snapshot{
		Frame:           g.frame,
		Phase:           g.session.Phase,
		Score:           g.session.Score,
		LevelIndex:      g.session.LevelIndex,
		PaddleX:         g.board.Paddle.X,
		BallX:           g.board.Ball.X,
		BallY:           g.board.Ball.Y,
		BallDX:          g.board.Ball.DX,
		BallDY:          g.board.Ball.DY,
		BricksRemaining: g.board.Grid.ActiveCount(),
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallDX, snap.BallDY} {
		h = h*31 + math.Float64bits(f)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
