package game

import (
	"fmt"

	"github.com/vovakirdan/arka/internal/config"
)

// BrickStatus tells whether a brick is still in play.
type BrickStatus int

const (
	BrickDestroyed BrickStatus = iota
	BrickActive
)

// Brick is one cell of the grid. Inert cells are destroyed bricks at the origin
// with zero strength.
type Brick struct {
	X, Y     float64
	Strength int
	Status   BrickStatus
}

// Active reports whether the brick can be hit and is drawn.
func (b *Brick) Active() bool {
	return b.Status == BrickActive
}

// Hit applies one ball impact. It returns true if this impact destroyed the brick.
func (b *Brick) Hit() bool {
	if !b.Active() {
		return false
	}
	b.Strength--
	if b.Strength <= 0 {
		b.Status = BrickDestroyed
		return true
	}
	return false
}

// Geometry holds the sizes the grid builder needs.
type Geometry struct {
	PlayfieldWidth float64
	BrickWidth     float64
	BrickHeight    float64
	Padding        float64
	OffsetTop      float64
}

// GeometryFromConfig extracts the grid geometry from the game configuration.
func GeometryFromConfig(cfg config.ArkaConfig) Geometry {
	return Geometry{
		PlayfieldWidth: cfg.Playfield.Width,
		BrickWidth:     cfg.Bricks.Width,
		BrickHeight:    cfg.Bricks.Height,
		Padding:        cfg.Bricks.Padding,
		OffsetTop:      cfg.Bricks.OffsetTop,
	}
}

// TotalWidth returns the pixel width of a grid with cols columns.
func (geo Geometry) TotalWidth(cols int) float64 {
	return float64(cols)*(geo.BrickWidth+geo.Padding) - geo.Padding
}

// OffsetLeft returns the x of the first column that centers a grid with cols columns.
func (geo Geometry) OffsetLeft(cols int) float64 {
	return (geo.PlayfieldWidth - geo.TotalWidth(cols)) / 2
}

// Grid is the brick field indexed [column][row].
type Grid [][]Brick

// BuildGrid lays out the bricks of a level centered on the playfield.
func BuildGrid(def LevelDefinition, geo Geometry) (Grid, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	cols, rows := def.Columns(), def.Rows()
	offsetLeft := geo.OffsetLeft(cols)

	grid := make(Grid, cols)
	for c := range cols {
		grid[c] = make([]Brick, rows)
		for r := range rows {
			if def.Cell(c, r) != 1 {
				grid[c][r] = Brick{Status: BrickDestroyed}
				continue
			}
			grid[c][r] = Brick{
				X:        float64(c)*(geo.BrickWidth+geo.Padding) + offsetLeft,
				Y:        float64(r)*(geo.BrickHeight+geo.Padding) + geo.OffsetTop,
				Strength: def.BrickStrength,
				Status:   BrickActive,
			}
		}
	}
	return grid, nil
}

// Columns returns the number of grid columns.
func (g Grid) Columns() int {
	return len(g)
}

// Rows returns the number of grid rows.
func (g Grid) Rows() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// ActiveCount returns the number of bricks still in play.
func (g Grid) ActiveCount() int {
	n := 0
	for c := range g {
		for r := range g[c] {
			if g[c][r].Active() {
				n++
			}
		}
	}
	return n
}
