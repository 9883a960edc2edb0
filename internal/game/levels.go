// Package game implements the arka brick-breaker: level catalog, board state,
// per-frame physics, rendering onto a logical surface and the session lifecycle.
package game

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLayout is returned for a level layout with no rows or no columns.
	ErrEmptyLayout = errors.New("level layout is empty")
	// ErrInvalidStrength is returned for a level whose bricks would start destroyed.
	ErrInvalidStrength = errors.New("brick strength must be at least 1")
)

// LevelDefinition describes one level: a brick mask and the strength of every brick in it.
type LevelDefinition struct {
	Name          string
	Layout        [][]int // Rows of 0/1, 1 = brick. Rows may differ in length.
	BrickStrength int
}

// Rows returns the number of layout rows.
func (d LevelDefinition) Rows() int {
	return len(d.Layout)
}

// Columns returns the length of the widest row. Shorter rows are treated as
// padded with empty cells.
func (d LevelDefinition) Columns() int {
	cols := 0
	for _, row := range d.Layout {
		cols = max(cols, len(row))
	}
	return cols
}

// BrickCount returns the number of 1 cells in the layout.
func (d LevelDefinition) BrickCount() int {
	n := 0
	for _, row := range d.Layout {
		for _, cell := range row {
			if cell == 1 {
				n++
			}
		}
	}
	return n
}

// Cell returns the mask value at (col, row), 0 outside a short row.
func (d LevelDefinition) Cell(col, row int) int {
	if row < 0 || row >= len(d.Layout) || col < 0 || col >= len(d.Layout[row]) {
		return 0
	}
	return d.Layout[row][col]
}

// Validate reports whether the level can be built.
func (d LevelDefinition) Validate() error {
	if d.Rows() == 0 || d.Columns() == 0 {
		return fmt.Errorf("level %q: %w", d.Name, ErrEmptyLayout)
	}
	if d.BrickStrength < 1 {
		return fmt.Errorf("level %q: %w (got %d)", d.Name, ErrInvalidStrength, d.BrickStrength)
	}
	return nil
}

// ParseLayout converts ASCII rows into a mask.
// Characters:
//
//	'#' = brick
//	anything else = empty
//
// Row lengths are kept as written.
func ParseLayout(lines []string) [][]int {
	layout := make([][]int, len(lines))
	for r, line := range lines {
		layout[r] = make([]int, len(line))
		for c := range len(line) {
			if line[c] == '#' {
				layout[r][c] = 1
			}
		}
	}
	return layout
}

var catalog = []LevelDefinition{
	// Level 1: Rectangle. The last row is one brick wider than the others.
	{
		Name: "Rectangle",
		Layout: ParseLayout([]string{
			"#######",
			"#######",
			"#######",
			"#######",
			"#######",
			"#######",
			"########",
		}),
		BrickStrength: 1,
	},

	// Level 2: Pyramid
	{
		Name: "Pyramid",
		Layout: ParseLayout([]string{
			"..#..",
			".###.",
			"#####",
			"#####",
			"#####",
		}),
		BrickStrength: 2,
	},

	// Level 3: Zigzag
	{
		Name: "Zigzag",
		Layout: ParseLayout([]string{
			"#.#.#",
			".#.#.",
			"#.#.#",
			".#.#.",
			"#.#.#",
			".#.#.",
		}),
		BrickStrength: 2,
	},

	// Level 4: Diamond
	{
		Name: "Diamond",
		Layout: ParseLayout([]string{
			"..#..",
			".###.",
			"#####",
			".###.",
			"..#..",
		}),
		BrickStrength: 3,
	},
}

// Catalog returns the built-in levels in play order.
func Catalog() []LevelDefinition {
	out := make([]LevelDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(catalog)
}

// Level returns the built-in level at index i.
// The second result is false past the last level, which means the game is complete.
func Level(i int) (LevelDefinition, bool) {
	if i < 0 || i >= len(catalog) {
		return LevelDefinition{}, false
	}
	return catalog[i], true
}
