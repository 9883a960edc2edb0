package core

import (
	"image/color"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Glyphs used when rasterizing a canvas into cells.
const (
	GlyphRect   = '█'
	GlyphCircle = '●'
)

// Cell is a single terminal character with its foreground color.
type Cell struct {
	Rune  rune
	Color color.NRGBA
}

var blankCell = Cell{Rune: ' ', Color: ColorText}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples rendering from the terminal: a Canvas is painted into it,
// and the platform turns the cells into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given position, keeping the cell color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell places a rune with a color at the given position.
func (s *Screen) SetCell(x, y int, r rune, clr color.NRGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: clr}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Wide runes take two cells. Characters beyond the screen are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorText)
}

// DrawTextColor writes colored text starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, clr color.NRGBA) {
	for _, r := range text {
		s.SetCell(x, y, r, clr)
		x += runewidth.RuneWidth(r)
	}
}

// Paint rasterizes a canvas into the screen, scaling its logical size to
// the cell grid. Colors with partial alpha are blended over the background.
func (s *Screen) Paint(c *Canvas) {
	if s.width == 0 || s.height == 0 || c.Width() <= 0 || c.Height() <= 0 {
		return
	}
	sx := float64(s.width) / c.Width()
	sy := float64(s.height) / c.Height()

	for _, op := range c.Ops() {
		switch op.Kind {
		case OpClear:
			s.Clear()
		case OpRect:
			s.paintRect(op, sx, sy)
		case OpCircle:
			cx := int(math.Floor(op.X * sx))
			cy := int(math.Floor(op.Y * sy))
			s.SetCell(Clamp(cx, 0, s.width-1), Clamp(cy, 0, s.height-1), GlyphCircle, Blend(op.Color, ColorBackground))
		case OpText:
			// The baseline sits on the bottom of the text's row.
			row := int(math.Ceil(op.Y*sy)) - 1
			s.DrawTextColor(int(math.Floor(op.X*sx)), Clamp(row, 0, s.height-1), op.Text, Blend(op.Color, ColorBackground))
		}
	}
}

// paintRect fills every cell that the rectangle covers by at least half in
// both directions. A rectangle too small to cover any cell that way still
// marks the cell under its center so it never disappears.
func (s *Screen) paintRect(op DrawOp, sx, sy float64) {
	clr := Blend(op.Color, ColorBackground)
	area := NewRectF(op.X, op.Y, op.W, op.H)
	cellW, cellH := 1/sx, 1/sy

	x0 := Clamp(int(math.Floor(op.X*sx)), 0, s.width-1)
	x1 := Clamp(int(math.Ceil(area.Right()*sx)), 0, s.width)
	y0 := Clamp(int(math.Floor(op.Y*sy)), 0, s.height-1)
	y1 := Clamp(int(math.Ceil(area.Bottom()*sy)), 0, s.height)

	painted := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := NewRectF(float64(x)*cellW, float64(y)*cellH, cellW, cellH)
			w, h := cell.Overlap(area)
			if w*2 >= cellW && h*2 >= cellH {
				s.SetCell(x, y, GlyphRect, clr)
				painted = true
			}
		}
	}

	if !painted {
		cx := int(math.Floor((op.X + op.W/2) * sx))
		cy := int(math.Floor((op.Y + op.H/2) * sy))
		s.SetCell(Clamp(cx, 0, s.width-1), Clamp(cy, 0, s.height-1), GlyphRect, clr)
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
