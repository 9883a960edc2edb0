package core

import (
	"fmt"
	"image/color"
)

// OpKind identifies a recorded drawing primitive.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpText
)

// String returns a human-readable name for the primitive.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Font describes how text is drawn.
type Font struct {
	Size   float64 // Pixel height on the logical surface
	Family string
}

// String formats the font the way a CSS font shorthand does ("16px Arial").
func (f Font) String() string {
	return fmt.Sprintf("%gpx %s", f.Size, f.Family)
}

// DrawOp is one recorded primitive. Which fields matter depends on Kind:
// rects use X, Y, W, H; circles use X, Y as the center and R; text uses X, Y
// as the baseline origin plus Text and Font.
type DrawOp struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	R     float64
	Color color.NRGBA
	Text  string
	Font  Font
}

// Canvas is a fixed-size logical drawing surface that records primitives.
// Frontends replay the recording: the terminal rasterizes it into a Screen,
// the window draws it with vector graphics.
type Canvas struct {
	width  float64
	height float64
	ops    []DrawOp
}

// NewCanvas creates an empty canvas with the given logical size.
func NewCanvas(width, height float64) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		ops:    make([]DrawOp, 0, 128),
	}
}

// Width returns the logical width.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the logical height.
func (c *Canvas) Height() float64 {
	return c.height
}

// Clear wipes the surface. Everything recorded before is discarded.
func (c *Canvas) Clear() {
	c.ops = c.ops[:0]
	c.ops = append(c.ops, DrawOp{Kind: OpClear, W: c.width, H: c.height})
}

// FillRect records a filled rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	c.ops = append(c.ops, DrawOp{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: clr})
}

// FillCircle records a filled circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	c.ops = append(c.ops, DrawOp{Kind: OpCircle, X: cx, Y: cy, R: r, Color: clr})
}

// FillText records text whose baseline starts at (x, y).
func (c *Canvas) FillText(text string, x, y float64, font Font, clr color.NRGBA) {
	c.ops = append(c.ops, DrawOp{Kind: OpText, X: x, Y: y, Text: text, Font: font, Color: clr})
}

// Ops returns the recorded primitives in draw order.
// The slice is reused by the next Clear; callers must not keep it.
func (c *Canvas) Ops() []DrawOp {
	return c.ops
}

// Count returns how many primitives of the given kind are recorded.
func (c *Canvas) Count(kind OpKind) int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
