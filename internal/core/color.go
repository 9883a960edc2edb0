package core

import (
	"fmt"
	"image/color"
	"math"
)

// Palette of the board. Alpha is straight (non-premultiplied), matching CSS rgba().
var (
	ColorBackground = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorBrick      = color.NRGBA{R: 135, G: 255, B: 0, A: 0xff}
	ColorBall       = color.NRGBA{R: 0xff, G: 0x13, B: 0xf0, A: 0xff}
	ColorPaddle     = color.NRGBA{R: 0x00, G: 0xff, B: 0xb7, A: 0xff}
	ColorText       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// WithAlpha returns c with its alpha set to a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = ClampF(a, 0, 1)
	c.A = uint8(math.Round(a * 255))
	return c
}

// Blend composites fg over an opaque bg and returns an opaque color.
func Blend(fg, bg color.NRGBA) color.NRGBA {
	a := float64(fg.A) / 255
	mix := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*a + float64(b)*(1-a)))
	}
	return color.NRGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 0xff}
}

// Hex formats the color channels as #rrggbb, ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
