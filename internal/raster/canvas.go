// Package raster draws onto a grid of Unicode Braille cells. Each terminal
// cell holds a 2x4 dot pattern, giving 2x horizontal and 4x vertical
// resolution; under the usual terminal cell aspect the dots come out close
// to square, so circles drawn in dot coordinates look round on screen.
package raster

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"ringdial/internal/ring"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Canvas is a braille dot-grid drawing surface implementing ring.Canvas.
// The zero value is not usable; create one with New.
type Canvas struct {
	cols, rows int
	dotW, dotH int
	set        []bool
	colors     []colorful.Color
	profile    colorProfile
}

// New creates a canvas of cols x rows terminal cells.
func New(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	dotW := cols * 2
	dotH := rows * 4
	return &Canvas{
		cols:    cols,
		rows:    rows,
		dotW:    dotW,
		dotH:    dotH,
		set:     make([]bool, dotW*dotH),
		colors:  make([]colorful.Color, dotW*dotH),
		profile: currentColorProfile(),
	}
}

// Reset clears all dots, reusing the buffers for the next frame.
func (c *Canvas) Reset() {
	clear(c.set)
}

// DotWidth returns the horizontal resolution in dots.
func (c *Canvas) DotWidth() int { return c.dotW }

// DotHeight returns the vertical resolution in dots.
func (c *Canvas) DotHeight() int { return c.dotH }

// Bounds returns the full drawing area in dot coordinates.
func (c *Canvas) Bounds() ring.Rect {
	return ring.Rect{W: float64(c.dotW), H: float64(c.dotH)}
}

// SetDot lights the dot at (x, y) with the given color. Later writes to the
// same dot overwrite earlier ones; out-of-range dots are dropped.
func (c *Canvas) SetDot(x, y int, col colorful.Color) {
	if x < 0 || x >= c.dotW || y < 0 || y >= c.dotH {
		return
	}
	i := y*c.dotW + x
	c.set[i] = true
	c.colors[i] = col
}

// Dot reports whether the dot at (x, y) is lit.
func (c *Canvas) Dot(x, y int) bool {
	if x < 0 || x >= c.dotW || y < 0 || y >= c.dotH {
		return false
	}
	return c.set[y*c.dotW+x]
}

// Render returns the canvas as rows of braille runes with ANSI foreground
// colors. A cell's color is the average of its lit dots; empty cells render
// as plain spaces.
func (c *Canvas) Render() string {
	var out strings.Builder
	color := newANSIState(c.profile)

	for row := 0; row < c.rows; row++ {
		if row > 0 {
			color.reset(&out)
			out.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			var pattern uint
			var sumR, sumG, sumB float64
			lit := 0
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					x := col*2 + dx
					y := row*4 + dy
					i := y*c.dotW + x
					if !c.set[i] {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					sumR += c.colors[i].R
					sumG += c.colors[i].G
					sumB += c.colors[i].B
					lit++
				}
			}
			if lit == 0 {
				color.reset(&out)
				out.WriteByte(' ')
				continue
			}
			n := float64(lit)
			color.set(&out, toRGB(colorful.Color{R: sumR / n, G: sumG / n, B: sumB / n}))
			out.WriteRune(rune(0x2800 + pattern))
		}
	}
	color.reset(&out)

	return out.String()
}
