package raster

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var testCol = colorful.Color{R: 1, G: 0.5, B: 0}

// plain returns a canvas with color output disabled so rendered strings are
// deterministic regardless of the test environment's terminal.
func plain(cols, rows int) *Canvas {
	c := New(cols, rows)
	c.profile = colorNone
	return c
}

func TestSetDotMapsToBrailleCell(t *testing.T) {
	c := plain(2, 1)

	c.SetDot(0, 0, testCol)
	if got := c.Render(); got != "⠁ " {
		t.Fatalf("single top-left dot: want %q, got %q", "⠁ ", got)
	}

	for dx := 0; dx < 2; dx++ {
		for dy := 0; dy < 4; dy++ {
			c.SetDot(dx, dy, testCol)
		}
	}
	if got := c.Render(); got != "⣿ " {
		t.Fatalf("full cell: want %q, got %q", "⣿ ", got)
	}
}

func TestRenderShape(t *testing.T) {
	c := plain(3, 2)

	out := c.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 3 {
			t.Fatalf("line %d: want 3 cells, got %q", i, line)
		}
	}
}

func TestEmptyCellsRenderAsSpaces(t *testing.T) {
	c := plain(2, 1)
	c.SetDot(2, 0, testCol) // second cell only
	if got := c.Render(); got != " ⠁" {
		t.Fatalf("want %q, got %q", " ⠁", got)
	}
}

func TestOutOfRangeDotsAreDropped(t *testing.T) {
	c := plain(2, 2)
	c.SetDot(-1, 0, testCol)
	c.SetDot(0, -1, testCol)
	c.SetDot(c.DotWidth(), 0, testCol)
	c.SetDot(0, c.DotHeight(), testCol)

	if got := c.Render(); got != "  \n  " {
		t.Fatalf("out-of-range dots should not light anything, got %q", got)
	}
}

func TestResetClears(t *testing.T) {
	c := plain(2, 2)
	c.SetDot(1, 1, testCol)
	c.Reset()
	if c.Dot(1, 1) {
		t.Fatal("dot should be cleared after Reset")
	}
	if got := c.Render(); got != "  \n  " {
		t.Fatalf("reset canvas should render blank, got %q", got)
	}
}

func TestBoundsInDotCoordinates(t *testing.T) {
	c := New(10, 5)
	b := c.Bounds()
	if b.W != 20 || b.H != 20 || b.X != 0 || b.Y != 0 {
		t.Fatalf("bounds: %+v", b)
	}
}

func TestNewClampsDegenerateSize(t *testing.T) {
	c := New(0, -3)
	if c.DotWidth() != 2 || c.DotHeight() != 4 {
		t.Fatalf("degenerate size should clamp to one cell, got %dx%d dots", c.DotWidth(), c.DotHeight())
	}
}

func TestRenderEmitsColorBetweenCells(t *testing.T) {
	c := New(2, 1)
	c.profile = colorTrueColor
	c.SetDot(0, 0, colorful.Color{R: 1})
	c.SetDot(2, 0, colorful.Color{R: 1})

	out := c.Render()
	if n := strings.Count(out, "\x1b[38;2;255;0;0m"); n != 1 {
		t.Fatalf("same-color cells should emit one color sequence, got %d in %q", n, out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Fatalf("render should reset color at the end, got %q", out)
	}
}
