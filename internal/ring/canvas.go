package ring

import "github.com/lucasb-eyer/go-colorful"

// Rect is an axis-aligned rectangle in drawing coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Inset returns the rectangle shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Canvas is the drawing surface a Drawable renders onto.
//
// Angles are in degrees, screen convention: 0° at 3 o'clock, positive
// clockwise (y grows downward). A negative sweep runs counter-clockwise
// from the start angle.
type Canvas interface {
	// StrokeCircle strokes a circle outline of the given stroke width.
	StrokeCircle(cx, cy, radius float64, col colorful.Color, width float64)
	// FillCircle fills a solid circle.
	FillCircle(cx, cy, radius float64, col colorful.Color)
	// StrokeArc strokes an arc of the circle inscribed in box, starting at
	// startDeg and extending sweepDeg. With roundCap the stroke ends are
	// rounded rather than squared.
	StrokeArc(box Rect, startDeg, sweepDeg float64, col colorful.Color, width float64, roundCap bool)
}
