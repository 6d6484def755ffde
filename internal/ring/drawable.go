// Package ring renders a circular progress indicator onto a 2D canvas.
//
// The indicator is three concentric elements drawn back to front: a 1px
// outline circle, a filled center circle, and a progress arc stroked at the
// full ring width with round caps. A Drawable owns the mutable display state
// (progress, colors, scale, mode) and signals its host through an invalidate
// sink whenever that state changes; the host decides when to actually call
// Draw again.
package ring

import "github.com/lucasb-eyer/go-colorful"

// progressFactor converts the public [0,1] progress fraction into the
// internally stored sweep in degrees. The negative sign makes the fill run
// counter-clockwise from the start angle in screen coordinates.
const progressFactor = -360

// Arc angle constants, degrees. Determinate fills sweep from just past
// 12 o'clock; indeterminate always shows a quarter arc.
const (
	determinateStart   = 89
	indeterminateSweep = 90
)

// levelMax is the upper bound of the discrete level signal accepted by
// SetLevel, mapped to the progress fraction via level/levelMax.
const levelMax = 10000

// Drawable is a circular progress indicator. It is not safe for concurrent
// use; all mutation and drawing is expected to happen on the host's render
// goroutine.
type Drawable struct {
	// progress holds degrees of arc: in determinate mode the sweep
	// (fraction * progressFactor, so always in [-360, 0]); in indeterminate
	// mode the raw start angle set by the external animator.
	progress      float64
	ringWidth     int
	circleScale   float64
	outlineColor  colorful.Color
	ringColor     colorful.Color
	centerColor   colorful.Color
	indeterminate bool
	alpha         uint8
	size          int // fixed drawing size; 0 derives it from bounds
	bounds        Rect
	invalidate    func()
}

// SetBounds sets the bounding rectangle the next Draw lays out in. Bounds
// are owned by the host layout system and read each draw.
func (d *Drawable) SetBounds(b Rect) {
	d.bounds = b
	d.invalidateSelf()
}

// Bounds returns the current bounding rectangle.
func (d *Drawable) Bounds() Rect { return d.bounds }

// Draw renders the indicator into the current bounds: outline circle, then
// center fill, then the progress arc on top.
func (d *Drawable) Draw(c Canvas) {
	l := ComputeLayout(d.bounds, d.size, d.ringWidth, d.circleScale)
	cx := d.bounds.CenterX()
	cy := d.bounds.CenterY()

	c.StrokeCircle(cx, cy, l.OuterRadius, d.tint(d.outlineColor), 1)
	c.FillCircle(cx, cy, l.InnerRadius, d.tint(d.centerColor))

	ringCol := d.tint(d.ringColor)
	rw := float64(d.ringWidth)
	if d.indeterminate {
		c.StrokeArc(l.ArcBox, d.progress, indeterminateSweep, ringCol, rw, true)
	} else {
		c.StrokeArc(l.ArcBox, determinateStart, d.progress, ringCol, rw, true)
	}
}

// Layout returns the geometry the next Draw will use.
func (d *Drawable) Layout() Layout {
	return ComputeLayout(d.bounds, d.size, d.ringWidth, d.circleScale)
}

// SetProgress sets the progress. In determinate mode fraction is clamped to
// [0,1] and scaled to a sweep; in indeterminate mode the value is stored raw
// as the arc's start angle, letting an external animator spin it.
func (d *Drawable) SetProgress(fraction float64) {
	if d.indeterminate {
		d.progress = fraction
	} else {
		d.progress = progressFactor * clamp01(fraction)
	}
	d.invalidateSelf()
}

// Progress returns the public progress fraction. Only meaningful in
// determinate mode.
func (d *Drawable) Progress() float64 { return d.progress / progressFactor }

// SetLevel maps a discrete level signal in [0, 10000] onto the progress
// fraction. Out-of-range levels are clamped.
func (d *Drawable) SetLevel(level int) {
	if level < 0 {
		level = 0
	}
	if level > levelMax {
		level = levelMax
	}
	d.SetProgress(float64(level) / levelMax)
}

// SetCircleScale sets the inner circle radius as a multiple of the outer
// radius. Negative scales are clamped to zero.
func (d *Drawable) SetCircleScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	d.circleScale = scale
	d.invalidateSelf()
}

// CircleScale returns the inner circle scale.
func (d *Drawable) CircleScale() float64 { return d.circleScale }

// SetIndeterminate switches between progress mode and loading mode. In
// loading mode the arc is a fixed 90° and SetProgress moves its start angle.
func (d *Drawable) SetIndeterminate(indeterminate bool) {
	d.indeterminate = indeterminate
	d.invalidateSelf()
}

// Indeterminate reports whether the drawable is in loading mode.
func (d *Drawable) Indeterminate() bool { return d.indeterminate }

// SetOutlineColor sets the color of the empty ring outline.
func (d *Drawable) SetOutlineColor(col colorful.Color) {
	d.outlineColor = col
	d.invalidateSelf()
}

// OutlineColor returns the outline color.
func (d *Drawable) OutlineColor() colorful.Color { return d.outlineColor }

// SetRingColor sets the color of the filled progress arc.
func (d *Drawable) SetRingColor(col colorful.Color) {
	d.ringColor = col
	d.invalidateSelf()
}

// RingColor returns the progress arc color.
func (d *Drawable) RingColor() colorful.Color { return d.ringColor }

// SetCenterColor sets the color of the inner circle.
func (d *Drawable) SetCenterColor(col colorful.Color) {
	d.centerColor = col
	d.invalidateSelf()
}

// CenterColor returns the inner circle color.
func (d *Drawable) CenterColor() colorful.Color { return d.centerColor }

// RingWidth returns the stroke width of the progress arc. Fixed at
// construction.
func (d *Drawable) RingWidth() int { return d.ringWidth }

// SetAlpha sets the paint alpha applied to all three elements, 255 opaque.
func (d *Drawable) SetAlpha(alpha uint8) {
	d.alpha = alpha
	d.invalidateSelf()
}

// Opacity returns the paint alpha as a [0,1] fraction.
func (d *Drawable) Opacity() float64 { return float64(d.alpha) / 255 }

// tint pre-multiplies the paint alpha into a color. The terminal surface has
// no alpha channel, so translucency is approximated by scaling toward black.
func (d *Drawable) tint(col colorful.Color) colorful.Color {
	if d.alpha == 255 {
		return col
	}
	f := float64(d.alpha) / 255
	return colorful.Color{R: col.R * f, G: col.G * f, B: col.B * f}
}

func (d *Drawable) invalidateSelf() {
	if d.invalidate != nil {
		d.invalidate()
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
