package ring

import "github.com/lucasb-eyer/go-colorful"

// Builder accumulates construction parameters for a Drawable. All setters
// return the builder for chaining; Create produces the instance.
type Builder struct {
	ringWidth    int
	outlineColor colorful.Color
	ringColor    colorful.Color
	centerColor  colorful.Color
	circleScale  float64
	size         int
	invalidate   func()
}

// NewBuilder returns a builder with the inner circle scale defaulted to 0.75.
func NewBuilder() *Builder {
	return &Builder{circleScale: 0.75}
}

// RingWidth sets the stroke width of the progress arc. Negative widths are
// clamped to zero.
func (b *Builder) RingWidth(w int) *Builder {
	if w < 0 {
		w = 0
	}
	b.ringWidth = w
	return b
}

// OutlineColor sets the color of the empty ring outline.
func (b *Builder) OutlineColor(col colorful.Color) *Builder {
	b.outlineColor = col
	return b
}

// RingColor sets the color of the filled progress arc.
func (b *Builder) RingColor(col colorful.Color) *Builder {
	b.ringColor = col
	return b
}

// CenterColor sets the color of the inner circle.
func (b *Builder) CenterColor(col colorful.Color) *Builder {
	b.centerColor = col
	return b
}

// InnerCircleScale sets the inner circle radius as a multiple of the outer
// radius. Defaults to 0.75; negative scales are clamped to zero.
func (b *Builder) InnerCircleScale(scale float64) *Builder {
	if scale < 0 {
		scale = 0
	}
	b.circleScale = scale
	return b
}

// Size fixes the drawing size in dots. Zero (the default) derives the size
// from the bounds on every draw.
func (b *Builder) Size(size int) *Builder {
	if size < 0 {
		size = 0
	}
	b.size = size
	return b
}

// Invalidate sets the redraw-request sink. Every mutation of the created
// Drawable calls it exactly once; a nil sink disables the signal.
func (b *Builder) Invalidate(fn func()) *Builder {
	b.invalidate = fn
	return b
}

// Create builds a Drawable with the accumulated parameters. The drawable
// starts in determinate mode at zero progress, fully opaque.
func (b *Builder) Create() *Drawable {
	return &Drawable{
		ringWidth:    b.ringWidth,
		circleScale:  b.circleScale,
		outlineColor: b.outlineColor,
		ringColor:    b.ringColor,
		centerColor:  b.centerColor,
		alpha:        255,
		size:         b.size,
		invalidate:   b.invalidate,
	}
}
