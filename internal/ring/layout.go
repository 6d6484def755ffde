package ring

// Layout is the per-draw geometry derived from the current bounds and the
// construction parameters. Nothing here is persisted between frames.
type Layout struct {
	Size        float64 // effective drawing size (diameter baseline)
	OuterRadius float64 // radius of the outline circle
	InnerRadius float64 // radius of the filled center circle
	OffsetX     float64 // left inset centering the outer circle in bounds
	OffsetY     float64 // top inset centering the outer circle in bounds
	ArcBox      Rect    // bounding box of the progress arc stroke centerline
}

// ComputeLayout derives the drawing geometry from bounds. The effective size
// is min(bounds.W, bounds.H) unless fixedSize is positive, which overrides
// the bounds-derived size. The outer radius leaves room for half the ring
// stroke on each side; the arc box is inset by half the ring width from the
// outer circle's bounding box so the full stroke stays inside it.
func ComputeLayout(bounds Rect, fixedSize, ringWidth int, circleScale float64) Layout {
	size := min(bounds.W, bounds.H)
	if fixedSize > 0 {
		size = float64(fixedSize)
	}

	halfRing := float64(ringWidth) / 2
	outer := size/2 - halfRing
	if outer < 0 {
		outer = 0
	}

	offsetX := (bounds.W - outer*2) / 2
	offsetY := (bounds.H - outer*2) / 2

	outerBox := Rect{
		X: bounds.X + offsetX,
		Y: bounds.Y + offsetY,
		W: outer * 2,
		H: outer * 2,
	}

	return Layout{
		Size:        size,
		OuterRadius: outer,
		InnerRadius: outer * circleScale,
		OffsetX:     offsetX,
		OffsetY:     offsetY,
		ArcBox:      outerBox.Inset(halfRing),
	}
}
