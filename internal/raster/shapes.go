package raster

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"ringdial/internal/ring"
)

// StrokeCircle strokes a circle outline. The stroke is centered on the
// radius: a width of 3 lights one dot ring inside and one outside it.
func (c *Canvas) StrokeCircle(cx, cy, radius float64, col colorful.Color, width float64) {
	c.strokeBand(cx, cy, radius, width, col, 0, 360)
}

// FillCircle fills a solid circle using a per-dot distance test against the
// dot centers.
func (c *Canvas) FillCircle(cx, cy, radius float64, col colorful.Color) {
	if radius <= 0 {
		return
	}
	rr := radius * radius
	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				c.SetDot(x, y, col)
			}
		}
	}
}

// StrokeArc strokes an arc of the circle inscribed in box. Angles follow the
// screen convention (0° at 3 o'clock, clockwise positive, y down); a
// negative sweep runs counter-clockwise from the start angle. Sweeps of 360°
// or more close into a full circle.
func (c *Canvas) StrokeArc(box ring.Rect, startDeg, sweepDeg float64, col colorful.Color, width float64, roundCap bool) {
	if sweepDeg == 0 || box.W <= 0 || box.H <= 0 {
		return
	}
	cx := box.CenterX()
	cy := box.CenterY()
	radius := min(box.W, box.H) / 2

	start := startDeg
	sweep := sweepDeg
	if sweep < 0 {
		start += sweep
		sweep = -sweep
	}
	full := sweep >= 360
	if full {
		sweep = 360
	}
	start = math.Mod(start, 360)
	if start < 0 {
		start += 360
	}
	end := start + sweep // may exceed 360; the range filter wraps

	c.strokeBand(cx, cy, radius, width, col, start, end)

	if roundCap && !full {
		for _, a := range []float64{start, end} {
			rad := a * math.Pi / 180
			c.FillCircle(cx+radius*math.Cos(rad), cy+radius*math.Sin(rad), width/2, col)
		}
	}
}

// strokeBand rasterizes the stroke as a stack of concentric one-dot circles
// covering [radius-width/2, radius+width/2], each drawn with the midpoint
// circle algorithm and filtered to the [startDeg, endDeg] range.
func (c *Canvas) strokeBand(cx, cy, radius, width float64, col colorful.Color, startDeg, endDeg float64) {
	if radius <= 0 {
		return
	}
	steps := int(math.Ceil(width))
	if steps < 1 {
		steps = 1
	}
	inner := radius - width/2
	icx := int(math.Round(cx))
	icy := int(math.Round(cy))
	for i := 0; i < steps; i++ {
		r := int(math.Round(inner + 0.5 + float64(i)))
		if r < 1 {
			continue
		}
		c.midpointArc(icx, icy, r, startDeg, endDeg, col)
	}
}

// midpointArc draws one dot-wide circle of radius r around (cx, cy) with the
// midpoint circle algorithm, keeping only points inside the angle range.
// Integer arithmetic avoids floating-point gaps between octants.
func (c *Canvas) midpointArc(cx, cy, r int, startDeg, endDeg float64, col colorful.Color) {
	x := r
	y := 0
	d := 1 - r // decision parameter

	for x >= y {
		c.plotOctants(cx, cy, x, y, startDeg, endDeg, col)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// plotOctants lights the 8 symmetric points of (x, y) that fall within the
// angle range.
func (c *Canvas) plotOctants(cx, cy, x, y int, startDeg, endDeg float64, col colorful.Color) {
	points := [8][2]int{
		{cx + x, cy - y},
		{cx + y, cy - x},
		{cx - y, cy - x},
		{cx - x, cy - y},
		{cx - x, cy + y},
		{cx - y, cy + x},
		{cx + y, cy + x},
		{cx + x, cy + y},
	}
	for _, p := range points {
		if inArcRange(cx, cy, p[0], p[1], startDeg, endDeg) {
			c.SetDot(p[0], p[1], col)
		}
	}
}

// inArcRange reports whether the point's angle from the center lies in
// [startDeg, endDeg], where endDeg may exceed 360 to express wrap-around.
func inArcRange(cx, cy, px, py int, startDeg, endDeg float64) bool {
	angle := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	if endDeg > 360 {
		return angle >= startDeg || angle <= endDeg-360
	}
	return angle >= startDeg && angle <= endDeg
}
