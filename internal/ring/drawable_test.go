package ring

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// recordingCanvas captures draw calls for inspection.
type recordingCanvas struct {
	ops []drawOp
}

type drawOp struct {
	kind     string
	cx, cy   float64
	radius   float64
	box      Rect
	start    float64
	sweep    float64
	col      colorful.Color
	width    float64
	roundCap bool
}

func (r *recordingCanvas) StrokeCircle(cx, cy, radius float64, col colorful.Color, width float64) {
	r.ops = append(r.ops, drawOp{kind: "strokeCircle", cx: cx, cy: cy, radius: radius, col: col, width: width})
}

func (r *recordingCanvas) FillCircle(cx, cy, radius float64, col colorful.Color) {
	r.ops = append(r.ops, drawOp{kind: "fillCircle", cx: cx, cy: cy, radius: radius, col: col})
}

func (r *recordingCanvas) StrokeArc(box Rect, startDeg, sweepDeg float64, col colorful.Color, width float64, roundCap bool) {
	r.ops = append(r.ops, drawOp{kind: "strokeArc", box: box, start: startDeg, sweep: sweepDeg, col: col, width: width, roundCap: roundCap})
}

var (
	gray  = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	blue  = colorful.Color{R: 0, G: 0, B: 1}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func newTestDrawable() *Drawable {
	d := NewBuilder().
		RingWidth(10).
		OutlineColor(gray).
		RingColor(blue).
		CenterColor(white).
		Create()
	d.bounds = Rect{W: 200, H: 200}
	return d
}

func TestProgressRoundTrip(t *testing.T) {
	d := newTestDrawable()
	for _, f := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.999, 1} {
		d.SetProgress(f)
		if got := d.Progress(); math.Abs(got-f) > 1e-9 {
			t.Fatalf("Progress() after SetProgress(%v) = %v", f, got)
		}
	}
}

func TestSetProgressClampsFraction(t *testing.T) {
	d := newTestDrawable()

	d.SetProgress(1.5)
	if got := d.Progress(); got != 1 {
		t.Fatalf("progress above 1 should clamp to 1, got %v", got)
	}

	d.SetProgress(-0.5)
	if got := d.Progress(); got != 0 {
		t.Fatalf("progress below 0 should clamp to 0, got %v", got)
	}
}

func TestDeterminateSweep(t *testing.T) {
	d := newTestDrawable()

	d.SetProgress(0)
	c := &recordingCanvas{}
	d.Draw(c)
	arc := lastArc(t, c)
	if arc.start != 89 || arc.sweep != 0 {
		t.Fatalf("progress 0: want start 89 sweep 0, got start %v sweep %v", arc.start, arc.sweep)
	}

	d.SetProgress(1)
	c = &recordingCanvas{}
	d.Draw(c)
	arc = lastArc(t, c)
	if arc.start != 89 || arc.sweep != -360 {
		t.Fatalf("progress 1: want start 89 sweep -360, got start %v sweep %v", arc.start, arc.sweep)
	}
}

func TestIndeterminateArcFixedSweep(t *testing.T) {
	d := newTestDrawable()
	d.SetProgress(0.6) // prior determinate state must not leak through

	d.SetIndeterminate(true)
	for _, angle := range []float64{0, 45, 180, 359, 720} {
		d.SetProgress(angle)
		c := &recordingCanvas{}
		d.Draw(c)
		arc := lastArc(t, c)
		if arc.start != angle || arc.sweep != 90 {
			t.Fatalf("indeterminate at %v: want start %v sweep 90, got start %v sweep %v",
				angle, angle, arc.start, arc.sweep)
		}
	}
}

func TestDrawOrderAndPaints(t *testing.T) {
	d := newTestDrawable()
	d.SetProgress(0.5)

	c := &recordingCanvas{}
	d.Draw(c)

	if len(c.ops) != 3 {
		t.Fatalf("expected 3 draw ops, got %d", len(c.ops))
	}
	outline, center, arc := c.ops[0], c.ops[1], c.ops[2]

	if outline.kind != "strokeCircle" || outline.col != gray || outline.width != 1 {
		t.Fatalf("first op should stroke the outline at 1px in gray: %+v", outline)
	}
	if outline.radius != 95 || outline.cx != 100 || outline.cy != 100 {
		t.Fatalf("outline geometry: %+v", outline)
	}
	if center.kind != "fillCircle" || center.col != white || center.radius != 71.25 {
		t.Fatalf("second op should fill the center at 71.25 in white: %+v", center)
	}
	if arc.kind != "strokeArc" || arc.col != blue || arc.width != 10 || !arc.roundCap {
		t.Fatalf("third op should stroke the ring arc at full width with round cap: %+v", arc)
	}
	want := Rect{X: 10, Y: 10, W: 180, H: 180}
	if arc.box != want {
		t.Fatalf("arc box: want %+v, got %+v", want, arc.box)
	}
}

func TestEverySetterInvalidatesOnce(t *testing.T) {
	count := 0
	d := NewBuilder().RingWidth(4).Invalidate(func() { count++ }).Create()

	steps := []func(){
		func() { d.SetProgress(0.3) },
		func() { d.SetCircleScale(0.5) },
		func() { d.SetIndeterminate(true) },
		func() { d.SetOutlineColor(gray) },
		func() { d.SetRingColor(blue) },
		func() { d.SetCenterColor(white) },
		func() { d.SetAlpha(128) },
		func() { d.SetLevel(5000) },
		func() { d.SetBounds(Rect{W: 10, H: 10}) },
	}
	for i, step := range steps {
		before := count
		step()
		if count != before+1 {
			t.Fatalf("mutation %d: want exactly one redraw signal, got %d", i, count-before)
		}
	}
}

func TestNilInvalidateSinkIsSafe(t *testing.T) {
	d := NewBuilder().Create()
	d.SetProgress(0.5) // must not panic
	if d.Progress() != 0.5 {
		t.Fatalf("progress = %v", d.Progress())
	}
}

func TestSetLevel(t *testing.T) {
	d := newTestDrawable()

	d.SetLevel(5000)
	if got := d.Progress(); got != 0.5 {
		t.Fatalf("level 5000: want progress 0.5, got %v", got)
	}

	d.SetLevel(20000)
	if got := d.Progress(); got != 1 {
		t.Fatalf("level above range should clamp to full, got %v", got)
	}

	d.SetLevel(-3)
	if got := d.Progress(); got != 0 {
		t.Fatalf("negative level should clamp to empty, got %v", got)
	}
}

func TestOpacityPassthrough(t *testing.T) {
	d := newTestDrawable()
	if got := d.Opacity(); got != 1 {
		t.Fatalf("default opacity: want 1, got %v", got)
	}

	d.SetAlpha(51)
	if got := d.Opacity(); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("alpha 51: want opacity 0.2, got %v", got)
	}
}

func TestAlphaTintsDrawColors(t *testing.T) {
	d := newTestDrawable()
	d.SetAlpha(0)

	c := &recordingCanvas{}
	d.Draw(c)
	for _, op := range c.ops {
		if op.col != (colorful.Color{}) {
			t.Fatalf("alpha 0 should tint %s to black, got %+v", op.kind, op.col)
		}
	}
}

func TestCircleScaleClampsNegative(t *testing.T) {
	d := newTestDrawable()
	d.SetCircleScale(-1)
	if got := d.CircleScale(); got != 0 {
		t.Fatalf("negative scale should clamp to 0, got %v", got)
	}
}

func TestBuilderDefaults(t *testing.T) {
	d := NewBuilder().RingWidth(-5).Create()

	if got := d.CircleScale(); got != 0.75 {
		t.Fatalf("default circle scale: want 0.75, got %v", got)
	}
	if got := d.RingWidth(); got != 0 {
		t.Fatalf("negative ring width should clamp to 0, got %v", got)
	}
	if d.Indeterminate() {
		t.Fatal("drawable should start in determinate mode")
	}
	if got := d.Progress(); got != 0 {
		t.Fatalf("drawable should start at zero progress, got %v", got)
	}
}

func lastArc(t *testing.T, c *recordingCanvas) drawOp {
	t.Helper()
	if len(c.ops) == 0 || c.ops[len(c.ops)-1].kind != "strokeArc" {
		t.Fatalf("expected the last op to be the arc, ops: %+v", c.ops)
	}
	return c.ops[len(c.ops)-1]
}
