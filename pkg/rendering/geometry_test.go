package rendering

import "testing"

func TestRectInset(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	got := r.Inset(EdgeInsets{Left: 5, Top: 4, Right: 15, Bottom: 6})

	want := Rect{Left: 15, Top: 24, Right: 95, Bottom: 64}
	if got != want {
		t.Errorf("Inset = %+v, want %+v", got, want)
	}
}

func TestRectInsetCollapsesOversizedInsets(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	got := r.Inset(EdgeInsetsAll(20))

	if !got.IsEmpty() {
		t.Errorf("oversized insets should collapse the rect, got %+v", got)
	}
	if got.Width() != 0 || got.Height() != 0 {
		t.Errorf("collapsed rect should have zero extent, got %gx%g", got.Width(), got.Height())
	}
}

func TestRRectUniformRadius(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 40, 40), CircularRadius(8))
	if got := rr.UniformRadius(); got != 8 {
		t.Errorf("UniformRadius = %g, want 8", got)
	}

	rr.TopLeft = Radius{X: 2, Y: 2}
	if got := rr.UniformRadius(); got != 0 {
		t.Errorf("mixed radii should report 0, got %g", got)
	}
}

func TestMatrixAnchorScaleKeepsAnchorFixed(t *testing.T) {
	// Scaling about an anchor point: translate(anchor) · scale · translate(-anchor)
	// must leave the anchor itself in place.
	anchor := Offset{X: 12, Y: 30}
	m := MatrixTranslation(anchor.X, anchor.Y).
		Scaled(0.75, 0.75).
		Translated(-anchor.X, -anchor.Y)

	got := m.Apply(anchor)
	if !floatEqual(got.X, anchor.X) || !floatEqual(got.Y, anchor.Y) {
		t.Errorf("anchor moved to %+v", got)
	}

	// A point one unit right of the anchor moves 0.75 units right of it.
	p := m.Apply(Offset{X: anchor.X + 1, Y: anchor.Y})
	if !floatEqual(p.X, anchor.X+0.75) {
		t.Errorf("scaled point X = %g, want %g", p.X, anchor.X+0.75)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// m.Multiply(n) applies n first. Translate-then-scale differs from
	// scale-then-translate.
	scaleThenTranslate := MatrixTranslation(10, 0).Multiply(MatrixScale(2, 2))
	p := scaleThenTranslate.Apply(Offset{X: 1, Y: 1})
	if !floatEqual(p.X, 12) || !floatEqual(p.Y, 2) {
		t.Errorf("got %+v, want {12 2}", p)
	}

	translateThenScale := MatrixScale(2, 2).Multiply(MatrixTranslation(10, 0))
	p = translateThenScale.Apply(Offset{X: 1, Y: 1})
	if !floatEqual(p.X, 22) || !floatEqual(p.Y, 2) {
		t.Errorf("got %+v, want {22 2}", p)
	}
}

func TestMeasureTextScalesWithFontSize(t *testing.T) {
	small := MeasureText("Password", TextStyle{FontSize: 12})
	large := MeasureText("Password", TextStyle{FontSize: 24})

	if small.Width <= 0 {
		t.Fatalf("expected positive width, got %g", small.Width)
	}
	if !floatEqual(large.Width, small.Width*2) {
		t.Errorf("width should scale linearly: %g vs %g", small.Width, large.Width)
	}
	if MeasureText("", TextStyle{FontSize: 16}).Width != 0 {
		t.Error("empty string should measure zero width")
	}
}
