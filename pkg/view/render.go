package view

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/errors"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// maxLayoutPasses bounds layout convergence; a hook that keeps marking
// itself dirty would otherwise loop forever.
const maxLayoutPasses = 8

// Render runs the layout pass on the tree rooted at root and records its
// paint into a display list sized to the root's bounds.
func Render(root View) *rendering.DisplayList {
	base := root.Base()
	settled := false
	for i := 0; i < maxLayoutPasses; i++ {
		base.LayoutIfNeeded()
		if !anyNeedsLayout(root) {
			settled = true
			break
		}
	}
	if !settled {
		errors.Report(errors.Errorf("view.Render", errors.KindRender,
			"layout did not settle after %d passes", maxLayoutPasses))
	}

	var recorder rendering.PictureRecorder
	canvas := recorder.BeginRecording(base.Bounds())
	paintView(root, canvas)
	return recorder.EndRecording()
}

func anyNeedsLayout(v View) bool {
	if v.Base().NeedsLayout() {
		return true
	}
	for _, child := range v.Base().Subviews() {
		if anyNeedsLayout(child) {
			return true
		}
	}
	return false
}

// paintView paints a single view and its subviews onto the canvas, which
// is positioned in the view's parent coordinate space.
func paintView(v View, canvas rendering.Canvas) {
	base := v.Base()
	if base.Hidden {
		return
	}
	layer := base.Layer()
	size := layer.Bounds()

	canvas.Save()
	defer canvas.Restore()

	// Enter local coordinates: position, then the transform about the
	// anchor, then back by the anchor offset.
	pos := layer.Position()
	canvas.Translate(pos.X, pos.Y)
	if !layer.Transform.IsIdentity() {
		canvas.Concat(layer.Transform)
	}
	anchor := layer.anchorOffset()
	canvas.Translate(-anchor.X, -anchor.Y)

	bounds := rendering.RectFromOriginSize(rendering.Offset{}, size)

	// Shadow first; it overflows bounds and is never clipped.
	if layer.Shadow != nil && !layer.Shadow.Color.IsZero() && !size.IsEmpty() {
		paintShadow(canvas, bounds, layer)
	}

	if layer.MasksToBounds {
		if layer.CornerRadius > 0 {
			canvas.ClipRRect(rendering.RRectFromRectAndRadius(bounds, rendering.CircularRadius(layer.CornerRadius)))
		} else {
			canvas.ClipRect(bounds)
		}
	}

	if !base.BackgroundColor.IsZero() && !size.IsEmpty() {
		paint := rendering.DefaultPaint()
		paint.Color = base.BackgroundColor
		paintShape(canvas, bounds, layer.CornerRadius, paint)
	}

	if layer.BorderWidth > 0 && !layer.BorderColor.IsZero() && !size.IsEmpty() {
		paint := rendering.DefaultPaint()
		paint.Color = layer.BorderColor
		paint.Style = rendering.PaintStyleStroke
		paint.StrokeWidth = layer.BorderWidth

		// Stroke centered on the edge would spill outside; inset by half
		// the stroke so the border hugs the bounds like native toolkits.
		half := layer.BorderWidth / 2
		borderRect := bounds.Inset(rendering.EdgeInsetsAll(half))
		paintShape(canvas, borderRect, layer.CornerRadius, paint)
	}

	v.DrawContent(canvas)

	for _, child := range base.Subviews() {
		paintView(child, canvas)
	}
}

func paintShape(canvas rendering.Canvas, rect rendering.Rect, cornerRadius float64, paint rendering.Paint) {
	if cornerRadius > 0 {
		canvas.DrawRRect(rendering.RRectFromRectAndRadius(rect, rendering.CircularRadius(cornerRadius)), paint)
		return
	}
	canvas.DrawRect(rect, paint)
}

func paintShadow(canvas rendering.Canvas, bounds rendering.Rect, layer *Layer) {
	rect := bounds
	if spread := layer.Shadow.Spread; spread != 0 {
		rect = rect.Inset(rendering.EdgeInsetsAll(-spread))
	}
	if layer.CornerRadius > 0 {
		canvas.DrawRRectShadow(rendering.RRectFromRectAndRadius(rect, rendering.CircularRadius(layer.CornerRadius)), *layer.Shadow)
		return
	}
	canvas.DrawRectShadow(rect, *layer.Shadow)
}
