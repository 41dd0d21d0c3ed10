package view

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// defaultAnchor is the normalized anchor point of a fresh layer: the
// geometric center of its bounds.
var defaultAnchor = rendering.Offset{X: 0.5, Y: 0.5}

// Layer holds the rendering state of a view: where it sits in its parent's
// coordinate space, how it is transformed, and how its background chrome
// (corner rounding, border, shadow) is drawn.
//
// A layer follows the position/anchor model of native view toolkits. The
// layer's bounds are always local, origin (0,0). Position is the point in
// the parent's space that the anchor maps to; with an identity transform,
// the visible origin is position − anchor·size. Transforms are applied
// about the anchor point, so scaling a layer whose anchor is the leading
// vertical center shrinks it toward its leading edge.
type Layer struct {
	bounds      rendering.Size
	position    rendering.Offset
	anchorPoint rendering.Offset

	// Transform is applied about the anchor point. Identity by default.
	Transform rendering.Matrix

	// CornerRadius rounds the background fill and border stroke. When
	// MasksToBounds is set, it also clips the layer's content and sublayers.
	CornerRadius float64

	// MasksToBounds clips content and subviews to the (rounded) bounds.
	MasksToBounds bool

	// BorderColor and BorderWidth stroke the layer's edge. A zero color or
	// width draws no border.
	BorderColor rendering.Color
	BorderWidth float64

	// Shadow is drawn behind the layer when non-nil and its color is
	// non-zero. Shadows are not clipped by MasksToBounds.
	Shadow *rendering.BoxShadow
}

func newLayer() *Layer {
	return &Layer{
		anchorPoint: defaultAnchor,
		Transform:   rendering.MatrixIdentity(),
	}
}

// Bounds returns the layer's local extent.
func (l *Layer) Bounds() rendering.Size {
	return l.bounds
}

// Position returns the point in the parent's coordinate space that the
// anchor point maps to.
func (l *Layer) Position() rendering.Offset {
	return l.position
}

// AnchorPoint returns the normalized anchor, (0.5, 0.5) by default.
func (l *Layer) AnchorPoint() rendering.Offset {
	return l.anchorPoint
}

// SetAnchorPoint moves the normalized anchor and compensates the layer's
// position by the anchor delta converted into the parent's position space,
// so the visible origin does not jump. This is the repositioning step that
// must run once per floating-label transition, before the animated
// transform is applied.
func (l *Layer) SetAnchorPoint(anchor rendering.Offset) {
	old := l.anchorPoint
	l.anchorPoint = anchor
	l.position = l.position.Add(rendering.Offset{
		X: (anchor.X - old.X) * l.bounds.Width,
		Y: (anchor.Y - old.Y) * l.bounds.Height,
	})
}

// ResetAnchorPoint restores the default center anchor, again compensating
// position so the untransformed frame is unchanged.
func (l *Layer) ResetAnchorPoint() {
	l.SetAnchorPoint(defaultAnchor)
}

// anchorOffset returns the anchor point in local bounds coordinates.
func (l *Layer) anchorOffset() rendering.Offset {
	return rendering.Offset{
		X: l.anchorPoint.X * l.bounds.Width,
		Y: l.anchorPoint.Y * l.bounds.Height,
	}
}

// Frame returns the layer's untransformed rectangle in the parent's
// coordinate space, derived from position, anchor and bounds.
func (l *Layer) Frame() rendering.Rect {
	origin := l.position.Sub(l.anchorOffset())
	return rendering.RectFromOriginSize(origin, l.bounds)
}

// SetFrame places the layer so its untransformed rectangle equals frame,
// updating bounds and position while keeping the current anchor.
func (l *Layer) SetFrame(frame rendering.Rect) {
	l.bounds = frame.Size()
	l.position = frame.Origin().Add(l.anchorOffset())
}

// RenderedFrame returns the axis-aligned bounds of the layer in the
// parent's coordinate space after applying the transform about the anchor.
func (l *Layer) RenderedFrame() rendering.Rect {
	if l.Transform.IsIdentity() {
		return l.Frame()
	}
	m := l.parentTransform()
	local := rendering.RectFromOriginSize(rendering.Offset{}, l.bounds)
	return m.ApplyToRect(local)
}

// parentTransform returns the full local→parent transform:
// translate(position) · Transform · translate(−anchor·size).
func (l *Layer) parentTransform() rendering.Matrix {
	anchor := l.anchorOffset()
	return rendering.MatrixTranslation(l.position.X, l.position.Y).
		Multiply(l.Transform).
		Translated(-anchor.X, -anchor.Y)
}
