package textinput

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

// defaultLineThickness is the resting bottom line thickness; focused and
// error states double it.
const defaultLineThickness = 1

// lineView is the bare overlay the bottom line paints with.
type lineView struct {
	view.ViewBase
}

func newLineView() *lineView {
	v := &lineView{}
	v.Init(v)
	return v
}

// BottomLine decorates the bottom edge of a host view with a horizontal
// line. The overlay subview is created lazily the first time a color is
// set and removed again when the color is cleared to zero, so hosts that
// never enable the line carry no extra view.
//
// The line spans the host's full width and sits flush with its bottom
// edge. Call [BottomLine.Reposition] after the host's bounds change.
type BottomLine struct {
	host      view.View
	overlay   *lineView
	color     rendering.Color
	thickness float64
	hidden    bool
}

// NewBottomLine creates a bottom line for host. No overlay exists until a
// color is set.
func NewBottomLine(host view.View) *BottomLine {
	return &BottomLine{host: host, thickness: defaultLineThickness}
}

// SetColor sets the line color. A zero color removes the overlay
// entirely; a later non-zero color recreates it.
func (b *BottomLine) SetColor(color rendering.Color) {
	b.color = color
	if color.IsZero() {
		if b.overlay != nil {
			b.overlay.RemoveFromSuperview()
			b.overlay = nil
		}
		return
	}
	if b.overlay == nil {
		b.overlay = newLineView()
		b.overlay.Hidden = b.hidden
		b.host.Base().AddSubview(b.overlay)
	}
	b.overlay.BackgroundColor = color
	b.Reposition()
}

// Color returns the current line color; zero means the line is torn down.
func (b *BottomLine) Color() rendering.Color {
	return b.color
}

// SetThickness sets the line height in points.
func (b *BottomLine) SetThickness(thickness float64) {
	if thickness < 0 {
		thickness = 0
	}
	b.thickness = thickness
	b.Reposition()
}

// Thickness returns the line height in points.
func (b *BottomLine) Thickness() float64 {
	return b.thickness
}

// SetHidden toggles the overlay's visibility without tearing it down.
func (b *BottomLine) SetHidden(hidden bool) {
	b.hidden = hidden
	if b.overlay != nil {
		b.overlay.Hidden = hidden
	}
}

// IsHidden reports whether the line is hidden.
func (b *BottomLine) IsHidden() bool {
	return b.hidden
}

// Overlay returns the line's overlay view, or nil when no color is set.
func (b *BottomLine) Overlay() view.View {
	if b.overlay == nil {
		return nil
	}
	return b.overlay
}

// Reposition pins the overlay to the host's bottom edge at the current
// thickness. No-op while the overlay does not exist.
func (b *BottomLine) Reposition() {
	if b.overlay == nil {
		return
	}
	size := b.host.Base().Bounds()
	b.overlay.SetFrame(rendering.RectFromLTWH(0, size.Height-b.thickness, size.Width, b.thickness))
}
