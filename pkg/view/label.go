package view

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// Label is a view that draws a single line of styled text.
type Label struct {
	ViewBase

	// Text is the displayed string. An empty label draws nothing.
	Text string

	// Style controls font and color.
	Style rendering.TextStyle

	// Alignment places the text horizontally within the label's bounds.
	Alignment rendering.TextAlignment

	// Insets pad the text away from the label's edges.
	Insets rendering.EdgeInsets
}

// NewLabel creates an empty label.
func NewLabel() *Label {
	l := &Label{}
	l.Init(l)
	return l
}

// SizeThatFits returns the size the label needs for its current text and
// insets.
func (l *Label) SizeThatFits() rendering.Size {
	measured := rendering.MeasureText(l.Text, l.Style)
	return rendering.Size{
		Width:  measured.Width + l.Insets.Horizontal(),
		Height: measured.Height + l.Insets.Vertical(),
	}
}

// SizeToFit resizes the label's frame in place to fit its text, keeping
// the current origin.
func (l *Label) SizeToFit() {
	frame := l.Frame()
	l.SetFrame(rendering.RectFromOriginSize(frame.Origin(), l.SizeThatFits()))
}

// DrawContent implements View.
func (l *Label) DrawContent(canvas rendering.Canvas) {
	if l.Text == "" {
		return
	}
	content := rendering.RectFromOriginSize(rendering.Offset{}, l.Bounds()).Inset(l.Insets)
	measured := rendering.MeasureText(l.Text, l.Style)

	x := content.Left
	switch l.Alignment {
	case rendering.TextAlignmentCenter:
		x = content.Left + (content.Width()-measured.Width)/2
	case rendering.TextAlignmentRight:
		x = content.Right - measured.Width
	}
	y := content.Top + (content.Height()-measured.Height)/2

	canvas.DrawText(l.Text, l.Style, rendering.Offset{X: x, Y: y})
}
