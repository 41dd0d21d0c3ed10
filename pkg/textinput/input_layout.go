package textinput

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

// Zones the container splits its bounds into, top to bottom: the strip
// the label floats up into, the input box, and the detail/error strip.
const (
	floatingZoneHeight = 24
	detailZoneSpacing  = 4
)

// boxView hosts the input box chrome for the container: background,
// border, shadow and the bottom line all attach here so they wrap the
// box alone, not the surrounding labels.
type boxView struct {
	view.ViewBase
}

func newBoxView() *boxView {
	v := &boxView{}
	v.Init(v)
	return v
}

// TailoredTextInputLayout arranges a [TailoredTextInput] together with
// separate placeholder, detail and error labels outside the input box.
// Unlike the single-widget input, the floating label lives above the box
// and the detail and error strips below it, so the box's border and
// shadow wrap only the text area.
//
// The container registers itself as the inner input's [InputObserver]:
// text changes drive its own floating transition, and layout completion
// re-derives its decoration so the two views stay consistent even when
// the inner input is mutated directly.
type TailoredTextInputLayout struct {
	view.ViewBase

	input *TailoredTextInput
	box   *boxView

	placeholderLabel *view.Label
	detailLabel      *view.Label
	errorLabel       *view.Label
	float            *floatingLabel
	line             *BottomLine
	style            decorationStyle
	observer         InputObserver

	placeholderText        string
	placeholderColor       rendering.Color
	activePlaceholderColor rendering.Color
	errorPlaceholderColor  rendering.Color
	placeholderOnlyOnText  bool

	detailText  string
	errorText   string
	detailColor rendering.Color
	errorColor  rendering.Color

	boxBackgroundColor rendering.Color
}

// NewTailoredTextInputLayout creates a container around a fresh inner
// input with default styling.
func NewTailoredTextInputLayout() *TailoredTextInputLayout {
	l := &TailoredTextInputLayout{
		style:            defaultDecorationStyle(),
		placeholderColor: rendering.ColorGray,
		detailColor:      rendering.ColorGray,
		errorColor:       rendering.ColorRed,
	}
	l.Init(l)

	l.box = newBoxView()
	l.AddSubview(l.box)

	l.input = NewTailoredTextInput()
	l.input.SetObserver(l)
	l.box.AddSubview(l.input)

	l.placeholderLabel = view.NewLabel()
	l.placeholderLabel.Style = rendering.TextStyle{FontSize: 16, Color: l.placeholderColor}
	l.AddSubview(l.placeholderLabel)

	l.detailLabel = view.NewLabel()
	l.detailLabel.Style = rendering.TextStyle{FontSize: 12, Color: l.detailColor}
	l.detailLabel.Hidden = true
	l.AddSubview(l.detailLabel)

	l.errorLabel = view.NewLabel()
	l.errorLabel.Style = rendering.TextStyle{FontSize: 12, Color: l.errorColor}
	l.errorLabel.Hidden = true
	l.AddSubview(l.errorLabel)

	l.float = newFloatingLabel(l.placeholderLabel)
	l.line = NewBottomLine(l.box)
	return l
}

// Input returns the inner text input for text and font configuration.
func (l *TailoredTextInputLayout) Input() *TailoredTextInput {
	return l.input
}

// Text returns the inner input's text content.
func (l *TailoredTextInputLayout) Text() string {
	return l.input.Text()
}

// SetText replaces the inner input's text content.
func (l *TailoredTextInputLayout) SetText(text string) {
	l.input.SetText(text)
}

// Focus focuses the inner input and runs the container's own floating
// transition.
func (l *TailoredTextInputLayout) Focus() {
	l.input.Focus()
	l.updateLabelState(true)
	l.SetNeedsLayout()
}

// Blur removes focus from the inner input.
func (l *TailoredTextInputLayout) Blur() {
	l.input.Blur()
	l.updateLabelState(true)
	l.SetNeedsLayout()
}

// SetObserver installs an observer notified after the container has
// processed the inner input's events. A nil observer detaches.
func (l *TailoredTextInputLayout) SetObserver(observer InputObserver) {
	l.observer = observer
}

// PlaceholderState returns the container label's current (or, while
// animating, target) state.
func (l *TailoredTextInputLayout) PlaceholderState() LabelState {
	return l.float.state
}

// BottomLine returns the decorator drawing the line under the input box.
func (l *TailoredTextInputLayout) BottomLine() *BottomLine {
	return l.line
}

// PlaceholderLabel returns the container's floating placeholder label.
func (l *TailoredTextInputLayout) PlaceholderLabel() *view.Label {
	return l.placeholderLabel
}

// DetailLabel returns the container's helper text label.
func (l *TailoredTextInputLayout) DetailLabel() *view.Label {
	return l.detailLabel
}

// ErrorLabel returns the container's error text label.
func (l *TailoredTextInputLayout) ErrorLabel() *view.Label {
	return l.errorLabel
}

// Box returns the view carrying the input box chrome.
func (l *TailoredTextInputLayout) Box() view.View {
	return l.box
}

// Dispose releases the container's and the inner input's animation
// resources.
func (l *TailoredTextInputLayout) Dispose() {
	l.float.dispose()
	l.input.Dispose()
}

// TextChanged implements [InputObserver] for the inner input.
func (l *TailoredTextInputLayout) TextChanged(text string) {
	l.updateLabelState(true)
	l.SetNeedsLayout()
	notifyTextChanged(l.observer, text)
}

// LayoutCompleted implements [InputObserver] for the inner input. The
// container re-derives its own decoration here so direct mutations of the
// inner input are picked up on the same render pass.
func (l *TailoredTextInputLayout) LayoutCompleted() {
	l.updateLabelState(false)
	l.applyDecorations()
	notifyLayoutCompleted(l.observer)
}

func (l *TailoredTextInputLayout) errorShown() bool {
	return l.errorText != ""
}

func (l *TailoredTextInputLayout) updateLabelState(animated bool) {
	target := labelStateFor(l.input.Text(), l.input.IsFocused(), l.placeholderOnlyOnText)
	l.float.transitionTo(target, animated)
}

// LayoutSubviews implements view.View. Top to bottom: floating zone,
// input box, detail/error strip.
func (l *TailoredTextInputLayout) LayoutSubviews() {
	bounds := rendering.RectFromOriginSize(rendering.Offset{}, l.Bounds())

	detailHeight := l.detailStripHeight()
	boxRect := rendering.RectFromLTWH(
		0,
		floatingZoneHeight,
		bounds.Width(),
		bounds.Height()-floatingZoneHeight-detailHeight,
	)
	l.box.SetFrame(boxRect)
	l.input.SetFrame(rendering.RectFromOriginSize(rendering.Offset{}, boxRect.Size()))

	// The collapsed label sits over the box's text area; floating lifts
	// it into the zone above the box.
	collapsed := boxRect.Inset(l.input.textInsets)
	l.placeholderLabel.SetFrame(collapsed)

	l.layoutDetailStrip(bounds, boxRect)
	l.updateLabelState(false)
	l.applyDecorations()
}

// detailStripHeight measures the strip below the box, zero when neither
// detail nor error text is shown.
func (l *TailoredTextInputLayout) detailStripHeight() float64 {
	text := l.detailText
	label := l.detailLabel
	if l.errorShown() {
		text = l.errorText
		label = l.errorLabel
	}
	if text == "" {
		return 0
	}
	label.Text = text
	return label.SizeThatFits().Height + detailZoneSpacing
}

func (l *TailoredTextInputLayout) layoutDetailStrip(bounds, boxRect rendering.Rect) {
	l.detailLabel.Hidden = l.errorShown() || l.detailText == ""
	l.errorLabel.Hidden = !l.errorShown()

	label := l.detailLabel
	if l.errorShown() {
		label = l.errorLabel
	}
	if label.Hidden {
		return
	}
	size := label.SizeThatFits()
	label.SetFrame(rendering.RectFromLTWH(
		l.input.textInsets.Left,
		boxRect.Bottom+detailZoneSpacing,
		bounds.Width()-l.input.textInsets.Horizontal(),
		size.Height,
	))
}

// applyDecorations derives the box chrome, bottom line and label colors
// from the container's current state. Idempotent for unchanged state.
func (l *TailoredTextInputLayout) applyDecorations() {
	l.box.BackgroundColor = l.boxBackgroundColor
	l.style.apply(l.box.Layer(), l.line, l.input.IsFocused(), l.errorShown())

	l.placeholderLabel.Text = l.placeholderText
	l.detailLabel.Text = l.detailText
	l.detailLabel.Style.Color = l.detailColor
	l.errorLabel.Text = l.errorText
	l.errorLabel.Style.Color = l.errorColor

	l.float.configure(
		l.placeholderColor,
		floatingLabelColor(l.placeholderColor, l.activePlaceholderColor, l.errorPlaceholderColor, l.errorShown()),
		l.floatingOffset(),
	)
}

// floatingOffset lifts the label from its collapsed center up into the
// middle of the floating zone.
func (l *TailoredTextInputLayout) floatingOffset() rendering.Offset {
	collapsedCenter := l.placeholderLabel.Frame().Center().Y
	return rendering.Offset{Y: floatingZoneHeight/2 - collapsedCenter}
}
