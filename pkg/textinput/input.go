package textinput

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

// TailoredTextInput is a single-line text input with a floating
// placeholder label, an optional bottom line, and optional border, shadow
// and detail/error text, each styled independently.
//
// The placeholder doubles as the floating label: it rests inside the text
// area while the input is empty and shrinks to 75% above the text once
// the input has content (or is focused, depending on
// [TailoredTextInput.SetPlaceholderOnlyChangedOnTextEntered]).
//
// All decoration is derived from the current property values on every
// layout pass, so repeated layouts with unchanged properties are
// idempotent.
type TailoredTextInput struct {
	view.ViewBase

	controller     *TextEditingController
	removeListener func()
	focused        bool
	observer       InputObserver

	textLabel        *view.Label
	placeholderLabel *view.Label
	detailLabel      *view.Label
	float            *floatingLabel
	line             *BottomLine
	style            decorationStyle

	placeholderText        string
	placeholderColor       rendering.Color
	activePlaceholderColor rendering.Color
	errorPlaceholderColor  rendering.Color
	placeholderOnlyOnText  bool
	floatingOffset         rendering.Offset

	textStyle     rendering.TextStyle
	textAlignment rendering.TextAlignment
	textInsets    rendering.EdgeInsets

	detailText            string
	errorText             string
	detailColor           rendering.Color
	errorColor            rendering.Color
	detailBackgroundColor rendering.Color
	detailCornerRadius    float64
	errorCornerRadius     float64
}

// NewTailoredTextInput creates an input with an empty controller and the
// default styling.
func NewTailoredTextInput() *TailoredTextInput {
	in := &TailoredTextInput{
		style:            defaultDecorationStyle(),
		placeholderColor: rendering.ColorGray,
		detailColor:      rendering.ColorGray,
		errorColor:       rendering.ColorRed,
		floatingOffset:   DefaultFloatingOffset,
		textStyle:        rendering.TextStyle{FontSize: 16, Color: rendering.ColorBlack},
		textInsets:       rendering.EdgeInsetsSymmetric(12, 8),
	}
	in.Init(in)

	in.textLabel = view.NewLabel()
	in.textLabel.Style = in.textStyle
	in.AddSubview(in.textLabel)

	in.placeholderLabel = view.NewLabel()
	in.placeholderLabel.Style = rendering.TextStyle{FontSize: 16, Color: in.placeholderColor}
	in.AddSubview(in.placeholderLabel)

	in.detailLabel = view.NewLabel()
	in.detailLabel.Style = rendering.TextStyle{FontSize: 12, Color: in.detailColor}
	in.detailLabel.Insets = rendering.EdgeInsetsSymmetric(6, 2)
	in.detailLabel.Hidden = true
	in.AddSubview(in.detailLabel)

	in.float = newFloatingLabel(in.placeholderLabel)
	in.line = NewBottomLine(in)
	in.SetController(NewTextEditingController(""))
	return in
}

// SetController replaces the input's text controller. The input swaps its
// listener over and snaps the floating label to match the new text
// without animating. A nil controller installs a fresh empty one.
func (in *TailoredTextInput) SetController(controller *TextEditingController) {
	if controller == nil {
		controller = NewTextEditingController("")
	}
	if in.removeListener != nil {
		in.removeListener()
	}
	in.controller = controller
	in.removeListener = controller.AddListener(in.handleTextChanged)
	in.textLabel.Text = controller.Text()
	in.updateLabelState(false)
	in.SetNeedsLayout()
}

// Controller returns the input's text controller.
func (in *TailoredTextInput) Controller() *TextEditingController {
	return in.controller
}

// Text returns the current text content.
func (in *TailoredTextInput) Text() string {
	return in.controller.Text()
}

// SetText replaces the text content, animating the floating label if the
// change crosses the empty/non-empty boundary.
func (in *TailoredTextInput) SetText(text string) {
	in.controller.SetText(text)
}

// Focus marks the input as focused, running the focus-driven label
// transition and decoration changes.
func (in *TailoredTextInput) Focus() {
	in.setFocused(true)
}

// Blur removes focus from the input.
func (in *TailoredTextInput) Blur() {
	in.setFocused(false)
}

// IsFocused reports whether the input is focused.
func (in *TailoredTextInput) IsFocused() bool {
	return in.focused
}

// SetObserver installs the observer notified of text changes and
// completed layout passes. A nil observer detaches.
func (in *TailoredTextInput) SetObserver(observer InputObserver) {
	in.observer = observer
}

// PlaceholderState returns the floating label's current (or, while
// animating, target) state.
func (in *TailoredTextInput) PlaceholderState() LabelState {
	return in.float.state
}

// BottomLine returns the input's bottom line decorator.
func (in *TailoredTextInput) BottomLine() *BottomLine {
	return in.line
}

// PlaceholderLabel returns the label used for the placeholder and
// floating text.
func (in *TailoredTextInput) PlaceholderLabel() *view.Label {
	return in.placeholderLabel
}

// TextLabel returns the label rendering the input's text.
func (in *TailoredTextInput) TextLabel() *view.Label {
	return in.textLabel
}

// DetailLabel returns the label rendering detail or error text.
func (in *TailoredTextInput) DetailLabel() *view.Label {
	return in.detailLabel
}

// Dispose releases the input's animation resources and detaches it from
// its controller. The controller itself is left alive for reuse.
func (in *TailoredTextInput) Dispose() {
	if in.removeListener != nil {
		in.removeListener()
		in.removeListener = nil
	}
	in.float.dispose()
}

func (in *TailoredTextInput) setFocused(focused bool) {
	if in.focused == focused {
		return
	}
	in.focused = focused
	in.updateLabelState(true)
	in.SetNeedsLayout()
}

func (in *TailoredTextInput) handleTextChanged() {
	text := in.controller.Text()
	in.textLabel.Text = text
	in.updateLabelState(true)
	in.SetNeedsLayout()
	notifyTextChanged(in.observer, text)
}

func (in *TailoredTextInput) updateLabelState(animated bool) {
	target := labelStateFor(in.controller.Text(), in.focused, in.placeholderOnlyOnText)
	in.float.transitionTo(target, animated)
}

func (in *TailoredTextInput) errorShown() bool {
	return in.errorText != ""
}

// LayoutSubviews implements view.View. It positions the labels, derives
// the decoration state from the current properties, and notifies the
// observer that layout completed.
func (in *TailoredTextInput) LayoutSubviews() {
	bounds := rendering.RectFromOriginSize(rendering.Offset{}, in.Bounds())
	textRect := bounds.Inset(in.textInsets)
	in.textLabel.SetFrame(textRect)
	in.placeholderLabel.SetFrame(textRect)

	in.updateLabelState(false)
	in.applyDecorations()
	in.layoutDetailLabel(bounds)

	notifyLayoutCompleted(in.observer)
}

func (in *TailoredTextInput) applyDecorations() {
	in.style.apply(in.Layer(), in.line, in.focused, in.errorShown())

	in.textLabel.Alignment = in.textAlignment
	in.textLabel.Style = in.textStyle
	in.placeholderLabel.Text = in.placeholderText
	in.placeholderLabel.Alignment = in.textAlignment
	in.float.configure(
		in.placeholderColor,
		floatingLabelColor(in.placeholderColor, in.activePlaceholderColor, in.errorPlaceholderColor, in.errorShown()),
		in.floatingOffset,
	)
}

// layoutDetailLabel places the detail/error label at the bottom trailing
// corner of the input, above the bottom line. Error text wins over detail
// text; each has its own color and corner mask radius.
func (in *TailoredTextInput) layoutDetailLabel(bounds rendering.Rect) {
	text, color, radius := in.detailText, in.detailColor, in.detailCornerRadius
	if in.errorShown() {
		text, color, radius = in.errorText, in.errorColor, in.errorCornerRadius
	}
	in.detailLabel.Hidden = text == ""
	if text == "" {
		return
	}
	in.detailLabel.Text = text
	in.detailLabel.Style.Color = color
	in.detailLabel.BackgroundColor = in.detailBackgroundColor

	size := in.detailLabel.SizeThatFits()
	in.detailLabel.SetFrame(rendering.RectFromLTWH(
		bounds.Right-in.textInsets.Right-size.Width,
		bounds.Bottom-in.line.Thickness()-size.Height-2,
		size.Width,
		size.Height,
	))
	layer := in.detailLabel.Layer()
	layer.CornerRadius = radius
	layer.MasksToBounds = radius > 0
}
