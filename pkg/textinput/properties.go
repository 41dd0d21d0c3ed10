package textinput

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// Configuration setters. Each marks the input for layout; the derived
// decoration state is recomputed on the next layout pass.

// SetPlaceholderText sets the text shown as the placeholder and floating
// label.
func (in *TailoredTextInput) SetPlaceholderText(text string) {
	in.placeholderText = text
	in.SetNeedsLayout()
}

// PlaceholderText returns the placeholder text.
func (in *TailoredTextInput) PlaceholderText() string {
	return in.placeholderText
}

// SetPlaceholderColor sets the placeholder's resting color.
func (in *TailoredTextInput) SetPlaceholderColor(color rendering.Color) {
	in.placeholderColor = color
	in.SetNeedsLayout()
}

// SetActivePlaceholderColor sets the color the label blends toward while
// floating. Zero falls back to the resting color.
func (in *TailoredTextInput) SetActivePlaceholderColor(color rendering.Color) {
	in.activePlaceholderColor = color
	in.SetNeedsLayout()
}

// SetErrorPlaceholderColor sets the floating label color while an error
// is shown. Zero falls back to the active color.
func (in *TailoredTextInput) SetErrorPlaceholderColor(color rendering.Color) {
	in.errorPlaceholderColor = color
	in.SetNeedsLayout()
}

// SetPlaceholderOnlyChangedOnTextEntered selects what drives the floating
// transition. When true the label floats only once text is entered; when
// false (the default) gaining focus is enough.
func (in *TailoredTextInput) SetPlaceholderOnlyChangedOnTextEntered(onlyOnText bool) {
	if in.placeholderOnlyOnText == onlyOnText {
		return
	}
	in.placeholderOnlyOnText = onlyOnText
	in.updateLabelState(false)
	in.SetNeedsLayout()
}

// PlaceholderOnlyChangedOnTextEntered reports the current transition mode.
func (in *TailoredTextInput) PlaceholderOnlyChangedOnTextEntered() bool {
	return in.placeholderOnlyOnText
}

// SetFloatingOffset sets the translation applied to the label in its
// floating pose, relative to its resting position.
func (in *TailoredTextInput) SetFloatingOffset(offset rendering.Offset) {
	in.floatingOffset = offset
	in.SetNeedsLayout()
}

// FloatingOffset returns the floating pose translation.
func (in *TailoredTextInput) FloatingOffset() rendering.Offset {
	return in.floatingOffset
}

// SetTextStyle sets the font and color of the entered text.
func (in *TailoredTextInput) SetTextStyle(style rendering.TextStyle) {
	in.textStyle = style
	in.SetNeedsLayout()
}

// SetTextAlignment aligns the text and placeholder horizontally.
func (in *TailoredTextInput) SetTextAlignment(alignment rendering.TextAlignment) {
	in.textAlignment = alignment
	in.SetNeedsLayout()
}

// SetTextInsets pads the text area away from the input's edges.
func (in *TailoredTextInput) SetTextInsets(insets rendering.EdgeInsets) {
	in.textInsets = insets
	in.SetNeedsLayout()
}

// SetDetailText sets the helper text shown under the text area. Hidden
// while an error is shown.
func (in *TailoredTextInput) SetDetailText(text string) {
	in.detailText = text
	in.SetNeedsLayout()
}

// DetailText returns the helper text.
func (in *TailoredTextInput) DetailText() string {
	return in.detailText
}

// SetErrorText sets the error message. A non-empty error takes over the
// detail label, switches the line, border and floating label to their
// error colors, and thickens the line. Empty clears the error state.
func (in *TailoredTextInput) SetErrorText(text string) {
	in.errorText = text
	in.SetNeedsLayout()
}

// ErrorText returns the error message.
func (in *TailoredTextInput) ErrorText() string {
	return in.errorText
}

// SetDetailColor sets the helper text color.
func (in *TailoredTextInput) SetDetailColor(color rendering.Color) {
	in.detailColor = color
	in.SetNeedsLayout()
}

// SetErrorColor sets the error text color.
func (in *TailoredTextInput) SetErrorColor(color rendering.Color) {
	in.errorColor = color
	in.SetNeedsLayout()
}

// SetDetailBackgroundColor fills the detail/error label's bounds.
func (in *TailoredTextInput) SetDetailBackgroundColor(color rendering.Color) {
	in.detailBackgroundColor = color
	in.SetNeedsLayout()
}

// SetDetailCornerRadius rounds the detail label's corner mask while no
// error is shown.
func (in *TailoredTextInput) SetDetailCornerRadius(radius float64) {
	in.detailCornerRadius = radius
	in.SetNeedsLayout()
}

// SetErrorCornerRadius rounds the detail label's corner mask while an
// error is shown.
func (in *TailoredTextInput) SetErrorCornerRadius(radius float64) {
	in.errorCornerRadius = radius
	in.SetNeedsLayout()
}

// SetBorderEnabled toggles the normal border.
func (in *TailoredTextInput) SetBorderEnabled(enabled bool) {
	in.style.borderEnabled = enabled
	in.SetNeedsLayout()
}

// SetErrorBorderEnabled toggles the error border. When enabled, a shown
// error draws the border in the error color even while the normal border
// is disabled.
func (in *TailoredTextInput) SetErrorBorderEnabled(enabled bool) {
	in.style.errorBorderEnabled = enabled
	in.SetNeedsLayout()
}

// SetBorderColor sets the normal border color.
func (in *TailoredTextInput) SetBorderColor(color rendering.Color) {
	in.style.borderColor = color
	in.SetNeedsLayout()
}

// SetErrorBorderColor sets the border color used while an error is shown.
func (in *TailoredTextInput) SetErrorBorderColor(color rendering.Color) {
	in.style.errorBorderColor = color
	in.SetNeedsLayout()
}

// SetBorderWidth sets the border stroke width.
func (in *TailoredTextInput) SetBorderWidth(width float64) {
	in.style.borderWidth = width
	in.SetNeedsLayout()
}

// SetCornerRadius rounds the input's background and border.
func (in *TailoredTextInput) SetCornerRadius(radius float64) {
	in.style.cornerRadius = radius
	in.SetNeedsLayout()
}

// SetShadowColor sets the drop shadow color. Zero removes the shadow;
// the offset and blur radius only apply while a color is set.
func (in *TailoredTextInput) SetShadowColor(color rendering.Color) {
	in.style.shadowColor = color
	in.SetNeedsLayout()
}

// SetShadowOffset sets the drop shadow offset.
func (in *TailoredTextInput) SetShadowOffset(offset rendering.Offset) {
	in.style.shadowOffset = offset
	in.SetNeedsLayout()
}

// SetShadowBlurRadius sets the drop shadow blur radius.
func (in *TailoredTextInput) SetShadowBlurRadius(radius float64) {
	in.style.shadowBlurRadius = radius
	in.SetNeedsLayout()
}

// SetLineColor sets the bottom line's resting color. Zero tears the line
// down on the next layout pass; a later non-zero color recreates it.
func (in *TailoredTextInput) SetLineColor(color rendering.Color) {
	in.style.lineColor = color
	in.SetNeedsLayout()
}

// SetActiveLineColor sets the line color while the input is focused.
// Zero falls back to the resting color.
func (in *TailoredTextInput) SetActiveLineColor(color rendering.Color) {
	in.style.activeLineColor = color
	in.SetNeedsLayout()
}

// SetErrorLineColor sets the line color while an error is shown. Zero
// falls back to the resting color.
func (in *TailoredTextInput) SetErrorLineColor(color rendering.Color) {
	in.style.errorLineColor = color
	in.SetNeedsLayout()
}

// SetLineHidden hides the bottom line without tearing it down.
func (in *TailoredTextInput) SetLineHidden(hidden bool) {
	in.style.lineHidden = hidden
	in.SetNeedsLayout()
}
