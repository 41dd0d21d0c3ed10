package textinput

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// Container configuration. These mirror the corresponding
// [TailoredTextInput] setters but act on the container's own labels and
// box decoration; the inner input keeps its own properties for text and
// font styling.

// SetPlaceholderText sets the container's placeholder and floating label
// text.
func (l *TailoredTextInputLayout) SetPlaceholderText(text string) {
	l.placeholderText = text
	l.SetNeedsLayout()
}

// PlaceholderText returns the placeholder text.
func (l *TailoredTextInputLayout) PlaceholderText() string {
	return l.placeholderText
}

// SetPlaceholderColor sets the placeholder's resting color.
func (l *TailoredTextInputLayout) SetPlaceholderColor(color rendering.Color) {
	l.placeholderColor = color
	l.SetNeedsLayout()
}

// SetActivePlaceholderColor sets the color the label blends toward while
// floating. Zero falls back to the resting color.
func (l *TailoredTextInputLayout) SetActivePlaceholderColor(color rendering.Color) {
	l.activePlaceholderColor = color
	l.SetNeedsLayout()
}

// SetErrorPlaceholderColor sets the floating label color while an error
// is shown. Zero falls back to the active color.
func (l *TailoredTextInputLayout) SetErrorPlaceholderColor(color rendering.Color) {
	l.errorPlaceholderColor = color
	l.SetNeedsLayout()
}

// SetPlaceholderOnlyChangedOnTextEntered selects whether entered text
// alone, or focus as well, floats the container's label.
func (l *TailoredTextInputLayout) SetPlaceholderOnlyChangedOnTextEntered(onlyOnText bool) {
	if l.placeholderOnlyOnText == onlyOnText {
		return
	}
	l.placeholderOnlyOnText = onlyOnText
	l.updateLabelState(false)
	l.SetNeedsLayout()
}

// PlaceholderOnlyChangedOnTextEntered reports the current transition mode.
func (l *TailoredTextInputLayout) PlaceholderOnlyChangedOnTextEntered() bool {
	return l.placeholderOnlyOnText
}

// SetDetailText sets the helper text shown below the input box. Hidden
// while an error is shown.
func (l *TailoredTextInputLayout) SetDetailText(text string) {
	l.detailText = text
	l.SetNeedsLayout()
}

// DetailText returns the helper text.
func (l *TailoredTextInputLayout) DetailText() string {
	return l.detailText
}

// SetErrorText sets the error message shown below the input box in place
// of the detail text. Empty clears the error state.
func (l *TailoredTextInputLayout) SetErrorText(text string) {
	l.errorText = text
	l.SetNeedsLayout()
}

// ErrorText returns the error message.
func (l *TailoredTextInputLayout) ErrorText() string {
	return l.errorText
}

// SetDetailColor sets the helper text color.
func (l *TailoredTextInputLayout) SetDetailColor(color rendering.Color) {
	l.detailColor = color
	l.SetNeedsLayout()
}

// SetErrorColor sets the error text color.
func (l *TailoredTextInputLayout) SetErrorColor(color rendering.Color) {
	l.errorColor = color
	l.SetNeedsLayout()
}

// SetBoxBackgroundColor fills the input box behind the text area.
func (l *TailoredTextInputLayout) SetBoxBackgroundColor(color rendering.Color) {
	l.boxBackgroundColor = color
	l.SetNeedsLayout()
}

// SetBorderEnabled toggles the box border.
func (l *TailoredTextInputLayout) SetBorderEnabled(enabled bool) {
	l.style.borderEnabled = enabled
	l.SetNeedsLayout()
}

// SetErrorBorderEnabled toggles the error border around the box.
func (l *TailoredTextInputLayout) SetErrorBorderEnabled(enabled bool) {
	l.style.errorBorderEnabled = enabled
	l.SetNeedsLayout()
}

// SetBorderColor sets the box border color.
func (l *TailoredTextInputLayout) SetBorderColor(color rendering.Color) {
	l.style.borderColor = color
	l.SetNeedsLayout()
}

// SetErrorBorderColor sets the box border color while an error is shown.
func (l *TailoredTextInputLayout) SetErrorBorderColor(color rendering.Color) {
	l.style.errorBorderColor = color
	l.SetNeedsLayout()
}

// SetBorderWidth sets the box border stroke width.
func (l *TailoredTextInputLayout) SetBorderWidth(width float64) {
	l.style.borderWidth = width
	l.SetNeedsLayout()
}

// SetCornerRadius rounds the box background and border.
func (l *TailoredTextInputLayout) SetCornerRadius(radius float64) {
	l.style.cornerRadius = radius
	l.SetNeedsLayout()
}

// SetShadowColor sets the box drop shadow color. Zero removes the
// shadow. The shadow wraps the box alone, not the labels around it.
func (l *TailoredTextInputLayout) SetShadowColor(color rendering.Color) {
	l.style.shadowColor = color
	l.SetNeedsLayout()
}

// SetShadowOffset sets the box drop shadow offset.
func (l *TailoredTextInputLayout) SetShadowOffset(offset rendering.Offset) {
	l.style.shadowOffset = offset
	l.SetNeedsLayout()
}

// SetShadowBlurRadius sets the box drop shadow blur radius.
func (l *TailoredTextInputLayout) SetShadowBlurRadius(radius float64) {
	l.style.shadowBlurRadius = radius
	l.SetNeedsLayout()
}

// SetLineColor sets the resting color of the line under the box. Zero
// tears the line down; a later non-zero color recreates it.
func (l *TailoredTextInputLayout) SetLineColor(color rendering.Color) {
	l.style.lineColor = color
	l.SetNeedsLayout()
}

// SetActiveLineColor sets the line color while the inner input is
// focused. Zero falls back to the resting color.
func (l *TailoredTextInputLayout) SetActiveLineColor(color rendering.Color) {
	l.style.activeLineColor = color
	l.SetNeedsLayout()
}

// SetErrorLineColor sets the line color while an error is shown. Zero
// falls back to the resting color.
func (l *TailoredTextInputLayout) SetErrorLineColor(color rendering.Color) {
	l.style.errorLineColor = color
	l.SetNeedsLayout()
}

// SetLineHidden hides the line under the box without tearing it down.
func (l *TailoredTextInputLayout) SetLineHidden(hidden bool) {
	l.style.lineHidden = hidden
	l.SetNeedsLayout()
}
