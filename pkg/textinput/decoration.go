package textinput

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

// decorationStyle groups the border, shadow and bottom line configuration
// shared by [TailoredTextInput] and [TailoredTextInputLayout], along with
// the derivation of the state-dependent values from the focus and error
// state.
type decorationStyle struct {
	borderEnabled      bool
	errorBorderEnabled bool
	borderColor        rendering.Color
	errorBorderColor   rendering.Color
	borderWidth        float64
	cornerRadius       float64

	shadowColor      rendering.Color
	shadowOffset     rendering.Offset
	shadowBlurRadius float64

	lineColor       rendering.Color
	activeLineColor rendering.Color
	errorLineColor  rendering.Color
	lineHidden      bool
}

func defaultDecorationStyle() decorationStyle {
	return decorationStyle{
		borderColor:      rendering.ColorLightGray,
		errorBorderColor: rendering.ColorRed,
		errorLineColor:   rendering.ColorRed,
		borderWidth:      1,
		shadowOffset:     rendering.Offset{Y: 2},
		shadowBlurRadius: 4,
	}
}

// apply writes the derived decoration for the given state onto the box
// layer and the bottom line. Pure recomputation: applying the same state
// twice changes nothing the second time.
func (d *decorationStyle) apply(layer *view.Layer, line *BottomLine, focused, errorShown bool) {
	layer.CornerRadius = d.cornerRadius
	layer.BorderColor = d.currentBorderColor(errorShown)
	if layer.BorderColor.IsZero() {
		layer.BorderWidth = 0
	} else {
		layer.BorderWidth = d.borderWidth
	}
	if d.shadowColor.IsZero() {
		layer.Shadow = nil
	} else {
		shadow := rendering.NewBoxShadow(d.shadowColor, d.shadowBlurRadius)
		shadow.Offset = d.shadowOffset
		layer.Shadow = shadow
	}

	line.SetThickness(d.currentLineThickness(focused, errorShown))
	line.SetColor(d.currentLineColor(focused, errorShown))
	line.SetHidden(d.lineHidden)
}

// currentBorderColor resolves the border color from the two enable flags.
// A shown error with the error border enabled wins even when the normal
// border is disabled.
func (d *decorationStyle) currentBorderColor(errorShown bool) rendering.Color {
	if errorShown && d.errorBorderEnabled {
		return d.errorBorderColor
	}
	if d.borderEnabled {
		return d.borderColor
	}
	return rendering.ColorTransparent
}

// currentLineColor resolves the bottom line color. A zero base color
// keeps the line torn down regardless of state; the error and focus
// variants only override when configured.
func (d *decorationStyle) currentLineColor(focused, errorShown bool) rendering.Color {
	if d.lineColor.IsZero() {
		return rendering.ColorTransparent
	}
	if errorShown && !d.errorLineColor.IsZero() {
		return d.errorLineColor
	}
	if focused && !d.activeLineColor.IsZero() {
		return d.activeLineColor
	}
	return d.lineColor
}

// currentLineThickness doubles the line while focused or showing an error.
func (d *decorationStyle) currentLineThickness(focused, errorShown bool) float64 {
	if focused || errorShown {
		return 2 * defaultLineThickness
	}
	return defaultLineThickness
}

// floatingLabelColor resolves the color the placeholder blends toward
// while floating. The error variant wins when configured and an error is
// shown; otherwise the active variant, falling back to the base color.
func floatingLabelColor(base, active, errorColor rendering.Color, errorShown bool) rendering.Color {
	if errorShown && !errorColor.IsZero() {
		return errorColor
	}
	if !active.IsZero() {
		return active
	}
	return base
}
