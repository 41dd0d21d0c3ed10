// Package theme provides color schemes and reusable styling presets for
// the floating-label input controls, plus a YAML loader so applications
// can ship themes as data.
package theme

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/textinput"
)

// ColorScheme is the palette a TextInputTheme is derived from.
type ColorScheme struct {
	// Primary is the accent color for focused decoration.
	Primary rendering.Color
	// OnSurface is the main text color.
	OnSurface rendering.Color
	// Surface is the background color of input boxes.
	Surface rendering.Color
	// Outline is the resting border and line color.
	Outline rendering.Color
	// Error colors error text and decoration.
	Error rendering.Color
}

// DefaultColorScheme returns a light palette.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:   rendering.Color(0xFF2196F3),
		OnSurface: rendering.Color(0xFF1C1B1F),
		Surface:   rendering.ColorWhite,
		Outline:   rendering.ColorLightGray,
		Error:     rendering.Color(0xFFB3261E),
	}
}

// DarkColorScheme returns a dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:   rendering.Color(0xFF90CAF9),
		OnSurface: rendering.Color(0xFFE6E1E5),
		Surface:   rendering.Color(0xFF1C1B1F),
		Outline:   rendering.Color(0xFF49454F),
		Error:     rendering.Color(0xFFF2B8B5),
	}
}

// TextInputTheme bundles every color and metric the input controls
// expose, so a whole form can be styled with one Apply call per input.
type TextInputTheme struct {
	TextColor              rendering.Color
	PlaceholderColor       rendering.Color
	ActivePlaceholderColor rendering.Color
	ErrorPlaceholderColor  rendering.Color
	DetailColor            rendering.Color
	ErrorColor             rendering.Color

	LineColor       rendering.Color
	ActiveLineColor rendering.Color
	ErrorLineColor  rendering.Color

	BorderEnabled      bool
	ErrorBorderEnabled bool
	BorderColor        rendering.Color
	ErrorBorderColor   rendering.Color
	BorderWidth        float64
	CornerRadius       float64

	BackgroundColor rendering.Color
	ShadowColor     rendering.Color

	FloatingOffset rendering.Offset
}

// DefaultTextInputTheme derives an underline-style input theme from the
// given scheme.
func DefaultTextInputTheme(scheme ColorScheme) *TextInputTheme {
	return &TextInputTheme{
		TextColor:              scheme.OnSurface,
		PlaceholderColor:       scheme.Outline,
		ActivePlaceholderColor: scheme.Primary,
		ErrorPlaceholderColor:  scheme.Error,
		DetailColor:            scheme.Outline,
		ErrorColor:             scheme.Error,
		LineColor:              scheme.Outline,
		ActiveLineColor:        scheme.Primary,
		ErrorLineColor:         scheme.Error,
		BorderColor:            scheme.Outline,
		ErrorBorderColor:       scheme.Error,
		BorderWidth:            1,
		BackgroundColor:        scheme.Surface,
		FloatingOffset:         textinput.DefaultFloatingOffset,
	}
}

// OutlinedTextInputTheme derives a bordered-box input theme from the
// given scheme: rounded border instead of an underline.
func OutlinedTextInputTheme(scheme ColorScheme) *TextInputTheme {
	t := DefaultTextInputTheme(scheme)
	t.LineColor = rendering.ColorTransparent
	t.BorderEnabled = true
	t.ErrorBorderEnabled = true
	t.CornerRadius = 8
	return t
}

// Apply writes the theme onto a single-widget input.
func (t *TextInputTheme) Apply(in *textinput.TailoredTextInput) {
	style := rendering.TextStyle{FontSize: 16, Color: t.TextColor}
	in.SetTextStyle(style)
	in.BackgroundColor = t.BackgroundColor

	in.SetPlaceholderColor(t.PlaceholderColor)
	in.SetActivePlaceholderColor(t.ActivePlaceholderColor)
	in.SetErrorPlaceholderColor(t.ErrorPlaceholderColor)
	in.SetDetailColor(t.DetailColor)
	in.SetErrorColor(t.ErrorColor)
	in.SetFloatingOffset(t.FloatingOffset)

	in.SetLineColor(t.LineColor)
	in.SetActiveLineColor(t.ActiveLineColor)
	in.SetErrorLineColor(t.ErrorLineColor)

	in.SetBorderEnabled(t.BorderEnabled)
	in.SetErrorBorderEnabled(t.ErrorBorderEnabled)
	in.SetBorderColor(t.BorderColor)
	in.SetErrorBorderColor(t.ErrorBorderColor)
	in.SetBorderWidth(t.BorderWidth)
	in.SetCornerRadius(t.CornerRadius)
	in.SetShadowColor(t.ShadowColor)
}

// ApplyToLayout writes the theme onto a composite input container.
func (t *TextInputTheme) ApplyToLayout(l *textinput.TailoredTextInputLayout) {
	l.Input().SetTextStyle(rendering.TextStyle{FontSize: 16, Color: t.TextColor})
	l.SetBoxBackgroundColor(t.BackgroundColor)

	l.SetPlaceholderColor(t.PlaceholderColor)
	l.SetActivePlaceholderColor(t.ActivePlaceholderColor)
	l.SetErrorPlaceholderColor(t.ErrorPlaceholderColor)
	l.SetDetailColor(t.DetailColor)
	l.SetErrorColor(t.ErrorColor)

	l.SetLineColor(t.LineColor)
	l.SetActiveLineColor(t.ActiveLineColor)
	l.SetErrorLineColor(t.ErrorLineColor)

	l.SetBorderEnabled(t.BorderEnabled)
	l.SetErrorBorderEnabled(t.ErrorBorderEnabled)
	l.SetBorderColor(t.BorderColor)
	l.SetErrorBorderColor(t.ErrorBorderColor)
	l.SetBorderWidth(t.BorderWidth)
	l.SetCornerRadius(t.CornerRadius)
	l.SetShadowColor(t.ShadowColor)
}
