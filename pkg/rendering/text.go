package rendering

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightLight    FontWeight = 300
	FontWeightNormal   FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightLight:
		return "light"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// TextAlignment controls horizontal placement of text within its bounds.
type TextAlignment int

const (
	TextAlignmentLeft TextAlignment = iota
	TextAlignmentCenter
	TextAlignmentRight
)

// String returns a human-readable representation of the alignment.
func (a TextAlignment) String() string {
	switch a {
	case TextAlignmentLeft:
		return "left"
	case TextAlignmentCenter:
		return "center"
	case TextAlignmentRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlignment(%d)", int(a))
	}
}

// TextStyle describes how a run of text is drawn.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
	Color      Color
}

// measureFace is the metrics face used for headless text measurement.
// The host toolkit substitutes real font metrics at raster time; layout
// only needs stable, monotonic measurements.
var measureFace font.Face = basicfont.Face7x13

// MeasureText returns the size of a single line of text in the given style.
// An empty string measures as zero width at full line height.
func MeasureText(text string, style TextStyle) Size {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	metrics := measureFace.Metrics()
	faceHeight := fixedToFloat(metrics.Height)
	if faceHeight <= 0 {
		faceHeight = 1
	}
	scale := size / faceHeight

	advance := fixedToFloat(font.MeasureString(measureFace, text))
	return Size{
		Width:  advance * scale,
		Height: size * 1.2,
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
