package rendering

// BoxShadow defines a drop shadow to draw behind a shape.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
	Spread     float64
}

// Sigma returns the blur sigma for the rasterizer's mask filter.
// Returns 0 if BlurRadius is not positive.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// NewBoxShadow creates a simple drop shadow with the given color and blur radius.
// Offset defaults to (0, 2) for a subtle downward shadow.
func NewBoxShadow(color Color, blurRadius float64) *BoxShadow {
	return &BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: 2},
		BlurRadius: blurRadius,
	}
}
