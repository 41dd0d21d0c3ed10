package animation

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of an [AnimationController] to any value range
// or type. Use the helper constructors ([TweenFloat64], [TweenColor],
// [TweenOffset]) for common types, or create custom tweens with a Lerp
// function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b rendering.Offset, t float64) rendering.Offset {
	return rendering.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor linearly interpolates between two Color values per channel.
func LerpColor(a, b rendering.Color, t float64) rendering.Color {
	return rendering.RGBA(
		lerpByte(uint8(a>>16), uint8(b>>16), t),
		lerpByte(uint8(a>>8), uint8(b>>8), t),
		lerpByte(uint8(a), uint8(b), t),
		lerpByte(uint8(a>>24), uint8(b>>24), t),
	)
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(LerpFloat64(float64(a), float64(b), t))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end rendering.Offset) *Tween[rendering.Offset] {
	return &Tween[rendering.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end rendering.Color) *Tween[rendering.Color] {
	return &Tween[rendering.Color]{Begin: begin, End: end, Lerp: LerpColor}
}
