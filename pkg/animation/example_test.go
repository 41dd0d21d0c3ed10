package animation_test

import (
	"fmt"
	"time"

	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/animation"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// This example shows how to create and control an animation.
func ExampleAnimationController() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	controller.Curve = animation.EaseOut

	// Listen for value changes
	controller.AddListener(func() {
		fmt.Printf("Value: %.2f\n", controller.Value)
	})

	// Animate forward (0 -> 1)
	controller.Forward()

	// Later, animate in reverse (1 -> 0)
	controller.Reverse()

	// Clean up when done
	controller.Dispose()
}

// This example shows how to use tweens with an animation controller.
func ExampleAnimationController_withTween() {
	controller := animation.NewAnimationController(500 * time.Millisecond)

	// Create tweens to map 0-1 range to other values
	scaleTween := animation.TweenFloat64(1.0, 0.75)
	colorTween := animation.TweenColor(
		rendering.ColorGray,
		rendering.ColorBlue,
	)

	controller.AddListener(func() {
		scale := scaleTween.Transform(controller)
		color := colorTween.Transform(controller)
		_ = scale
		_ = color
	})

	controller.Forward()
	controller.Dispose()
}

// This example shows how to listen for animation status changes.
func ExampleAnimationController_statusListener() {
	controller := animation.NewAnimationController(300 * time.Millisecond)

	controller.AddStatusListener(func(status animation.AnimationStatus) {
		switch status {
		case animation.AnimationDismissed:
			fmt.Println("Animation at start (0)")
		case animation.AnimationForward:
			fmt.Println("Animating forward")
		case animation.AnimationReverse:
			fmt.Println("Animating in reverse")
		case animation.AnimationCompleted:
			fmt.Println("Animation completed (1)")
		}
	})

	controller.Forward()
	controller.Dispose()
}

// This example shows how to create a tween for basic interpolation.
func ExampleTween() {
	// Create tweens for different value types
	opacity := animation.TweenFloat64(0.0, 1.0)
	shift := animation.TweenOffset(
		rendering.Offset{X: 0, Y: 0},
		rendering.Offset{X: 0, Y: -24},
	)

	// Evaluate at different progress values
	fmt.Printf("Opacity at 0.5: %.1f\n", opacity.Evaluate(0.5))
	fmt.Printf("Shift at 1.0: (%.0f, %.0f)\n", shift.Evaluate(1.0).X, shift.Evaluate(1.0).Y)

	// Output:
	// Opacity at 0.5: 0.5
	// Shift at 1.0: (0, -24)
}

// This example shows how to create a custom tween with a Lerp function.
func ExampleTween_customType() {
	type Thickness struct {
		Resting, Active float64
	}

	thicknessTween := &animation.Tween[Thickness]{
		Begin: Thickness{1, 2},
		End:   Thickness{2, 4},
		Lerp: func(a, b Thickness, t float64) Thickness {
			return Thickness{
				Resting: a.Resting + (b.Resting-a.Resting)*t,
				Active:  a.Active + (b.Active-a.Active)*t,
			}
		},
	}

	mid := thicknessTween.Evaluate(0.5)
	fmt.Printf("Midpoint: (%.1f, %.1f)\n", mid.Resting, mid.Active)

	// Output:
	// Midpoint: (1.5, 3.0)
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// Create a custom curve matching CSS cubic-bezier(0.4, 0.0, 0.2, 1.0)
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	// The curve transforms linear progress to eased progress
	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}
