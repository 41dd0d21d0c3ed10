package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
// While animating, status is AnimationForward or AnimationReverse.
// When stopped, status is AnimationDismissed (at 0) or AnimationCompleted (at 1).
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at the lower bound (0.0).
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward the upper bound (1.0).
	AnimationForward
	// AnimationReverse means the animation is playing toward the lower bound (0.0).
	AnimationReverse
	// AnimationCompleted means the animation is stopped at the upper bound (1.0).
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives an animation by producing values over time.
//
// The controller manages a Value that progresses between 0.0 and 1.0 over
// the specified Duration. The Curve function transforms linear progress
// into eased motion. A transition requested mid-animation starts a new
// tween from the current interpolated Value, so retriggering never jumps.
//
// Use [Tween] to map the 0-1 value to other ranges or types like colors
// or transforms.
//
// Always call Dispose when done to stop the animation and release resources.
type AnimationController struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of a full-range animation.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	status          AnimationStatus
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to 1.0.
func (c *AnimationController) Forward() {
	c.animateTo(1, AnimationForward)
}

// Reverse animates from the current value to 0.0.
func (c *AnimationController) Reverse() {
	c.animateTo(0, AnimationReverse)
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	if c.ticker != nil {
		c.ticker.Stop()
	}

	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.settle()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1 {
		progress = 1
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1 {
		c.settle()
	}
}

// settle stops the ticker and resolves the resting status from Value.
func (c *AnimationController) settle() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.Value <= 0 {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= 1 {
		c.setStatus(AnimationCompleted)
	}
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// SetValue stops any running animation and jumps to the given value,
// clamped to [0, 1], notifying listeners.
func (c *AnimationController) SetValue(value float64) {
	c.Stop()
	c.Value = clampUnit(value)
	if c.Value <= 0 {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= 1 {
		c.setStatus(AnimationCompleted)
	}
	c.notifyListeners()
}

// Reset immediately sets the value back to 0.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward || c.status == AnimationReverse
}

// IsCompleted returns true if the animation finished at the upper bound.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// IsDismissed returns true if the animation is at the lower bound.
func (c *AnimationController) IsDismissed() bool {
	return c.status == AnimationDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
