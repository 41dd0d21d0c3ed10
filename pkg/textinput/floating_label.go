package textinput

import (
	"fmt"
	"time"

	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/animation"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

// LabelState identifies where the placeholder label currently rests.
type LabelState int

const (
	// LabelCollapsed shows the label at full size inside the text area,
	// acting as the placeholder.
	LabelCollapsed LabelState = iota
	// LabelFloating shows the label scaled down above the text area.
	LabelFloating
)

// String returns a human-readable representation of the label state.
func (s LabelState) String() string {
	switch s {
	case LabelCollapsed:
		return "collapsed"
	case LabelFloating:
		return "floating"
	default:
		return fmt.Sprintf("LabelState(%d)", int(s))
	}
}

const (
	floatingScale    = 0.75
	floatingDuration = 150 * time.Millisecond
)

// DefaultFloatingOffset is the upward shift applied to a floating label
// when no explicit offset is configured.
var DefaultFloatingOffset = rendering.Offset{Y: -24}

// leadingCenterAnchor keeps the label's leading edge fixed while it
// scales, so the shrinking text stays aligned with the text start.
var leadingCenterAnchor = rendering.Offset{X: 0, Y: 0.5}

// floatingLabel drives a label between its resting placeholder pose and
// the shrunken pose above the text area. The label's frame never changes;
// floating is expressed entirely through the layer transform, so a
// transition requested mid-flight continues from the current pose instead
// of jumping.
type floatingLabel struct {
	label *view.Label
	anim  *animation.AnimationController
	state LabelState

	scale *animation.Tween[float64]
	shift *animation.Tween[rendering.Offset]
	tint  *animation.Tween[rendering.Color]
}

func newFloatingLabel(label *view.Label) *floatingLabel {
	f := &floatingLabel{
		label: label,
		anim:  animation.NewAnimationController(floatingDuration),
		scale: animation.TweenFloat64(1, floatingScale),
		shift: animation.TweenOffset(rendering.Offset{}, DefaultFloatingOffset),
		tint:  animation.TweenColor(0, 0),
	}
	f.anim.Curve = animation.EaseInOut
	f.anim.AddListener(f.apply)
	f.anim.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationDismissed {
			f.label.Layer().Transform = rendering.MatrixIdentity()
			f.label.Layer().ResetAnchorPoint()
		}
	})
	return f
}

// configure sets the colors blended across the transition and the offset
// of the floating pose, then re-applies the current pose so changes made
// while settled take effect immediately.
func (f *floatingLabel) configure(collapsed, floating rendering.Color, offset rendering.Offset) {
	f.tint.Begin = collapsed
	f.tint.End = floating
	f.shift.End = offset
	f.apply()
}

// transitionTo moves the label toward the given state. Animated
// transitions run over the floating duration with ease-in-out timing;
// non-animated ones snap. Requesting the state the label is already in,
// or already heading to, leaves the animation alone.
func (f *floatingLabel) transitionTo(state LabelState, animated bool) {
	if state == f.state {
		f.apply()
		return
	}
	f.state = state
	f.label.Layer().SetAnchorPoint(leadingCenterAnchor)

	switch {
	case !animated && state == LabelFloating:
		f.anim.SetValue(1)
	case !animated:
		f.anim.SetValue(0)
	case state == LabelFloating:
		f.anim.Forward()
	default:
		f.anim.Reverse()
	}
}

// apply writes the pose for the animation's current value onto the label.
func (f *floatingLabel) apply() {
	t := f.anim.Value
	s := f.scale.Evaluate(t)
	offset := f.shift.Evaluate(t)
	f.label.Layer().Transform = rendering.MatrixTranslation(offset.X, offset.Y).Scaled(s, s)
	if !f.tint.Begin.IsZero() || !f.tint.End.IsZero() {
		f.label.Style.Color = f.tint.Evaluate(t)
	}
}

func (f *floatingLabel) dispose() {
	f.anim.Dispose()
}

// labelStateFor derives the resting state from the editing state.
// The label floats whenever there is text; with the focus-driven mode it
// also floats while the input is focused, even when still empty.
func labelStateFor(text string, focused, onlyOnTextEntered bool) LabelState {
	if text != "" {
		return LabelFloating
	}
	if focused && !onlyOnTextEntered {
		return LabelFloating
	}
	return LabelCollapsed
}
