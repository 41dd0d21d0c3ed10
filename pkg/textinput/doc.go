// Package textinput implements a floating-label text input control.
//
// [TailoredTextInput] is a single view carrying its own placeholder,
// bottom line, border, shadow and detail/error text. The placeholder
// doubles as the floating label: while the input is empty it rests over
// the text area at full size, and once the input has content (or focus,
// depending on the configured mode) it shrinks to 75% and moves above
// the text over a 150ms ease-in-out transition. Transitions requested
// mid-flight continue from the current pose.
//
// [TailoredTextInputLayout] is the composite variant: it arranges an
// input box between separate placeholder, detail and error labels so the
// box's border and shadow wrap only the text area. It observes the inner
// input through [InputObserver] and re-derives its own decoration
// whenever the inner input completes a layout pass.
//
// [BottomLine] is the underline decorator both variants use. It creates
// its overlay lazily when a color is first set, tears it down when the
// color is cleared to zero, and doubles its thickness while the input is
// focused or showing an error.
//
// Animations are driven by the animation package's frame pump: hosts
// call animation.StepTickers once per frame; tests install a fake clock
// with animation.SetClock and advance it manually.
package textinput
