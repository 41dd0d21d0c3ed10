package textinput

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/errors"
)

// InputObserver receives notifications from a [TailoredTextInput].
// [TailoredTextInputLayout] implements it to keep its own labels and
// decoration in step with the inner input; applications can implement it
// for validation or analytics.
type InputObserver interface {
	// TextChanged is called after the input's text changed, whether from
	// typing or a programmatic SetText.
	TextChanged(text string)

	// LayoutCompleted is called after the input finished a layout pass
	// and its derived decoration state has been recomputed.
	LayoutCompleted()
}

// Observer callbacks run application code; a panic there must not take
// the host frame loop down, so dispatch recovers and reports instead.

func notifyTextChanged(observer InputObserver, text string) {
	if observer == nil {
		return
	}
	defer func() {
		errors.Recover("textinput.InputObserver.TextChanged", recover())
	}()
	observer.TextChanged(text)
}

func notifyLayoutCompleted(observer InputObserver) {
	if observer == nil {
		return
	}
	defer func() {
		errors.Recover("textinput.InputObserver.LayoutCompleted", recover())
	}()
	observer.LayoutCompleted()
}
