package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

type captureHandler struct {
	errs   []*UIError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *UIError)    { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func withCaptureHandler(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })
	return h
}

func TestUIErrorFormatting(t *testing.T) {
	base := stderrors.New("unexpected mapping node")
	err := New("theme.LoadFile", KindTheme, base)
	err.Path = "theme.yaml"

	msg := err.Error()
	if !strings.Contains(msg, "theme.LoadFile") || !strings.Contains(msg, "[theme]") || !strings.Contains(msg, "theme.yaml") {
		t.Errorf("message missing fields: %q", msg)
	}
	if !stderrors.Is(err, base) {
		t.Error("Unwrap chain broken")
	}
}

func TestReportFillsTimestamp(t *testing.T) {
	h := withCaptureHandler(t)

	Report(&UIError{Op: "render", Kind: KindRender, Err: stderrors.New("boom")})
	if len(h.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestRecoverReportsPanics(t *testing.T) {
	h := withCaptureHandler(t)

	func() {
		defer func() {
			Recover("textinput.layout", recover())
		}()
		panic("bad frame")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("reported %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Value != "bad frame" || p.Op != "textinput.layout" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("stack trace not captured")
	}
}

func TestRecoverIgnoresNil(t *testing.T) {
	h := withCaptureHandler(t)

	func() {
		defer func() {
			Recover("textinput.layout", recover())
		}()
	}()

	if len(h.panics) != 0 {
		t.Errorf("reported %d panics for nil recover", len(h.panics))
	}
}
