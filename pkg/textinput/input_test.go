package textinput_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/animation"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/textinput"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/uitest"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

func installFakeClock(t *testing.T) *uitest.FakeClock {
	t.Helper()
	clock := uitest.NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

func newTestInput(t *testing.T) (*textinput.TailoredTextInput, *uitest.FakeClock) {
	t.Helper()
	clock := installFakeClock(t)
	in := textinput.NewTailoredTextInput()
	in.SetFrame(rendering.RectFromLTWH(0, 0, 240, 56))
	in.SetPlaceholderText("Name")
	t.Cleanup(in.Dispose)
	view.Render(in)
	return in, clock
}

func settle(clock *uitest.FakeClock) {
	clock.Advance(200 * time.Millisecond)
	animation.StepTickers()
}

// recordingObserver captures observer callbacks for assertions.
type recordingObserver struct {
	texts   []string
	layouts int
}

func (o *recordingObserver) TextChanged(text string) { o.texts = append(o.texts, text) }
func (o *recordingObserver) LayoutCompleted()        { o.layouts++ }

func TestFocusFloatsPlaceholder(t *testing.T) {
	in, clock := newTestInput(t)

	in.Focus()
	if got := in.PlaceholderState(); got != textinput.LabelFloating {
		t.Fatalf("state after focus = %v, want floating", got)
	}
	settle(clock)

	// Text area is bounds inset by (12, 8): 216 wide, centered at y 28.
	// Floating scales to 75% about the leading edge and lifts by 24.
	frame := in.PlaceholderLabel().Layer().RenderedFrame()
	if got := frame.Width(); got < 161.99 || got > 162.01 {
		t.Errorf("floating width = %g, want 162", got)
	}
	if got := frame.Center().Y; got < 3.99 || got > 4.01 {
		t.Errorf("floating center Y = %g, want 4", got)
	}
	if got := frame.Left; got < 11.99 || got > 12.01 {
		t.Errorf("leading edge moved: %g", got)
	}
}

func TestBlurWithTextKeepsLabelFloating(t *testing.T) {
	in, clock := newTestInput(t)

	in.Focus()
	in.SetText("jane")
	settle(clock)
	in.Blur()

	if got := in.PlaceholderState(); got != textinput.LabelFloating {
		t.Errorf("state after blur with text = %v, want floating", got)
	}
}

func TestBlurWhenEmptyCollapsesLabel(t *testing.T) {
	in, clock := newTestInput(t)

	in.Focus()
	settle(clock)
	in.Blur()
	if got := in.PlaceholderState(); got != textinput.LabelCollapsed {
		t.Fatalf("state after blur = %v, want collapsed", got)
	}
	settle(clock)

	if !in.PlaceholderLabel().Layer().Transform.IsIdentity() {
		t.Error("label transform not reset after collapse")
	}
}

func TestTextEnteredOnlyModeIgnoresFocus(t *testing.T) {
	in, clock := newTestInput(t)
	in.SetPlaceholderOnlyChangedOnTextEntered(true)

	in.Focus()
	if got := in.PlaceholderState(); got != textinput.LabelCollapsed {
		t.Fatalf("focus floated the label in text-entered-only mode: %v", got)
	}

	in.SetText("j")
	if got := in.PlaceholderState(); got != textinput.LabelFloating {
		t.Fatalf("state after text = %v, want floating", got)
	}
	settle(clock)

	in.SetText("")
	if got := in.PlaceholderState(); got != textinput.LabelCollapsed {
		t.Errorf("state after clearing text = %v, want collapsed", got)
	}
}

func TestErrorTextTakesOverDetailLabel(t *testing.T) {
	in, _ := newTestInput(t)
	in.SetDetailText("Required")
	in.SetErrorText("Too short")
	view.Render(in)

	detail := in.DetailLabel()
	if detail.Hidden {
		t.Fatal("detail label hidden while error shown")
	}
	if detail.Text != "Too short" {
		t.Errorf("label text = %q, want error text", detail.Text)
	}
	if detail.Style.Color != rendering.ColorRed {
		t.Errorf("label color = %v, want error color", detail.Style.Color)
	}

	in.SetErrorText("")
	view.Render(in)
	if detail.Text != "Required" {
		t.Errorf("label text = %q, want detail text back", detail.Text)
	}
	if detail.Style.Color != rendering.ColorGray {
		t.Errorf("label color = %v, want detail color", detail.Style.Color)
	}
}

func TestDetailCornerMaskFollowsErrorState(t *testing.T) {
	in, _ := newTestInput(t)
	in.SetDetailText("hint")
	in.SetDetailCornerRadius(4)
	in.SetErrorCornerRadius(9)
	view.Render(in)

	if got := in.DetailLabel().Layer().CornerRadius; got != 4 {
		t.Errorf("detail corner radius = %g, want 4", got)
	}

	in.SetErrorText("bad")
	view.Render(in)
	if got := in.DetailLabel().Layer().CornerRadius; got != 9 {
		t.Errorf("error corner radius = %g, want 9", got)
	}
	if !in.DetailLabel().Layer().MasksToBounds {
		t.Error("corner mask not enabled")
	}
}

func TestLineThicknessDoublesOnFocusAndError(t *testing.T) {
	in, _ := newTestInput(t)
	in.SetLineColor(rendering.ColorGray)

	view.Render(in)
	if got := in.BottomLine().Thickness(); got != 1 {
		t.Fatalf("resting thickness = %g, want 1", got)
	}

	in.Focus()
	view.Render(in)
	if got := in.BottomLine().Thickness(); got != 2 {
		t.Errorf("focused thickness = %g, want 2", got)
	}

	in.Blur()
	view.Render(in)
	if got := in.BottomLine().Thickness(); got != 1 {
		t.Errorf("thickness after blur = %g, want 1", got)
	}

	in.SetErrorText("bad")
	view.Render(in)
	if got := in.BottomLine().Thickness(); got != 2 {
		t.Errorf("error thickness = %g, want 2", got)
	}
}

func TestLineColorFollowsFocusAndError(t *testing.T) {
	in, _ := newTestInput(t)
	in.SetLineColor(rendering.ColorGray)
	in.SetActiveLineColor(rendering.ColorBlue)

	view.Render(in)
	if got := in.BottomLine().Color(); got != rendering.ColorGray {
		t.Fatalf("resting line color = %v, want gray", got)
	}

	in.Focus()
	view.Render(in)
	if got := in.BottomLine().Color(); got != rendering.ColorBlue {
		t.Errorf("focused line color = %v, want blue", got)
	}

	in.SetErrorText("bad")
	view.Render(in)
	if got := in.BottomLine().Color(); got != rendering.ColorRed {
		t.Errorf("error line color = %v, want red", got)
	}
}

func TestLineTeardownAndRecreateThroughProperties(t *testing.T) {
	in, _ := newTestInput(t)

	in.SetLineColor(rendering.ColorBlue)
	view.Render(in)
	if in.BottomLine().Overlay() == nil {
		t.Fatal("line overlay not created")
	}

	in.SetLineColor(rendering.ColorTransparent)
	view.Render(in)
	if in.BottomLine().Overlay() != nil {
		t.Fatal("line overlay not torn down on zero color")
	}

	in.SetLineColor(rendering.ColorGreen)
	view.Render(in)
	overlay := in.BottomLine().Overlay()
	if overlay == nil {
		t.Fatal("line overlay not recreated")
	}
	want := rendering.RectFromLTWH(0, 55, 240, 1)
	if got := overlay.Base().Frame(); got != want {
		t.Errorf("overlay frame = %+v, want %+v", got, want)
	}
}

func TestErrorBorderOverridesDisabledBorder(t *testing.T) {
	in, _ := newTestInput(t)
	in.SetBorderEnabled(false)
	in.SetErrorBorderEnabled(true)

	view.Render(in)
	if got := in.Layer().BorderWidth; got != 0 {
		t.Fatalf("border drawn without error: width %g", got)
	}

	in.SetErrorText("bad")
	view.Render(in)
	if got := in.Layer().BorderColor; got != rendering.ColorRed {
		t.Errorf("error border color = %v, want red", got)
	}
	if got := in.Layer().BorderWidth; got != 1 {
		t.Errorf("error border width = %g, want 1", got)
	}

	in.SetErrorText("")
	view.Render(in)
	if got := in.Layer().BorderWidth; got != 0 {
		t.Errorf("border kept after error cleared: width %g", got)
	}
}

func TestShadowAppliedOnlyWithColor(t *testing.T) {
	in, _ := newTestInput(t)

	view.Render(in)
	if in.Layer().Shadow != nil {
		t.Fatal("shadow present without a color")
	}

	in.SetShadowColor(rendering.ColorBlack.WithAlpha(80))
	view.Render(in)
	shadow := in.Layer().Shadow
	if shadow == nil {
		t.Fatal("shadow missing after color set")
	}
	if shadow.Offset != (rendering.Offset{Y: 2}) || shadow.BlurRadius != 4 {
		t.Errorf("shadow parameters = %+v", shadow)
	}

	in.SetShadowColor(rendering.ColorTransparent)
	view.Render(in)
	if in.Layer().Shadow != nil {
		t.Error("shadow kept after color cleared")
	}
}

func TestObserverNotifications(t *testing.T) {
	in, _ := newTestInput(t)
	obs := &recordingObserver{}
	in.SetObserver(obs)

	in.SetText("a")
	in.SetText("ab")
	if !reflect.DeepEqual(obs.texts, []string{"a", "ab"}) {
		t.Errorf("TextChanged sequence = %v", obs.texts)
	}

	view.Render(in)
	if obs.layouts == 0 {
		t.Error("LayoutCompleted never fired")
	}
}

func TestRepeatedLayoutIsIdempotent(t *testing.T) {
	in, clock := newTestInput(t)
	in.SetLineColor(rendering.ColorGray)
	in.SetBorderEnabled(true)
	in.SetCornerRadius(6)
	in.SetDetailText("hint")
	in.Focus()
	settle(clock)

	first := uitest.RecordOps(view.Render(in))
	second := uitest.RecordOps(view.Render(in))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("renders differ for unchanged state:\n%v\n%v", first, second)
	}
}

func TestSharedControllerKeepsInputInSync(t *testing.T) {
	in, _ := newTestInput(t)
	shared := textinput.NewTextEditingController("prefilled")
	in.SetController(shared)

	if got := in.Text(); got != "prefilled" {
		t.Fatalf("text = %q, want prefilled", got)
	}
	if got := in.PlaceholderState(); got != textinput.LabelFloating {
		t.Fatalf("state with prefilled text = %v, want floating", got)
	}
	if animation.HasActiveTickers() {
		t.Error("controller swap animated the label")
	}

	shared.SetText("")
	if got := in.PlaceholderState(); got != textinput.LabelCollapsed {
		t.Errorf("state after external clear = %v, want collapsed", got)
	}
}
