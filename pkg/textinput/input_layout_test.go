package textinput_test

import (
	"reflect"
	"testing"

	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/textinput"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/uitest"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

func newTestLayout(t *testing.T) (*textinput.TailoredTextInputLayout, *uitest.FakeClock) {
	t.Helper()
	clock := installFakeClock(t)
	l := textinput.NewTailoredTextInputLayout()
	l.SetFrame(rendering.RectFromLTWH(0, 0, 240, 104))
	l.SetPlaceholderText("Email")
	t.Cleanup(l.Dispose)
	view.Render(l)
	return l, clock
}

func TestLayoutZones(t *testing.T) {
	l, _ := newTestLayout(t)
	l.SetDetailText("We never share it")
	view.Render(l)

	box := l.Box().Base().Frame()
	if box.Top != 24 {
		t.Errorf("box top = %g, want the floating zone height", box.Top)
	}
	if box.Width() != 240 {
		t.Errorf("box width = %g, want full width", box.Width())
	}

	detail := l.DetailLabel().Frame()
	if detail.Top != box.Bottom+4 {
		t.Errorf("detail top = %g, want %g", detail.Top, box.Bottom+4)
	}
	if box.Bottom >= 104-detail.Height() {
		t.Errorf("box bottom %g leaves no room for the detail strip", box.Bottom)
	}
}

func TestContainerFloatsLabelIntoZone(t *testing.T) {
	l, clock := newTestLayout(t)

	l.Focus()
	settle(clock)

	frame := l.PlaceholderLabel().Layer().RenderedFrame()
	if got := frame.Center().Y; got < 11.99 || got > 12.01 {
		t.Errorf("floating center Y = %g, want the zone center 12", got)
	}
	collapsedWidth := l.PlaceholderLabel().Frame().Width()
	if got := frame.Width(); got < collapsedWidth*0.75-0.01 || got > collapsedWidth*0.75+0.01 {
		t.Errorf("floating width = %g, want %g", got, collapsedWidth*0.75)
	}
}

func TestContainerErrorSwapsLabels(t *testing.T) {
	l, _ := newTestLayout(t)
	l.SetDetailText("hint")
	view.Render(l)

	if l.DetailLabel().Hidden {
		t.Fatal("detail label hidden without error")
	}
	if !l.ErrorLabel().Hidden {
		t.Fatal("error label visible without error")
	}

	l.SetErrorText("Invalid address")
	view.Render(l)
	if !l.DetailLabel().Hidden {
		t.Error("detail label still visible with error")
	}
	if l.ErrorLabel().Hidden {
		t.Error("error label hidden with error")
	}
	if l.ErrorLabel().Text != "Invalid address" {
		t.Errorf("error label text = %q", l.ErrorLabel().Text)
	}

	l.SetErrorText("")
	view.Render(l)
	if l.DetailLabel().Hidden || !l.ErrorLabel().Hidden {
		t.Error("labels not swapped back after error cleared")
	}
}

func TestContainerLineAttachesToBox(t *testing.T) {
	l, _ := newTestLayout(t)
	l.SetLineColor(rendering.ColorGray)
	view.Render(l)

	overlay := l.BottomLine().Overlay()
	if overlay == nil {
		t.Fatal("line overlay not created")
	}
	if overlay.Base().Superview() != l.Box() {
		t.Fatal("line overlay not hosted on the box")
	}
	boxHeight := l.Box().Base().Bounds().Height
	want := rendering.RectFromLTWH(0, boxHeight-1, 240, 1)
	if got := overlay.Base().Frame(); got != want {
		t.Errorf("overlay frame = %+v, want %+v", got, want)
	}
}

func TestContainerForwardsObserverEvents(t *testing.T) {
	l, _ := newTestLayout(t)
	obs := &recordingObserver{}
	l.SetObserver(obs)

	l.SetText("a@b.c")
	if !reflect.DeepEqual(obs.texts, []string{"a@b.c"}) {
		t.Fatalf("TextChanged sequence = %v", obs.texts)
	}
	if got := l.PlaceholderState(); got != textinput.LabelFloating {
		t.Errorf("container label state = %v, want floating", got)
	}

	view.Render(l)
	if obs.layouts == 0 {
		t.Error("LayoutCompleted not forwarded")
	}
}

func TestContainerPicksUpDirectInputMutation(t *testing.T) {
	l, clock := newTestLayout(t)
	l.SetLineColor(rendering.ColorGray)
	view.Render(l)

	// Focus the inner input directly, bypassing the container's methods.
	// The container catches up when the inner input's layout completes.
	l.Input().Focus()
	view.Render(l)
	settle(clock)

	if got := l.BottomLine().Thickness(); got != 2 {
		t.Errorf("line thickness = %g, want 2 after inner focus", got)
	}
	if got := l.PlaceholderState(); got != textinput.LabelFloating {
		t.Errorf("container label state = %v, want floating", got)
	}
}
