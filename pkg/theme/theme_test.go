package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	uierrors "github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/errors"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/textinput"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    rendering.Color
		wantErr bool
	}{
		{"#FF0000", rendering.ColorRed, false},
		{"#80FF0000", rendering.Color(0x80FF0000), false},
		{"FF0000", 0, true},
		{"#F00", 0, true},
		{"#GGGGGG", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q): want error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %08X, want %08X", tc.in, uint32(got), uint32(tc.want))
		}
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := `
colors:
  placeholder: "#888888"
  active_line: "#FF00FF"
  shadow: "#40000000"
border:
  enabled: true
  width: 2
  corner_radius: 6
floating_offset:
  y: -30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.PlaceholderColor != rendering.Color(0xFF888888) {
		t.Errorf("placeholder = %08X", uint32(loaded.PlaceholderColor))
	}
	if loaded.ActiveLineColor != rendering.Color(0xFFFF00FF) {
		t.Errorf("active line = %08X", uint32(loaded.ActiveLineColor))
	}
	if loaded.ShadowColor != rendering.Color(0x40000000) {
		t.Errorf("shadow = %08X", uint32(loaded.ShadowColor))
	}
	if !loaded.BorderEnabled || loaded.BorderWidth != 2 || loaded.CornerRadius != 6 {
		t.Errorf("border = %+v", loaded)
	}
	if loaded.FloatingOffset != (rendering.Offset{Y: -30}) {
		t.Errorf("floating offset = %+v", loaded.FloatingOffset)
	}
	// Unspecified colors keep the base theme's values.
	base := DefaultTextInputTheme(DefaultColorScheme())
	if loaded.TextColor != base.TextColor || loaded.LineColor != base.LineColor {
		t.Error("unspecified colors did not keep defaults")
	}
}

func TestLoadFileErrorsAreStructured(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var uiErr *uierrors.UIError
	if !stderrors.As(err, &uiErr) {
		t.Fatalf("error type = %T", err)
	}
	if uiErr.Kind != uierrors.KindTheme || uiErr.Path == "" {
		t.Errorf("error = %+v", uiErr)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("colors: {placeholder: \"no-hash\"}"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(path)
	if !stderrors.As(err, &uiErr) || uiErr.Kind != uierrors.KindParsing {
		t.Errorf("malformed color error = %v", err)
	}
}

func TestApplyStylesInput(t *testing.T) {
	scheme := DefaultColorScheme()
	in := textinput.NewTailoredTextInput()
	in.SetFrame(rendering.RectFromLTWH(0, 0, 240, 56))
	defer in.Dispose()

	OutlinedTextInputTheme(scheme).Apply(in)
	view.Render(in)

	if got := in.Layer().BorderColor; got != scheme.Outline {
		t.Errorf("border color = %08X, want outline", uint32(got))
	}
	if got := in.Layer().CornerRadius; got != 8 {
		t.Errorf("corner radius = %g, want 8", got)
	}
	if in.BottomLine().Overlay() != nil {
		t.Error("outlined theme kept the bottom line")
	}

	DefaultTextInputTheme(scheme).Apply(in)
	view.Render(in)
	if in.BottomLine().Overlay() == nil {
		t.Error("underline theme did not create the bottom line")
	}
	if got := in.Layer().BorderWidth; got != 0 {
		t.Errorf("underline theme kept the border: width %g", got)
	}
}
