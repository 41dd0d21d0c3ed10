package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/errors"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// ParseColor parses "#RRGGBB" or "#AARRGGBB" hex notation into a Color.
// Six-digit colors are opaque.
func ParseColor(s string) (rendering.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q: missing # prefix", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return rendering.Color(value | 0xFF000000), nil
	case 8:
		return rendering.Color(value), nil
	default:
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
}

// hexColor decodes a YAML scalar in hex color notation.
type hexColor rendering.Color

func (c *hexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = hexColor(parsed)
	return nil
}

// themeFile is the on-disk YAML shape of a theme. Omitted colors stay at
// the loaded base theme's values; the border flags and metrics are taken
// from the file as-is.
type themeFile struct {
	Colors struct {
		Text              hexColor `yaml:"text"`
		Placeholder       hexColor `yaml:"placeholder"`
		ActivePlaceholder hexColor `yaml:"active_placeholder"`
		ErrorPlaceholder  hexColor `yaml:"error_placeholder"`
		Detail            hexColor `yaml:"detail"`
		Error             hexColor `yaml:"error"`
		Line              hexColor `yaml:"line"`
		ActiveLine        hexColor `yaml:"active_line"`
		ErrorLine         hexColor `yaml:"error_line"`
		Border            hexColor `yaml:"border"`
		ErrorBorder       hexColor `yaml:"error_border"`
		Background        hexColor `yaml:"background"`
		Shadow            hexColor `yaml:"shadow"`
	} `yaml:"colors"`

	Border struct {
		Enabled      bool    `yaml:"enabled"`
		ErrorEnabled bool    `yaml:"error_enabled"`
		Width        float64 `yaml:"width"`
		CornerRadius float64 `yaml:"corner_radius"`
	} `yaml:"border"`

	FloatingOffset struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"floating_offset"`
}

// LoadFile reads a theme from a YAML file, starting from the default
// light theme and overriding every color the file specifies. Load errors
// are reported as structured theme errors.
func LoadFile(path string) (*TextInputTheme, error) {
	const op = "theme.LoadFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapLoadError(op, path, errors.KindTheme, err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, wrapLoadError(op, path, errors.KindParsing, err)
	}

	t := DefaultTextInputTheme(DefaultColorScheme())
	overrideColor(&t.TextColor, file.Colors.Text)
	overrideColor(&t.PlaceholderColor, file.Colors.Placeholder)
	overrideColor(&t.ActivePlaceholderColor, file.Colors.ActivePlaceholder)
	overrideColor(&t.ErrorPlaceholderColor, file.Colors.ErrorPlaceholder)
	overrideColor(&t.DetailColor, file.Colors.Detail)
	overrideColor(&t.ErrorColor, file.Colors.Error)
	overrideColor(&t.LineColor, file.Colors.Line)
	overrideColor(&t.ActiveLineColor, file.Colors.ActiveLine)
	overrideColor(&t.ErrorLineColor, file.Colors.ErrorLine)
	overrideColor(&t.BorderColor, file.Colors.Border)
	overrideColor(&t.ErrorBorderColor, file.Colors.ErrorBorder)
	overrideColor(&t.BackgroundColor, file.Colors.Background)
	overrideColor(&t.ShadowColor, file.Colors.Shadow)

	t.BorderEnabled = file.Border.Enabled
	t.ErrorBorderEnabled = file.Border.ErrorEnabled
	if file.Border.Width > 0 {
		t.BorderWidth = file.Border.Width
	}
	t.CornerRadius = file.Border.CornerRadius
	if file.FloatingOffset.X != 0 || file.FloatingOffset.Y != 0 {
		t.FloatingOffset = rendering.Offset{X: file.FloatingOffset.X, Y: file.FloatingOffset.Y}
	}
	return t, nil
}

func overrideColor(dst *rendering.Color, src hexColor) {
	if src != 0 {
		*dst = rendering.Color(src)
	}
}

func wrapLoadError(op, path string, kind errors.ErrorKind, err error) *errors.UIError {
	uiErr := errors.New(op, kind, err)
	uiErr.Path = path
	return uiErr
}
