// Command example drives the floating-label controls headlessly: it
// builds a small sign-up form, simulates a typing session frame by
// frame, and prints what each render pass painted.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/animation"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/errors"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/textinput"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/theme"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

const (
	formWidth   = 320
	inputHeight = 56
	rowSpacing  = 16
	frameTime   = 16 * time.Millisecond
)

// logObserver prints the observer callbacks of one named input.
type logObserver struct {
	name string
}

func (o *logObserver) TextChanged(text string) {
	fmt.Printf("  [%s] text changed: %q\n", o.name, text)
}

func (o *logObserver) LayoutCompleted() {}

func main() {
	errors.SetHandler(&errors.LogHandler{Verbose: false})

	inputTheme := loadTheme()

	name := textinput.NewTailoredTextInput()
	name.SetPlaceholderText("Full name")
	name.SetObserver(&logObserver{name: "name"})
	inputTheme.Apply(name)

	email := textinput.NewTailoredTextInput()
	email.SetPlaceholderText("Email")
	email.SetDetailText("We never share it")
	email.SetObserver(&logObserver{name: "email"})
	inputTheme.Apply(email)

	code := textinput.NewTailoredTextInput()
	code.SetPlaceholderText("Invite code")
	code.SetPlaceholderOnlyChangedOnTextEntered(true)
	theme.OutlinedTextInputTheme(theme.DefaultColorScheme()).Apply(code)

	password := textinput.NewTailoredTextInputLayout()
	password.SetPlaceholderText("Password")
	password.SetDetailText("At least 8 characters")
	password.SetObserver(&logObserver{name: "password"})
	inputTheme.ApplyToLayout(password)

	form := buildForm(name, email, code, password)

	fmt.Println("== initial render ==")
	renderFrame(form)

	fmt.Println("== focus and type ==")
	name.Focus()
	pumpFrames(form, 12)
	typeText(name, "Jane Doe")
	pumpFrames(form, 12)
	name.Blur()

	email.Focus()
	typeText(email, "jane@example")
	pumpFrames(form, 12)

	fmt.Println("== validation ==")
	// Each input validates and flags itself.
	if !validEmail(email.Text()) {
		email.SetErrorText("Enter a full address")
	}
	if len(password.Text()) < 8 {
		password.SetErrorText("Password too short")
	}
	renderFrame(form)

	fmt.Println("== fix and clear ==")
	typeText(email, ".com")
	if validEmail(email.Text()) {
		email.SetErrorText("")
	}
	password.SetText("hunter2hunter2")
	password.SetErrorText("")
	pumpFrames(form, 12)

	name.Dispose()
	email.Dispose()
	code.Dispose()
	password.Dispose()
}

func loadTheme() *theme.TextInputTheme {
	loaded, err := theme.LoadFile("theme.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "falling back to default theme: %v\n", err)
		return theme.DefaultTextInputTheme(theme.DefaultColorScheme())
	}
	return loaded
}

// buildForm stacks the inputs vertically in a plain container view.
func buildForm(rows ...view.View) view.View {
	form := view.NewView()
	form.SetFrame(rendering.RectFromLTWH(0, 0, formWidth, 480))

	y := float64(rowSpacing)
	for _, row := range rows {
		height := float64(inputHeight)
		if _, ok := row.(*textinput.TailoredTextInputLayout); ok {
			height = inputHeight + 48
		}
		row.Base().SetFrame(rendering.RectFromLTWH(0, y, formWidth, height))
		form.AddSubview(row)
		y += height + rowSpacing
	}
	return form
}

// typeText appends the string one rune at a time, the way key input
// arrives, so each change runs through the controller listeners.
func typeText(in interface {
	Text() string
	SetText(string)
}, s string) {
	for _, r := range s {
		in.SetText(in.Text() + string(r))
	}
}

// pumpFrames advances the animation clock and renders, like a host
// frame loop would.
func pumpFrames(root view.View, frames int) {
	for range frames {
		time.Sleep(frameTime)
		animation.StepTickers()
	}
	renderFrame(root)
}

func renderFrame(root view.View) {
	list := view.Render(root)
	fmt.Printf("  rendered %d ops at %gx%g\n", list.OpCount(), list.Size().Width, list.Size().Height)
}

func validEmail(s string) bool {
	for i, r := range s {
		if r == '@' && i > 0 {
			for _, rest := range s[i:] {
				if rest == '.' {
					return true
				}
			}
		}
	}
	return false
}
