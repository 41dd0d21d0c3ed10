package textinput_test

import (
	"fmt"

	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/textinput"
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/view"
)

// This example shows the focus and error flow of a single input.
// In a real app, a host frame loop calls animation.StepTickers and
// view.Render each frame.
func ExampleTailoredTextInput() {
	input := textinput.NewTailoredTextInput()
	input.SetFrame(rendering.RectFromLTWH(0, 0, 240, 56))
	input.SetPlaceholderText("Email")
	input.SetDetailText("We never share it")
	input.SetActiveLineColor(rendering.ColorBlue)

	// Focus floats the placeholder and doubles the bottom line.
	input.Focus()
	input.SetText("jane@example.com")

	// An error recolors the decoration and replaces the detail text.
	input.SetErrorText("Address already registered")
	view.Render(input)
	fmt.Println(input.DetailLabel().Text)

	// Clearing the error restores the detail text.
	input.SetErrorText("")
	view.Render(input)
	fmt.Println(input.DetailLabel().Text)

	input.Dispose()

	// Output:
	// Address already registered
	// We never share it
}

// This example shows how to observe text and layout changes.
func ExampleTailoredTextInput_observer() {
	input := textinput.NewTailoredTextInput()
	input.SetFrame(rendering.RectFromLTWH(0, 0, 240, 56))
	input.SetPlaceholderText("Name")
	input.SetObserver(printObserver{})

	input.SetText("Jane")
	input.Dispose()

	// Output:
	// text changed: "Jane"
}

type printObserver struct{}

func (printObserver) TextChanged(text string) { fmt.Printf("text changed: %q\n", text) }
func (printObserver) LayoutCompleted()        {}

// This example shows how to share one controller between inputs, the way
// a host text editor drives the control.
func ExampleTextEditingController() {
	controller := textinput.NewTextEditingController("prefilled")

	input := textinput.NewTailoredTextInput()
	input.SetFrame(rendering.RectFromLTWH(0, 0, 240, 56))
	input.SetPlaceholderText("City")
	input.SetController(controller)

	// Text set through the controller reaches the input.
	controller.SetText("Budapest")
	fmt.Println(input.Text())
	fmt.Println(input.PlaceholderState())

	input.Dispose()

	// Output:
	// Budapest
	// floating
}

// This example shows the composite container with its own label zones.
func ExampleTailoredTextInputLayout() {
	layout := textinput.NewTailoredTextInputLayout()
	layout.SetFrame(rendering.RectFromLTWH(0, 0, 240, 104))
	layout.SetPlaceholderText("Password")
	layout.SetDetailText("At least 8 characters")
	layout.SetBoxBackgroundColor(rendering.ColorWhite)

	layout.SetText("hunter2")
	layout.SetErrorText("Password too short")
	view.Render(layout)

	fmt.Println(layout.ErrorLabel().Text)
	layout.Dispose()

	// Output:
	// Password too short
}
