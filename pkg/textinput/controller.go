package textinput

import "sync"

// TextEditingController holds the editable text of an input and notifies
// listeners when it changes. A controller can be shared so external code
// reads or rewrites the text while the input stays in sync.
type TextEditingController struct {
	text           string
	listeners      map[int]func()
	nextListenerID int
	mu             sync.RWMutex
}

// NewTextEditingController creates a controller with the given initial text.
func NewTextEditingController(text string) *TextEditingController {
	return &TextEditingController{
		text:      text,
		listeners: make(map[int]func()),
	}
}

// Text returns the current text content.
func (c *TextEditingController) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.text
}

// SetText sets the text content, notifying listeners when it changed.
func (c *TextEditingController) SetText(text string) {
	c.mu.Lock()
	if c.text == text {
		c.mu.Unlock()
		return
	}
	c.text = text
	c.mu.Unlock()
	c.notifyListeners()
}

// Clear empties the text content.
func (c *TextEditingController) Clear() {
	c.SetText("")
}

// AddListener adds a callback invoked after every text change.
// Returns a function to remove the listener.
func (c *TextEditingController) AddListener(fn func()) func() {
	c.mu.Lock()
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *TextEditingController) notifyListeners() {
	c.mu.RLock()
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
