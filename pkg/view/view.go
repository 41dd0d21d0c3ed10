// Package view implements a small retained-mode view layer: views own a
// frame, a background, a [Layer] for transforms and decoration, and a
// subview tree that is laid out on demand and painted into a
// rendering.DisplayList.
//
// The model deliberately mirrors native mobile toolkits rather than a
// declarative build system: property setters mutate views in place and mark
// them for layout; the next [Render] call runs the layout pass and records
// the frame.
package view

import (
	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// View is the interface implemented by every node in the view tree.
// Concrete views embed [ViewBase] and override the hooks they need.
type View interface {
	// Base returns the embedded ViewBase carrying tree and layer state.
	Base() *ViewBase

	// LayoutSubviews positions the view's subviews. Called during the
	// layout pass whenever the view has been marked as needing layout.
	// The base implementation does nothing.
	LayoutSubviews()

	// DrawContent paints the view's own content (after background chrome,
	// before subviews) in local bounds coordinates.
	// The base implementation does nothing.
	DrawContent(canvas rendering.Canvas)
}

// BasicView is a plain view with no content of its own, useful as a
// container for other views.
type BasicView struct {
	ViewBase
}

// NewView creates an empty container view.
func NewView() *BasicView {
	v := &BasicView{}
	v.Init(v)
	return v
}

// ViewBase provides the common state and tree plumbing for views.
// Embed it and call Init with the outer view so hooks dispatch correctly.
type ViewBase struct {
	layer *Layer

	// BackgroundColor fills the (rounded) bounds. Zero paints nothing.
	BackgroundColor rendering.Color

	// Hidden excludes the view and its subviews from rendering.
	Hidden bool

	owner       View
	superview   View // non-owning back-reference; never outlives the parent
	subviews    []View
	needsLayout bool
}

// Init wires the embedded base to its outer view. Must be called once by
// concrete view constructors before the view is used.
func (v *ViewBase) Init(owner View) {
	v.layer = newLayer()
	v.owner = owner
	v.needsLayout = true
}

// Base implements View.
func (v *ViewBase) Base() *ViewBase { return v }

// LayoutSubviews implements View with a no-op.
func (v *ViewBase) LayoutSubviews() {}

// DrawContent implements View with a no-op.
func (v *ViewBase) DrawContent(canvas rendering.Canvas) {}

// Layer returns the view's rendering layer.
func (v *ViewBase) Layer() *Layer {
	return v.layer
}

// Frame returns the view's untransformed rectangle in its superview's
// coordinate space.
func (v *ViewBase) Frame() rendering.Rect {
	return v.layer.Frame()
}

// SetFrame moves and resizes the view, marking it for layout when the
// frame actually changes.
func (v *ViewBase) SetFrame(frame rendering.Rect) {
	if v.layer.Frame() == frame {
		return
	}
	v.layer.SetFrame(frame)
	v.SetNeedsLayout()
}

// Bounds returns the view's local extent.
func (v *ViewBase) Bounds() rendering.Size {
	return v.layer.Bounds()
}

// Superview returns the parent view, or nil at the root.
func (v *ViewBase) Superview() View {
	return v.superview
}

// Subviews returns the view's children in paint order.
func (v *ViewBase) Subviews() []View {
	return v.subviews
}

// AddSubview appends child to the view's subviews, removing it from any
// previous parent first.
func (v *ViewBase) AddSubview(child View) {
	if child == nil {
		return
	}
	base := child.Base()
	if base.superview != nil {
		base.RemoveFromSuperview()
	}
	base.superview = v.owner
	v.subviews = append(v.subviews, child)
	v.SetNeedsLayout()
}

// RemoveFromSuperview detaches the view from its parent. No-op at the root.
func (v *ViewBase) RemoveFromSuperview() {
	parent := v.superview
	if parent == nil {
		return
	}
	siblings := parent.Base().subviews
	for i, sibling := range siblings {
		if sibling.Base() == v {
			parent.Base().subviews = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	v.superview = nil
	parent.Base().SetNeedsLayout()
}

// SetNeedsLayout marks the view so the next layout pass calls its
// LayoutSubviews hook.
func (v *ViewBase) SetNeedsLayout() {
	v.needsLayout = true
}

// NeedsLayout reports whether a layout pass is pending for this view.
func (v *ViewBase) NeedsLayout() bool {
	return v.needsLayout
}

// LayoutIfNeeded runs LayoutSubviews on this view if marked, then
// recurses into subviews. Layout hooks may mark views again; callers that
// need a settled tree call this until it converges (Render does).
func (v *ViewBase) LayoutIfNeeded() {
	if v.needsLayout {
		v.needsLayout = false
		if v.owner != nil {
			v.owner.LayoutSubviews()
		}
	}
	for _, child := range v.subviews {
		child.Base().LayoutIfNeeded()
	}
}
