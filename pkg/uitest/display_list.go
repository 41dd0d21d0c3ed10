package uitest

import (
	"fmt"
	"math"

	"github.com/balazsgerlei/TailoredFloatingLabelTextInput/pkg/rendering"
)

// CanvasOp is a serialized canvas drawing operation.
type CanvasOp struct {
	Op     string
	Params map[string]any
}

// RecordOps replays a display list onto an inspecting canvas and returns
// the flat list of operations it performed.
func RecordOps(list *rendering.DisplayList) []CanvasOp {
	c := &inspectingCanvas{size: list.Size()}
	list.Paint(c)
	return c.ops
}

// FindOps returns all recorded operations with the given op name.
func FindOps(ops []CanvasOp, name string) []CanvasOp {
	var out []CanvasOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// CountOps returns the number of recorded operations with the given op name.
func CountOps(ops []CanvasOp, name string) int {
	return len(FindOps(ops, name))
}

// HasOp reports whether any recorded operation has the given op name.
func HasOp(ops []CanvasOp, name string) bool {
	return len(FindOps(ops, name)) > 0
}

// inspectingCanvas implements rendering.Canvas and records ops as CanvasOp.
type inspectingCanvas struct {
	ops  []CanvasOp
	size rendering.Size
}

func (c *inspectingCanvas) append(name string, kv ...any) {
	var params map[string]any
	if len(kv) > 0 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[kv[i].(string)] = kv[i+1]
		}
	}
	c.ops = append(c.ops, CanvasOp{Op: name, Params: params})
}

func (c *inspectingCanvas) Save() {
	c.append("save")
}

func (c *inspectingCanvas) Restore() {
	c.append("restore")
}

func (c *inspectingCanvas) Translate(dx, dy float64) {
	c.append("translate", "dx", round2(dx), "dy", round2(dy))
}

func (c *inspectingCanvas) Scale(sx, sy float64) {
	c.append("scale", "sx", round2(sx), "sy", round2(sy))
}

func (c *inspectingCanvas) Concat(m rendering.Matrix) {
	c.append("concat",
		"a", round2(m.A), "b", round2(m.B),
		"c", round2(m.C), "d", round2(m.D),
		"tx", round2(m.TX), "ty", round2(m.TY))
}

func (c *inspectingCanvas) ClipRect(rect rendering.Rect) {
	c.append("clipRect", "rect", serializeRect(rect))
}

func (c *inspectingCanvas) ClipRRect(rrect rendering.RRect) {
	c.append("clipRRect",
		"rect", serializeRect(rrect.Rect),
		"radius", round2(rrect.UniformRadius()))
}

func (c *inspectingCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.append("drawRect",
		"rect", serializeRect(rect),
		"color", serializeColor(paint.Color),
		"style", paint.Style.String())
}

func (c *inspectingCanvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	c.append("drawRRect",
		"rect", serializeRect(rrect.Rect),
		"radius", round2(rrect.UniformRadius()),
		"color", serializeColor(paint.Color),
		"style", paint.Style.String())
}

func (c *inspectingCanvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	c.append("drawLine",
		"x1", round2(start.X), "y1", round2(start.Y),
		"x2", round2(end.X), "y2", round2(end.Y),
		"color", serializeColor(paint.Color))
}

func (c *inspectingCanvas) DrawText(text string, style rendering.TextStyle, position rendering.Offset) {
	c.append("drawText",
		"text", text,
		"size", round2(style.FontSize),
		"color", serializeColor(style.Color),
		"x", round2(position.X), "y", round2(position.Y))
}

func (c *inspectingCanvas) DrawRectShadow(rect rendering.Rect, shadow rendering.BoxShadow) {
	c.append("drawRectShadow",
		"rect", serializeRect(rect),
		"color", serializeColor(shadow.Color),
		"blur", round2(shadow.BlurRadius),
		"sigma", round2(shadow.Sigma()))
}

func (c *inspectingCanvas) DrawRRectShadow(rrect rendering.RRect, shadow rendering.BoxShadow) {
	c.append("drawRRectShadow",
		"rect", serializeRect(rrect.Rect),
		"radius", round2(rrect.UniformRadius()),
		"color", serializeColor(shadow.Color),
		"blur", round2(shadow.BlurRadius),
		"sigma", round2(shadow.Sigma()))
}

func (c *inspectingCanvas) Size() rendering.Size {
	return c.size
}

func serializeRect(r rendering.Rect) string {
	return fmt.Sprintf("%g,%g %gx%g", round2(r.Left), round2(r.Top), round2(r.Width()), round2(r.Height()))
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
