package rendering

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// OpCount returns the number of recorded operations.
func (d *DisplayList) OpCount() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) Scale(sx, sy float64) {
	c.recorder.append(opScale{sx: sx, sy: sy})
}

func (c *recordingCanvas) Concat(m Matrix) {
	c.recorder.append(opConcat{matrix: m})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(opClipRect{rect: rect})
}

func (c *recordingCanvas) ClipRRect(rrect RRect) {
	c.recorder.append(opClipRRect{rrect: rrect})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(opRRect{rrect: rrect, paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(opLine{start: start, end: end, paint: paint})
}

func (c *recordingCanvas) DrawText(text string, style TextStyle, position Offset) {
	c.recorder.append(opText{text: text, style: style, position: position})
}

func (c *recordingCanvas) DrawRectShadow(rect Rect, shadow BoxShadow) {
	c.recorder.append(opRectShadow{rect: rect, shadow: shadow})
}

func (c *recordingCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	c.recorder.append(opRRectShadow{rrect: rrect, shadow: shadow})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opSave struct{}

func (op opSave) execute(canvas Canvas) {
	canvas.Save()
}

type opRestore struct{}

func (op opRestore) execute(canvas Canvas) {
	canvas.Restore()
}

type opTranslate struct {
	dx, dy float64
}

func (op opTranslate) execute(canvas Canvas) {
	canvas.Translate(op.dx, op.dy)
}

type opScale struct {
	sx, sy float64
}

func (op opScale) execute(canvas Canvas) {
	canvas.Scale(op.sx, op.sy)
}

type opConcat struct {
	matrix Matrix
}

func (op opConcat) execute(canvas Canvas) {
	canvas.Concat(op.matrix)
}

type opClipRect struct {
	rect Rect
}

func (op opClipRect) execute(canvas Canvas) {
	canvas.ClipRect(op.rect)
}

type opClipRRect struct {
	rrect RRect
}

func (op opClipRRect) execute(canvas Canvas) {
	canvas.ClipRRect(op.rrect)
}

type opRect struct {
	rect  Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) {
	canvas.DrawRect(op.rect, op.paint)
}

type opRRect struct {
	rrect RRect
	paint Paint
}

func (op opRRect) execute(canvas Canvas) {
	canvas.DrawRRect(op.rrect, op.paint)
}

type opLine struct {
	start, end Offset
	paint      Paint
}

func (op opLine) execute(canvas Canvas) {
	canvas.DrawLine(op.start, op.end, op.paint)
}

type opText struct {
	text     string
	style    TextStyle
	position Offset
}

func (op opText) execute(canvas Canvas) {
	canvas.DrawText(op.text, op.style, op.position)
}

type opRectShadow struct {
	rect   Rect
	shadow BoxShadow
}

func (op opRectShadow) execute(canvas Canvas) {
	canvas.DrawRectShadow(op.rect, op.shadow)
}

type opRRectShadow struct {
	rrect  RRect
	shadow BoxShadow
}

func (op opRRectShadow) execute(canvas Canvas) {
	canvas.DrawRRectShadow(op.rrect, op.shadow)
}
