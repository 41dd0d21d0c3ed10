package rendering

// Canvas records or renders drawing commands.
//
// The library is headless: views paint onto a recording canvas and the
// resulting [DisplayList] is handed to the host toolkit's rasterizer (or to
// tests, which replay it onto an inspecting canvas).
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Concat applies an affine transform on top of the current one.
	Concat(m Matrix)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawText draws a single line of text with its top-left corner at
	// the given position.
	DrawText(text string, style TextStyle, position Offset)

	// DrawRectShadow draws a shadow behind a rectangle.
	DrawRectShadow(rect Rect, shadow BoxShadow)

	// DrawRRectShadow draws a shadow behind a rounded rectangle.
	DrawRRectShadow(rrect RRect, shadow BoxShadow)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
