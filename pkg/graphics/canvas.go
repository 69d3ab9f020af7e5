package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawRectShadow draws a shadow behind a rectangle.
	DrawRectShadow(rect Rect, shadow BoxShadow)

	// DrawRRectShadow draws a shadow behind a rounded rectangle.
	DrawRRectShadow(rrect RRect, shadow BoxShadow)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
