package layout

import "github.com/go-drift/shadowlayout/pkg/graphics"

// DecoratedContainer is the host framework's layout primitive that a
// [ShadowLayout] decorates. Any toolkit that can pad its children and
// paint a background drawable can implement it.
type DecoratedContainer interface {
	// SetPadding sets the insets between the container edge and its children.
	SetPadding(padding graphics.EdgeInsets)

	// Background returns the installed background, or nil.
	Background() graphics.Drawable

	// SetBackground installs the drawable painted behind the children.
	SetBackground(background graphics.Drawable)

	// RequestLayout schedules a layout pass.
	RequestLayout()

	// Invalidate schedules a repaint.
	Invalidate()
}
