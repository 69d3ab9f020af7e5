package shadow

import (
	"math"

	"github.com/go-drift/shadowlayout/pkg/graphics"
)

// Style describes the shadow drawn behind a rounded-rectangle content area.
// All lengths are in device pixels.
type Style struct {
	// CornerRadius is the radius of the rounded rectangle. Zero draws a
	// plain rectangle.
	CornerRadius float64
	// ShadowRadius is the blur radius of the shadow. Zero disables the
	// shadow layer.
	ShadowRadius float64
	// OffsetX and OffsetY displace the shadow from the rectangle.
	OffsetX float64
	OffsetY float64
	// ShadowColor is the shadow color. Only its alpha survives in the
	// rendered bitmap.
	ShadowColor graphics.Color
	// FillColor fills the rectangle itself. Transparent in normal use, so
	// the bitmap holds just the shadow silhouette.
	FillColor graphics.Color
}

// Normalized returns a copy with negative radii clamped to zero.
func (s Style) Normalized() Style {
	s.CornerRadius = math.Max(s.CornerRadius, 0)
	s.ShadowRadius = math.Max(s.ShadowRadius, 0)
	return s
}

// BoxShadow returns the shadow layer the style describes.
func (s Style) BoxShadow() graphics.BoxShadow {
	return graphics.BoxShadow{
		Color:      s.ShadowColor,
		Offset:     graphics.Offset{X: s.OffsetX, Y: s.OffsetY},
		BlurRadius: s.ShadowRadius,
	}
}

// Padding returns the content insets that keep children off the shadow:
// ShadowRadius + |OffsetX| horizontally and ShadowRadius + |OffsetY|
// vertically, applied to both sides of each axis.
func Padding(style Style) graphics.EdgeInsets {
	s := style.Normalized()
	return graphics.EdgeInsetsSymmetric(
		s.ShadowRadius+math.Abs(s.OffsetX),
		s.ShadowRadius+math.Abs(s.OffsetY),
	)
}
