package graphics

// BoxShadow defines a shadow to draw behind a shape.
//
// The shadow is the shape's silhouette translated by Offset, filled with
// Color and blurred. BlurRadius controls softness; the Gaussian sigma is
// BlurRadius * 0.5.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
}

// Sigma returns the Gaussian blur sigma.
// Returns 0 if BlurRadius is zero or negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// NewBoxShadow creates a simple drop shadow with the given color and blur radius.
// Offset defaults to (0, 2) for a subtle downward shadow.
func NewBoxShadow(color Color, blurRadius float64) *BoxShadow {
	return &BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: 2},
		BlurRadius: blurRadius,
	}
}
