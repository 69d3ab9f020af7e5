package graphics

// Paint describes how shapes are filled.
type Paint struct {
	Color Color
}

// DefaultPaint returns an opaque black fill paint.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack}
}
