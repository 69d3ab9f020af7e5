package shadow

import (
	"image"
	"math"

	"github.com/go-drift/shadowlayout/pkg/graphics"
)

// Options control how a shadow bitmap is produced.
type Options struct {
	// PreviewMode skips the shadow layer and draws only the fill. Design
	// previews that cannot afford blurring set this.
	PreviewMode bool
}

// Renderer produces a shadow bitmap for the given size and style.
type Renderer func(width, height int, style Style, opts Options) *image.Alpha

// DefaultRenderer is the renderer used when none is injected.
var DefaultRenderer Renderer = Render

// Render rasterizes the style into a fresh width x height alpha bitmap.
//
// Callers are expected to pass positive dimensions. Non-positive values
// produce an empty bitmap.
func Render(width, height int, style Style, opts Options) *image.Alpha {
	if width <= 0 || height <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	canvas := graphics.NewAlphaCanvas(width, height)
	Paint(canvas, style, opts)
	return canvas.Bitmap()
}

// Bounds returns the rectangle the content silhouette occupies on a
// width x height raster.
//
// The raster is inset by ShadowRadius on every side so the blur has room to
// spread. A non-zero offset then shrinks both edges of its axis by |offset|,
// regardless of sign, which leaves room for the displaced shadow on either
// side. Bounds that collapse come back as the empty Rect.
func Bounds(width, height float64, style Style) graphics.Rect {
	s := style.Normalized()
	rect := graphics.Rect{
		Left:   s.ShadowRadius,
		Top:    s.ShadowRadius,
		Right:  width - s.ShadowRadius,
		Bottom: height - s.ShadowRadius,
	}
	if dy := math.Abs(s.OffsetY); dy > 0 {
		rect.Top += dy
		rect.Bottom -= dy
	}
	if dx := math.Abs(s.OffsetX); dx > 0 {
		rect.Left += dx
		rect.Right -= dx
	}
	if rect.IsEmpty() {
		return graphics.Rect{}
	}
	return rect
}

// Paint draws the style onto canvas: the blurred shadow first, then the
// fill on top of it. Nothing is drawn when the bounds are empty.
func Paint(canvas graphics.Canvas, style Style, opts Options) {
	s := style.Normalized()
	size := canvas.Size()
	rect := Bounds(size.Width, size.Height, s)
	if rect.IsEmpty() {
		return
	}

	fill := graphics.Paint{Color: s.FillColor}
	if s.CornerRadius == 0 {
		if !opts.PreviewMode && s.ShadowRadius > 0 {
			canvas.DrawRectShadow(rect, s.BoxShadow())
		}
		canvas.DrawRect(rect, fill)
		return
	}

	rrect := graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(s.CornerRadius))
	if !opts.PreviewMode && s.ShadowRadius > 0 {
		canvas.DrawRRectShadow(rrect, s.BoxShadow())
	}
	canvas.DrawRRect(rrect, fill)
}
