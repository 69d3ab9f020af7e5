package graphics

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// AlphaCanvas rasterizes drawing commands into an 8-bit alpha bitmap.
//
// Only the alpha of each paint and shadow color is kept. Every command is
// composited source-over onto the bitmap, so a shadow drawn first ends up
// beneath the shape drawn after it.
type AlphaCanvas struct {
	bitmap *image.Alpha
}

// NewAlphaCanvas returns a canvas backed by a fully transparent bitmap.
// Negative dimensions are treated as zero.
func NewAlphaCanvas(width, height int) *AlphaCanvas {
	return &AlphaCanvas{
		bitmap: image.NewAlpha(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// Bitmap returns the backing bitmap.
func (c *AlphaCanvas) Bitmap() *image.Alpha {
	return c.bitmap
}

// Size returns the size of the canvas in pixels.
func (c *AlphaCanvas) Size() Size {
	b := c.bitmap.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// DrawRect draws a rectangle with the provided paint.
func (c *AlphaCanvas) DrawRect(rect Rect, paint Paint) {
	c.fill(rect, 0, paint.Color.Alpha8(), 0)
}

// DrawRRect draws a rounded rectangle with the provided paint.
// Only uniform corner radii are supported; mixed radii draw square corners.
func (c *AlphaCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.fill(rrect.Rect, rrect.UniformRadius(), paint.Color.Alpha8(), 0)
}

// DrawRectShadow draws a blurred shadow of a rectangle.
func (c *AlphaCanvas) DrawRectShadow(rect Rect, shadow BoxShadow) {
	c.DrawRRectShadow(RRectFromRectAndRadius(rect, Radius{}), shadow)
}

// DrawRRectShadow draws a blurred shadow of a rounded rectangle.
func (c *AlphaCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	rect := rrect.Rect.Translate(shadow.Offset.X, shadow.Offset.Y)
	c.fill(rect, rrect.UniformRadius(), shadow.Color.Alpha8(), shadow.Sigma())
}

// fill rasterizes the (rounded) rectangle with anti-aliasing, optionally
// blurs the coverage mask, and composites it onto the bitmap.
func (c *AlphaCanvas) fill(rect Rect, radius float64, alpha uint8, sigma float64) {
	bounds := c.bitmap.Bounds()
	if alpha == 0 || rect.IsEmpty() || bounds.Empty() {
		return
	}

	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.SetColor(color.NRGBA{A: alpha})
	radius = math.Min(radius, math.Min(rect.Width(), rect.Height())/2)
	if radius > 0 {
		dc.DrawRoundedRectangle(rect.Left, rect.Top, rect.Width(), rect.Height(), radius)
	} else {
		dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	}
	dc.Fill()

	var mask image.Image = dc.Image()
	if sigma > 0 {
		mask = imaging.Blur(mask, sigma)
	}
	c.composite(mask)
}

// composite blends the alpha channel of src over the bitmap.
func (c *AlphaCanvas) composite(src image.Image) {
	dst := c.bitmap
	b := dst.Bounds()
	srcMin := src.Bounds().Min
	pix, stride := alphaChannel(src)
	for y := 0; y < b.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()]
		for x := range row {
			var sa uint32
			if pix != nil {
				sa = uint32(pix[y*stride+x*4+3])
			} else {
				_, _, _, a := src.At(srcMin.X+x, srcMin.Y+y).RGBA()
				sa = a >> 8
			}
			if sa == 0 {
				continue
			}
			da := uint32(row[x])
			row[x] = uint8(sa + (da*(255-sa)+127)/255)
		}
	}
}

// alphaChannel exposes the interleaved pixel buffer of 4-channel images
// whose alpha sits at every fourth byte. Returns nil for other types.
func alphaChannel(img image.Image) ([]uint8, int) {
	switch m := img.(type) {
	case *image.RGBA:
		if m.Rect.Min == (image.Point{}) {
			return m.Pix, m.Stride
		}
	case *image.NRGBA:
		if m.Rect.Min == (image.Point{}) {
			return m.Pix, m.Stride
		}
	}
	return nil, 0
}
