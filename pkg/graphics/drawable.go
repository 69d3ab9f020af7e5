package graphics

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Drawable is something that can paint itself into a host surface, such as
// a container background.
type Drawable interface {
	// IntrinsicSize returns the natural pixel size of the drawable.
	IntrinsicSize() (width, height int)

	// Draw paints the drawable into dst, stretched to fill bounds.
	Draw(dst xdraw.Image, bounds image.Rectangle)
}

// BitmapDrawable paints an alpha bitmap as a mask over a solid tint.
//
// Hosts stretch backgrounds to the view bounds, so drawing into bounds of a
// different size scales the mask bilinearly first.
type BitmapDrawable struct {
	Bitmap *image.Alpha
	// Tint is the color the mask is painted with. Mask alpha multiplies
	// the tint alpha.
	Tint Color
}

// NewBitmapDrawable wraps bitmap in a drawable tinted opaque black.
func NewBitmapDrawable(bitmap *image.Alpha) *BitmapDrawable {
	return &BitmapDrawable{Bitmap: bitmap, Tint: ColorBlack}
}

// IntrinsicSize returns the bitmap dimensions.
func (d *BitmapDrawable) IntrinsicSize() (int, int) {
	if d.Bitmap == nil {
		return 0, 0
	}
	b := d.Bitmap.Bounds()
	return b.Dx(), b.Dy()
}

// Draw composites the tinted mask over dst within bounds.
func (d *BitmapDrawable) Draw(dst xdraw.Image, bounds image.Rectangle) {
	if d.Bitmap == nil || bounds.Empty() || d.Bitmap.Bounds().Empty() {
		return
	}
	mask := d.Bitmap
	if bounds.Size() != mask.Bounds().Size() {
		scaled := image.NewAlpha(image.Rectangle{Max: bounds.Size()})
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
		mask = scaled
	}
	xdraw.DrawMask(dst, bounds, image.NewUniform(d.Tint.NRGBA()), image.Point{}, mask, mask.Bounds().Min, xdraw.Over)
}
