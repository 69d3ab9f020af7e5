package testing

import (
	"image"

	"github.com/go-drift/shadowlayout/pkg/graphics"
)

// FakeContainer is an in-memory decorated container that records what a
// shadow layout asks of it.
type FakeContainer struct {
	Padding         graphics.EdgeInsets
	PaddingCalls    int
	Backgrounds     []graphics.Drawable
	LayoutCalls     int
	InvalidateCalls int
}

// NewFakeContainer returns an empty container.
func NewFakeContainer() *FakeContainer {
	return &FakeContainer{}
}

func (c *FakeContainer) SetPadding(padding graphics.EdgeInsets) {
	c.Padding = padding
	c.PaddingCalls++
}

func (c *FakeContainer) Background() graphics.Drawable {
	if len(c.Backgrounds) == 0 {
		return nil
	}
	return c.Backgrounds[len(c.Backgrounds)-1]
}

func (c *FakeContainer) SetBackground(background graphics.Drawable) {
	c.Backgrounds = append(c.Backgrounds, background)
}

func (c *FakeContainer) RequestLayout() {
	c.LayoutCalls++
}

func (c *FakeContainer) Invalidate() {
	c.InvalidateCalls++
}

// BackgroundBitmap returns the alpha bitmap of the current background when
// it is a bitmap drawable.
func (c *FakeContainer) BackgroundBitmap() *image.Alpha {
	if d, ok := c.Background().(*graphics.BitmapDrawable); ok {
		return d.Bitmap
	}
	return nil
}

// Paint draws the current background into a fresh width x height surface.
func (c *FakeContainer) Paint(width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if bg := c.Background(); bg != nil {
		bg.Draw(dst, dst.Bounds())
	}
	return dst
}
