package layout

import (
	"github.com/go-drift/shadowlayout/pkg/attrs"
	"github.com/go-drift/shadowlayout/pkg/errors"
	"github.com/go-drift/shadowlayout/pkg/graphics"
	"github.com/go-drift/shadowlayout/pkg/shadow"
)

// ShadowLayout decorates a container with a soft drop shadow behind its
// rounded-rectangle content area.
//
// The host forwards its size-change and layout callbacks; ShadowLayout
// renders the shadow bitmap and installs it as the container background.
// All methods must be called from the host's UI goroutine.
type ShadowLayout struct {
	container DecoratedContainer
	style     shadow.Style
	padding   graphics.EdgeInsets
	renderer  shadow.Renderer
	options   shadow.Options
	tint      graphics.Color

	invalidateOnSizeChanged bool
	forceInvalidate         bool
	renders                 int
}

// NewShadowLayout reads the shadow attributes from set, falling back to
// cfg.Defaults, and pads container so children clear the shadow.
//
// set may be nil. It is recycled before NewShadowLayout returns, including
// when parsing panics.
func NewShadowLayout(container DecoratedContainer, set *attrs.Set, cfg Config) *ShadowLayout {
	if set != nil {
		defer set.Recycle()
	}
	return NewShadowLayoutWithStyle(container, attrs.ParseShadowStyle(set, cfg.Defaults), cfg)
}

// NewShadowLayoutWithStyle decorates container with an already resolved style.
func NewShadowLayoutWithStyle(container DecoratedContainer, style shadow.Style, cfg Config) *ShadowLayout {
	l := &ShadowLayout{
		container:               container,
		style:                   style.Normalized(),
		renderer:                cfg.Renderer,
		options:                 cfg.RenderOptions,
		tint:                    cfg.Tint,
		invalidateOnSizeChanged: cfg.InvalidateOnSizeChanged,
	}
	if l.renderer == nil {
		l.renderer = shadow.DefaultRenderer
	}
	if l.tint == graphics.ColorTransparent {
		l.tint = graphics.ColorBlack
	}
	l.padding = shadow.Padding(l.style)
	container.SetPadding(l.padding)
	return l
}

// Style returns the resolved shadow style.
func (l *ShadowLayout) Style() shadow.Style {
	return l.style
}

// Padding returns the content padding applied to the container.
func (l *ShadowLayout) Padding() graphics.EdgeInsets {
	return l.padding
}

// RenderCount returns how many backgrounds have been installed.
func (l *ShadowLayout) RenderCount() int {
	return l.renders
}

// SetInvalidateShadowOnSizeChanged controls whether size changes re-render
// the shadow. The first size change always renders.
func (l *ShadowLayout) SetInvalidateShadowOnSizeChanged(enabled bool) {
	l.invalidateOnSizeChanged = enabled
}

// InvalidateShadowOnSizeChanged reports whether size changes re-render the shadow.
func (l *ShadowLayout) InvalidateShadowOnSizeChanged() bool {
	return l.invalidateOnSizeChanged
}

// InvalidateShadow forces a re-render on the next layout pass and asks the
// container for one.
func (l *ShadowLayout) InvalidateShadow() {
	l.forceInvalidate = true
	l.container.RequestLayout()
	l.container.Invalidate()
}

// OnSizeChanged handles the host's size-change callback.
func (l *ShadowLayout) OnSizeChanged(width, height, oldWidth, oldHeight int) {
	if width <= 0 || height <= 0 {
		return
	}
	if l.container.Background() == nil || l.invalidateOnSizeChanged {
		l.forceInvalidate = false
		l.updateBackground(width, height)
	}
}

// OnLayout handles the host's layout callback. A pending InvalidateShadow
// renders here at the laid-out size.
func (l *ShadowLayout) OnLayout(changed bool, left, top, right, bottom int) {
	if !l.forceInvalidate {
		return
	}
	l.forceInvalidate = false
	width, height := right-left, bottom-top
	if width <= 0 || height <= 0 {
		return
	}
	l.updateBackground(width, height)
}

// updateBackground renders the shadow and installs it. A panicking renderer
// is reported and leaves the previous background in place.
func (l *ShadowLayout) updateBackground(width, height int) {
	defer errors.Recover("layout.ShadowLayout.updateBackground")

	bitmap := l.renderer(width, height, l.style, l.options)
	if bitmap == nil {
		errors.Report(&errors.ShadowError{
			Op:   "layout.ShadowLayout.updateBackground",
			Kind: errors.KindRender,
			Err:  errNilBitmap,
		})
		return
	}
	drawable := graphics.NewBitmapDrawable(bitmap)
	drawable.Tint = l.tint
	l.container.SetBackground(drawable)
	l.renders++
}
