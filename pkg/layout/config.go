package layout

import (
	"github.com/go-drift/shadowlayout/pkg/attrs"
	"github.com/go-drift/shadowlayout/pkg/graphics"
	"github.com/go-drift/shadowlayout/pkg/shadow"
)

// Config holds the construction-time settings of a ShadowLayout.
type Config struct {
	// Defaults fill in attributes the style omits.
	Defaults attrs.Defaults
	// Renderer produces the background bitmap. Nil means shadow.DefaultRenderer.
	Renderer shadow.Renderer
	// RenderOptions are passed to every render.
	RenderOptions shadow.Options
	// InvalidateOnSizeChanged re-renders the background whenever the size
	// changes. When false, only the first size change renders.
	InvalidateOnSizeChanged bool
	// Tint is the color the alpha bitmap is painted with. Zero means opaque
	// black.
	Tint graphics.Color
}

// DefaultConfig returns the configuration for a baseline 160 dpi screen.
func DefaultConfig() Config {
	return ConfigFor(attrs.DefaultDisplayMetrics())
}

// ConfigFor returns the default configuration with defaults resolved for metrics.
func ConfigFor(metrics attrs.DisplayMetrics) Config {
	return Config{
		Defaults:                attrs.DefaultDefaults(metrics),
		Renderer:                shadow.DefaultRenderer,
		InvalidateOnSizeChanged: true,
		Tint:                    graphics.ColorBlack,
	}
}
