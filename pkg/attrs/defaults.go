package attrs

import (
	"fmt"

	"github.com/go-drift/shadowlayout/pkg/graphics"
	"github.com/go-drift/shadowlayout/pkg/shadow"
)

// Documented fallbacks for attributes a style leaves out.
const (
	DefaultCornerRadiusDP = 4
	DefaultShadowRadiusDP = 8
	DefaultShadowColor    = graphics.Color(0x40000000)
)

// Defaults supplies the values used when a style omits an attribute or
// gives a malformed one. Lengths are in device pixels.
type Defaults struct {
	CornerRadius float64
	ShadowRadius float64
	ShadowColor  graphics.Color
}

// DefaultDefaults returns the documented defaults resolved for metrics.
func DefaultDefaults(metrics DisplayMetrics) Defaults {
	m := metrics.normalized()
	return Defaults{
		CornerRadius: DefaultCornerRadiusDP * m.Density,
		ShadowRadius: DefaultShadowRadiusDP * m.Density,
		ShadowColor:  DefaultShadowColor,
	}
}

// Style returns the shadow style described by the defaults alone.
func (d Defaults) Style() shadow.Style {
	return shadow.Style{
		CornerRadius: d.CornerRadius,
		ShadowRadius: d.ShadowRadius,
		ShadowColor:  d.ShadowColor,
		FillColor:    graphics.ColorTransparent,
	}
}

// ParseShadowStyle reads the corner radius, shadow radius, dx, dy and
// shadow color attributes from set. A nil set yields d.Style().
//
// Negative radii are reported and replaced by the default. The set is not
// recycled.
func ParseShadowStyle(set *Set, d Defaults) shadow.Style {
	style := d.Style()
	if set == nil {
		return style
	}
	style.CornerRadius = set.nonNegative(AttrCornerRadius, d.CornerRadius)
	style.ShadowRadius = set.nonNegative(AttrShadowRadius, d.ShadowRadius)
	style.OffsetX = set.Dimension(AttrDx, 0)
	style.OffsetY = set.Dimension(AttrDy, 0)
	style.ShadowColor = set.Color(AttrShadowColor, d.ShadowColor)
	return style
}

func (s *Set) nonNegative(attr string, def float64) float64 {
	v := s.Dimension(attr, def)
	if raw, ok := s.values[attr]; ok && v < 0 {
		s.report("attrs.ParseShadowStyle", attr, raw, "non-negative dimension",
			fmt.Errorf("%v < 0", v))
		return def
	}
	return v
}
