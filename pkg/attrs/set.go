package attrs

import (
	"fmt"
	"maps"

	"github.com/go-drift/shadowlayout/pkg/errors"
	"github.com/go-drift/shadowlayout/pkg/graphics"
)

// Attribute names read by a shadow layout.
const (
	AttrCornerRadius = "cornerRadius"
	AttrShadowRadius = "shadowRadius"
	AttrDx           = "dx"
	AttrDy           = "dy"
	AttrShadowColor  = "shadowColor"
)

// Set is a resolved collection of raw styling attributes.
//
// A Set is obtained from a style resource (or built with [NewSet]), read
// once, and released with Recycle. Reading a recycled set panics, so
// callers release it with defer right after obtaining it:
//
//	set, err := res.Obtain("card", metrics)
//	if err != nil {
//	    return err
//	}
//	defer set.Recycle()
//
// Typed getters never fail. A malformed value is reported through
// [errors.Report] and the getter returns the caller's default.
type Set struct {
	name     string
	values   map[string]string
	metrics  DisplayMetrics
	recycled bool
}

// NewSet returns a set holding a copy of values.
func NewSet(values map[string]string, metrics DisplayMetrics) *Set {
	return &Set{values: maps.Clone(values), metrics: metrics}
}

// Name returns the style name the set was obtained from, if any.
func (s *Set) Name() string {
	return s.name
}

// Metrics returns the display metrics used to resolve dimensions.
func (s *Set) Metrics() DisplayMetrics {
	return s.metrics
}

// HasValue reports whether the attribute is present.
func (s *Set) HasValue(attr string) bool {
	s.checkLive()
	_, ok := s.values[attr]
	return ok
}

// Dimension returns the attribute converted to device pixels, or def if it
// is absent or malformed.
func (s *Set) Dimension(attr string, def float64) float64 {
	s.checkLive()
	raw, ok := s.values[attr]
	if !ok {
		return def
	}
	v, err := ParseDimension(raw, s.metrics)
	if err != nil {
		s.report("attrs.Set.Dimension", attr, raw, "dimension", err)
		return def
	}
	return v
}

// Color returns the attribute as a color, or def if it is absent or
// malformed.
func (s *Set) Color(attr string, def graphics.Color) graphics.Color {
	s.checkLive()
	raw, ok := s.values[attr]
	if !ok {
		return def
	}
	c, err := graphics.ParseColor(raw)
	if err != nil {
		s.report("attrs.Set.Color", attr, raw, "color", err)
		return def
	}
	return c
}

// Recycle releases the set. It must be called exactly once.
func (s *Set) Recycle() {
	if s.recycled {
		panic(fmt.Sprintf("attrs: set %q recycled twice", s.name))
	}
	s.recycled = true
	s.values = nil
}

func (s *Set) checkLive() {
	if s.recycled {
		panic(fmt.Sprintf("attrs: set %q used after Recycle", s.name))
	}
}

func (s *Set) report(op, attr, raw, expected string, err error) {
	errors.Report(&errors.ShadowError{
		Op:        op,
		Kind:      errors.KindAttribute,
		Attribute: attr,
		Err: &errors.AttributeError{
			Name:     attr,
			Value:    raw,
			Expected: expected,
			Err:      err,
		},
	})
}
