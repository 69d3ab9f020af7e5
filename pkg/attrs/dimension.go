package attrs

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayMetrics describes the screen used to convert dimensions to pixels.
type DisplayMetrics struct {
	// Density is the pixels-per-dp scale factor (1 at 160 dpi).
	Density float64
	// ScaledDensity is Density times the user's font scale, used for sp.
	ScaledDensity float64
	// XDPI is the physical pixels per inch, used for in, mm and pt.
	XDPI float64
}

// DefaultDisplayMetrics returns metrics for a baseline 160 dpi screen.
func DefaultDisplayMetrics() DisplayMetrics {
	return DisplayMetrics{Density: 1, ScaledDensity: 1, XDPI: 160}
}

// normalized fills zero fields from the ones that are set.
func (m DisplayMetrics) normalized() DisplayMetrics {
	if m.Density <= 0 {
		m.Density = 1
	}
	if m.ScaledDensity <= 0 {
		m.ScaledDensity = m.Density
	}
	if m.XDPI <= 0 {
		m.XDPI = 160 * m.Density
	}
	return m
}

// unitScale returns the pixel multiplier for a dimension unit.
func (m DisplayMetrics) unitScale(unit string) (float64, bool) {
	m = m.normalized()
	switch unit {
	case "", "px":
		return 1, true
	case "dp", "dip":
		return m.Density, true
	case "sp":
		return m.ScaledDensity, true
	case "pt":
		return m.XDPI / 72, true
	case "in":
		return m.XDPI, true
	case "mm":
		return m.XDPI / 25.4, true
	default:
		return 0, false
	}
}

// ParseDimension converts a dimension such as "8dp", "4.5px" or "12" to
// device pixels. A bare number is taken as pixels.
func ParseDimension(value string, metrics DisplayMetrics) (float64, error) {
	s := strings.TrimSpace(value)
	i := len(s)
	for i > 0 && isUnitLetter(s[i-1]) {
		i--
	}
	num, unit := strings.TrimSpace(s[:i]), strings.ToLower(s[i:])
	if num == "" {
		return 0, fmt.Errorf("dimension %q: missing number", value)
	}
	scale, ok := metrics.unitScale(unit)
	if !ok {
		return 0, fmt.Errorf("dimension %q: unknown unit %q", value, unit)
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("dimension %q: %w", value, err)
	}
	return f * scale, nil
}

func isUnitLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
