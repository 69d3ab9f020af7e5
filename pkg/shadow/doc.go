// Package shadow renders the drop-shadow bitmap painted behind a shadow
// layout's content.
//
// A render is a pure function of the raster size and a [Style]:
//
//	bitmap := shadow.Render(100, 100, shadow.Style{
//	    CornerRadius: 8,
//	    ShadowRadius: 10,
//	    OffsetY:      4,
//	    ShadowColor:  graphics.Color(0x40000000),
//	}, shadow.Options{})
//
// The result is an 8-bit alpha mask. The rounded rectangle sits inside the
// raster, inset by the shadow radius plus the absolute offsets (see
// [Bounds]), and its shadow is a Gaussian-blurred, offset silhouette
// composited beneath the fill.
//
// Hosts compute content padding with [Padding] so children do not overlap
// the shadow.
package shadow
