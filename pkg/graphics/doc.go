// Package graphics provides the colors, geometry, shadows and canvases used
// to paint shadow backgrounds.
//
// [AlphaCanvas] rasterizes into an 8-bit alpha bitmap, keeping only the
// opacity of each paint. [BitmapDrawable] paints such a bitmap into a host
// surface as a tinted mask.
package graphics
