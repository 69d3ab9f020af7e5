package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/shadowlayout/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
	// Rect is the geometry the op was issued with, kept unrounded so tests
	// can compare it directly.
	Rect graphics.Rect `json:"-"`
}

// RecordingCanvas implements graphics.Canvas and records ops as DisplayOp
// instead of rasterizing them.
type RecordingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordingCanvas returns a canvas reporting the given size.
func NewRecordingCanvas(width, height float64) *RecordingCanvas {
	return &RecordingCanvas{size: graphics.Size{Width: width, Height: height}}
}

// Ops returns the recorded operations in draw order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpsNamed returns the recorded operations with the given name.
func (c *RecordingCanvas) OpsNamed(name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range c.ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(paint.Color)),
		Rect:   rect,
	})
}

func (c *RecordingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", serializeRadius(rrect),
			"color", serializeColor(paint.Color),
		),
		Rect: rrect.Rect,
	})
}

func (c *RecordingCanvas) DrawRectShadow(rect graphics.Rect, shadow graphics.BoxShadow) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRectShadow",
		Params: sortedMap(
			"rect", serializeRect(rect),
			"color", serializeColor(shadow.Color),
			"blur", round2(shadow.BlurRadius),
			"offset", serializeOffset(shadow.Offset),
		),
		Rect: rect,
	})
}

func (c *RecordingCanvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.BoxShadow) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRectShadow",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", serializeRadius(rrect),
			"color", serializeColor(shadow.Color),
			"blur", round2(shadow.BlurRadius),
			"offset", serializeOffset(shadow.Offset),
		),
		Rect: rrect.Rect,
	})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeOffset(o graphics.Offset) map[string]any {
	return sortedMap("x", round2(o.X), "y", round2(o.Y))
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
