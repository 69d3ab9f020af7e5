package shadow_test

import (
	"image"
	"testing"

	"github.com/go-drift/shadowlayout/pkg/graphics"
	"github.com/go-drift/shadowlayout/pkg/shadow"
	shadowtest "github.com/go-drift/shadowlayout/pkg/testing"
)

func exampleStyle() shadow.Style {
	return shadow.Style{
		CornerRadius: 8,
		ShadowRadius: 10,
		OffsetY:      4,
		ShadowColor:  graphics.Color(0x40000000),
	}
}

func TestRender_Size(t *testing.T) {
	style := exampleStyle()
	for _, size := range [][2]int{{21, 21}, {100, 100}, {240, 48}, {33, 300}} {
		bitmap := shadow.Render(size[0], size[1], style, shadow.Options{})
		if got := bitmap.Bounds(); got != image.Rect(0, 0, size[0], size[1]) {
			t.Errorf("Render(%d, %d) bounds = %v", size[0], size[1], got)
		}
	}
}

func TestRender_NonPositiveSizeIsEmpty(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if b := shadow.Render(size[0], size[1], exampleStyle(), shadow.Options{}); !b.Bounds().Empty() {
			t.Errorf("Render(%d, %d) bounds = %v, want empty", size[0], size[1], b.Bounds())
		}
	}
}

func TestRender_Example(t *testing.T) {
	bitmap := shadow.Render(100, 100, exampleStyle(), shadow.Options{})

	// Fill is transparent, so the interior holds the shadow alpha (0x40).
	if a := bitmap.AlphaAt(50, 50).A; a < 58 || a > 66 {
		t.Errorf("center alpha = %d, want ~64", a)
	}
	if a := bitmap.AlphaAt(0, 0).A; a > 4 {
		t.Errorf("corner alpha = %d, want ~0", a)
	}
	// The shadow is shifted down: the bottom margin is darker than the top.
	if top, bottom := bitmap.AlphaAt(50, 12).A, bitmap.AlphaAt(50, 88).A; top >= bottom {
		t.Errorf("top margin alpha %d >= bottom margin alpha %d", top, bottom)
	}
}

func TestRender_PreviewModeSkipsShadow(t *testing.T) {
	bitmap := shadow.Render(100, 100, exampleStyle(), shadow.Options{PreviewMode: true})
	for _, a := range bitmap.Pix {
		if a != 0 {
			t.Fatal("expected transparent bitmap in preview mode with transparent fill")
		}
	}
}

func TestRender_OpaqueFillCoversShadow(t *testing.T) {
	style := exampleStyle()
	style.FillColor = graphics.ColorWhite
	bitmap := shadow.Render(100, 100, style, shadow.Options{})
	if a := bitmap.AlphaAt(50, 50).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
}

func TestBounds_Example(t *testing.T) {
	got := shadow.Bounds(100, 100, exampleStyle())
	want := graphics.Rect{Left: 10, Top: 14, Right: 90, Bottom: 86}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestBounds_OffsetSignDoesNotChangeSize(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
	}{
		{"dx", 6, 0},
		{"dy", 0, 3},
		{"both", 2.5, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := exampleStyle()
			pos.OffsetX, pos.OffsetY = tt.dx, tt.dy
			neg := pos
			neg.OffsetX, neg.OffsetY = -tt.dx, -tt.dy

			a := shadow.Bounds(120, 80, pos)
			b := shadow.Bounds(120, 80, neg)
			if a != b {
				t.Errorf("bounds differ: +offset %+v, -offset %+v", a, b)
			}
			if w := 120 - 2*(10+tt.dx); a.Width() != w {
				t.Errorf("width = %v, want %v", a.Width(), w)
			}
		})
	}
}

func TestBounds_Degenerate(t *testing.T) {
	style := exampleStyle()
	if r := shadow.Bounds(20, 100, style); !r.IsEmpty() || r != (graphics.Rect{}) {
		t.Errorf("Bounds = %+v, want empty", r)
	}
	style.OffsetY = 45
	if r := shadow.Bounds(100, 100, style); !r.IsEmpty() {
		t.Errorf("Bounds = %+v, want empty", r)
	}
}

func TestPaint_Example(t *testing.T) {
	canvas := shadowtest.NewRecordingCanvas(100, 100)
	shadow.Paint(canvas, exampleStyle(), shadow.Options{})

	ops := canvas.Ops()
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d: %+v", len(ops), ops)
	}
	if ops[0].Op != "drawRRectShadow" || ops[1].Op != "drawRRect" {
		t.Fatalf("ops = %s, %s; want shadow then fill", ops[0].Op, ops[1].Op)
	}
	want := graphics.Rect{Left: 10, Top: 14, Right: 90, Bottom: 86}
	for _, op := range ops {
		if op.Rect != want {
			t.Errorf("%s rect = %+v, want %+v", op.Op, op.Rect, want)
		}
	}
	params := ops[0].Params
	if params["color"] != "0x40000000" {
		t.Errorf("shadow color = %v", params["color"])
	}
	if params["blur"] != 10.0 {
		t.Errorf("shadow blur = %v", params["blur"])
	}
	offset := params["offset"].(map[string]any)
	if offset["x"] != 0.0 || offset["y"] != 4.0 {
		t.Errorf("shadow offset = %v", offset)
	}
	radius := ops[1].Params["radius"].(map[string]any)
	if radius["x"] != 8.0 {
		t.Errorf("corner radius = %v", radius)
	}
	if ops[1].Params["color"] != "0x00000000" {
		t.Errorf("fill color = %v", ops[1].Params["color"])
	}
}

func TestPaint_ZeroCornerRadiusDrawsRect(t *testing.T) {
	style := exampleStyle()
	style.CornerRadius = 0
	canvas := shadowtest.NewRecordingCanvas(100, 100)
	shadow.Paint(canvas, style, shadow.Options{})

	if n := len(canvas.OpsNamed("drawRectShadow")); n != 1 {
		t.Errorf("drawRectShadow ops = %d, want 1", n)
	}
	if n := len(canvas.OpsNamed("drawRect")); n != 1 {
		t.Errorf("drawRect ops = %d, want 1", n)
	}
	if n := len(canvas.OpsNamed("drawRRect")); n != 0 {
		t.Errorf("drawRRect ops = %d, want 0", n)
	}
}

func TestPaint_NoShadowLayer(t *testing.T) {
	tests := []struct {
		name  string
		style shadow.Style
		opts  shadow.Options
	}{
		{"preview", exampleStyle(), shadow.Options{PreviewMode: true}},
		{"zero radius", shadow.Style{CornerRadius: 8, ShadowColor: graphics.ColorBlack}, shadow.Options{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := shadowtest.NewRecordingCanvas(100, 100)
			shadow.Paint(canvas, tt.style, tt.opts)
			if n := len(canvas.OpsNamed("drawRRectShadow")); n != 0 {
				t.Errorf("shadow ops = %d, want 0", n)
			}
			if n := len(canvas.OpsNamed("drawRRect")); n != 1 {
				t.Errorf("fill ops = %d, want 1", n)
			}
		})
	}
}

func TestPaint_DegenerateDrawsNothing(t *testing.T) {
	canvas := shadowtest.NewRecordingCanvas(15, 15)
	shadow.Paint(canvas, exampleStyle(), shadow.Options{})
	if len(canvas.Ops()) != 0 {
		t.Errorf("expected no ops, got %+v", canvas.Ops())
	}
}
