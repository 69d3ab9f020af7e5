package attrs

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/shadowlayout/pkg/errors"
	"github.com/go-drift/shadowlayout/pkg/graphics"
)

type captureHandler struct {
	errs []*errors.ShadowError
}

func (h *captureHandler) HandleError(err *errors.ShadowError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError) {}

func captureErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	old := errors.DefaultHandler
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(old) })
	return h
}

func TestSet_TypedGetters(t *testing.T) {
	set := NewSet(map[string]string{
		AttrCornerRadius: "6dp",
		AttrShadowColor:  "#80102030",
	}, DisplayMetrics{Density: 2})
	defer set.Recycle()

	if got := set.Dimension(AttrCornerRadius, 1); got != 12 {
		t.Errorf("Dimension = %v, want 12", got)
	}
	if got := set.Dimension(AttrDx, 7); got != 7 {
		t.Errorf("absent Dimension = %v, want default 7", got)
	}
	if got := set.Color(AttrShadowColor, graphics.ColorBlack); got != graphics.Color(0x80102030) {
		t.Errorf("Color = %v", got)
	}
	if !set.HasValue(AttrCornerRadius) || set.HasValue(AttrDy) {
		t.Error("HasValue mismatch")
	}
}

func TestSet_MalformedFallsBackAndReports(t *testing.T) {
	h := captureErrors(t)
	set := NewSet(map[string]string{
		AttrDx:          "twelve",
		AttrShadowColor: "red",
	}, DefaultDisplayMetrics())
	defer set.Recycle()

	if got := set.Dimension(AttrDx, 0); got != 0 {
		t.Errorf("Dimension = %v, want 0", got)
	}
	if got := set.Color(AttrShadowColor, graphics.ColorWhite); got != graphics.ColorWhite {
		t.Errorf("Color = %v, want default", got)
	}
	if len(h.errs) != 2 {
		t.Fatalf("reported %d errors, want 2", len(h.errs))
	}
	first := h.errs[0]
	if first.Kind != errors.KindAttribute || first.Attribute != AttrDx {
		t.Errorf("first error = %v", first)
	}
	var attrErr *errors.AttributeError
	if !stderrors.As(first, &attrErr) || attrErr.Value != "twelve" {
		t.Errorf("expected AttributeError with raw value, got %v", first.Err)
	}
}

func TestSet_RecycleIsScoped(t *testing.T) {
	set := NewSet(map[string]string{AttrDx: "1"}, DefaultDisplayMetrics())
	set.Recycle()

	mustPanic(t, "use after recycle", func() { set.Dimension(AttrDx, 0) })
	mustPanic(t, "double recycle", set.Recycle)
}

func TestSet_CopiesValues(t *testing.T) {
	values := map[string]string{AttrDx: "1"}
	set := NewSet(values, DefaultDisplayMetrics())
	defer set.Recycle()
	values[AttrDx] = "5"
	if got := set.Dimension(AttrDx, 0); got != 1 {
		t.Errorf("Dimension = %v, want 1", got)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
