// Package layout attaches shadow rendering to a host framework's container.
//
// The host implements [DecoratedContainer] and forwards its lifecycle
// callbacks to a [ShadowLayout]:
//
//	sl := layout.NewShadowLayout(container, set, layout.DefaultConfig())
//	// from the host's callbacks:
//	sl.OnSizeChanged(w, h, oldW, oldH)
//	sl.OnLayout(changed, l, t, r, b)
//
// Rendering is a pluggable [shadow.Renderer], so hosts and tests can swap
// the rasterizer without touching the lifecycle logic.
package layout
