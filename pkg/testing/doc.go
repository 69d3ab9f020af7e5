// Package testing provides test doubles for shadow layouts.
//
// [RecordingCanvas] records drawing commands instead of rasterizing them,
// so geometry can be asserted exactly:
//
//	canvas := shadowtest.NewRecordingCanvas(100, 100)
//	shadow.Paint(canvas, style, shadow.Options{})
//	fill := canvas.OpsNamed("drawRRect")[0]
//
// [FakeContainer] stands in for a host container and records padding,
// backgrounds and layout requests.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import shadowtest "github.com/go-drift/shadowlayout/pkg/testing"
package testing
