package attrs

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-drift/shadowlayout/pkg/errors"
	"github.com/go-drift/shadowlayout/pkg/graphics"
)

func TestLoadResources(t *testing.T) {
	res, err := LoadResources(filepath.Join("testdata", "styles.yaml"))
	if err != nil {
		t.Fatalf("LoadResources: %v", err)
	}
	if res.Version != "v1.2.0" {
		t.Errorf("Version = %q, want v1.2.0", res.Version)
	}
	if got, want := res.Names(), []string{"card", "flat", "raisedCard"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}

	set, err := res.Obtain("card", DisplayMetrics{Density: 2})
	if err != nil {
		t.Fatalf("Obtain: %v", err)
	}
	defer set.Recycle()

	if set.Name() != "card" {
		t.Errorf("Name = %q", set.Name())
	}
	style := ParseShadowStyle(set, DefaultDefaults(set.Metrics()))
	if style.CornerRadius != 16 || style.ShadowRadius != 20 || style.OffsetY != 8 {
		t.Errorf("style = %+v", style)
	}
	if style.ShadowColor != graphics.Color(0x40000000) {
		t.Errorf("ShadowColor = %v", style.ShadowColor)
	}
}

func TestResources_ParentInheritance(t *testing.T) {
	res, err := LoadResources(filepath.Join("testdata", "styles.yaml"))
	if err != nil {
		t.Fatalf("LoadResources: %v", err)
	}
	set, err := res.Obtain("raisedCard", DefaultDisplayMetrics())
	if err != nil {
		t.Fatalf("Obtain: %v", err)
	}
	defer set.Recycle()

	if set.HasValue(parentKey) {
		t.Error("parent key should not be exposed as an attribute")
	}
	style := ParseShadowStyle(set, DefaultDefaults(DefaultDisplayMetrics()))
	if style.CornerRadius != 8 || style.ShadowRadius != 10 {
		t.Errorf("inherited radii = %v, %v", style.CornerRadius, style.ShadowRadius)
	}
	if style.OffsetY != 6 || style.ShadowColor != graphics.Color(0x66000000) {
		t.Errorf("overrides = dy %v color %v", style.OffsetY, style.ShadowColor)
	}
}

func TestResources_ObtainUnknown(t *testing.T) {
	res, err := ParseResources([]byte("styles:\n  card:\n    dx: 1px\n"))
	if err != nil {
		t.Fatalf("ParseResources: %v", err)
	}
	if res.Version != "v1.0.0" {
		t.Errorf("default Version = %q", res.Version)
	}
	_, err = res.Obtain("missing", DefaultDisplayMetrics())
	var se *errors.ShadowError
	if !stderrors.As(err, &se) || se.Kind != errors.KindResource {
		t.Errorf("Obtain error = %v, want KindResource", err)
	}
}

func TestParseResources_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "styles: [", "yaml"},
		{"invalid version", "version: banana\n", "invalid version"},
		{"unsupported major", "version: 2.0.0\n", "unsupported version v2.0.0"},
		{"unknown parent", "styles:\n  a:\n    parent: b\n", `unknown parent "b"`},
		{"cycle", "styles:\n  a:\n    parent: b\n  b:\n    parent: a\n", "cycle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResources([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
			var se *errors.ShadowError
			if !stderrors.As(err, &se) || se.Kind != errors.KindResource {
				t.Errorf("error %v is not a KindResource ShadowError", err)
			}
		})
	}
}

func TestLoadResources_MissingFile(t *testing.T) {
	_, err := LoadResources(filepath.Join(t.TempDir(), "nope.yaml"))
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
