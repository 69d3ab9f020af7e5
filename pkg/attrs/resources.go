package attrs

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/shadowlayout/pkg/errors"
)

// SupportedMajor is the style resource format major version this package reads.
const SupportedMajor = "v1"

// parentKey names the style a style inherits attributes from.
const parentKey = "parent"

// resourceFile is the on-disk YAML layout of a style resource.
type resourceFile struct {
	Version string                       `yaml:"version"`
	Styles  map[string]map[string]string `yaml:"styles"`
}

// Resources holds named shadow styles loaded from a YAML style resource:
//
//	version: v1.0.0
//	styles:
//	  card:
//	    cornerRadius: 8dp
//	    shadowRadius: 10dp
//	    dy: 4dp
//	    shadowColor: "#40000000"
//	  raisedCard:
//	    parent: card
//	    dy: 6dp
//
// A style with a parent inherits every attribute it does not set itself.
type Resources struct {
	// Version is the canonical semantic version of the resource format.
	Version string
	styles  map[string]map[string]string
}

// LoadResources reads and parses a style resource file.
func LoadResources(path string) (*Resources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ShadowError{
			Op:   "attrs.LoadResources",
			Kind: errors.KindResource,
			Err:  fmt.Errorf("failed to read %s: %w", path, err),
		}
	}
	res, err := ParseResources(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return res, nil
}

// ParseResources parses style resource YAML. A missing version means v1.0.0.
func ParseResources(data []byte) (*Resources, error) {
	var file resourceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, resourceError(err)
	}

	version, err := canonicalVersion(file.Version)
	if err != nil {
		return nil, resourceError(err)
	}

	styles := make(map[string]map[string]string, len(file.Styles))
	for name := range file.Styles {
		resolved, err := resolveStyle(file.Styles, name, nil)
		if err != nil {
			return nil, resourceError(err)
		}
		styles[name] = resolved
	}
	return &Resources{Version: version, styles: styles}, nil
}

// Names returns the style names in sorted order.
func (r *Resources) Names() []string {
	return slices.Sorted(maps.Keys(r.styles))
}

// Obtain returns a fresh attribute set for the named style. The caller
// must Recycle it.
func (r *Resources) Obtain(name string, metrics DisplayMetrics) (*Set, error) {
	values, ok := r.styles[name]
	if !ok {
		return nil, &errors.ShadowError{
			Op:   "attrs.Resources.Obtain",
			Kind: errors.KindResource,
			Err:  fmt.Errorf("unknown style %q", name),
		}
	}
	set := NewSet(values, metrics)
	set.name = name
	return set, nil
}

func canonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		v = SupportedMajor + ".0.0"
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return "", fmt.Errorf("unsupported version %s: want %s.x", v, SupportedMajor)
	}
	return semver.Canonical(v), nil
}

// resolveStyle flattens a style with its parent chain. seen guards against
// inheritance cycles.
func resolveStyle(styles map[string]map[string]string, name string, seen []string) (map[string]string, error) {
	if slices.Contains(seen, name) {
		return nil, fmt.Errorf("style inheritance cycle: %s -> %s", strings.Join(seen, " -> "), name)
	}
	values, ok := styles[name]
	if !ok {
		return nil, fmt.Errorf("style %q: unknown parent %q", seen[len(seen)-1], name)
	}

	resolved := make(map[string]string, len(values))
	if parent := strings.TrimSpace(values[parentKey]); parent != "" {
		inherited, err := resolveStyle(styles, parent, append(seen, name))
		if err != nil {
			return nil, err
		}
		maps.Copy(resolved, inherited)
	}
	for k, v := range values {
		if k != parentKey {
			resolved[k] = v
		}
	}
	return resolved, nil
}

func resourceError(err error) error {
	return &errors.ShadowError{
		Op:   "attrs.ParseResources",
		Kind: errors.KindResource,
		Err:  err,
	}
}
