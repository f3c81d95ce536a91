package scene

import (
	"fmt"
	"sort"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/shapes"
)

// Builder constructs a named scene at the requested image size
type Builder func(width, height int) (*Scene, error)

// builders is the registry of built-in scenes, keyed by name
var builders = map[string]Builder{
	"default":  NewDefaultScene,
	"csg":      NewCSGScene,
	"patterns": NewPatternScene,
}

// Get returns the builder for a scene name
func Get(name string) (Builder, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, List())
	}
	return b, nil
}

// Build constructs and validates a named scene
func Build(name string, width, height int) (*Scene, error) {
	b, err := Get(name)
	if err != nil {
		return nil, err
	}
	s, err := b(width, height)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// List returns the registered scene names, sorted
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mustSetTransform applies a transform chain (applied right to left, so
// list them outermost first) to a shape. Demo builders use only literal,
// invertible transforms, so a failure here is a programming error.
func mustSetTransform(s shapes.Shape, ms ...core.Matrix) {
	t := core.Identity()
	for _, m := range ms {
		t = t.Multiply(m)
	}
	if err := s.SetTransform(t); err != nil {
		panic(err)
	}
}
