// Package: vizmark/charts
//
// registry.go — the immutable type→Definition map built once at startup.
package charts

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vizmark/model"
)

// Registry maps chart type strings to their definitions. It is built once
// (NewRegistry / MustRegistry) and never mutated afterwards, so concurrent
// lookups from any number of goroutines are safe without locking.
type Registry struct {
	byType map[string]Definition
	types  []string // sorted, for deterministic listings
}

// NewRegistry assembles a registry from the given definitions. It rejects
// nil definitions, empty type strings, and duplicate types with wrapped
// sentinel errors (ErrNilDefinition, ErrEmptyType, ErrDuplicateType).
func NewRegistry(defs ...Definition) (*Registry, error) {
	byType := make(map[string]Definition, len(defs))
	for i, d := range defs {
		if d == nil {
			return nil, fmt.Errorf("NewRegistry: definition %d: %w", i, ErrNilDefinition)
		}
		t := d.Type()
		if t == "" {
			return nil, fmt.Errorf("NewRegistry: definition %d: %w", i, ErrEmptyType)
		}
		if _, dup := byType[t]; dup {
			return nil, fmt.Errorf("NewRegistry: %q: %w", t, ErrDuplicateType)
		}
		byType[t] = d
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	return &Registry{byType: byType, types: types}, nil
}

// MustRegistry is NewRegistry that panics on configuration errors.
// Intended for package-level registry construction, where a bad
// registration list is a programmer error caught at startup.
func MustRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}

	return r
}

// Lookup returns the definition for chart type t, and whether one exists.
func (r *Registry) Lookup(t string) (Definition, bool) {
	d, ok := r.byType[t]

	return d, ok
}

// Types returns the registered type strings, sorted, as a copy.
func (r *Registry) Types() []string {
	out := make([]string, len(r.types))
	copy(out, r.types)

	return out
}

// Verify confirms that every required type has an implementation,
// returning a wrapped ErrUnknownType naming the first missing one.
// Hosts call this once at startup against the chart types they rely on.
func (r *Registry) Verify(required ...string) error {
	for _, t := range required {
		if _, ok := r.byType[t]; !ok {
			return fmt.Errorf("Verify: %q: %w", t, ErrUnknownType)
		}
	}

	return nil
}

// Builtin returns the read-only registry of built-in chart definitions.
// The same instance is returned every call; it is never mutated.
func Builtin() *Registry { return builtin }

var builtin = MustRegistry(
	barDef{},
	sparkDef{area: false},
	sparkDef{area: true},
	donutDef{},
	paretoDef{split: false},
	paretoDef{split: true},
	deltaDef{},
	dumbbellDef{},
	histogramDef{},
)

// static assertions: optional capabilities stay implemented where relied on.
var (
	_ DefProvider     = sparkDef{}
	_ EmptyDataWarner = sparkDef{}
	_ EmptyDataWarner = donutDef{}
	_ EmptyDataWarner = paretoDef{}
	_ EmptyDataWarner = histogramDef{}
	_ Definition      = barDef{}
	_ Definition      = deltaDef{}
	_ Definition      = dumbbellDef{}
)

// themedFill picks the i-th palette color, falling back to fallback when
// the theme has no palette and the datum carries no color of its own.
func themedFill(th model.Theme, i int, own, fallback string) string {
	if own != "" {
		return own
	}
	if c := th.Color(i); c != "" {
		return c
	}

	return fallback
}
