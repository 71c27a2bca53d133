// Package model: ids.go — per-call mark/def ID allocation.
package model

import "strconv"

// IDAllocator hands out sequential IDs of the form "<prefix>-<kind>-<n>".
// One allocator is constructed per top-level compute call (never a
// process-wide counter), so identical inputs always yield identical IDs
// and concurrent calls stay independent.
type IDAllocator struct {
	prefix string
	next   map[string]int
}

// NewIDAllocator returns an allocator whose IDs start with prefix
// (typically the chart type).
func NewIDAllocator(prefix string) *IDAllocator {
	return &IDAllocator{prefix: prefix, next: make(map[string]int)}
}

// Next returns the next ID for the given kind, e.g. Next("rect") on a
// "bar" allocator yields "bar-rect-0", "bar-rect-1", …
func (a *IDAllocator) Next(kind string) string {
	n := a.next[kind]
	a.next[kind] = n + 1

	return a.prefix + "-" + kind + "-" + strconv.Itoa(n)
}
