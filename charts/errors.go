// Package: vizmark/charts
//
// errors.go — sentinel errors for registry construction and verification.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; construction code attaches context via %w.
//   - These errors concern registry assembly (programmer configuration),
//     not chart data: malformed chart data never yields an error anywhere
//     in vizmark — it yields diagnostic warnings.
package charts

import "errors"

var (
	// ErrNilDefinition indicates a nil Definition was passed to NewRegistry.
	// Usage: if errors.Is(err, ErrNilDefinition) { /* fix registration list */ }.
	ErrNilDefinition = errors.New("charts: nil definition")

	// ErrDuplicateType indicates two definitions claim the same Type string.
	// Usage: if errors.Is(err, ErrDuplicateType) { /* rename one type */ }.
	ErrDuplicateType = errors.New("charts: duplicate chart type")

	// ErrEmptyType indicates a definition reports an empty Type string.
	ErrEmptyType = errors.New("charts: empty chart type")

	// ErrUnknownType indicates Verify was asked about a type with no
	// registered implementation.
	// Usage: if errors.Is(err, ErrUnknownType) { /* register the type */ }.
	ErrUnknownType = errors.New("charts: unknown chart type")
)
