// Package: vizmark/charts
//
// definition.go — the per-chart-type plug-in contract consumed by the
// compute pipeline. Implementations live in impl_*.go (one file per chart
// family); external packages may implement Definition too and assemble a
// custom Registry.
package charts

import "github.com/katalvlaran/vizmark/model"

// Normalized is chart-type-specific, validated and coerced caller data.
// Every value is tagged with the chart type it was produced for; the
// pipeline checks the tag against the spec before generating marks, and a
// mismatch yields empty output rather than a crash.
type Normalized interface {
	// NormalizedType returns the chart type this data was normalized for.
	NormalizedType() string
}

// Definition is the dynamic-dispatch surface of the system: one
// implementation per chart type, looked up by the spec's Type string.
//
// Totality contract (strict): ValidateData and Normalize accept ANY value
// — nil, wrong shape, NaN payloads — and must coerce rather than panic,
// recording shape problems as warnings on the supplied collector. The
// pipeline's never-throws guarantee is only as good as its definitions.
type Definition interface {
	// Type returns the spec type string this definition implements.
	Type() string

	// DefaultPad returns the padding used when the spec carries none.
	DefaultPad() float64

	// ValidateData soft-validates raw caller data against this type's
	// expected shape, recording every problem found (collect-all, not
	// fail-fast) as warnings. It never aborts.
	ValidateData(data any, warns *model.Collector)

	// Normalize coerces raw caller data into this type's Normalized form.
	// Invalid pieces become safe defaults; warnings may be recorded.
	Normalize(spec model.ChartSpec, data any, warns *model.Collector) Normalized

	// IsEmpty reports whether the normalized data has nothing to draw.
	IsEmpty(n Normalized) bool

	// Marks generates the chart's drawable primitives for the layout.
	// It is only invoked when n's tag matches the spec type.
	Marks(spec model.ChartSpec, n Normalized, lay model.Layout, st model.State, th model.Theme, warns *model.Collector) []model.Mark

	// A11y describes the chart to assistive technology. The pipeline
	// back-fills missing Summary/Items; values returned here always win.
	A11y(spec model.ChartSpec, n Normalized, lay model.Layout) model.A11yTree
}

// DefProvider is the optional defs-generation capability. Definitions
// that need reusable resources (gradients, clips, masks) implement it;
// the pipeline treats its absence as "no defs".
type DefProvider interface {
	Defs(spec model.ChartSpec, n Normalized, lay model.Layout, warns *model.Collector) []model.Def
}

// EmptyDataWarner is the optional empty-data capability: definitions that
// implement it get an EMPTY_DATA warning (with their message) pushed by
// the pipeline when IsEmpty reports true.
type EmptyDataWarner interface {
	EmptyDataWarning() string
}
