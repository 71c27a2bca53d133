// Package charts defines the per-chart-type plug-in contract (Definition),
// the immutable startup registry that maps a spec's type string to its
// implementation, and the built-in micro-chart definitions.
//
// 🚀 What is a chart definition?
//
//	The compute pipeline is chart-agnostic: everything type-specific —
//	validating and coercing caller data, generating marks and defs,
//	describing the chart to assistive technology — lives behind the
//	Definition interface. The pipeline looks implementations up by the
//	spec's Type string in a Registry built once at startup and never
//	mutated per request, so lookup is O(1) and concurrent use is free.
//
// ✨ Contract highlights:
//   - Totality: Normalize must coerce malformed input and record warnings,
//     never panic — the pipeline's "never throws" guarantee depends on it.
//   - Tagging: every Normalized value reports the type it was produced
//     for; the pipeline refuses to generate marks on a tag mismatch.
//   - Optional capabilities: defs generation (DefProvider) and the
//     empty-data warning message (EmptyDataWarner) are opt-in interfaces.
//
// Built-in definitions: bar, spark, spark-area, donut, pareto,
// split-pareto, delta, dumbbell, histogram. Registry.Verify lets a host
// confirm at startup that every chart type it relies on is implemented.
package charts
