// Package compute orchestrates the render pipeline: it turns a chart
// spec, raw caller data, and a pixel size into a complete RenderModel.
//
// 🚀 Pipeline (in order, always all of it):
//
//	 1. soft-validate data against the chart type's expected shape —
//	    every problem becomes a warning, never an abort
//	 2. normalize data through the chart definition (total: coerces,
//	    never panics)
//	 3. push EMPTY_DATA when the definition declares its data empty
//	 4. resolve layout: width, height and pad coerce independently to
//	    finite non-negative numbers (one bad field never blocks another)
//	 5. generate marks (guarded: the normalized data's type tag must
//	    match the spec type, else empty output)
//	 6. generate defs (same guard; definitions without defs yield none)
//	 7. push BLANK_RENDER when no marks were produced
//	 8. run the diagnostics validator over the final marks/defs/layout
//	 9. compute the a11y tree, back-filling summary/items when the
//	    definition omits them (definition-provided values always win)
//	10. assemble the RenderModel with stats
//
// ✨ Guarantees:
//   - Totality — Model never panics for malformed domain input and always
//     returns a structurally valid RenderModel, even with zero marks.
//     Only a chart-definition contract violation (a plugin bug) may
//     escape, and that is outside normal operation.
//   - Determinism — same (spec, data, size, options) ⇒ structurally equal
//     output; no shared mutable state across calls, so concurrent
//     invocations are inherently safe.
//   - Bounded diagnostics — at most model.MaxDiagnosticWarnings warnings
//     per call, checked before every append.
package compute
