// Package vizmark turns a declarative chart spec, raw caller data, and a
// pixel size into a deterministic, renderer-agnostic render model — a
// flat list of vector marks plus reusable defs, an accessibility tree,
// and a diagnostics report.
//
// 🚀 What is vizmark?
//
//	A pure compute core for micro-charts (sparklines, KPI bars, donuts,
//	pareto columns…) that never draws anything itself:
//		• compute:  spec + data + size → RenderModel, total & deterministic
//		• diagnose: numeric sanity, viewport bounds, def-reference integrity
//		• tween:    interpolate two models into one in-between frame
//		• infer:    guess the chart type from the shape of untyped data
//		• charts:   the per-chart-type plug-in contract & built-ins
//		• model:    the shared Mark/Def/RenderModel vocabulary
//
// ✨ Why choose vizmark?
//
//   - Total – malformed data, NaN sizes, wrong shapes: every call still
//     returns a usable model; problems become budgeted warnings
//   - Deterministic – equal inputs yield structurally equal models, so
//     snapshots, caching and diffing just work
//   - Renderer-agnostic – serialize the model to SVG, canvas commands,
//     or a DOM however you like; hit-testing and scheduling stay yours
//   - Pure Go – no cgo, no I/O, no goroutines; concurrent calls are
//     inherently safe
//
// Quick ASCII example (a bar model, 120×16):
//
//	┌────────────────────────────┐
//	│ ██████████████░░░░░░░░░░░░ │   marks: track rect, value rect
//	└────────────────────────────┘   stats: {markCount: 2, hasDefs: false}
//
// Dive into each package's doc.go for contracts and edge-case policy,
// and cmd/vizmark for a shell inspector.
//
//	go get github.com/katalvlaran/vizmark
package vizmark
