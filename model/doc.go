// Package model defines the renderer-agnostic vocabulary shared by every
// vizmark subsystem: vector Marks, reusable Defs, the assembled RenderModel,
// diagnostic warnings with a fixed budget, and the small supporting types
// (Size, Layout, Theme, State, ID allocation).
//
// 🚀 What is a RenderModel?
//
//	A complete, flat description of one chart's visual output at an instant:
//	  • Marks — drawable primitives (rect/circle/line/text/path)
//	  • Defs  — reusable resources (gradients, patterns, masks, clips, filters)
//	  • A11y  — an accessibility tree for assistive technology
//	  • Stats — mark counts plus advisory diagnostic warnings
//
//	Downstream code (an SVG serializer, a DOM host, hit-testing) consumes
//	this model; none of that lives here.
//
// ✨ Guarantees:
//   - Values only — no goroutines, no I/O, no hidden globals.
//   - Warnings are advisory and capped at MaxDiagnosticWarnings; a Collector
//     refuses appends past the budget, so diagnostic cost is O(budget).
//   - ID allocation is per-call (NewIDAllocator), never process-wide, so
//     concurrent model computations stay independent.
//
// See compute for the pipeline that assembles a RenderModel, diagnose for
// the validator that inspects one, and tween for interpolation between two.
package model
