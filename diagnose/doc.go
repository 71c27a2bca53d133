// Package diagnose independently validates an assembled render model:
// it trusts neither the chart definition that generated the marks nor the
// caller's size, and reports everything suspicious as budget-bounded
// advisory warnings.
//
// 🚀 Two passes:
//
//	Pass A — numeric sanity & viewport bounds (Numeric):
//	  • every geometry/style field of every mark must be finite; the first
//	    non-finite field yields NAN_COORDINATE and skips bounds for that mark
//	  • finite marks get an axis-aligned bounding box (rect → corner
//	    extremes, circle → center ± radius, line → endpoint extremes,
//	    text → anchor point, path → only when written in the M/L/Z
//	    polyline grammar) compared against [0,width]×[0,height] with an
//	    epsilon tolerance; escapes yield MARK_OUT_OF_BOUNDS
//
//	Pass B — reference integrity (References):
//	  • resolves ClipPath/Mask/Filter directly and Fill/Stroke through the
//	    url(#id) form, then checks each referenced def exists AND is of
//	    the kind the relation expects; failures yield MISSING_DEF
//	  • distinct (relation, defID) pairs are checked once — repeated
//	    identical breakages collapse into one warning, a deliberate
//	    high-signal-over-exhaustive choice
//
// ✨ Why here and not in a renderer?
//
//	A dangling or mistyped resource reference silently blanks or diverges
//	a chart differently per renderer; checking in the renderer-agnostic
//	model layer catches it once, for all of them.
//
// Both passes stop the moment the warning budget is exhausted, so the
// worst-case cost is O(budget) even for adversarially broken models.
package diagnose
