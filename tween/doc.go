// Package tween computes an interpolated RenderModel between two
// snapshots — the pure math of a chart transition, with no notion of
// wall-clock time, scheduling, or frames.
//
// 🚀 How a transition works:
//
//	A hosting driver (out of scope here) retains the previous model,
//	computes the next one, and calls Model(from, to, t) once per frame
//	with t it derives from elapsed time (optionally shaped by an Easing).
//	The driver owns cancel-before-replace and terminal-callback semantics;
//	this package owns only the blending policy:
//	  • marks are matched across models by ID, iteration driven by `to` —
//	    a mark only in `to` appears immediately at its target value, a
//	    mark only in `from` is dropped
//	  • same-kind pairs blend every numeric field with unclamped Lerp
//	    (t is NOT clamped: overshoot is a feature, lerp(0,100,1.5)=150)
//	  • cross-kind pairs (same ID, different variant) snap to `to` at any
//	    t — geometric blending between, say, a rect and a circle is
//	    undefined, so we don't pretend
//	  • non-numeric content (text strings, paint strings) holds the
//	    `from` value while t<1 and snaps to `to` at the t=1 boundary
//	  • opacity blends only when present on both sides, else takes `to`
//	  • width/height blend; defs, a11y and stats always take `to`,
//	    so non-visual state never flickers mid-transition
//
// ✨ Easing:
//
//	Named curves (linear, easeOut, easeInOut) map raw t→t′ before field
//	interpolation. Every curve satisfies f(0)=0, f(1)=1 and stays within
//	[0,1] on [0,1].
//
// Everything here is pure and allocation-light: same inputs, same output.
package tween
