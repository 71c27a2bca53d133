// Package infer maps loosely-typed external input to a best-guess
// (ChartSpec, data) pair by sniffing its structure.
//
// 🚀 How it decides:
//
//	An ordered list of structural recognizers runs against the input and
//	the FIRST match wins — there is no scoring or best-match search, so
//	the result is deterministic and the order below is part of the API:
//
//	  1. numeric array                         → spark
//	  2. array of {pct, color, name?}          → donut
//	  3. record with a segments field of (2)   → donut
//	  4. record with current & previous (+max) → delta
//	  5. record with current & target  (+max)  → dumbbell
//	  6. record with numeric value     (+max)  → bar
//	  7. record with numeric series (+opacities) → histogram
//
//	When nothing matches: a configured fallback type wraps the raw input
//	as-is, otherwise Infer reports ErrNoInference.
//
// ✨ Why first-match?
//
//	Overlapping shapes are resolved by specificity order, not heuristics:
//	{current, previous, target} is a delta because delta is tried first.
//	Callers that disagree pass an explicit spec to compute instead.
package infer
