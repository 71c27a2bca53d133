// Package: vizmark/tween
//
// easing.go — named easing curves. Invariants every curve keeps:
// f(0)=0, f(1)=1, f(t)∈[0,1] for t∈[0,1]. Inputs outside [0,1] are the
// caller's deliberate overshoot and pass through the same formula.
package tween

// Easing maps raw transition progress t to shaped progress t′.
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseOut decelerates into the target (cubic).
func EaseOut(t float64) float64 {
	u := 1 - t

	return 1 - u*u*u
}

// EaseInOut accelerates through the first half and decelerates through
// the second (piecewise cubic).
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2

	return 1 - u*u*u/2
}

// Named easing identifiers accepted by ByName.
const (
	EasingLinear    = "linear"
	EasingEaseOut   = "easeOut"
	EasingEaseInOut = "easeInOut"
)

// ByName resolves an easing curve by its stable name; ok=false for
// unknown names (callers typically fall back to Linear).
func ByName(name string) (Easing, bool) {
	switch name {
	case EasingLinear:
		return Linear, true
	case EasingEaseOut:
		return EaseOut, true
	case EasingEaseInOut:
		return EaseInOut, true
	default:
		return nil, false
	}
}
