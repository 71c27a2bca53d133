// Package: vizmark/tween
//
// tween.go — mark and model interpolation.
package tween

import "github.com/katalvlaran/vizmark/model"

// Lerp linearly interpolates a→b at t. Deliberately unclamped:
// Lerp(0,100,-0.5) = -50 and Lerp(0,100,1.5) = 150, so spring-like
// drivers can overshoot through the same primitive.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Model computes the tweened model between two snapshots at t.
// Iteration is driven by to.Marks: marks are matched by ID against from,
// unmatched ones appear at their target value, and marks present only in
// from are dropped. Width/height blend like any numeric field; Defs,
// A11y and Stats always come from to. A nil snapshot on either side
// degenerates to the other one (nil/nil yields an empty model).
func Model(from, to *model.RenderModel, t float64) *model.RenderModel {
	switch {
	case to == nil && from == nil:
		return &model.RenderModel{Marks: []model.Mark{}}
	case to == nil:
		return from
	case from == nil:
		return to
	}

	// Index from-marks by ID; first occurrence wins on duplicate IDs.
	idx := make(map[string]model.Mark, len(from.Marks))
	for _, m := range from.Marks {
		if _, dup := idx[m.MarkID()]; !dup {
			idx[m.MarkID()] = m
		}
	}

	out := &model.RenderModel{
		Width:  Lerp(from.Width, to.Width, t),
		Height: Lerp(from.Height, to.Height, t),
		Marks:  make([]model.Mark, 0, len(to.Marks)),
		Defs:   to.Defs,
		A11y:   to.A11y,
		Stats:  to.Stats,
	}
	for _, tm := range to.Marks {
		fm, matched := idx[tm.MarkID()]
		if !matched {
			// New mark: no source value to blend from, so it appears
			// immediately at its target.
			out.Marks = append(out.Marks, tm)

			continue
		}
		out.Marks = append(out.Marks, Mark(fm, tm, t))
	}

	return out
}

// ModelEased is Model with t shaped by the easing curve first (nil means
// Linear). Drivers that resolve curves by name pair this with ByName.
func ModelEased(from, to *model.RenderModel, t float64, e Easing) *model.RenderModel {
	if e != nil {
		t = e(t)
	}

	return Model(from, to, t)
}

// Mark computes the tweened mark between a matched pair at t. A
// cross-kind pair snaps to the target at any t; a same-kind pair blends
// every numeric field and applies the hold-then-snap rule to strings.
func Mark(from, to model.Mark, t float64) model.Mark {
	switch tm := to.(type) {
	case model.RectMark:
		fm, ok := from.(model.RectMark)
		if !ok {
			return to
		}

		return model.RectMark{
			ID: tm.ID,
			X:  Lerp(fm.X, tm.X, t), Y: Lerp(fm.Y, tm.Y, t),
			W: Lerp(fm.W, tm.W, t), H: Lerp(fm.H, tm.H, t),
			RX:    Lerp(fm.RX, tm.RX, t),
			Style: blendStyle(fm.Style, tm.Style, t),
		}
	case model.CircleMark:
		fm, ok := from.(model.CircleMark)
		if !ok {
			return to
		}

		return model.CircleMark{
			ID: tm.ID,
			CX: Lerp(fm.CX, tm.CX, t), CY: Lerp(fm.CY, tm.CY, t),
			R:     Lerp(fm.R, tm.R, t),
			Style: blendStyle(fm.Style, tm.Style, t),
		}
	case model.LineMark:
		fm, ok := from.(model.LineMark)
		if !ok {
			return to
		}

		return model.LineMark{
			ID: tm.ID,
			X1: Lerp(fm.X1, tm.X1, t), Y1: Lerp(fm.Y1, tm.Y1, t),
			X2: Lerp(fm.X2, tm.X2, t), Y2: Lerp(fm.Y2, tm.Y2, t),
			Style: blendStyle(fm.Style, tm.Style, t),
		}
	case model.TextMark:
		fm, ok := from.(model.TextMark)
		if !ok {
			return to
		}

		return model.TextMark{
			ID: tm.ID,
			X:  Lerp(fm.X, tm.X, t), Y: Lerp(fm.Y, tm.Y, t),
			Text:     holdString(fm.Text, tm.Text, t),
			FontSize: Lerp(fm.FontSize, tm.FontSize, t),
			Anchor:   holdString(fm.Anchor, tm.Anchor, t),
			Style:    blendStyle(fm.Style, tm.Style, t),
		}
	case model.PathMark:
		fm, ok := from.(model.PathMark)
		if !ok {
			return to
		}

		return model.PathMark{
			ID:    tm.ID,
			D:     holdString(fm.D, tm.D, t),
			Style: blendStyle(fm.Style, tm.Style, t),
		}
	default:
		return to
	}
}

// blendStyle blends the numeric style fields and applies the
// hold-then-snap rule to the paint/reference strings. Opacity blends only
// when present on both sides; otherwise the target's value (or absence)
// wins immediately.
func blendStyle(from, to model.Style, t float64) model.Style {
	out := model.Style{
		Fill:        holdString(from.Fill, to.Fill, t),
		Stroke:      holdString(from.Stroke, to.Stroke, t),
		StrokeWidth: Lerp(from.StrokeWidth, to.StrokeWidth, t),
		ClipPath:    holdString(from.ClipPath, to.ClipPath, t),
		Mask:        holdString(from.Mask, to.Mask, t),
		Filter:      holdString(from.Filter, to.Filter, t),
	}
	switch {
	case from.Opacity != nil && to.Opacity != nil:
		o := Lerp(*from.Opacity, *to.Opacity, t)
		out.Opacity = &o
	case to.Opacity != nil:
		o := *to.Opacity
		out.Opacity = &o
	}

	return out
}

// holdString keeps the source string strictly before the completion
// boundary and snaps to the target at t=1. The asymmetry with numeric
// overshoot is intentional: strings cannot blend, and snapping early
// would flash target content mid-transition.
func holdString(from, to string, t float64) string {
	if t < 1 {
		return from
	}

	return to
}
