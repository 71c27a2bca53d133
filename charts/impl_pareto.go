// Package: vizmark/charts
//
// impl_pareto.go — the "pareto" and "split-pareto" definitions: cumulative
// contribution columns, bottom-aligned, one background track and one
// foreground column per segment. split-pareto adds a vertical divider at a
// threshold percent of the cumulative scale (the classic "vital few"
// cut). Data shape: segments (see segments.go).
package charts

import (
	"fmt"

	"github.com/katalvlaran/vizmark/model"
)

type paretoDef struct {
	split bool
}

func (d paretoDef) Type() string {
	if d.split {
		return TypeSplitPareto
	}

	return TypePareto
}

func (paretoDef) DefaultPad() float64 { return defaultPadColumn }

func (d paretoDef) EmptyDataWarning() string { return d.Type() + " chart received no segments" }

func (d paretoDef) ValidateData(data any, warns *model.Collector) {
	validateSegments(d.Type(), data, warns)
}

func (d paretoDef) Normalize(_ model.ChartSpec, data any, _ *model.Collector) Normalized {
	return normalizeSegments(d.Type(), data)
}

func (paretoDef) IsEmpty(n Normalized) bool {
	sn, ok := n.(segmentsNorm)

	return !ok || len(sn.segs) == 0
}

func (d paretoDef) Marks(spec model.ChartSpec, n Normalized, lay model.Layout, _ model.State, th model.Theme, _ *model.Collector) []model.Mark {
	sn, ok := n.(segmentsNorm)
	if !ok || len(sn.segs) == 0 {
		return nil
	}
	total := segmentTotal(sn.segs)
	if total <= 0 {
		return nil
	}
	ids := model.NewIDAllocator(d.Type())
	x, y, w, h := lay.Inner()

	gap := defaultGap
	if spec.Gap != nil && isFinite(*spec.Gap) && *spec.Gap >= 0 {
		gap = *spec.Gap
	}
	count := len(sn.segs)
	colW := (w - gap*float64(count-1)) / float64(count)

	// Background tracks first, so every foreground column paints above
	// the full-height tracks regardless of renderer z-handling.
	marks := make([]model.Mark, 0, 2*count+1)
	for i := 0; i < count; i++ {
		cx := x + float64(i)*(colW+gap)
		marks = append(marks, model.RectMark{
			ID: ids.Next("rect"), X: cx, Y: y, W: colW, H: h,
			Style: model.Style{Fill: th.Background},
		})
	}

	// Foreground columns climb the cumulative share, bottom-aligned:
	// column i spans y+h-cumH .. y+h where cumH = h·(Σ pct₀..ᵢ / total).
	var cum float64
	for i, seg := range sn.segs {
		cum += seg.Pct
		cumH := h * cum / total
		cx := x + float64(i)*(colW+gap)
		style := model.Style{Fill: themedFill(th, i, seg.Color, th.Foreground)}
		if d.split && d.thresholdX(spec, x, w) < cx {
			style.Opacity = opacity(0.65)
		}
		marks = append(marks, model.RectMark{
			ID: ids.Next("rect"), X: cx, Y: y + h - cumH, W: colW, H: cumH,
			Style: style,
		})
	}

	if d.split {
		dx := d.thresholdX(spec, x, w)
		marks = append(marks, model.LineMark{
			ID: ids.Next("line"), X1: dx, Y1: y, X2: dx, Y2: y + h,
			Style: model.Style{Stroke: th.Foreground, StrokeWidth: 1},
		})
	}

	return marks
}

// thresholdX maps the threshold percent onto the inner x axis.
func (paretoDef) thresholdX(spec model.ChartSpec, x, w float64) float64 {
	threshold := defaultSplitThreshold
	if spec.Threshold != nil && isFinite(*spec.Threshold) {
		threshold = *spec.Threshold
	}

	return x + w*threshold/100
}

func (d paretoDef) A11y(spec model.ChartSpec, n Normalized, _ model.Layout) model.A11yTree {
	tree := model.A11yTree{Role: "img", Label: d.Type() + " chart"}
	if spec.Label != "" {
		tree.Label = spec.Label
	}
	if sn, ok := n.(segmentsNorm); ok && len(sn.segs) > 0 {
		tree.Summary = fmt.Sprintf("%d segments totalling %g%%", len(sn.segs), segmentTotal(sn.segs))
		tree.Items = segmentItems(sn.segs)
	}

	return tree
}
