// Package: vizmark/charts
//
// impl_dumbbell.go — the "dumbbell" definition: current and target values
// as two dots joined by a connector on a horizontal axis.
// Data shape: {current, target, max?}.
package charts

import (
	"fmt"

	"github.com/katalvlaran/vizmark/model"
)

type dumbbellDef struct{}

type dumbbellNorm struct {
	present bool
	current float64
	target  float64
	max     float64
}

func (dumbbellNorm) NormalizedType() string { return TypeDumbbell }

func (dumbbellDef) Type() string        { return TypeDumbbell }
func (dumbbellDef) DefaultPad() float64 { return defaultPadBar }

func (dumbbellDef) ValidateData(data any, warns *model.Collector) {
	m, ok := wantRecord(TypeDumbbell, data, warns)
	if !ok {
		return
	}
	wantNumberField(TypeDumbbell, m, "current", true, warns)
	wantNumberField(TypeDumbbell, m, "target", true, warns)
	wantNumberField(TypeDumbbell, m, "max", false, warns)
}

func (dumbbellDef) Normalize(_ model.ChartSpec, data any, _ *model.Collector) Normalized {
	m, ok := asMap(data)
	if !ok {
		return dumbbellNorm{max: defaultMax}
	}
	n := dumbbellNorm{
		present: true,
		current: coerceNumber(m["current"], 0),
		target:  coerceNumber(m["target"], 0),
		max:     coerceNumber(m["max"], defaultMax),
	}
	if n.max <= 0 {
		n.max = defaultMax
	}

	return n
}

func (dumbbellDef) IsEmpty(n Normalized) bool {
	d, ok := n.(dumbbellNorm)

	return !ok || !d.present
}

func (dumbbellDef) Marks(_ model.ChartSpec, n Normalized, lay model.Layout, _ model.State, th model.Theme, _ *model.Collector) []model.Mark {
	d, ok := n.(dumbbellNorm)
	if !ok || !d.present {
		return nil
	}
	ids := model.NewIDAllocator(TypeDumbbell)
	x, y, w, h := lay.Inner()

	cy := y + h/2
	curX := x + w*fracOf(d.current, d.max)
	tgtX := x + w*fracOf(d.target, d.max)
	dotR := h / 4

	return []model.Mark{
		model.LineMark{
			ID: ids.Next("line"), X1: x, Y1: cy, X2: x + w, Y2: cy,
			Style: model.Style{Stroke: th.Background, StrokeWidth: 1},
		},
		model.LineMark{
			ID: ids.Next("line"), X1: curX, Y1: cy, X2: tgtX, Y2: cy,
			Style: model.Style{Stroke: th.Muted, StrokeWidth: 2},
		},
		model.CircleMark{
			ID: ids.Next("circle"), CX: curX, CY: cy, R: dotR,
			Style: model.Style{Fill: th.Foreground},
		},
		model.CircleMark{
			ID: ids.Next("circle"), CX: tgtX, CY: cy, R: dotR,
			Style: model.Style{Stroke: th.Foreground, StrokeWidth: 1},
		},
	}
}

func (dumbbellDef) A11y(spec model.ChartSpec, n Normalized, _ model.Layout) model.A11yTree {
	tree := model.A11yTree{Role: "img", Label: "dumbbell chart"}
	if spec.Label != "" {
		tree.Label = spec.Label
	}
	if d, ok := n.(dumbbellNorm); ok && d.present {
		tree.Summary = fmt.Sprintf("current %g, target %g (gap %g)", d.current, d.target, abs(d.target-d.current))
	}

	return tree
}
