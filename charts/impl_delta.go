// Package: vizmark/charts
//
// impl_delta.go — the "delta" definition: current value bar with a marker
// for the previous value, for at-a-glance change widgets.
// Data shape: {current, previous, max?}.
package charts

import (
	"fmt"

	"github.com/katalvlaran/vizmark/model"
)

type deltaDef struct{}

type deltaNorm struct {
	present  bool
	current  float64
	previous float64
	max      float64
}

func (deltaNorm) NormalizedType() string { return TypeDelta }

func (deltaDef) Type() string        { return TypeDelta }
func (deltaDef) DefaultPad() float64 { return defaultPadBar }

func (deltaDef) ValidateData(data any, warns *model.Collector) {
	m, ok := wantRecord(TypeDelta, data, warns)
	if !ok {
		return
	}
	wantNumberField(TypeDelta, m, "current", true, warns)
	wantNumberField(TypeDelta, m, "previous", true, warns)
	wantNumberField(TypeDelta, m, "max", false, warns)
}

func (deltaDef) Normalize(_ model.ChartSpec, data any, _ *model.Collector) Normalized {
	m, ok := asMap(data)
	if !ok {
		return deltaNorm{max: defaultMax}
	}
	n := deltaNorm{
		present:  true,
		current:  coerceNumber(m["current"], 0),
		previous: coerceNumber(m["previous"], 0),
		max:      coerceNumber(m["max"], defaultMax),
	}
	if n.max <= 0 {
		n.max = defaultMax
	}

	return n
}

func (deltaDef) IsEmpty(n Normalized) bool {
	d, ok := n.(deltaNorm)

	return !ok || !d.present
}

func (deltaDef) Marks(spec model.ChartSpec, n Normalized, lay model.Layout, _ model.State, th model.Theme, _ *model.Collector) []model.Mark {
	d, ok := n.(deltaNorm)
	if !ok || !d.present {
		return nil
	}
	ids := model.NewIDAllocator(TypeDelta)
	x, y, w, h := lay.Inner()

	curW := w * fracOf(d.current, d.max)
	prevX := x + w*fracOf(d.previous, d.max)

	marks := []model.Mark{
		model.RectMark{
			ID: ids.Next("rect"), X: x, Y: y, W: w, H: h,
			Style: model.Style{Fill: th.Background},
		},
		model.RectMark{
			ID: ids.Next("rect"), X: x, Y: y, W: curW, H: h,
			Style: model.Style{Fill: th.Foreground},
		},
		// Previous-value marker overshoots the track by one pixel on each
		// side so it stays visible when current ≈ previous.
		model.LineMark{
			ID: ids.Next("line"), X1: prevX, Y1: y - 1, X2: prevX, Y2: y + h + 1,
			Style: model.Style{Stroke: th.Muted, StrokeWidth: 1},
		},
	}
	if spec.Label != "" {
		marks = append(marks, model.TextMark{
			ID: ids.Next("text"), X: x + 2, Y: y + h/2, Text: spec.Label,
			Anchor: "start",
			Style:  model.Style{Fill: th.Foreground},
		})
	}

	return marks
}

func (deltaDef) A11y(spec model.ChartSpec, n Normalized, _ model.Layout) model.A11yTree {
	tree := model.A11yTree{Role: "img", Label: "delta chart"}
	if spec.Label != "" {
		tree.Label = spec.Label
	}
	if d, ok := n.(deltaNorm); ok && d.present {
		change := d.current - d.previous
		direction := "up"
		if change < 0 {
			direction = "down"
		}
		tree.Summary = fmt.Sprintf("%g, %s %g from %g", d.current, direction, abs(change), d.previous)
	}

	return tree
}

// fracOf clamps value/max to [0,1], treating non-finite ratios as 0.
func fracOf(value, max float64) float64 {
	f := value / max
	if !isFinite(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}

	return f
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}
