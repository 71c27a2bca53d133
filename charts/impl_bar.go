// Package: vizmark/charts
//
// impl_bar.go — the "bar" definition: one horizontal value bar against a
// track, for KPI-style inline widgets. Data shape: {value, max?}.
package charts

import (
	"fmt"

	"github.com/katalvlaran/vizmark/model"
)

type barDef struct{}

// barNorm is bar's normalized data. present distinguishes "no usable
// record at all" from a legitimate zero value — {value:0} is NOT empty.
type barNorm struct {
	present bool
	value   float64
	max     float64
}

func (barNorm) NormalizedType() string { return TypeBar }

func (barDef) Type() string        { return TypeBar }
func (barDef) DefaultPad() float64 { return defaultPadBar }

func (barDef) ValidateData(data any, warns *model.Collector) {
	m, ok := wantRecord(TypeBar, data, warns)
	if !ok {
		return
	}
	wantNumberField(TypeBar, m, "value", true, warns)
	wantNumberField(TypeBar, m, "max", false, warns)
	if n, ok := asNumber(m["max"]); ok && isFinite(n) && n <= 0 {
		warns.Add(model.DiagnosticWarning{
			Code:     model.WarnOutOfRange,
			Message:  "bar: max must be positive",
			Path:     "max",
			Expected: "> 0",
			Received: fmt.Sprintf("%g", n),
		})
	}
}

func (barDef) Normalize(_ model.ChartSpec, data any, _ *model.Collector) Normalized {
	m, ok := asMap(data)
	if !ok {
		return barNorm{max: defaultMax}
	}
	n := barNorm{
		present: true,
		value:   coerceNumber(m["value"], 0),
		max:     coerceNumber(m["max"], defaultMax),
	}
	if n.max <= 0 {
		n.max = defaultMax
	}

	return n
}

func (barDef) IsEmpty(n Normalized) bool {
	b, ok := n.(barNorm)

	return !ok || !b.present
}

func (barDef) Marks(spec model.ChartSpec, n Normalized, lay model.Layout, _ model.State, th model.Theme, _ *model.Collector) []model.Mark {
	b, ok := n.(barNorm)
	if !ok || !b.present {
		return nil
	}
	ids := model.NewIDAllocator(TypeBar)
	// Inner box is intentionally unclamped: an impossible size surfaces
	// through diagnostics instead of being silently swallowed.
	x, y, w, h := lay.Inner()

	frac := b.value / b.max
	if !isFinite(frac) || frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}

	marks := []model.Mark{
		model.RectMark{
			ID: ids.Next("rect"), X: x, Y: y, W: w, H: h, RX: h / 2,
			Style: model.Style{Fill: th.Background},
		},
		model.RectMark{
			ID: ids.Next("rect"), X: x, Y: y, W: w * frac, H: h, RX: h / 2,
			Style: model.Style{Fill: th.Foreground},
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

func (barDef) A11y(spec model.ChartSpec, n Normalized, _ model.Layout) model.A11yTree {
	tree := model.A11yTree{Role: "img", Label: "bar chart"}
	if spec.Label != "" {
		tree.Label = spec.Label
	}
	if b, ok := n.(barNorm); ok && b.present {
		tree.Summary = fmt.Sprintf("%g of %g (%.0f%%)", b.value, b.max, 100*b.value/b.max)
	}

	return tree
}
