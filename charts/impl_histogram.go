// Package: vizmark/charts
//
// impl_histogram.go — the "histogram" definition: one column per series
// value, scaled to the series maximum, with optional per-column opacity
// (recency fades, emphasis). Data shape: {series, opacities?}.
package charts

import (
	"fmt"

	"github.com/katalvlaran/vizmark/model"
)

type histogramDef struct{}

type histogramNorm struct {
	values    []float64
	opacities []float64 // empty or len(values), clamped to [0,1]
}

func (histogramNorm) NormalizedType() string { return TypeHistogram }

func (histogramDef) Type() string             { return TypeHistogram }
func (histogramDef) DefaultPad() float64      { return defaultPadColumn }
func (histogramDef) EmptyDataWarning() string { return "histogram received no series values" }

func (histogramDef) ValidateData(data any, warns *model.Collector) {
	m, ok := wantRecord(TypeHistogram, data, warns)
	if !ok {
		return
	}
	series, present := m["series"]
	if !present {
		warns.Add(model.DiagnosticWarning{
			Code:    model.WarnMissingField,
			Message: "histogram: required field \"series\" is missing",
			Path:    "series",
		})
	} else if s, ok := asSlice(series); !ok {
		warns.Add(model.DiagnosticWarning{
			Code:     model.WarnInvalidType,
			Message:  "histogram: field \"series\" must be a numeric array",
			Path:     "series",
			Expected: "number[]",
			Received: typeName(series),
		})
	} else {
		wantNumberSlice(TypeHistogram, "series", s, warns)
	}

	if ops, present := m["opacities"]; present {
		s, ok := asSlice(ops)
		if !ok {
			warns.Add(model.DiagnosticWarning{
				Code:     model.WarnInvalidType,
				Message:  "histogram: field \"opacities\" must be a numeric array",
				Path:     "opacities",
				Expected: "number[]",
				Received: typeName(ops),
			})

			return
		}
		for i, v := range s {
			if n, ok := asNumber(v); ok && isFinite(n) && (n < 0 || n > 1) {
				warns.Add(model.DiagnosticWarning{
					Code:     model.WarnOutOfRange,
					Message:  fmt.Sprintf("histogram: opacity %d outside [0,1]", i),
					Path:     fmt.Sprintf("opacities[%d]", i),
					Expected: "0..1",
					Received: fmt.Sprintf("%g", n),
				})
			}
		}
	}
}

func (histogramDef) Normalize(_ model.ChartSpec, data any, _ *model.Collector) Normalized {
	m, ok := asMap(data)
	if !ok {
		return histogramNorm{}
	}
	var n histogramNorm
	if s, ok := asSlice(m["series"]); ok {
		n.values = make([]float64, len(s))
		for i, v := range s {
			n.values[i] = coerceNumber(v, 0)
		}
	}
	if s, ok := asSlice(m["opacities"]); ok {
		n.opacities = make([]float64, len(s))
		for i, v := range s {
			o := coerceNumber(v, 1)
			if o < 0 {
				o = 0
			} else if o > 1 {
				o = 1
			}
			n.opacities[i] = o
		}
	}

	return n
}

func (histogramDef) IsEmpty(n Normalized) bool {
	hn, ok := n.(histogramNorm)

	return !ok || len(hn.values) == 0
}

func (histogramDef) Marks(spec model.ChartSpec, n Normalized, lay model.Layout, st model.State, th model.Theme, _ *model.Collector) []model.Mark {
	hn, ok := n.(histogramNorm)
	if !ok || len(hn.values) == 0 {
		return nil
	}
	ids := model.NewIDAllocator(TypeHistogram)
	x, y, w, h := lay.Inner()

	gap := defaultGap
	if spec.Gap != nil && isFinite(*spec.Gap) && *spec.Gap >= 0 {
		gap = *spec.Gap
	}
	count := len(hn.values)
	colW := (w - gap*float64(count-1)) / float64(count)

	peak := hn.values[0]
	for _, v := range hn.values[1:] {
		if v > peak {
			peak = v
		}
	}

	hovering := st.HoverIndex >= 0 && st.HoverIndex < count

	marks := make([]model.Mark, 0, count)
	for i, v := range hn.values {
		colH := 0.0
		if peak > 0 && v > 0 {
			colH = h * v / peak
		}
		style := model.Style{Fill: th.Foreground}
		switch {
		case hovering && st.HoverIndex != i:
			style.Opacity = opacity(hoverDimOpacity)
		case i < len(hn.opacities):
			style.Opacity = opacity(hn.opacities[i])
		}
		marks = append(marks, model.RectMark{
			ID: ids.Next("rect"),
			X:  x + float64(i)*(colW+gap), Y: y + h - colH, W: colW, H: colH,
			Style: style,
		})
	}

	return marks
}

func (histogramDef) A11y(spec model.ChartSpec, n Normalized, _ model.Layout) model.A11yTree {
	tree := model.A11yTree{Role: "img", Label: "histogram"}
	if spec.Label != "" {
		tree.Label = spec.Label
	}
	if hn, ok := n.(histogramNorm); ok && len(hn.values) > 0 {
		peak := hn.values[0]
		for _, v := range hn.values[1:] {
			if v > peak {
				peak = v
			}
		}
		tree.Summary = fmt.Sprintf("%d columns, peak %g", len(hn.values), peak)
	}

	return tree
}
