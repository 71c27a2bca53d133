// Package: vizmark/charts
//
// impl_spark.go — the "spark" and "spark-area" definitions: a tiny inline
// trend line over a numeric series, optionally with a gradient-filled area
// below it. Data shape: [n0, n1, …].
package charts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vizmark/model"
)

// Def IDs are fixed per model (one chart per model), referenced from both
// Marks and Defs, which the pipeline calls independently.
const (
	sparkGradientID = "spark-area-grad"
	sparkClipID     = "spark-area-clip"
)

type sparkDef struct {
	area bool
}

type sparkNorm struct {
	typ    string
	values []float64
}

func (n sparkNorm) NormalizedType() string { return n.typ }

func (d sparkDef) Type() string {
	if d.area {
		return TypeSparkArea
	}

	return TypeSpark
}

func (sparkDef) DefaultPad() float64 { return defaultPadSpark }

func (sparkDef) EmptyDataWarning() string { return "spark chart received no data points" }

func (d sparkDef) ValidateData(data any, warns *model.Collector) {
	if data == nil {
		warns.Add(model.DiagnosticWarning{
			Code:    model.WarnMissingData,
			Message: d.Type() + ": no data supplied",
			Hint:    "pass a numeric array",
		})

		return
	}
	s, ok := asSlice(data)
	if !ok {
		warns.Add(model.DiagnosticWarning{
			Code:     model.WarnInvalidDataShape,
			Message:  d.Type() + ": data must be a numeric array",
			Expected: "number[]",
			Received: typeName(data),
		})

		return
	}
	wantNumberSlice(d.Type(), "data", s, warns)
}

func (d sparkDef) Normalize(_ model.ChartSpec, data any, _ *model.Collector) Normalized {
	s, ok := asSlice(data)
	if !ok {
		return sparkNorm{typ: d.Type()}
	}
	values := make([]float64, len(s))
	for i, v := range s {
		values[i] = coerceNumber(v, 0)
	}

	return sparkNorm{typ: d.Type(), values: values}
}

func (sparkDef) IsEmpty(n Normalized) bool {
	sn, ok := n.(sparkNorm)

	return !ok || len(sn.values) == 0
}

func (d sparkDef) Marks(_ model.ChartSpec, n Normalized, lay model.Layout, _ model.State, th model.Theme, _ *model.Collector) []model.Mark {
	sn, ok := n.(sparkNorm)
	if !ok || len(sn.values) == 0 {
		return nil
	}
	ids := model.NewIDAllocator(d.Type())
	x, y, w, h := lay.Inner()

	pts := sparkPoints(sn.values, x, y, w, h)
	line := polyline(pts, false)

	var marks []model.Mark
	if d.area {
		// Area sits under the line: same points, closed down to the
		// baseline, painted by the gradient def and clipped to the box.
		area := areaPath(pts, y+h)
		marks = append(marks, model.PathMark{
			ID: ids.Next("path"), D: area,
			Style: model.Style{Fill: "url(#" + sparkGradientID + ")", ClipPath: sparkClipID},
		})
	}
	marks = append(marks, model.PathMark{
		ID: ids.Next("path"), D: line,
		Style: model.Style{Stroke: th.Foreground, StrokeWidth: 1.5},
	})
	// Dot on the most recent point, the datum spark charts exist for.
	last := pts[len(pts)-1]
	marks = append(marks, model.CircleMark{
		ID: ids.Next("circle"), CX: last[0], CY: last[1], R: 1.5,
		Style: model.Style{Fill: th.Foreground},
	})

	return marks
}

func (d sparkDef) Defs(_ model.ChartSpec, n Normalized, lay model.Layout, _ *model.Collector) []model.Def {
	if !d.area || d.IsEmpty(n) {
		return nil
	}
	x, y, w, h := lay.Inner()

	return []model.Def{
		model.LinearGradientDef{
			ID: sparkGradientID, X1: 0, Y1: 0, X2: 0, Y2: 1,
			Stops: []model.GradientStop{
				{Offset: 0, Color: "currentColor", Opacity: opacity(0.35)},
				{Offset: 1, Color: "currentColor", Opacity: opacity(0.02)},
			},
		},
		model.ClipRectDef{ID: sparkClipID, X: x, Y: y, W: w, H: h},
	}
}

func (d sparkDef) A11y(spec model.ChartSpec, n Normalized, _ model.Layout) model.A11yTree {
	tree := model.A11yTree{Role: "img", Label: "spark chart"}
	if spec.Label != "" {
		tree.Label = spec.Label
	}
	if sn, ok := n.(sparkNorm); ok && len(sn.values) > 0 {
		lo, hi := sn.values[0], sn.values[0]
		for _, v := range sn.values[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		tree.Summary = fmt.Sprintf("%d points from %g to %g, latest %g",
			len(sn.values), lo, hi, sn.values[len(sn.values)-1])
	}

	return tree
}

// sparkPoints maps values onto the inner box: x spreads evenly, y scales
// min..max to the full height (flat series sit on the vertical midline).
func sparkPoints(values []float64, x, y, w, h float64) [][2]float64 {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo

	pts := make([][2]float64, len(values))
	for i, v := range values {
		px := x + w/2 // single point sits centered
		if len(values) > 1 {
			px = x + w*float64(i)/float64(len(values)-1)
		}
		py := y + h/2
		if span > 0 {
			py = y + h*(1-(v-lo)/span)
		}
		pts[i] = [2]float64{px, py}
	}

	return pts
}

// polyline renders points as the M/L (optionally Z-closed) path grammar
// the diagnostics bounds pass can decode.
func polyline(pts [][2]float64, closed bool) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(fnum(p[0]))
		b.WriteByte(' ')
		b.WriteString(fnum(p[1]))
	}
	if closed {
		b.WriteString(" Z")
	}

	return b.String()
}

// areaPath closes the polyline down to the baseline.
func areaPath(pts [][2]float64, baseline float64) string {
	closedPts := make([][2]float64, 0, len(pts)+2)
	closedPts = append(closedPts, pts...)
	closedPts = append(closedPts,
		[2]float64{pts[len(pts)-1][0], baseline},
		[2]float64{pts[0][0], baseline},
	)

	return polyline(closedPts, true)
}

// fnum formats path numbers compactly and deterministically.
func fnum(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
