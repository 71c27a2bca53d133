// Package: vizmark/charts
//
// impl_donut.go — the "donut" definition: a segmented ring. Each segment
// becomes one stroked arc path. Arc commands are outside the simple
// polyline grammar, so the bounds pass deliberately skips these paths —
// the ring is bounded by construction anyway.
// Data shape: segments (see segments.go).
package charts

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vizmark/model"
)

type donutDef struct{}

func (donutDef) Type() string             { return TypeDonut }
func (donutDef) DefaultPad() float64      { return defaultPadDonut }
func (donutDef) EmptyDataWarning() string { return "donut chart received no segments" }

func (donutDef) ValidateData(data any, warns *model.Collector) {
	validateSegments(TypeDonut, data, warns)
}

func (donutDef) Normalize(_ model.ChartSpec, data any, _ *model.Collector) Normalized {
	return normalizeSegments(TypeDonut, data)
}

func (donutDef) IsEmpty(n Normalized) bool {
	sn, ok := n.(segmentsNorm)

	return !ok || len(sn.segs) == 0
}

func (donutDef) Marks(spec model.ChartSpec, n Normalized, lay model.Layout, st model.State, th model.Theme, _ *model.Collector) []model.Mark {
	sn, ok := n.(segmentsNorm)
	if !ok || len(sn.segs) == 0 {
		return nil
	}
	total := segmentTotal(sn.segs)
	if total <= 0 {
		return nil
	}
	ids := model.NewIDAllocator(TypeDonut)
	x, y, w, h := lay.Inner()

	cx, cy := x+w/2, y+h/2
	outer := math.Min(w, h) / 2
	strokeW := outer * donutStrokeFrac
	r := outer - strokeW/2
	if r <= 0 {
		return nil
	}

	hovering := st.HoverIndex >= 0 && st.HoverIndex < len(sn.segs)

	marks := make([]model.Mark, 0, len(sn.segs)+1)
	// Segments start at 12 o'clock and run clockwise.
	angle := -math.Pi / 2
	for i, seg := range sn.segs {
		sweep := 2 * math.Pi * seg.Pct / total
		style := model.Style{
			Stroke:      themedFill(th, i, seg.Color, th.Foreground),
			StrokeWidth: strokeW,
		}
		if hovering && st.HoverIndex != i {
			style.Opacity = opacity(hoverDimOpacity)
		}
		marks = append(marks, model.PathMark{
			ID:    ids.Next("path"),
			D:     arcPath(cx, cy, r, angle, angle+sweep),
			Style: style,
		})
		angle += sweep
	}

	if spec.Label != "" {
		marks = append(marks, model.TextMark{
			ID: ids.Next("text"), X: cx, Y: cy, Text: spec.Label,
			Anchor: "middle",
			Style:  model.Style{Fill: th.Foreground},
		})
	}

	return marks
}

func (donutDef) A11y(spec model.ChartSpec, n Normalized, _ model.Layout) model.A11yTree {
	tree := model.A11yTree{Role: "img", Label: "donut chart"}
	if spec.Label != "" {
		tree.Label = spec.Label
	}
	if sn, ok := n.(segmentsNorm); ok && len(sn.segs) > 0 {
		tree.Summary = fmt.Sprintf("%d segments totalling %g%%", len(sn.segs), segmentTotal(sn.segs))
		tree.Items = segmentItems(sn.segs)
	}

	return tree
}

// arcPath draws the circular arc from angle a0 to a1 (radians) around
// (cx, cy). A full-circle segment is split in two halves because a single
// SVG arc cannot span 2π.
func arcPath(cx, cy, r, a0, a1 float64) string {
	if a1-a0 >= 2*math.Pi-1e-9 {
		mid := a0 + math.Pi

		return arcPath(cx, cy, r, a0, mid) + " " + arcPath(cx, cy, r, mid, a1)
	}
	x0, y0 := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	x1, y1 := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	large := 0
	if a1-a0 > math.Pi {
		large = 1
	}

	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s",
		fnum(x0), fnum(y0), fnum(r), fnum(r), large, fnum(x1), fnum(y1))
}
