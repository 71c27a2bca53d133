// Package: vizmark/charts
//
// segments.go — the shared Segment datum and its soft validation /
// coercion, used by the donut, pareto and split-pareto definitions.
package charts

import (
	"fmt"

	"github.com/katalvlaran/vizmark/model"
)

// Segment is one labelled share of a whole, in percent.
type Segment struct {
	Pct   float64 `json:"pct"`
	Color string  `json:"color,omitempty"`
	Name  string  `json:"name,omitempty"`
}

// segmentsNorm is the normalized form shared by the segment charts,
// tagged with the concrete chart type it was produced for.
type segmentsNorm struct {
	typ  string
	segs []Segment
}

func (n segmentsNorm) NormalizedType() string { return n.typ }

// segmentsSlice accepts the two raw shapes callers use: a bare array of
// segment records, or a record with a "segments" field holding one.
func segmentsSlice(data any) ([]any, bool) {
	if s, ok := asSlice(data); ok {
		return s, true
	}
	if m, ok := asMap(data); ok {
		if s, ok := asSlice(m["segments"]); ok {
			return s, true
		}
	}

	return nil, false
}

// validateSegments records every shape problem in a segment payload.
func validateSegments(typ string, data any, warns *model.Collector) {
	if data == nil {
		warns.Add(model.DiagnosticWarning{
			Code:    model.WarnMissingData,
			Message: typ + ": no data supplied",
			Hint:    "pass an array of {pct, color, name?} segments",
		})

		return
	}
	elems, ok := segmentsSlice(data)
	if !ok {
		warns.Add(model.DiagnosticWarning{
			Code:     model.WarnInvalidDataShape,
			Message:  typ + ": data must be an array of segments (or a record with a segments field)",
			Expected: "array of {pct, color, name?}",
			Received: typeName(data),
		})

		return
	}
	for i, e := range elems {
		path := fmt.Sprintf("segments[%d]", i)
		m, ok := asMap(e)
		if !ok {
			warns.Add(model.DiagnosticWarning{
				Code:     model.WarnInvalidType,
				Message:  fmt.Sprintf("%s: segment %d must be a record", typ, i),
				Path:     path,
				Expected: "object",
				Received: typeName(e),
			})

			continue
		}
		wantNumberField(typ, m, "pct", true, warns)
		if n, ok := asNumber(m["pct"]); ok && isFinite(n) && (n < 0 || n > 100) {
			warns.Add(model.DiagnosticWarning{
				Code:     model.WarnOutOfRange,
				Message:  fmt.Sprintf("%s: segment %d pct outside [0,100]", typ, i),
				Path:     path + ".pct",
				Expected: "0..100",
				Received: fmt.Sprintf("%g", n),
			})
		}
		if c, present := m["color"]; !present {
			warns.Add(model.DiagnosticWarning{
				Code:    model.WarnMissingField,
				Message: fmt.Sprintf("%s: segment %d has no color", typ, i),
				Path:    path + ".color",
			})
		} else if _, ok := c.(string); !ok {
			warns.Add(model.DiagnosticWarning{
				Code:     model.WarnInvalidType,
				Message:  fmt.Sprintf("%s: segment %d color must be a string", typ, i),
				Path:     path + ".color",
				Expected: "string",
				Received: typeName(c),
			})
		}
	}
}

// normalizeSegments coerces a segment payload: non-record elements are
// dropped, pct is clamped to [0,100] with non-finite values becoming 0.
func normalizeSegments(typ string, data any) segmentsNorm {
	elems, ok := segmentsSlice(data)
	if !ok {
		return segmentsNorm{typ: typ}
	}
	segs := make([]Segment, 0, len(elems))
	for _, e := range elems {
		m, ok := asMap(e)
		if !ok {
			continue
		}
		pct := coerceNumber(m["pct"], 0)
		if pct < 0 {
			pct = 0
		} else if pct > 100 {
			pct = 100
		}
		color, _ := m["color"].(string)
		name, _ := m["name"].(string)
		segs = append(segs, Segment{Pct: pct, Color: color, Name: name})
	}

	return segmentsNorm{typ: typ, segs: segs}
}

// segmentTotal sums segment percentages (≥ 0 by construction).
func segmentTotal(segs []Segment) float64 {
	var total float64
	for _, s := range segs {
		total += s.Pct
	}

	return total
}

// segmentItems renders segments as a11y items.
func segmentItems(segs []Segment) []model.A11yItem {
	if len(segs) == 0 {
		return nil
	}
	items := make([]model.A11yItem, len(segs))
	for i, s := range segs {
		label := s.Name
		if label == "" {
			label = fmt.Sprintf("segment %d", i+1)
		}
		items[i] = model.A11yItem{Label: label, Value: fmt.Sprintf("%g%%", s.Pct)}
	}

	return items
}
