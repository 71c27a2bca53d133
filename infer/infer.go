// Package: vizmark/infer
//
// infer.go — the recognizer list and the Infer entry point.
package infer

import (
	"errors"

	"github.com/katalvlaran/vizmark/charts"
	"github.com/katalvlaran/vizmark/model"
)

// ErrNoInference indicates no recognizer matched and no fallback type was
// configured. Usage: if errors.Is(err, ErrNoInference) { /* ask the caller
// for an explicit spec */ }.
var ErrNoInference = errors.New("infer: no recognizer matched the input shape")

// Options configures inference.
type Options struct {
	// Fallback is the chart type to wrap unrecognized input under.
	// Empty means "fail with ErrNoInference instead".
	Fallback string
}

// DefaultOptions returns the zero configuration: no fallback.
func DefaultOptions() Options { return Options{} }

// recognizer is one ordered shape test. match returns the inferred spec
// and the data to feed compute (usually the input, passed through).
type recognizer struct {
	name  string
	match func(v any) (model.ChartSpec, any, bool)
}

// recognizers run in declaration order; first match wins.
var recognizers = []recognizer{
	{"numeric-array", matchNumericArray},
	{"segment-array", matchSegmentArray},
	{"segments-record", matchSegmentsRecord},
	{"delta-record", matchDelta},
	{"dumbbell-record", matchDumbbell},
	{"value-record", matchValue},
	{"series-record", matchSeries},
}

// Infer maps an untyped value to the narrowest matching (spec, data)
// pair. The input is never copied or coerced here — coercion is the
// compute pipeline's job; inference only decides the chart type.
func Infer(input any, opts Options) (model.ChartSpec, any, error) {
	for _, r := range recognizers {
		if spec, data, ok := r.match(input); ok {
			return spec, data, nil
		}
	}
	if opts.Fallback != "" {
		return model.ChartSpec{Type: opts.Fallback}, input, nil
	}

	return model.ChartSpec{}, nil, ErrNoInference
}

func matchNumericArray(v any) (model.ChartSpec, any, bool) {
	s, ok := anySlice(v)
	if !ok || len(s) == 0 {
		return model.ChartSpec{}, nil, false
	}
	for _, e := range s {
		if !isNumber(e) {
			return model.ChartSpec{}, nil, false
		}
	}

	return model.ChartSpec{Type: charts.TypeSpark}, v, true
}

func matchSegmentArray(v any) (model.ChartSpec, any, bool) {
	if !isSegmentArray(v) {
		return model.ChartSpec{}, nil, false
	}

	return model.ChartSpec{Type: charts.TypeDonut}, v, true
}

func matchSegmentsRecord(v any) (model.ChartSpec, any, bool) {
	m, ok := v.(map[string]any)
	if !ok || !isSegmentArray(m["segments"]) {
		return model.ChartSpec{}, nil, false
	}

	return model.ChartSpec{Type: charts.TypeDonut}, v, true
}

func matchDelta(v any) (model.ChartSpec, any, bool) {
	m, ok := v.(map[string]any)
	if !ok || !isNumber(m["current"]) || !isNumber(m["previous"]) {
		return model.ChartSpec{}, nil, false
	}

	return model.ChartSpec{Type: charts.TypeDelta}, v, true
}

func matchDumbbell(v any) (model.ChartSpec, any, bool) {
	m, ok := v.(map[string]any)
	if !ok || !isNumber(m["current"]) || !isNumber(m["target"]) {
		return model.ChartSpec{}, nil, false
	}

	return model.ChartSpec{Type: charts.TypeDumbbell}, v, true
}

func matchValue(v any) (model.ChartSpec, any, bool) {
	m, ok := v.(map[string]any)
	if !ok || !isNumber(m["value"]) {
		return model.ChartSpec{}, nil, false
	}

	return model.ChartSpec{Type: charts.TypeBar}, v, true
}

func matchSeries(v any) (model.ChartSpec, any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return model.ChartSpec{}, nil, false
	}
	s, ok := anySlice(m["series"])
	if !ok || len(s) == 0 {
		return model.ChartSpec{}, nil, false
	}
	for _, e := range s {
		if !isNumber(e) {
			return model.ChartSpec{}, nil, false
		}
	}

	return model.ChartSpec{Type: charts.TypeHistogram}, v, true
}

// isSegmentArray reports whether v is a non-empty array whose EVERY
// element is a record with numeric pct and string color (name optional).
func isSegmentArray(v any) bool {
	s, ok := anySlice(v)
	if !ok || len(s) == 0 {
		return false
	}
	for _, e := range s {
		m, ok := e.(map[string]any)
		if !ok || !isNumber(m["pct"]) {
			return false
		}
		if _, ok := m["color"].(string); !ok {
			return false
		}
	}

	return true
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// anySlice widens the slice shapes callers hand us ([]any from decoded
// JSON, []float64 / []int from Go code) into a generic slice.
func anySlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []float64:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}

		return out, true
	case []int:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}

		return out, true
	default:
		return nil, false
	}
}
