// Package: vizmark/charts
//
// shape.go — collect-all soft validation and coercion helpers shared by
// the built-in definitions.
//
// Design contract (strict):
//   - Validation helpers record EVERY shape problem they see as warnings
//     and keep going; nothing here returns an error or panics.
//   - Coercion helpers turn arbitrary values into safe numbers: anything
//     that is not a finite number becomes the caller's fallback.
//   - Both layers respect the collector's budget implicitly — Collector.Add
//     refuses appends past it — so adversarially large inputs cannot blow
//     up diagnostic cost.
package charts

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vizmark/model"
)

// asNumber reports v as a float64 when it carries any Go numeric type.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// asMap reports v as a string-keyed map (the decoded-JSON record shape).
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)

	return m, ok
}

// asSlice reports v as a generic slice, widening typed numeric slices so
// callers can hand us []float64 or []int directly.
func asSlice(v any) ([]any, bool) {
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

// typeName renders v's dynamic type for warning Received fields.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", v)
}

// coerceNumber extracts a finite number from v, else returns fallback.
func coerceNumber(v any, fallback float64) float64 {
	n, ok := asNumber(v)
	if !ok || !isFinite(n) {
		return fallback
	}

	return n
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// wantRecord soft-validates that data is a non-nil record, recording
// MISSING_DATA or INVALID_DATA_SHAPE otherwise. The returned map is nil
// when validation failed; callers keep going either way.
func wantRecord(typ string, data any, warns *model.Collector) (map[string]any, bool) {
	if data == nil {
		warns.Add(model.DiagnosticWarning{
			Code:    model.WarnMissingData,
			Message: typ + ": no data supplied",
			Hint:    "pass a data record for this chart type",
		})

		return nil, false
	}
	m, ok := asMap(data)
	if !ok {
		warns.Add(model.DiagnosticWarning{
			Code:     model.WarnInvalidDataShape,
			Message:  typ + ": data must be a record",
			Expected: "object",
			Received: typeName(data),
		})

		return nil, false
	}

	return m, true
}

// wantNumberField soft-validates one numeric field of a record: missing
// required fields yield MISSING_FIELD, non-numeric values INVALID_TYPE,
// non-finite numbers INVALID_VALUE. Validation of other fields continues
// regardless (collect-all).
func wantNumberField(typ string, m map[string]any, key string, required bool, warns *model.Collector) {
	v, present := m[key]
	if !present {
		if required {
			warns.Add(model.DiagnosticWarning{
				Code:    model.WarnMissingField,
				Message: fmt.Sprintf("%s: required field %q is missing", typ, key),
				Path:    key,
			})
		}

		return
	}
	n, ok := asNumber(v)
	if !ok {
		warns.Add(model.DiagnosticWarning{
			Code:     model.WarnInvalidType,
			Message:  fmt.Sprintf("%s: field %q must be a number", typ, key),
			Path:     key,
			Expected: "number",
			Received: typeName(v),
		})

		return
	}
	if !isFinite(n) {
		warns.Add(model.DiagnosticWarning{
			Code:    model.WarnInvalidValue,
			Message: fmt.Sprintf("%s: field %q is not finite", typ, key),
			Path:    key,
		})
	}
}

// wantNumberSlice soft-validates every element of a numeric array field,
// recording one warning per offending element (still budget-bounded).
func wantNumberSlice(typ, path string, s []any, warns *model.Collector) {
	for i, v := range s {
		n, ok := asNumber(v)
		if !ok {
			warns.Add(model.DiagnosticWarning{
				Code:     model.WarnInvalidType,
				Message:  fmt.Sprintf("%s: element %d must be a number", typ, i),
				Path:     fmt.Sprintf("%s[%d]", path, i),
				Expected: "number",
				Received: typeName(v),
			})

			continue
		}
		if !isFinite(n) {
			warns.Add(model.DiagnosticWarning{
				Code:    model.WarnInvalidValue,
				Message: fmt.Sprintf("%s: element %d is not finite", typ, i),
				Path:    fmt.Sprintf("%s[%d]", path, i),
			})
		}
	}
}

// opacity returns v as an optional-opacity pointer for mark styles.
func opacity(v float64) *float64 { return &v }
