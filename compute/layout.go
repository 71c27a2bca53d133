// Package: vizmark/compute
//
// layout.go — coercion of the caller's Size (and pad) into a safe Layout.
package compute

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vizmark/model"
)

// resolveLayout coerces width, height and pad independently: each field
// that fails coercion yields its own warning and the safe default 0, so
// one bad field never blocks the others. Pad precedence: explicit spec
// value, else the chart definition's default.
func resolveLayout(size model.Size, specPad *float64, defaultPad float64, warns *model.Collector) model.Layout {
	pad := defaultPad
	padOrigin := "default pad"
	if specPad != nil {
		pad = *specPad
		padOrigin = "pad"
	}

	return model.Layout{
		Width:  coerceDimension("width", size.Width, warns),
		Height: coerceDimension("height", size.Height, warns),
		Pad:    coerceDimension(padOrigin, pad, warns),
	}
}

// coerceDimension forces v finite and non-negative. Non-finite values are
// numeric degeneracy (NAN_COORDINATE); negatives are a range problem
// (OUT_OF_RANGE). Both coerce to 0.
func coerceDimension(name string, v float64, warns *model.Collector) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		warns.Add(model.DiagnosticWarning{
			Code:    model.WarnNaNCoordinate,
			Message: fmt.Sprintf("layout %s is not finite, using 0", name),
			Path:    name,
		})

		return 0
	}
	if v < 0 {
		warns.Add(model.DiagnosticWarning{
			Code:     model.WarnOutOfRange,
			Message:  fmt.Sprintf("layout %s is negative, using 0", name),
			Path:     name,
			Expected: ">= 0",
			Received: fmt.Sprintf("%g", v),
		})

		return 0
	}

	return v
}
