//go:build property

package compute_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/vizmark/charts"
	"github.com/katalvlaran/vizmark/compute"
	"github.com/katalvlaran/vizmark/model"
)

// TestModelTotalityProperties hammers the pipeline with arbitrary sizes
// and data shapes: it must always return a structurally valid model.
func TestModelTotalityProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8642)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	genType := gen.OneConstOf(
		charts.TypeBar, charts.TypeSpark, charts.TypeSparkArea,
		charts.TypeDonut, charts.TypePareto, charts.TypeSplitPareto,
		charts.TypeDelta, charts.TypeDumbbell, charts.TypeHistogram,
		"bogus", "",
	)
	genDim := gen.OneGenOf(
		gen.Float64Range(-100, 10_000),
		gen.OneConstOf(math.NaN(), math.Inf(1), math.Inf(-1), 0.0),
	)
	genData := gen.OneGenOf(
		gen.Const(false).Map(func(bool) any { return nil }),
		gen.AnyString().Map(func(s string) any { return s }),
		gen.SliceOf(gen.Float64Range(-1e3, 1e3)).Map(func(s []float64) any { return s }),
		gen.Float64Range(0, 100).Map(func(v float64) any {
			return map[string]any{"value": v, "max": 100.0}
		}),
		gen.Float64Range(0, 100).Map(func(v float64) any {
			return map[string]any{"current": v, "previous": 100 - v, "target": v * 2}
		}),
	)

	properties.Property("compute is total and structurally valid", prop.ForAll(
		func(typ string, w, h float64, data any) bool {
			rm := compute.Model(model.ChartSpec{Type: typ}, data, model.Size{Width: w, Height: h})

			return rm != nil && rm.Marks != nil && rm.A11y != nil && rm.Stats != nil &&
				rm.Stats.MarkCount == len(rm.Marks) &&
				len(rm.Stats.Warnings) <= model.MaxDiagnosticWarnings
		},
		genType, genDim, genDim, genData,
	))

	properties.Property("compute is deterministic", prop.ForAll(
		func(typ string, w, h float64, data any) bool {
			size := model.Size{Width: w, Height: h}
			a := compute.Model(model.ChartSpec{Type: typ}, data, size)
			b := compute.Model(model.ChartSpec{Type: typ}, data, size)

			return cmp.Equal(a, b)
		},
		genType, genDim, genDim, genData,
	))

	properties.TestingRun(t)
}
