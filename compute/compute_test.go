package compute_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizmark/charts"
	"github.com/katalvlaran/vizmark/compute"
	"github.com/katalvlaran/vizmark/model"
)

func ptr(v float64) *float64 { return &v }

// warningCodes flattens the stats warnings into their codes.
func warningCodes(rm *model.RenderModel) []model.WarningCode {
	if rm.Stats == nil {
		return nil
	}
	codes := make([]model.WarningCode, 0, len(rm.Stats.Warnings))
	for _, w := range rm.Stats.Warnings {
		codes = append(codes, w.Code)
	}

	return codes
}

func hasCode(rm *model.RenderModel, code model.WarningCode) bool {
	for _, c := range warningCodes(rm) {
		if c == code {
			return true
		}
	}

	return false
}

// TestModel_Determinism: equal inputs produce deep-equal outputs on every
// call. Covered across the chart families because each definition owns its
// mark generation.
func TestModel_Determinism(t *testing.T) {
	theme := model.Theme{Palette: []string{"#0af", "#fa0", "#f0a"}, Foreground: "#333", Background: "#eee"}
	cases := []struct {
		name string
		spec model.ChartSpec
		data any
	}{
		{"bar", model.ChartSpec{Type: charts.TypeBar, Label: "cpu"}, map[string]any{"value": 42.0, "max": 100.0}},
		{"spark-area", model.ChartSpec{Type: charts.TypeSparkArea}, []float64{1, 5, 3, 8}},
		{"donut", model.ChartSpec{Type: charts.TypeDonut}, []any{
			map[string]any{"pct": 60.0, "color": "#0af"},
			map[string]any{"pct": 40.0, "color": "#fa0"},
		}},
		{"pareto", model.ChartSpec{Type: charts.TypePareto}, []any{
			map[string]any{"pct": 40.0, "color": "#0af"},
			map[string]any{"pct": 35.0, "color": "#fa0"},
			map[string]any{"pct": 25.0, "color": "#f0a"},
		}},
		{"malformed data still deterministic", model.ChartSpec{Type: charts.TypeBar}, "not a record"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			size := model.Size{Width: 120, Height: 60}
			first := compute.Model(tc.spec, tc.data, size, compute.WithTheme(theme))
			second := compute.Model(tc.spec, tc.data, size, compute.WithTheme(theme))
			assert.Empty(t, cmp.Diff(first, second))
			assert.NotSame(t, first, second, "each call constructs a fresh model")
		})
	}
}

// TestModel_Totality: no input combination panics or returns a nil marks
// slice. Degenerate inputs surface as warnings instead.
func TestModel_Totality(t *testing.T) {
	specs := []model.ChartSpec{
		{Type: charts.TypeBar},
		{Type: charts.TypeSpark},
		{Type: charts.TypeDonut},
		{Type: "no-such-chart"},
		{Type: ""},
		{Type: charts.TypeBar, Pad: ptr(math.Inf(1))},
	}
	datas := []any{
		nil,
		"junk",
		42,
		[]any{},
		[]any{"mixed", 1.0},
		map[string]any{},
		map[string]any{"value": "NaN"},
		map[string]any{"value": math.NaN()},
	}
	sizes := []model.Size{
		{Width: 120, Height: 60},
		{Width: 0, Height: 0},
		{Width: -5, Height: 10},
		{Width: math.NaN(), Height: math.Inf(1)},
	}
	for _, spec := range specs {
		for _, data := range datas {
			for _, size := range sizes {
				rm := compute.Model(spec, data, size)
				require.NotNil(t, rm)
				require.NotNil(t, rm.Marks, "marks is always a slice, never nil")
				require.NotNil(t, rm.A11y)
				require.NotNil(t, rm.Stats)
			}
		}
	}
}

// TestModel_EmptyData: the warning fires only for definitions that opt in
// AND data that is actually empty; a zero value is a real value.
func TestModel_EmptyData(t *testing.T) {
	rm := compute.Model(model.ChartSpec{Type: charts.TypeSparkArea}, []any{}, model.Size{Width: 100, Height: 30})
	assert.True(t, hasCode(rm, model.WarnEmptyData))

	rm = compute.Model(model.ChartSpec{Type: charts.TypeBar},
		map[string]any{"value": 0.0, "max": 100.0}, model.Size{Width: 100, Height: 16})
	assert.False(t, hasCode(rm, model.WarnEmptyData), "value 0 is not empty data")
	assert.False(t, hasCode(rm, model.WarnBlankRender))
}

// TestModel_MarkOutOfBounds: a bar squeezed into a 2×10 canvas cannot fit
// its own padding, so the generated track escapes the layout box and the
// bounds pass reports it.
func TestModel_MarkOutOfBounds(t *testing.T) {
	rm := compute.Model(model.ChartSpec{Type: charts.TypeBar},
		map[string]any{"value": 50.0, "max": 100.0}, model.Size{Width: 2, Height: 10})
	assert.True(t, hasCode(rm, model.WarnMarkOutOfBounds), "got codes %v", warningCodes(rm))
}

// TestModel_NaNLayout: non-finite width or pad coerces to 0 and warns.
func TestModel_NaNLayout(t *testing.T) {
	rm := compute.Model(model.ChartSpec{Type: charts.TypeBar},
		map[string]any{"value": 1.0}, model.Size{Width: math.NaN(), Height: 10})
	assert.True(t, hasCode(rm, model.WarnNaNCoordinate))
	assert.Equal(t, 0.0, rm.Width, "non-finite width coerces to 0")

	rm = compute.Model(model.ChartSpec{Type: charts.TypeBar, Pad: ptr(math.Inf(1))},
		map[string]any{"value": 1.0}, model.Size{Width: 100, Height: 10})
	assert.True(t, hasCode(rm, model.WarnNaNCoordinate))
}

// TestModel_ParetoGeometry: 40/35/25 on a 100×100 canvas with no pad and
// no gap yields three full-height tracks and three bottom-aligned columns
// climbing the cumulative scale.
func TestModel_ParetoGeometry(t *testing.T) {
	segs := []any{
		map[string]any{"pct": 40.0, "color": "#0af"},
		map[string]any{"pct": 35.0, "color": "#fa0"},
		map[string]any{"pct": 25.0, "color": "#f0a"},
	}
	rm := compute.Model(model.ChartSpec{Type: charts.TypePareto, Pad: ptr(0), Gap: ptr(0)},
		segs, model.Size{Width: 100, Height: 100})
	require.Len(t, rm.Marks, 6)

	for i := 0; i < 3; i++ {
		track, ok := rm.Marks[i].(model.RectMark)
		require.True(t, ok, "mark %d", i)
		assert.InDelta(t, 100, track.H, 1e-9, "track %d spans the full height", i)
		assert.InDelta(t, 0, track.Y, 1e-9)
	}

	wantH := []float64{40, 75, 100}
	for i := 0; i < 3; i++ {
		col, ok := rm.Marks[3+i].(model.RectMark)
		require.True(t, ok, "mark %d", 3+i)
		assert.InDelta(t, wantH[i], col.H, 1e-9, "column %d cumulative height", i)
		assert.InDelta(t, 100, col.Y+col.H, 1e-9, "column %d is bottom-aligned", i)
		assert.InDelta(t, 100.0/3, col.W, 1e-9)
	}

	assert.False(t, hasCode(rm, model.WarnMarkOutOfBounds), "got codes %v", warningCodes(rm))
}

// TestModel_SplitParetoDivider: the default threshold places the divider
// at 80% of the inner width.
func TestModel_SplitParetoDivider(t *testing.T) {
	segs := []any{
		map[string]any{"pct": 40.0, "color": "#0af"},
		map[string]any{"pct": 40.0, "color": "#fa0"},
		map[string]any{"pct": 20.0, "color": "#f0a"},
	}
	rm := compute.Model(model.ChartSpec{Type: charts.TypeSplitPareto, Pad: ptr(0), Gap: ptr(0)},
		segs, model.Size{Width: 100, Height: 100})
	require.Len(t, rm.Marks, 7, "6 rects plus the divider")

	divider, ok := rm.Marks[6].(model.LineMark)
	require.True(t, ok, "last mark is the divider line")
	assert.InDelta(t, 80, divider.X1, 1e-9)
	assert.InDelta(t, 80, divider.X2, 1e-9)
	assert.InDelta(t, 0, divider.Y1, 1e-9)
	assert.InDelta(t, 100, divider.Y2, 1e-9)
}

// TestModel_UnknownType degrades to an empty, fully-described model.
func TestModel_UnknownType(t *testing.T) {
	rm := compute.Model(model.ChartSpec{Type: "sunburst"}, map[string]any{"value": 1.0},
		model.Size{Width: 100, Height: 100})
	assert.True(t, hasCode(rm, model.WarnUnknownChartType))
	assert.True(t, hasCode(rm, model.WarnBlankRender))
	assert.Empty(t, rm.Marks)
	require.NotNil(t, rm.A11y)
	assert.Equal(t, "img", rm.A11y.Role)
	assert.Equal(t, "sunburst chart", rm.A11y.Label)
	assert.Equal(t, "empty sunburst chart", rm.A11y.Summary)
}

// TestModel_A11y: definition-provided values win; only holes are
// back-filled.
func TestModel_A11y(t *testing.T) {
	rm := compute.Model(model.ChartSpec{Type: charts.TypeBar, Label: "CPU load"},
		map[string]any{"value": 42.0, "max": 100.0}, model.Size{Width: 120, Height: 16})
	require.NotNil(t, rm.A11y)
	assert.Equal(t, "CPU load", rm.A11y.Label, "the definition's label wins over the generic one")
	assert.Equal(t, "42 of 100 (42%)", rm.A11y.Summary)
	require.NotEmpty(t, rm.A11y.Items, "items back-filled from the label text mark")
	assert.Equal(t, "CPU load", rm.A11y.Items[0].Label)
}

// TestModel_Stats checks the assembled census.
func TestModel_Stats(t *testing.T) {
	rm := compute.Model(model.ChartSpec{Type: charts.TypeBar, Label: "cpu"},
		map[string]any{"value": 42.0, "max": 100.0}, model.Size{Width: 120, Height: 16})
	require.NotNil(t, rm.Stats)
	assert.Equal(t, 3, rm.Stats.MarkCount, "track, value bar, label")
	assert.Equal(t, 1, rm.Stats.TextCount)
	assert.False(t, rm.Stats.HasDefs)
	assert.Empty(t, rm.Stats.Warnings)

	rm = compute.Model(model.ChartSpec{Type: charts.TypeSparkArea}, []float64{1, 5, 3},
		model.Size{Width: 100, Height: 30})
	require.NotNil(t, rm.Stats)
	assert.True(t, rm.Stats.HasDefs, "spark-area carries gradient and clip defs")
	assert.NotEmpty(t, rm.Defs)
}

// TestModel_WithRegistry: a custom registry replaces the built-in type
// set entirely.
func TestModel_WithRegistry(t *testing.T) {
	reg, err := charts.NewRegistry()
	require.NoError(t, err)

	rm := compute.Model(model.ChartSpec{Type: charts.TypeBar},
		map[string]any{"value": 1.0}, model.Size{Width: 100, Height: 10},
		compute.WithRegistry(reg))
	assert.True(t, hasCode(rm, model.WarnUnknownChartType), "empty registry knows no types")

	// A nil registry option is ignored, keeping the built-ins.
	rm = compute.Model(model.ChartSpec{Type: charts.TypeBar},
		map[string]any{"value": 1.0}, model.Size{Width: 100, Height: 10},
		compute.WithRegistry(nil))
	assert.False(t, hasCode(rm, model.WarnUnknownChartType))
}

// TestModel_ThemeFlow: theme paint reaches the generated marks.
func TestModel_ThemeFlow(t *testing.T) {
	theme := model.Theme{Foreground: "#111", Background: "#eee"}
	rm := compute.Model(model.ChartSpec{Type: charts.TypeBar},
		map[string]any{"value": 50.0, "max": 100.0}, model.Size{Width: 120, Height: 16},
		compute.WithTheme(theme))
	require.Len(t, rm.Marks, 2)
	assert.Equal(t, "#eee", rm.Marks[0].MarkStyle().Fill)
	assert.Equal(t, "#111", rm.Marks[1].MarkStyle().Fill)
}
