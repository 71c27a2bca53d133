package tween_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizmark/model"
	"github.com/katalvlaran/vizmark/tween"
)

// TestLerp_Laws pins the endpoint and overshoot laws: interpolation is
// deliberately unclamped.
func TestLerp_Laws(t *testing.T) {
	assert.Equal(t, 0.0, tween.Lerp(0, 100, 0))
	assert.Equal(t, 100.0, tween.Lerp(0, 100, 1))
	assert.Equal(t, -50.0, tween.Lerp(0, 100, -0.5), "undershoot passes through")
	assert.Equal(t, 150.0, tween.Lerp(0, 100, 1.5), "overshoot passes through")
	assert.Equal(t, 50.0, tween.Lerp(0, 100, 0.5))
}

// TestEasing_ByName resolves the stable names and rejects unknowns.
func TestEasing_ByName(t *testing.T) {
	for _, name := range []string{tween.EasingLinear, tween.EasingEaseOut, tween.EasingEaseInOut} {
		e, ok := tween.ByName(name)
		require.True(t, ok, name)
		require.NotNil(t, e, name)
		assert.InDelta(t, 0, e(0), 1e-12, "%s: f(0)=0", name)
		assert.InDelta(t, 1, e(1), 1e-12, "%s: f(1)=1", name)
	}

	_, ok := tween.ByName("bounce")
	assert.False(t, ok)
}

// TestModel_NewMarkAppearsAtTarget: a mark with no source counterpart has
// nothing to blend from, so it shows at its target value for any t>0.
func TestModel_NewMarkAppearsAtTarget(t *testing.T) {
	from := &model.RenderModel{Width: 100, Height: 50, Marks: []model.Mark{}}
	to := &model.RenderModel{Width: 100, Height: 50, Marks: []model.Mark{
		model.RectMark{ID: "fresh", X: 10, Y: 10, W: 20, H: 20},
	}}

	for _, tv := range []float64{0.01, 0.5, 0.99} {
		out := tween.Model(from, to, tv)
		require.Len(t, out.Marks, 1)
		assert.Empty(t, cmp.Diff(to.Marks[0], out.Marks[0]), "t=%v", tv)
	}
}

// TestModel_DisappearedMarkIsDropped: output size follows the target.
func TestModel_DisappearedMarkIsDropped(t *testing.T) {
	from := &model.RenderModel{Marks: []model.Mark{
		model.RectMark{ID: "legacy", X: 1, Y: 1, W: 1, H: 1},
	}}
	to := &model.RenderModel{Marks: []model.Mark{}}

	out := tween.Model(from, to, 0.5)
	assert.Empty(t, out.Marks)
}

// TestModel_SameKindBlendsEveryNumericField checks each rect field blends
// independently at the midpoint.
func TestModel_SameKindBlendsEveryNumericField(t *testing.T) {
	from := &model.RenderModel{Marks: []model.Mark{
		model.RectMark{ID: "r", X: 0, Y: 10, W: 20, H: 30, RX: 0, Style: model.Style{StrokeWidth: 1}},
	}}
	to := &model.RenderModel{Marks: []model.Mark{
		model.RectMark{ID: "r", X: 10, Y: 30, W: 40, H: 30, RX: 4, Style: model.Style{StrokeWidth: 3}},
	}}

	out := tween.Model(from, to, 0.5)
	require.Len(t, out.Marks, 1)
	r, ok := out.Marks[0].(model.RectMark)
	require.True(t, ok)
	assert.Equal(t, 5.0, r.X)
	assert.Equal(t, 20.0, r.Y)
	assert.Equal(t, 30.0, r.W)
	assert.Equal(t, 30.0, r.H)
	assert.Equal(t, 2.0, r.RX)
	assert.Equal(t, 2.0, r.StrokeWidth)
}

// TestMark_CrossKindSnapsToTarget: rect↔circle blending is undefined, so
// the pair snaps to the target at any t, however small.
func TestMark_CrossKindSnapsToTarget(t *testing.T) {
	from := model.RectMark{ID: "shape", X: 0, Y: 0, W: 10, H: 10}
	to := model.CircleMark{ID: "shape", CX: 5, CY: 5, R: 5}

	for _, tv := range []float64{0.0001, 0.5, 1} {
		out := tween.Mark(from, to, tv)
		assert.Empty(t, cmp.Diff(model.Mark(to), out), "t=%v", tv)
	}
}

// TestMark_TextHoldsUntilCompletion: text content cannot blend; it holds
// the source string strictly before t=1 and snaps exactly at the boundary.
func TestMark_TextHoldsUntilCompletion(t *testing.T) {
	from := model.TextMark{ID: "t", X: 0, Y: 0, Text: "before"}
	to := model.TextMark{ID: "t", X: 10, Y: 0, Text: "after"}

	mid, ok := tween.Mark(from, to, 0.999).(model.TextMark)
	require.True(t, ok)
	assert.Equal(t, "before", mid.Text, "source text holds while t<1")
	assert.InDelta(t, 9.99, mid.X, 1e-9, "the anchor still blends")

	done, ok := tween.Mark(from, to, 1).(model.TextMark)
	require.True(t, ok)
	assert.Equal(t, "after", done.Text, "snap at exactly t=1")
}

// TestMark_OpacityPresenceRule: opacity blends only when both sides carry
// one; otherwise the target's value (or absence) wins immediately.
func TestMark_OpacityPresenceRule(t *testing.T) {
	half, full := 0.5, 1.0

	both := tween.Mark(
		model.RectMark{ID: "r", Style: model.Style{Opacity: &half}},
		model.RectMark{ID: "r", Style: model.Style{Opacity: &full}},
		0.5,
	)
	require.NotNil(t, both.MarkStyle().Opacity)
	assert.Equal(t, 0.75, *both.MarkStyle().Opacity)

	onlyTarget := tween.Mark(
		model.RectMark{ID: "r"},
		model.RectMark{ID: "r", Style: model.Style{Opacity: &full}},
		0.1,
	)
	require.NotNil(t, onlyTarget.MarkStyle().Opacity)
	assert.Equal(t, 1.0, *onlyTarget.MarkStyle().Opacity, "target-only opacity applies immediately")

	onlySource := tween.Mark(
		model.RectMark{ID: "r", Style: model.Style{Opacity: &half}},
		model.RectMark{ID: "r"},
		0.1,
	)
	assert.Nil(t, onlySource.MarkStyle().Opacity, "absent target opacity wins immediately")
}

// TestModel_NonVisualStateNeverBlends: defs, a11y and stats always come
// from the target so non-visual state cannot flicker mid-transition.
func TestModel_NonVisualStateNeverBlends(t *testing.T) {
	fromTree := &model.A11yTree{Role: "img", Label: "old"}
	toTree := &model.A11yTree{Role: "img", Label: "new"}

	from := &model.RenderModel{Width: 100, Height: 50, A11y: fromTree,
		Defs: []model.Def{model.FilterDef{ID: "old-blur"}}}
	to := &model.RenderModel{Width: 200, Height: 100, A11y: toTree,
		Defs:  []model.Def{model.FilterDef{ID: "new-blur"}},
		Stats: &model.Stats{MarkCount: 0}}

	out := tween.Model(from, to, 0.25)
	assert.Equal(t, 125.0, out.Width, "width blends like any numeric field")
	assert.Equal(t, 62.5, out.Height)
	assert.Same(t, toTree, out.A11y)
	assert.Equal(t, to.Defs, out.Defs)
	assert.Same(t, to.Stats, out.Stats)
}

// TestModel_NilSnapshots degrade to the other side, never panic.
func TestModel_NilSnapshots(t *testing.T) {
	rm := &model.RenderModel{Width: 10, Height: 10}

	assert.Same(t, rm, tween.Model(nil, rm, 0.5))
	assert.Same(t, rm, tween.Model(rm, nil, 0.5))
	out := tween.Model(nil, nil, 0.5)
	require.NotNil(t, out)
	assert.NotNil(t, out.Marks)
}

// TestModelEased shapes t before blending; nil easing means linear.
func TestModelEased(t *testing.T) {
	from := &model.RenderModel{Width: 0, Height: 0}
	to := &model.RenderModel{Width: 100, Height: 100}

	eased := tween.ModelEased(from, to, 0.5, tween.EaseInOut)
	assert.Equal(t, 50.0, eased.Width, "easeInOut(0.5)=0.5")

	eased = tween.ModelEased(from, to, 0.25, tween.EaseInOut)
	assert.InDelta(t, 100*tween.EaseInOut(0.25), eased.Width, 1e-12)

	linear := tween.ModelEased(from, to, 0.25, nil)
	assert.Equal(t, 25.0, linear.Width)
}

// TestModel_DuplicateSourceIDs: first occurrence wins when the source
// model violates ID uniqueness, keeping the result deterministic.
func TestModel_DuplicateSourceIDs(t *testing.T) {
	from := &model.RenderModel{Marks: []model.Mark{
		model.CircleMark{ID: "dot", CX: 0, CY: 0, R: 1},
		model.CircleMark{ID: "dot", CX: 100, CY: 100, R: 9},
	}}
	to := &model.RenderModel{Marks: []model.Mark{
		model.CircleMark{ID: "dot", CX: 10, CY: 10, R: 1},
	}}

	out := tween.Model(from, to, 0.5)
	require.Len(t, out.Marks, 1)
	dot, ok := out.Marks[0].(model.CircleMark)
	require.True(t, ok)
	assert.Equal(t, 5.0, dot.CX, "blends from the first duplicate")
}
