package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizmark/model"
)

// TestIDAllocator_PerKindSequences verifies independent counters per kind
// and the <prefix>-<kind>-<n> form interpolation and defs rely on.
func TestIDAllocator_PerKindSequences(t *testing.T) {
	ids := model.NewIDAllocator("bar")

	assert.Equal(t, "bar-rect-0", ids.Next("rect"))
	assert.Equal(t, "bar-rect-1", ids.Next("rect"))
	assert.Equal(t, "bar-text-0", ids.Next("text"), "kinds must not share counters")
	assert.Equal(t, "bar-rect-2", ids.Next("rect"))
}

// TestMark_JSONKindTag verifies serialized marks carry their variant
// discriminant so a consumer can reconstruct the union.
func TestMark_JSONKindTag(t *testing.T) {
	raw, err := json.Marshal(model.CircleMark{ID: "c0", CX: 1, CY: 2, R: 3})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "circle", decoded["kind"])
	assert.Equal(t, "c0", decoded["id"])
	assert.Equal(t, 3.0, decoded["r"])
}

// TestDef_JSONKindTag does the same for defs.
func TestDef_JSONKindTag(t *testing.T) {
	raw, err := json.Marshal(model.ClipRectDef{ID: "clip", W: 10, H: 5})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "clipRect", decoded["kind"])
	assert.Equal(t, "clip", decoded["id"])
}

// TestTheme_ColorCycling wraps around the palette and yields "" without one.
func TestTheme_ColorCycling(t *testing.T) {
	th := model.Theme{Palette: []string{"a", "b", "c"}}

	assert.Equal(t, "a", th.Color(0))
	assert.Equal(t, "c", th.Color(2))
	assert.Equal(t, "a", th.Color(3), "palette must cycle")
	assert.Equal(t, "", model.Theme{}.Color(1), "empty palette defers to the renderer")
}

// TestLayout_Inner insets by pad on every side without clamping.
func TestLayout_Inner(t *testing.T) {
	x, y, w, h := model.Layout{Width: 100, Height: 50, Pad: 4}.Inner()
	assert.Equal(t, 4.0, x)
	assert.Equal(t, 4.0, y)
	assert.Equal(t, 92.0, w)
	assert.Equal(t, 42.0, h)

	_, _, w, _ = model.Layout{Width: 2, Height: 10, Pad: 4}.Inner()
	assert.Equal(t, -6.0, w, "degenerate sizes must stay visible to diagnostics")
}
