// Package model: types.go declares the chart-facing value types — the
// caller-supplied ChartSpec and Size, the resolved Layout, the Theme and
// State pass-throughs, and the assembled RenderModel with its A11y tree
// and Stats block.
package model

// ChartSpec is the caller-supplied, immutable chart description. Type
// selects the chart definition; the remaining fields are per-type options
// and are ignored by definitions that have no use for them. Pointer fields
// distinguish "not set" (use the definition's default) from an explicit
// zero.
type ChartSpec struct {
	// Type names the chart definition, e.g. "bar", "spark-area", "pareto".
	Type string `json:"type" yaml:"type"`
	// Pad overrides the definition's default padding when non-nil.
	Pad *float64 `json:"pad,omitempty" yaml:"pad"`
	// Gap is the spacing between columns/segments where that applies.
	Gap *float64 `json:"gap,omitempty" yaml:"gap"`
	// Threshold is a per-type cut point (split-pareto divider, percent).
	Threshold *float64 `json:"threshold,omitempty" yaml:"threshold"`
	// Label is an optional caption some definitions render as text.
	Label string `json:"label,omitempty" yaml:"label"`
}

// Size is the caller-supplied pixel size. It may be malformed (NaN,
// Infinity, negative) — the compute pipeline coerces it into a Layout
// instead of trusting it.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Layout is the resolved pixel geometry consumed by mark generation.
// All three fields are finite and non-negative after coercion; Pad is the
// spec's explicit value when present, else the definition's default.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Pad    float64 `json:"pad"`
}

// Inner reports the layout rectangle inset by Pad on every side.
// The returned width/height are NOT clamped: callers that need degenerate
// geometry to surface in diagnostics should use the raw values.
func (l Layout) Inner() (x, y, w, h float64) {
	return l.Pad, l.Pad, l.Width - 2*l.Pad, l.Height - 2*l.Pad
}

// Theme carries caller-chosen colors. The core never invents colors: an
// empty theme yields marks with empty paint fields, which a renderer is
// free to default.
type Theme struct {
	// Palette is cycled across series/segments by Color.
	Palette []string `json:"palette,omitempty" yaml:"palette"`
	// Foreground paints primary marks (value bars, lines, text).
	Foreground string `json:"foreground,omitempty" yaml:"foreground"`
	// Background paints tracks and backdrop marks.
	Background string `json:"background,omitempty" yaml:"background"`
	// Muted paints secondary marks (gridlines, previous-value ghosts).
	Muted string `json:"muted,omitempty" yaml:"muted"`
}

// Color returns the i-th palette entry, cycling; "" when the palette is
// empty (the renderer decides).
func (t Theme) Color(i int) string {
	if len(t.Palette) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}

	return t.Palette[i%len(t.Palette)]
}

// State is transient interaction state a host may pass through to chart
// definitions (e.g. to brighten a hovered segment). Index -1 means "none".
type State struct {
	HoverIndex    int `json:"hoverIndex"`
	SelectedIndex int `json:"selectedIndex"`
}

// NoState is the neutral interaction state.
func NoState() State { return State{HoverIndex: -1, SelectedIndex: -1} }

// A11yItem is one entry of an accessibility tree (typically one datum).
type A11yItem struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// A11yTree describes a chart to assistive technology.
type A11yTree struct {
	Role    string     `json:"role"`
	Label   string     `json:"label,omitempty"`
	Summary string     `json:"summary,omitempty"`
	Items   []A11yItem `json:"items,omitempty"`
}

// Stats summarizes an assembled model. Warnings is omitted when empty.
type Stats struct {
	MarkCount int                 `json:"markCount"`
	TextCount int                 `json:"textCount"`
	HasDefs   bool                `json:"hasDefs"`
	Warnings  []DiagnosticWarning `json:"warnings,omitempty"`
}

// RenderModel is the pipeline's sole output value: the complete,
// renderer-agnostic description of one chart at an instant. It is freshly
// constructed per compute call and carries no identity across calls.
type RenderModel struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Marks  []Mark    `json:"marks"`
	Defs   []Def     `json:"defs,omitempty"`
	A11y   *A11yTree `json:"a11y,omitempty"`
	Stats  *Stats    `json:"stats,omitempty"`
}
