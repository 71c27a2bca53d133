// Package model: warnings.go declares the stable diagnostic codes, the
// DiagnosticWarning record, and the budgeted Collector.
//
// Warning policy (explicit and strict):
//   - Warnings are advisory metadata, never fatal: a host may log, badge,
//     or ignore them; the pipeline always returns a usable RenderModel.
//   - Volume is capped at MaxDiagnosticWarnings per compute call; every
//     producer checks Room() (or the Add return) before building a warning,
//     so worst-case diagnostic cost is O(budget), not O(marks × defs).
//   - Codes are stable API: hosts switch on them; messages are not.
package model

// WarningCode identifies a diagnostic condition. The set below is stable.
type WarningCode string

// Pipeline diagnostic codes.
const (
	// WarnEmptyData — the chart definition declared its data empty.
	WarnEmptyData WarningCode = "EMPTY_DATA"
	// WarnBlankRender — mark generation produced zero marks.
	WarnBlankRender WarningCode = "BLANK_RENDER"
	// WarnNaNCoordinate — a non-finite number reached geometry or layout.
	WarnNaNCoordinate WarningCode = "NAN_COORDINATE"
	// WarnMarkOutOfBounds — a mark's bounding box escapes the viewport.
	WarnMarkOutOfBounds WarningCode = "MARK_OUT_OF_BOUNDS"
	// WarnMissingDef — a mark references a def that is absent or of the
	// wrong kind for the referencing relation.
	WarnMissingDef WarningCode = "MISSING_DEF"
)

// Input-shape validation codes (produced while soft-validating caller data).
const (
	WarnInvalidType      WarningCode = "INVALID_TYPE"
	WarnInvalidValue     WarningCode = "INVALID_VALUE"
	WarnMissingValue     WarningCode = "MISSING_VALUE"
	WarnMissingField     WarningCode = "MISSING_FIELD"
	WarnMissingData      WarningCode = "MISSING_DATA"
	WarnOutOfRange       WarningCode = "OUT_OF_RANGE"
	WarnInvalidDataShape WarningCode = "INVALID_DATA_SHAPE"
	WarnUnknownChartType WarningCode = "UNKNOWN_CHART_TYPE"
)

// MaxDiagnosticWarnings caps the number of warnings one compute call may
// accumulate. The cutoff is a resource guard, not an error: once reached,
// further conditions go unreported by design.
const MaxDiagnosticWarnings = 64

// DiagnosticWarning is one structured, non-fatal note about degraded,
// suspicious, or missing output. Only Code and Message are always set.
type DiagnosticWarning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
	// MarkID names the offending mark, when one is identifiable.
	MarkID string `json:"markId,omitempty"`
	// Path locates the offending field in caller data, e.g. "segments[2].pct".
	Path string `json:"path,omitempty"`
	// Hint suggests a remedy in caller terms.
	Hint string `json:"hint,omitempty"`
	// Expected / Received describe a type or range mismatch.
	Expected string `json:"expected,omitempty"`
	Received string `json:"received,omitempty"`
}

// Collector accumulates warnings up to a fixed budget. The zero value is
// unusable; construct with NewCollector. Not safe for concurrent use —
// one collector belongs to one compute call.
type Collector struct {
	items []DiagnosticWarning
	max   int
}

// NewCollector returns a Collector with the standard budget.
func NewCollector() *Collector { return NewCollectorWithBudget(MaxDiagnosticWarnings) }

// NewCollectorWithBudget returns a Collector capped at max warnings;
// max < 0 is treated as 0 (collect nothing).
func NewCollectorWithBudget(max int) *Collector {
	if max < 0 {
		max = 0
	}

	return &Collector{items: make([]DiagnosticWarning, 0, min(max, 8)), max: max}
}

// Room reports whether at least one more warning fits the budget.
func (c *Collector) Room() bool { return len(c.items) < c.max }

// Add appends w if budget remains and reports whether it was kept.
func (c *Collector) Add(w DiagnosticWarning) bool {
	if !c.Room() {
		return false
	}
	c.items = append(c.items, w)

	return true
}

// Addf is shorthand for Add with just a code and message.
func (c *Collector) Addf(code WarningCode, message string) bool {
	return c.Add(DiagnosticWarning{Code: code, Message: message})
}

// Len returns the number of collected warnings.
func (c *Collector) Len() int { return len(c.items) }

// Has reports whether any collected warning carries the given code.
func (c *Collector) Has(code WarningCode) bool {
	for i := range c.items {
		if c.items[i].Code == code {
			return true
		}
	}

	return false
}

// Items returns the collected warnings as a copy, nil when none were
// collected (so Stats.Warnings marshals away cleanly).
func (c *Collector) Items() []DiagnosticWarning {
	if len(c.items) == 0 {
		return nil
	}
	out := make([]DiagnosticWarning, len(c.items))
	copy(out, c.items)

	return out
}
