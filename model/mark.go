// Package model: mark.go declares the Mark union — the five drawable
// primitives a render model may contain — and the shared Style block.
//
// Marks form a closed union discriminated by Kind(). Go has no sum types,
// so the union is an interface with one concrete struct per variant;
// consumers (diagnostics, interpolation, serializers) type-switch on the
// concrete types. Every mark carries a free-form ID: it should be unique
// within one model, because interpolation matches marks across models by
// ID and defs are referenced by ID.
package model

import "encoding/json"

// MarkKind discriminates the Mark union.
type MarkKind string

// The five mark variants.
const (
	KindRect   MarkKind = "rect"
	KindCircle MarkKind = "circle"
	KindLine   MarkKind = "line"
	KindText   MarkKind = "text"
	KindPath   MarkKind = "path"
)

// Mark is one drawable vector primitive with an identity and geometry.
// Concrete types: RectMark, CircleMark, LineMark, TextMark, PathMark.
type Mark interface {
	// Kind reports the variant discriminant.
	Kind() MarkKind
	// MarkID returns the mark's identity within its model.
	MarkID() string
	// MarkStyle returns the mark's shared paint/reference fields.
	MarkStyle() Style
}

// Style holds the paint and resource-reference fields common to all marks.
// Fill and Stroke are either plain colors ("#4F46E5") or def references in
// the url(#id) form; ClipPath, Mask and Filter reference defs by bare ID.
// Opacity is optional: nil means "not specified" (the renderer's default),
// which matters to interpolation — opacity blends only when present on
// both sides of a transition.
type Style struct {
	Fill        string   `json:"fill,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth float64  `json:"strokeWidth,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
	ClipPath    string   `json:"clipPath,omitempty"`
	Mask        string   `json:"mask,omitempty"`
	Filter      string   `json:"filter,omitempty"`
}

// RectMark is an axis-aligned rectangle. W and H are not clamped: negative
// sizes are representable and the diagnostics bounding box takes corner
// extremes, so degenerate rects surface as MARK_OUT_OF_BOUNDS rather than
// being silently normalized.
type RectMark struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
	// RX is the corner radius; 0 means square corners.
	RX float64 `json:"rx,omitempty"`
	Style
}

// CircleMark is a circle around center (CX, CY) with radius R.
type CircleMark struct {
	ID string  `json:"id"`
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
	Style
}

// LineMark is a straight segment from (X1, Y1) to (X2, Y2).
type LineMark struct {
	ID string  `json:"id"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
	Style
}

// TextMark anchors the string Text at (X, Y). Only the anchor point takes
// part in bounds checking — text metrics are renderer business.
type TextMark struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
	// FontSize in pixels; 0 lets the renderer decide.
	FontSize float64 `json:"fontSize,omitempty"`
	// Anchor is "start", "middle" or "end" ("" = renderer default).
	Anchor string `json:"anchor,omitempty"`
	Style
}

// PathMark carries an SVG-style path string in D. Diagnostics can only
// bound paths written in the simple M/L/Z polyline grammar; anything
// fancier (arcs, béziers) is treated as untestable and skipped.
type PathMark struct {
	ID string `json:"id"`
	D  string `json:"d"`
	Style
}

func (m RectMark) Kind() MarkKind     { return KindRect }
func (m RectMark) MarkID() string     { return m.ID }
func (m RectMark) MarkStyle() Style   { return m.Style }
func (m CircleMark) Kind() MarkKind   { return KindCircle }
func (m CircleMark) MarkID() string   { return m.ID }
func (m CircleMark) MarkStyle() Style { return m.Style }
func (m LineMark) Kind() MarkKind     { return KindLine }
func (m LineMark) MarkID() string     { return m.ID }
func (m LineMark) MarkStyle() Style   { return m.Style }
func (m TextMark) Kind() MarkKind     { return KindText }
func (m TextMark) MarkID() string     { return m.ID }
func (m TextMark) MarkStyle() Style   { return m.Style }
func (m PathMark) Kind() MarkKind     { return KindPath }
func (m PathMark) MarkID() string     { return m.ID }
func (m PathMark) MarkStyle() Style   { return m.Style }

// MarshalJSON emits the variant discriminant alongside the flattened fields
// so serialized models stay self-describing. Same scheme for every variant.
func (m RectMark) MarshalJSON() ([]byte, error) {
	type alias RectMark
	return json.Marshal(struct {
		Kind MarkKind `json:"kind"`
		alias
	}{m.Kind(), alias(m)})
}

func (m CircleMark) MarshalJSON() ([]byte, error) {
	type alias CircleMark
	return json.Marshal(struct {
		Kind MarkKind `json:"kind"`
		alias
	}{m.Kind(), alias(m)})
}

func (m LineMark) MarshalJSON() ([]byte, error) {
	type alias LineMark
	return json.Marshal(struct {
		Kind MarkKind `json:"kind"`
		alias
	}{m.Kind(), alias(m)})
}

func (m TextMark) MarshalJSON() ([]byte, error) {
	type alias TextMark
	return json.Marshal(struct {
		Kind MarkKind `json:"kind"`
		alias
	}{m.Kind(), alias(m)})
}

func (m PathMark) MarshalJSON() ([]byte, error) {
	type alias PathMark
	return json.Marshal(struct {
		Kind MarkKind `json:"kind"`
		alias
	}{m.Kind(), alias(m)})
}
