// Package model: def.go declares the Def union — reusable graphical
// resources addressed by ID from mark style fields.
package model

import "encoding/json"

// DefKind discriminates the Def union.
type DefKind string

// The five def variants.
const (
	DefClipRect       DefKind = "clipRect"
	DefMask           DefKind = "mask"
	DefFilter         DefKind = "filter"
	DefLinearGradient DefKind = "linearGradient"
	DefPattern        DefKind = "pattern"
)

// Def is one reusable graphical resource. Concrete types: ClipRectDef,
// MaskDef, FilterDef, LinearGradientDef, PatternDef. Marks reference defs
// through Style: ClipPath expects a clipRect, Mask a mask, Filter a filter,
// and Fill/Stroke (in url(#id) form) a linearGradient or pattern.
type Def interface {
	Kind() DefKind
	DefID() string
}

// ClipRectDef clips referencing marks to an axis-aligned rectangle.
type ClipRectDef struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
	// RX is the clip rectangle's corner radius.
	RX float64 `json:"rx,omitempty"`
}

// MaskDef masks referencing marks with the luminance of its own marks.
type MaskDef struct {
	ID    string `json:"id"`
	Marks []Mark `json:"marks,omitempty"`
}

// FilterDef applies a gaussian blur of StdDeviation to referencing marks.
type FilterDef struct {
	ID           string  `json:"id"`
	StdDeviation float64 `json:"stdDeviation"`
}

// GradientStop is one color stop along a gradient axis; Offset ∈ [0,1].
type GradientStop struct {
	Offset  float64  `json:"offset"`
	Color   string   `json:"color"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// LinearGradientDef paints along the axis (X1,Y1)→(X2,Y2) in a unit box
// (coordinates are fractions of the referencing mark's bounding box).
type LinearGradientDef struct {
	ID    string         `json:"id"`
	X1    float64        `json:"x1"`
	Y1    float64        `json:"y1"`
	X2    float64        `json:"x2"`
	Y2    float64        `json:"y2"`
	Stops []GradientStop `json:"stops"`
}

// PatternDef tiles its marks over referencing geometry in a W×H cell.
type PatternDef struct {
	ID    string  `json:"id"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Marks []Mark  `json:"marks,omitempty"`
}

func (d ClipRectDef) Kind() DefKind       { return DefClipRect }
func (d ClipRectDef) DefID() string       { return d.ID }
func (d MaskDef) Kind() DefKind           { return DefMask }
func (d MaskDef) DefID() string           { return d.ID }
func (d FilterDef) Kind() DefKind         { return DefFilter }
func (d FilterDef) DefID() string         { return d.ID }
func (d LinearGradientDef) Kind() DefKind { return DefLinearGradient }
func (d LinearGradientDef) DefID() string { return d.ID }
func (d PatternDef) Kind() DefKind        { return DefPattern }
func (d PatternDef) DefID() string        { return d.ID }

func (d ClipRectDef) MarshalJSON() ([]byte, error) {
	type alias ClipRectDef
	return json.Marshal(struct {
		Kind DefKind `json:"kind"`
		alias
	}{d.Kind(), alias(d)})
}

func (d MaskDef) MarshalJSON() ([]byte, error) {
	type alias MaskDef
	return json.Marshal(struct {
		Kind DefKind `json:"kind"`
		alias
	}{d.Kind(), alias(d)})
}

func (d FilterDef) MarshalJSON() ([]byte, error) {
	type alias FilterDef
	return json.Marshal(struct {
		Kind DefKind `json:"kind"`
		alias
	}{d.Kind(), alias(d)})
}

func (d LinearGradientDef) MarshalJSON() ([]byte, error) {
	type alias LinearGradientDef
	return json.Marshal(struct {
		Kind DefKind `json:"kind"`
		alias
	}{d.Kind(), alias(d)})
}

func (d PatternDef) MarshalJSON() ([]byte, error) {
	type alias PatternDef
	return json.Marshal(struct {
		Kind DefKind `json:"kind"`
		alias
	}{d.Kind(), alias(d)})
}
