// Package: vizmark/diagnose
//
// numeric.go — Pass A: per-mark finiteness and viewport bounds.
package diagnose

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/vizmark/model"
)

// Numeric checks every mark while warning budget remains: non-finite
// geometry/style fields yield NAN_COORDINATE (and skip bounds for that
// mark); finite marks whose bounding box escapes [0,width]×[0,height]
// beyond Epsilon yield MARK_OUT_OF_BOUNDS.
func Numeric(marks []model.Mark, lay model.Layout, warns *model.Collector) {
	for _, m := range marks {
		if !warns.Room() {
			return
		}
		if field, ok := firstNonFinite(m); ok {
			warns.Add(model.DiagnosticWarning{
				Code:    model.WarnNaNCoordinate,
				Message: fmt.Sprintf("mark %q: field %s is not finite", m.MarkID(), field),
				MarkID:  m.MarkID(),
			})

			continue
		}
		box, ok := boundsOf(m)
		if !ok {
			continue // untestable geometry (e.g. non-polyline path)
		}
		if box.minX < -Epsilon || box.minY < -Epsilon ||
			box.maxX > lay.Width+Epsilon || box.maxY > lay.Height+Epsilon {
			warns.Add(model.DiagnosticWarning{
				Code: model.WarnMarkOutOfBounds,
				Message: fmt.Sprintf("mark %q: bounds [%g,%g]×[%g,%g] escape viewport %g×%g",
					m.MarkID(), box.minX, box.maxX, box.minY, box.maxY, lay.Width, lay.Height),
				MarkID: m.MarkID(),
			})
		}
	}
}

// bbox is an axis-aligned bounding box.
type bbox struct {
	minX, minY, maxX, maxY float64
}

func newBBox(x, y float64) bbox { return bbox{x, y, x, y} }

func (b *bbox) extend(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

// firstNonFinite returns the name of the first non-finite numeric field of
// m's variant (geometry first, then style), and whether one was found.
func firstNonFinite(m model.Mark) (string, bool) {
	check := func(name string, v float64) (string, bool) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return name, true
		}

		return "", false
	}

	switch mk := m.(type) {
	case model.RectMark:
		for _, f := range []struct {
			name string
			v    float64
		}{{"x", mk.X}, {"y", mk.Y}, {"w", mk.W}, {"h", mk.H}, {"rx", mk.RX}} {
			if name, bad := check(f.name, f.v); bad {
				return name, true
			}
		}
	case model.CircleMark:
		for _, f := range []struct {
			name string
			v    float64
		}{{"cx", mk.CX}, {"cy", mk.CY}, {"r", mk.R}} {
			if name, bad := check(f.name, f.v); bad {
				return name, true
			}
		}
	case model.LineMark:
		for _, f := range []struct {
			name string
			v    float64
		}{{"x1", mk.X1}, {"y1", mk.Y1}, {"x2", mk.X2}, {"y2", mk.Y2}} {
			if name, bad := check(f.name, f.v); bad {
				return name, true
			}
		}
	case model.TextMark:
		for _, f := range []struct {
			name string
			v    float64
		}{{"x", mk.X}, {"y", mk.Y}, {"fontSize", mk.FontSize}} {
			if name, bad := check(f.name, f.v); bad {
				return name, true
			}
		}
	case model.PathMark:
		// Path numbers are checked during decoding in boundsOf; a path
		// containing NaN text fails decoding and is treated as untestable
		// unless the grammar itself is M/L/Z with a non-finite number.
		if pts, ok := decodePolyline(mk.D); ok {
			for _, p := range pts {
				if name, bad := check("d", p[0]); bad {
					return name, true
				}
				if name, bad := check("d", p[1]); bad {
					return name, true
				}
			}
		}
	}

	st := m.MarkStyle()
	if name, bad := check("strokeWidth", st.StrokeWidth); bad {
		return name, true
	}
	if st.Opacity != nil {
		if name, bad := check("opacity", *st.Opacity); bad {
			return name, true
		}
	}

	return "", false
}

// boundsOf computes the variant's bounding box; ok=false means the mark's
// extent cannot be determined (paths outside the polyline grammar).
func boundsOf(m model.Mark) (bbox, bool) {
	switch mk := m.(type) {
	case model.RectMark:
		// Corner extremes, so negative sizes bound correctly.
		b := newBBox(mk.X, mk.Y)
		b.extend(mk.X+mk.W, mk.Y+mk.H)

		return b, true
	case model.CircleMark:
		b := newBBox(mk.CX-mk.R, mk.CY-mk.R)
		b.extend(mk.CX+mk.R, mk.CY+mk.R)

		return b, true
	case model.LineMark:
		b := newBBox(mk.X1, mk.Y1)
		b.extend(mk.X2, mk.Y2)

		return b, true
	case model.TextMark:
		// Anchor point only; text metrics belong to the renderer.
		return newBBox(mk.X, mk.Y), true
	case model.PathMark:
		pts, ok := decodePolyline(mk.D)
		if !ok || len(pts) == 0 {
			return bbox{}, false
		}
		b := newBBox(pts[0][0], pts[0][1])
		for _, p := range pts[1:] {
			b.extend(p[0], p[1])
		}

		return b, true
	default:
		return bbox{}, false
	}
}

// decodePolyline extracts coordinate pairs from a path restricted to the
// simple polyline grammar: M and L commands carrying x y pairs (implicit
// repeats allowed) and a bare Z. Anything else — arcs, béziers, relative
// commands — makes the whole path undecodable.
func decodePolyline(d string) ([][2]float64, bool) {
	fields := strings.FieldsFunc(d, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	var (
		pts     [][2]float64
		pending *float64
	)
	for _, tok := range fields {
		switch tok {
		case "M", "L":
			if pending != nil {
				return nil, false // dangling x without y
			}
		case "Z":
			if pending != nil {
				return nil, false
			}
		default:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, false
			}
			if pending == nil {
				pending = &v
			} else {
				pts = append(pts, [2]float64{*pending, v})
				pending = nil
			}
		}
	}
	if pending != nil {
		return nil, false
	}

	return pts, true
}
