// Package: vizmark/diagnose
//
// refs.go — Pass B: def-reference integrity.
package diagnose

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vizmark/model"
)

// relation names one style field that may reference a def, how to read the
// referenced ID out of a style, and which def kinds satisfy it.
type relation struct {
	name  string
	refID func(model.Style) string
	kinds []model.DefKind
}

// relations is ordered — determinism of warning order depends on it.
var relations = []relation{
	{"clipPath", func(s model.Style) string { return s.ClipPath }, []model.DefKind{model.DefClipRect}},
	{"mask", func(s model.Style) string { return s.Mask }, []model.DefKind{model.DefMask}},
	{"filter", func(s model.Style) string { return s.Filter }, []model.DefKind{model.DefFilter}},
	{"fill", func(s model.Style) string { return urlRef(s.Fill) }, []model.DefKind{model.DefLinearGradient, model.DefPattern}},
	{"stroke", func(s model.Style) string { return urlRef(s.Stroke) }, []model.DefKind{model.DefLinearGradient, model.DefPattern}},
}

// References checks that every def reference in marks resolves to an
// existing def of the expected kind. Each distinct (relation, defID) pair
// is checked once; a broken pair shared by many marks yields one warning
// attributed to the first referencing mark.
func References(marks []model.Mark, defs []model.Def, warns *model.Collector) {
	byID := make(map[string]model.DefKind, len(defs))
	for _, d := range defs {
		byID[d.DefID()] = d.Kind()
	}

	seen := make(map[string]struct{})
	for _, m := range marks {
		if !warns.Room() {
			return
		}
		st := m.MarkStyle()
		for _, rel := range relations {
			id := rel.refID(st)
			if id == "" {
				continue
			}
			key := rel.name + "\x00" + id
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			kind, exists := byID[id]
			if exists && kindAllowed(kind, rel.kinds) {
				continue
			}
			msg := fmt.Sprintf("mark %q: %s references def %q which does not exist (expected %s)",
				m.MarkID(), rel.name, id, kindList(rel.kinds))
			if exists {
				msg = fmt.Sprintf("mark %q: %s references def %q of kind %s (expected %s)",
					m.MarkID(), rel.name, id, kind, kindList(rel.kinds))
			}
			warns.Add(model.DiagnosticWarning{
				Code:     model.WarnMissingDef,
				Message:  msg,
				MarkID:   m.MarkID(),
				Expected: kindList(rel.kinds),
			})
			if !warns.Room() {
				return
			}
		}
	}
}

// urlRef extracts the def ID from the url(#id) / url('#id') / url("#id")
// forms; anything else (a plain color, empty string) yields "".
func urlRef(s string) string {
	if !strings.HasPrefix(s, "url(") || !strings.HasSuffix(s, ")") {
		return ""
	}
	inner := strings.TrimSpace(s[len("url(") : len(s)-1])
	if len(inner) >= 2 && (inner[0] == '\'' || inner[0] == '"') && inner[len(inner)-1] == inner[0] {
		inner = inner[1 : len(inner)-1]
	}
	if len(inner) < 2 || inner[0] != '#' {
		return ""
	}

	return inner[1:]
}

func kindAllowed(kind model.DefKind, allowed []model.DefKind) bool {
	for _, k := range allowed {
		if kind == k {
			return true
		}
	}

	return false
}

func kindList(kinds []model.DefKind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}

	return strings.Join(parts, " or ")
}
