// Package: vizmark/compute
//
// compute.go — the Model entry point: spec + data + size → RenderModel.
package compute

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/vizmark/charts"
	"github.com/katalvlaran/vizmark/diagnose"
	"github.com/katalvlaran/vizmark/model"
)

// Model computes the render model for one chart. Total for any input:
// malformed specs, data or sizes degrade into diagnostic warnings on the
// returned model, never a panic or an error. The result is freshly
// constructed per call and structurally equal across calls with equal
// inputs.
func Model(spec model.ChartSpec, data any, size model.Size, opts ...Option) *model.RenderModel {
	cfg := resolveConfig(opts)
	warns := model.NewCollector()

	def, known := cfg.registry.Lookup(spec.Type)
	if !known {
		warns.Add(model.DiagnosticWarning{
			Code:    model.WarnUnknownChartType,
			Message: fmt.Sprintf("no chart definition registered for type %q", spec.Type),
			Hint:    "register a definition or fix the spec type",
		})
	}

	// 1–2: soft shape validation, then normalization. Both are total;
	// both may only record warnings.
	var norm charts.Normalized
	if known {
		def.ValidateData(data, warns)
		norm = def.Normalize(spec, data, warns)
	}

	// 3: the empty-data warning is opt-in per definition.
	if known && norm != nil && def.IsEmpty(norm) {
		if ew, ok := def.(charts.EmptyDataWarner); ok {
			warns.Addf(model.WarnEmptyData, ew.EmptyDataWarning())
		}
	}

	// 4: layout coercion; pad precedence spec > definition default.
	var defaultPad float64
	if known {
		defaultPad = def.DefaultPad()
	}
	lay := resolveLayout(size, spec.Pad, defaultPad, warns)

	// 5–6: mark/def generation, guarded by the type-tag invariant: a
	// normalized value produced for another chart type yields empty
	// output rather than undefined geometry.
	marks := []model.Mark{}
	var defs []model.Def
	if known && norm != nil && norm.NormalizedType() == spec.Type {
		if generated := def.Marks(spec, norm, lay, cfg.state, cfg.theme, warns); generated != nil {
			marks = generated
		}
		if dp, ok := def.(charts.DefProvider); ok {
			defs = dp.Defs(spec, norm, lay, warns)
		}
	}

	// 7: an empty model is legal but self-describing.
	if len(marks) == 0 {
		warns.Addf(model.WarnBlankRender, "mark generation produced no marks")
	}

	// 8: independent validation of whatever was produced.
	diagnose.Run(marks, defs, lay, warns)

	// 9: a11y, definition first, generic backfill second.
	var tree model.A11yTree
	if known && norm != nil {
		tree = def.A11y(spec, norm, lay)
	}
	tree = backfillA11y(tree, spec.Type, marks)

	// 10: assembly.
	textCount := 0
	for _, m := range marks {
		if m.Kind() == model.KindText {
			textCount++
		}
	}
	out := &model.RenderModel{
		Width:  lay.Width,
		Height: lay.Height,
		Marks:  marks,
		Defs:   defs,
		A11y:   &tree,
		Stats: &model.Stats{
			MarkCount: len(marks),
			TextCount: textCount,
			HasDefs:   len(defs) > 0,
			Warnings:  warns.Items(),
		},
	}

	cfg.logger.Debug("render model computed",
		zap.String("type", spec.Type),
		zap.Int("marks", len(marks)),
		zap.Int("defs", len(defs)),
		zap.Int("warnings", warns.Len()),
	)

	return out
}
