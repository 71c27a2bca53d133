// Package: vizmark/compute
//
// a11y.go — fallback accessibility inference. Chart definitions own their
// a11y description; this only fills the holes they leave, so a model is
// never silent to assistive technology.
package compute

import (
	"fmt"

	"github.com/katalvlaran/vizmark/model"
)

// backfillA11y completes a definition-provided tree: role and label get
// generic values when empty, a missing summary is derived from the mark
// census, and missing items are lifted from text marks (the only content
// generically known to be meaningful). Definition-provided values always
// win — nothing set is ever overwritten.
func backfillA11y(tree model.A11yTree, chartType string, marks []model.Mark) model.A11yTree {
	if tree.Role == "" {
		tree.Role = "img"
	}
	if tree.Label == "" {
		tree.Label = chartType + " chart"
	}
	if tree.Summary == "" {
		if len(marks) == 0 {
			tree.Summary = fmt.Sprintf("empty %s chart", chartType)
		} else {
			tree.Summary = fmt.Sprintf("%s chart with %d marks", chartType, len(marks))
		}
	}
	if len(tree.Items) == 0 {
		for _, m := range marks {
			if t, ok := m.(model.TextMark); ok && t.Text != "" {
				tree.Items = append(tree.Items, model.A11yItem{Label: t.Text})
			}
		}
	}

	return tree
}
