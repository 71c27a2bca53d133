// Package: vizmark/diagnose
//
// diagnose.go — entry point running both validation passes in order.
package diagnose

import "github.com/katalvlaran/vizmark/model"

// Epsilon absorbs floating-point jitter in bounds comparisons: a mark may
// overhang the viewport by up to this much without being reported.
const Epsilon = 1e-6

// Run validates marks and defs against the resolved layout: the numeric &
// bounds pass first, then reference integrity. Warnings land on warns,
// which enforces the budget.
func Run(marks []model.Mark, defs []model.Def, lay model.Layout, warns *model.Collector) {
	Numeric(marks, lay, warns)
	References(marks, defs, warns)
}
