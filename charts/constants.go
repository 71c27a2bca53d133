// Package: vizmark/charts
//
// constants.go — geometry defaults for the built-in definitions.
// Centralized so defaults are visible in one place and stable across
// releases (hosts snapshot-test against them).
package charts

// Built-in chart type strings.
const (
	TypeBar         = "bar"
	TypeSpark       = "spark"
	TypeSparkArea   = "spark-area"
	TypeDonut       = "donut"
	TypePareto      = "pareto"
	TypeSplitPareto = "split-pareto"
	TypeDelta       = "delta"
	TypeDumbbell    = "dumbbell"
	TypeHistogram   = "histogram"
)

const (
	// defaultPadBar insets the bar track; generous because bar widgets
	// usually render inline next to text.
	defaultPadBar = 4.0
	// defaultPadSpark / Donut / Column pads for the remaining families.
	defaultPadSpark  = 2.0
	defaultPadDonut  = 2.0
	defaultPadColumn = 2.0

	// defaultMax is the value scale assumed when callers omit max.
	defaultMax = 100.0

	// defaultGap separates columns in pareto/split-pareto/histogram.
	defaultGap = 1.0

	// defaultSplitThreshold is the split-pareto divider position, as a
	// percent of the cumulative scale.
	defaultSplitThreshold = 80.0

	// donutStrokeFrac is the ring thickness as a fraction of the radius.
	donutStrokeFrac = 0.32

	// hoverDimOpacity dims non-hovered segments while one is hovered.
	hoverDimOpacity = 0.45
)
