// Package: vizmark/compute
//
// options.go — functional options resolved into an immutable per-call
// configuration (no global state, no per-request registry mutation).
package compute

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/vizmark/charts"
	"github.com/katalvlaran/vizmark/model"
)

// Option configures one compute call.
type Option func(*config)

type config struct {
	theme    model.Theme
	state    model.State
	registry *charts.Registry
	logger   *zap.Logger
}

// resolveConfig folds options over the defaults: empty theme, neutral
// state, the built-in registry, and a no-op logger.
func resolveConfig(opts []Option) config {
	cfg := config{
		state:    model.NoState(),
		registry: charts.Builtin(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithTheme supplies the caller's colors; the pipeline never invents any.
func WithTheme(t model.Theme) Option {
	return func(c *config) { c.theme = t }
}

// WithState passes transient interaction state (hover/selection) through
// to the chart definition.
func WithState(s model.State) Option {
	return func(c *config) { c.state = s }
}

// WithRegistry swaps the chart-definition registry, e.g. to add custom
// chart types. A nil registry is ignored (the built-in one stays).
func WithRegistry(r *charts.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithLogger installs a structured logger for pipeline tracing. The
// default is zap.NewNop(); nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
