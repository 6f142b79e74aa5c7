// SPDX-License-Identifier: MIT
//
// config.go - builder configuration and deterministic defaults.
//
// Defaults:
//   - idFn   = DefaultIDFn        ("0","1","2",...)
//   - costFn = ConstantCost(1)

package builder

// defaultCost is the cost of every edge when no CostFn is configured.
const defaultCost = 1.0

// builderConfig is the single source of truth for all builder knobs.
type builderConfig struct {
	idFn   IDFn
	costFn CostFn
}

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts in order over the defaults (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		costFn: ConstantCost(defaultCost),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex-ID scheme. Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic(ErrOptionViolation.Error() + ": nil IDFn")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithCost sets the edge-cost function. Panics if fn is nil.
func WithCost(fn CostFn) BuilderOption {
	if fn == nil {
		panic(ErrOptionViolation.Error() + ": nil CostFn")
	}

	return func(c *builderConfig) { c.costFn = fn }
}
