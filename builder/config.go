// File: config.go
// Role: builderConfig and its functional options, adapted from the
// teacher's builder/config.go — same shape (a config struct plus an
// ordered slice of mutating options), narrowed to this domain's actual
// knobs: a seeded RNG for constructors that want deterministic "random"
// fixtures, and a starting EvalContext time for time-varying ones.

package builder

import "math/rand"

// BuilderOption customizes a Constructor run by mutating a builderConfig
// before any constructor executes. Later options override earlier ones.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the resolved, immutable-once-built settings every
// Constructor in a BuildGraph call shares.
type builderConfig struct {
	rng       *rand.Rand
	startTime float64
}

// newBuilderConfig returns defaults (no RNG, startTime 0) with every opt
// applied in order.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithSeed seeds a deterministic RNG for constructors that draw "random"
// fixture values (e.g. RandomSumFixture); the same seed always produces
// the same graph.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithStartTime sets the initial EvalContext.Time a time-varying
// constructor (e.g. one wiring SineWave) should assume its graph begins
// at, when it needs to pre-seed a sample.
func WithStartTime(t float64) BuilderOption {
	return func(cfg *builderConfig) { cfg.startTime = t }
}

// rand returns cfg's RNG, lazily defaulting to a source seeded with 1 so a
// constructor that needs randomness never panics on a nil *rand.Rand;
// WithSeed selects a different seed.
func (cfg *builderConfig) rand() *rand.Rand {
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}
	return cfg.rng
}
