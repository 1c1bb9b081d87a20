package bench

import (
	"numbench/blackbox"
	"numbench/constants"
	"numbench/utils"
)

// config collects declaration options. It is resolved once per case.
type config struct {
	bits int
	seed uint64
	sink any // blackbox.Barrier[R] for the case's result type, or nil
}

// Option customises a case at declaration.
type Option func(*config)

func defaultConfig() config {
	return config{
		bits: constants.CorpusBits,
		seed: constants.DefaultSeed,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bits < constants.MinCorpusBits || cfg.bits > constants.MaxCorpusBits {
		panic("bench: corpus bits " + utils.Itoa(cfg.bits) + " outside [" +
			utils.Itoa(constants.MinCorpusBits) + ", " + utils.Itoa(constants.MaxCorpusBits) + "]")
	}
	return cfg
}

// WithBits sets the corpus length to 2^bits.
func WithBits(bits int) Option {
	return func(c *config) { c.bits = bits }
}

// WithSeed sets the generator seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithSink replaces the default barrier. The sink must accept exactly the
// case's result type; for UnaryOpInPlace that is a pointer to the operand.
// A mismatch panics when the case is declared.
func WithSink[R any](sink func(R)) Option {
	return func(c *config) { c.sink = blackbox.Barrier[R](sink) }
}
