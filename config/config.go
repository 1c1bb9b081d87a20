// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: config.go — Runner configuration
//
// Purpose:
//   - Loads the YAML file that tells the runner which cases to measure and
//     how large and how seeded their corpora are.
//
// Notes:
//   - Missing keys keep their defaults from constants
//   - Validation happens once, before any case is declared
// ─────────────────────────────────────────────────────────────────────────────

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"numbench/bench"
	"numbench/constants"
)

// Config drives one runner invocation.
type Config struct {
	Bits      int      `yaml:"bits"`
	Seed      uint64   `yaml:"seed"`
	Benchtime string   `yaml:"benchtime"`
	Include   []string `yaml:"include"`
	CPU       int      `yaml:"cpu"`
	DisableGC bool     `yaml:"disable_gc"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Bits:      constants.CorpusBits,
		Seed:      constants.DefaultSeed,
		Benchtime: constants.DefaultBenchtime,
		CPU:       constants.NoPin,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(raw []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Bits < constants.MinCorpusBits || c.Bits > constants.MaxCorpusBits {
		return fmt.Errorf("bits %d outside [%d, %d]", c.Bits, constants.MinCorpusBits, constants.MaxCorpusBits)
	}
	if err := checkBenchtime(c.Benchtime); err != nil {
		return err
	}
	if c.CPU < constants.NoPin {
		return fmt.Errorf("cpu %d: use %d to disable pinning", c.CPU, constants.NoPin)
	}
	if _, err := c.Patterns(); err != nil {
		return err
	}
	return nil
}

// checkBenchtime accepts the two forms the testing driver understands:
// a duration ("500ms") or an iteration count ("10000x").
func checkBenchtime(s string) error {
	if n := len(s); n > 1 && s[n-1] == 'x' {
		if count, err := strconv.Atoi(s[:n-1]); err != nil || count <= 0 {
			return fmt.Errorf("benchtime %q: invalid iteration count", s)
		}
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("benchtime %q: %w", s, err)
	}
	if d <= 0 {
		return fmt.Errorf("benchtime %q: must be positive", s)
	}
	return nil
}

// Patterns compiles Include.
func (c *Config) Patterns() ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(c.Include))
	for _, p := range c.Include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("include %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Options converts the corpus settings into declaration options.
func (c *Config) Options() []bench.Option {
	return []bench.Option{bench.WithBits(c.Bits), bench.WithSeed(c.Seed)}
}
