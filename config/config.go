// Package config loads CLI-facing codec configuration from YAML,
// mapping onto atrac1.EncoderOptions.
package config

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	atrac1 "github.com/mlassila/go-atrac1"
	"github.com/mlassila/go-atrac1/internal/alloc"
)

// Config is the on-disk YAML shape for encoder tuning.
type Config struct {
	TransientThresholdLow  float64 `yaml:"transient_threshold_low"`
	TransientThresholdMid  float64 `yaml:"transient_threshold_mid"`
	TransientThresholdHigh float64 `yaml:"transient_threshold_high"`
	AllocationStrategy     string  `yaml:"allocation_strategy"` // "perceptual" or "lp-rdo"
}

// Default returns a Config mirroring atrac1.DefaultEncoderOptions.
func Default() Config {
	return Config{
		TransientThresholdLow:  1.0,
		TransientThresholdMid:  1.5,
		TransientThresholdHigh: 2.0,
		AllocationStrategy:     "perceptual",
	}
}

// Load reads and parses a YAML config document.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config: parse yaml")
	}
	return cfg, nil
}

// EncoderOptions converts Config into atrac1.EncoderOptions, returning
// atrac1.ErrInvalidOption if AllocationStrategy names an unknown
// strategy.
func (c Config) EncoderOptions() (atrac1.EncoderOptions, error) {
	var strategy alloc.Allocator
	switch c.AllocationStrategy {
	case "", "perceptual":
		strategy = alloc.PerceptualAllocator{}
	case "lp-rdo":
		strategy = alloc.LpRDOAllocator{}
	default:
		return atrac1.EncoderOptions{}, errors.Wrapf(atrac1.ErrInvalidOption, "unknown allocation_strategy %q", c.AllocationStrategy)
	}
	return atrac1.EncoderOptions{
		TransientThresholdLow:  c.TransientThresholdLow,
		TransientThresholdMid:  c.TransientThresholdMid,
		TransientThresholdHigh: c.TransientThresholdHigh,
		AllocationStrategy:     strategy,
	}, nil
}
