package atrac1

import (
	"github.com/pkg/errors"

	"github.com/mlassila/go-atrac1/internal/alloc"
)

// EncoderOptions configures transient-detection sensitivity and bit
// allocation strategy (spec.md §6).
type EncoderOptions struct {
	TransientThresholdLow  float64
	TransientThresholdMid  float64
	TransientThresholdHigh float64

	// AllocationStrategy selects Strategy A (perceptual SMR, the
	// default) or Strategy B (Lp-RDO) from spec.md §4.9.
	AllocationStrategy alloc.Allocator
}

// DefaultEncoderOptions returns the spec.md-default thresholds
// (1.0/1.5/2.0) with Strategy A bit allocation.
func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{
		TransientThresholdLow:  1.0,
		TransientThresholdMid:  1.5,
		TransientThresholdHigh: 2.0,
		AllocationStrategy:     alloc.PerceptualAllocator{},
	}
}

// Validate checks option ranges, returning ErrInvalidOption wrapped with
// which field failed.
func (o EncoderOptions) Validate() error {
	if o.TransientThresholdLow < 0.01 || o.TransientThresholdLow > 2 {
		return errors.Wrap(ErrInvalidOption, "transientThresholdLow must be in [0.01, 2]")
	}
	if o.TransientThresholdMid < 0.01 || o.TransientThresholdMid > 3 {
		return errors.Wrap(ErrInvalidOption, "transientThresholdMid must be in [0.01, 3]")
	}
	if o.TransientThresholdHigh < 0.01 || o.TransientThresholdHigh > 4 {
		return errors.Wrap(ErrInvalidOption, "transientThresholdHigh must be in [0.01, 4]")
	}
	if o.AllocationStrategy == nil {
		return errors.Wrap(ErrInvalidOption, "allocationStrategy must not be nil")
	}
	return nil
}

// DecoderOptions configures decoder behavior. ATRAC1 decoding has no
// tunable parameters today; the struct exists so the API can grow
// without breaking callers.
type DecoderOptions struct{}

// DefaultDecoderOptions returns the zero-value DecoderOptions.
func DefaultDecoderOptions() DecoderOptions {
	return DecoderOptions{}
}
