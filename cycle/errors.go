package cycle

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEnoughSamples reports an input shorter than the filter
	// warm-up required by the requested indicator.
	ErrNotEnoughSamples = errors.New("cycle: not enough samples for filter warm-up")

	// ErrInvalidParameter reports an out-of-range caller parameter.
	ErrInvalidParameter = errors.New("cycle: invalid parameter")
)

func validateLength(in []float64, lookback int) error {
	if len(in) < lookback {
		return fmt.Errorf("%w: have %d samples, need at least %d",
			ErrNotEnoughSamples, len(in), lookback)
	}
	return nil
}
