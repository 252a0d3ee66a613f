package timebase

import (
	"errors"
	"fmt"
)

// Input shape errors. Interpolation never runs on inputs that fail these.
var (
	// ErrEmptySeries indicates a series with no samples.
	ErrEmptySeries = errors.New("timebase: series has no samples")
	// ErrNotIncreasing indicates timestamps that are not strictly increasing.
	ErrNotIncreasing = errors.New("timebase: timestamps must be strictly increasing")
	// ErrLengthMismatch indicates differing timestamp and value counts.
	ErrLengthMismatch = errors.New("timebase: timestamp and value counts differ")
)

// Series is one measured quantity sampled on its own clock.
type Series struct {
	Name       string
	Timestamps []float64 // seconds, strictly increasing
	Values     []float64 // one value per timestamp
}

// Validate checks the shape invariants interpolation depends on.
func (s Series) Validate() error {
	if len(s.Values) != len(s.Timestamps) {
		return fmt.Errorf("%w (series %q: %d timestamps, %d values)",
			ErrLengthMismatch, s.Name, len(s.Timestamps), len(s.Values))
	}
	if err := CheckIncreasing(s.Timestamps); err != nil {
		return fmt.Errorf("series %q: %w", s.Name, err)
	}
	return nil
}

// CheckIncreasing verifies ts is non-empty and strictly increasing.
func CheckIncreasing(ts []float64) error {
	if len(ts) == 0 {
		return ErrEmptySeries
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return fmt.Errorf("%w (index %d: %v follows %v)", ErrNotIncreasing, i, ts[i], ts[i-1])
		}
	}
	return nil
}
