package timebase

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/goarima/timeseries"
)

var (
	// ErrInvalidWindow indicates a moving-average window below one sample.
	ErrInvalidWindow = errors.New("timebase: window must be at least one sample")
	// ErrInvalidDuration indicates a non-positive window duration.
	ErrInvalidDuration = errors.New("timebase: duration must be positive")
	// ErrNoInterval indicates too few timestamps to measure a sampling interval.
	ErrNoInterval = errors.New("timebase: at least two timestamps are needed for an interval")
)

// MedianInterval returns the median gap between consecutive timestamps.
// The median rather than the mean keeps dropped frames from skewing the
// estimated sampling interval.
func MedianInterval(ts []float64) (float64, error) {
	if err := CheckIncreasing(ts); err != nil {
		return 0, err
	}
	if len(ts) < 2 {
		return 0, ErrNoInterval
	}
	return timeseries.New(ts).Diff().Median(), nil
}

// WindowForDuration converts a real-world duration in seconds into a
// trailing window length in samples, using the median sampling interval
// so the window spans the same wall-clock time regardless of frame rate.
// The result is never below one sample; a single-sample reference yields
// a window of one.
func WindowForDuration(ts []float64, seconds float64) (int, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("%w (got %v)", ErrInvalidDuration, seconds)
	}
	if err := CheckIncreasing(ts); err != nil {
		return 0, err
	}
	if len(ts) < 2 {
		return 1, nil
	}

	dt, err := MedianInterval(ts)
	if err != nil {
		return 0, err
	}

	window := int(math.Round(seconds / dt))
	if window < 1 {
		window = 1
	}
	return window, nil
}

// MovingAverage returns the trailing mean of values over window samples.
// Rows closer than window to the start average every sample available, so
// the output always has one value per input row. Each row is summed
// directly rather than via a sliding running sum, so the result is the
// exact mean of its window and a window of one reproduces the input.
func MovingAverage(values []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidWindow, window)
	}

	out := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for _, v := range values[start : i+1] {
			sum += v
		}
		out[i] = sum / float64(i+1-start)
	}
	return out, nil
}
