package timebase

import "fmt"

// Interp evaluates s at each reference timestamp using linear
// interpolation between the two bracketing samples. Reference points
// before the first sample or after the last take the nearest endpoint
// value. Flat extrapolation is a deliberate policy: a secondary series
// covering a narrower range than the reference yields clamped values,
// never NaN.
//
// The output always has one value per reference timestamp, in reference
// order.
func Interp(ref []float64, s Series) ([]float64, error) {
	if err := CheckIncreasing(ref); err != nil {
		return nil, fmt.Errorf("reference timestamps: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(ref))
	last := len(s.Timestamps) - 1

	// ref is sorted, so the bracket index only moves forward.
	j := 0
	for i, t := range ref {
		switch {
		case t <= s.Timestamps[0]:
			out[i] = s.Values[0]
		case t >= s.Timestamps[last]:
			out[i] = s.Values[last]
		default:
			for s.Timestamps[j+1] < t {
				j++
			}
			if s.Timestamps[j+1] == t {
				// Exact hit: return the sample itself rather than the
				// arithmetically reconstructed value.
				out[i] = s.Values[j+1]
				continue
			}
			t0, t1 := s.Timestamps[j], s.Timestamps[j+1]
			frac := (t - t0) / (t1 - t0)
			out[i] = s.Values[j] + frac*(s.Values[j+1]-s.Values[j])
		}
	}
	return out, nil
}
