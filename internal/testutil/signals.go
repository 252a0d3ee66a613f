// Package testutil provides deterministic test-data generators for
// irregularly sampled time series.
package testutil

import (
	"math"
	"math/rand"
)

// UniformTimestamps returns n strictly increasing timestamps starting at
// start with a fixed step.
func UniformTimestamps(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// JitteredTimestamps returns n strictly increasing timestamps whose steps
// vary around meanStep by up to jitter, reproducibly per seed. The jitter
// is clamped below meanStep so the sequence stays strictly increasing.
func JitteredTimestamps(seed int64, start, meanStep, jitter float64, n int) []float64 {
	if jitter >= meanStep {
		jitter = 0.9 * meanStep
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	t := start
	for i := range out {
		out[i] = t
		t += meanStep + (rng.Float64()*2-1)*jitter
	}
	return out
}

// Ramp returns n values rising linearly from v0 by dv per sample.
func Ramp(v0, dv float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v0 + dv*float64(i)
	}
	return out
}

// DeterministicSine generates a deterministic sine wave sampled at the
// given timestamps.
func DeterministicSine(freqHz, amplitude float64, timestamps []float64) []float64 {
	out := make([]float64, len(timestamps))
	for i, t := range timestamps {
		out[i] = amplitude * math.Sin(2*math.Pi*freqHz*t)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
