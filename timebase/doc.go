// Package timebase aligns independently sampled time series onto one
// reference timestamp sequence.
//
// The stimulus feature extractors each run on their own clock: luminance
// at the video frame rate, amplitude and loudness on the audio analysis
// hop. [Interp] resamples a secondary series onto the reference
// timestamps with linear interpolation, clamping to the endpoint values
// outside the sampled range (flat extrapolation). [WindowForDuration] and
// [MovingAverage] derive trailing aggregates whose window corresponds to
// a fixed real-world duration rather than a fixed row count.
//
// All functions are pure; inputs are validated up front since
// interpolation correctness depends on strictly increasing timestamps.
package timebase
