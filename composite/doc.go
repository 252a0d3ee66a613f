// Package composite fuses per-frame luminance, audio amplitude and
// loudness measurements of a stimulus video into one time-aligned table
// and chart.
//
// The luminance trace defines the reference timebase. Amplitude and
// loudness, sampled on their own clocks, are linearly interpolated onto
// it, merged by the shared timestamps and written out as one CSV and one
// three-panel PNG per stimulus. A failure on one stimulus does not stop
// the others.
package composite
