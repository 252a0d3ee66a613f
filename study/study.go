// Package study defines the fixed stimulus set of the hyperscanning
// experiment.
//
// Every subject pair watched the same two audiovisual stimuli:
//
//   - StoryCorps_Q&A      (EEG recording code 71)
//   - BangBangYouAreDead  (EEG recording code 72)
//
// The set is closed; [ParseStimulus] rejects anything else.
package study

import (
	"errors"
	"fmt"
)

// ErrUnknownStimulus is returned for stimulus names outside the fixed set.
var ErrUnknownStimulus = errors.New("study: unknown stimulus")

// Stimulus identifies one of the two experiment stimuli.
type Stimulus int

const (
	// StimulusBangBang is the joint "Bang Bang You Are Dead" watching.
	StimulusBangBang Stimulus = iota
	// StimulusStoryCorpsQA is the joint StoryCorps interview watching.
	StimulusStoryCorpsQA
)

// Stimuli returns every stimulus in processing order.
func Stimuli() []Stimulus {
	return []Stimulus{StimulusBangBang, StimulusStoryCorpsQA}
}

// ParseStimulus resolves a stimulus display name.
func ParseStimulus(name string) (Stimulus, error) {
	switch name {
	case "BangBangYouAreDead":
		return StimulusBangBang, nil
	case "StoryCorps_Q&A":
		return StimulusStoryCorpsQA, nil
	}
	return 0, fmt.Errorf("%w: %q (want \"StoryCorps_Q&A\" or \"BangBangYouAreDead\")", ErrUnknownStimulus, name)
}

// String returns the display name used in file names and chart titles.
func (s Stimulus) String() string {
	switch s {
	case StimulusBangBang:
		return "BangBangYouAreDead"
	case StimulusStoryCorpsQA:
		return "StoryCorps_Q&A"
	}
	return fmt.Sprintf("Stimulus(%d)", int(s))
}

// FileBase returns the base name shared by the stimulus' per-frame
// feature CSVs (the serial-trigger export naming convention).
func (s Stimulus) FileBase() string {
	return s.String() + "_SerialTrigInterval-1sec"
}

// EEGFileCode returns the numeric prefix of the stimulus' EEG recordings.
func (s Stimulus) EEGFileCode() int {
	switch s {
	case StimulusStoryCorpsQA:
		return 71
	case StimulusBangBang:
		return 72
	}
	return 0
}
