package study

import (
	"errors"
	"testing"
)

func TestParseStimulusRoundTrip(t *testing.T) {
	for _, stim := range Stimuli() {
		got, err := ParseStimulus(stim.String())
		if err != nil {
			t.Fatalf("ParseStimulus(%q) error = %v", stim, err)
		}
		if got != stim {
			t.Fatalf("ParseStimulus(%q) = %v, want %v", stim, got, stim)
		}
	}
}

func TestParseStimulusUnknown(t *testing.T) {
	for _, name := range []string{"", "storycorps_q&a", "BangBang", "StoryCorps_QA"} {
		if _, err := ParseStimulus(name); !errors.Is(err, ErrUnknownStimulus) {
			t.Fatalf("ParseStimulus(%q) error = %v, want ErrUnknownStimulus", name, err)
		}
	}
}

func TestEEGFileCodes(t *testing.T) {
	if got := StimulusStoryCorpsQA.EEGFileCode(); got != 71 {
		t.Fatalf("StoryCorps code = %d, want 71", got)
	}
	if got := StimulusBangBang.EEGFileCode(); got != 72 {
		t.Fatalf("BangBang code = %d, want 72", got)
	}
}

func TestFileBase(t *testing.T) {
	want := "StoryCorps_Q&A_SerialTrigInterval-1sec"
	if got := StimulusStoryCorpsQA.FileBase(); got != want {
		t.Fatalf("FileBase() = %q, want %q", got, want)
	}
}
