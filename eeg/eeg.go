// Package eeg loads subject EEG recordings from the hyperscanning study.
//
// Recordings are 32-channel, 250 Hz EDF files named
//
//	<code>_HS1<subject>_<stimulus>.edf
//
// where code 71 is the StoryCorps_Q&A session and 72 the
// BangBangYouAreDead session. Four electrodes capture eye movement rather
// than brain signal; they are tagged as EOG on load so downstream
// artifact handling can tell them apart.
package eeg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/OpenPSG/edf"

	"github.com/zeyus-research/isc-playground/study"
)

// ErrUnknownChannel is returned when addressing a label absent from the
// recording montage.
var ErrUnknownChannel = errors.New("eeg: unknown channel label")

// ChannelType classifies a recording channel.
type ChannelType string

const (
	// ChannelEEG is a scalp electrode capturing brain signal.
	ChannelEEG ChannelType = "eeg"
	// ChannelEOG is a periocular electrode capturing eye movement.
	ChannelEOG ChannelType = "eog"
)

// EOGChannels are the electro-oculogram electrodes of the study montage:
// horizontal left/right and vertical above/below the eye.
var EOGChannels = []string{"HL_EOG", "HR_EOG", "VA_EOG", "VB_EOG"}

// Channel describes one channel of a loaded recording.
type Channel struct {
	Label      string
	Type       ChannelType
	SampleRate float64 // Hz
	Samples    int     // total samples in the recording
}

// Recording is an open EEG recording with channel typing applied.
// Close it when done.
type Recording struct {
	Path     string
	Subject  int
	Stimulus study.Stimulus
	Channels []Channel

	file   *os.File
	reader *edf.Reader
}

// RecordingPath resolves the study file-naming convention for one subject
// and stimulus.
func RecordingPath(dataDir string, subjectID int, stim study.Stimulus) string {
	name := fmt.Sprintf("%d_HS1%02d_%s.edf", stim.EEGFileCode(), subjectID, stim)
	return filepath.Join(dataDir, name)
}

// Load opens the recording for one subject and stimulus and tags the four
// EOG electrodes. Every EOG label must be present in the file; the naming
// conventions are hand curated, so a mismatch is surfaced rather than
// skipped.
func Load(dataDir string, subjectID int, stim study.Stimulus) (*Recording, error) {
	path := RecordingPath(dataDir, subjectID, stim)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	meta, err := readSignalMeta(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	reader, err := edf.Open(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rec := &Recording{
		Path:     path,
		Subject:  subjectID,
		Stimulus: stim,
		Channels: make([]Channel, len(meta.labels)),
		file:     f,
		reader:   reader,
	}
	for i, label := range meta.labels {
		rec.Channels[i] = Channel{
			Label:      label,
			Type:       ChannelEEG,
			SampleRate: float64(meta.samplesPerRecord[i]) / meta.recordDuration.Seconds(),
			Samples:    meta.samplesPerRecord[i] * meta.dataRecords,
		}
	}

	types := make(map[string]ChannelType, len(EOGChannels))
	for _, label := range EOGChannels {
		types[label] = ChannelEOG
	}
	if err := rec.SetChannelTypes(types); err != nil {
		rec.Close()
		return nil, err
	}
	return rec, nil
}

// Channel returns the channel description for a label.
func (r *Recording) Channel(label string) (Channel, bool) {
	idx := r.channelIndex(label)
	if idx < 0 {
		return Channel{}, false
	}
	return r.Channels[idx], true
}

// SetChannelTypes retags channels by label. Every label must exist in the
// recording.
func (r *Recording) SetChannelTypes(types map[string]ChannelType) error {
	for label, typ := range types {
		idx := r.channelIndex(label)
		if idx < 0 {
			return fmt.Errorf("%w: %q in %s", ErrUnknownChannel, label, r.Path)
		}
		r.Channels[idx].Type = typ
	}
	return nil
}

// Data reads the full physical-unit sample sequence of one channel.
func (r *Recording) Data(label string) ([]float64, error) {
	idx := r.channelIndex(label)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownChannel, label, r.Path)
	}

	sr, err := r.reader.Signal(idx)
	if err != nil {
		return nil, fmt.Errorf("%s: channel %q: %w", r.Path, label, err)
	}

	out := make([]float64, r.Channels[idx].Samples)
	n, err := sr.Read(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: channel %q: %w", r.Path, label, err)
	}
	return out[:n], nil
}

// Close releases the underlying file.
func (r *Recording) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *Recording) channelIndex(label string) int {
	for i, ch := range r.Channels {
		if ch.Label == label {
			return i
		}
	}
	return -1
}
