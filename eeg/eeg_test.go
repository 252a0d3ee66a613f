package eeg_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeyus-research/isc-playground/eeg"
	"github.com/zeyus-research/isc-playground/study"
)

var testLabels = []string{"Fp1", "Fz", "Cz", "HL_EOG", "HR_EOG", "VA_EOG", "VB_EOG"}

// writeRecording writes a small synthetic EDF recording for one subject
// and stimulus: two one-second data records at 250 Hz per channel, with
// the Cz channel carrying a ramp.
func writeRecording(t *testing.T, dir string, subjectID int, stim study.Stimulus) string {
	t.Helper()

	path := eeg.RecordingPath(dir, subjectID, stim)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)

	signals := make([]edf.Signal, len(testLabels))
	for i, label := range testLabels {
		signals[i] = edf.Signal{
			Label:             label,
			TransducerType:    "AgAgCl electrode",
			PhysicalDimension: "uV",
			PhysicalMin:       -500,
			PhysicalMax:       500,
			DigitalMin:        -2048,
			DigitalMax:        2047,
			SamplesPerRecord:  250,
		}
	}

	hdr := edf.Header{
		Version:            edf.Version0,
		PatientID:          "HS1 pair",
		RecordingID:        stim.String(),
		StartTime:          time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		DataRecordDuration: time.Second,
		SignalCount:        len(signals),
		Signals:            signals,
	}

	ew, err := edf.Create(f, hdr)
	require.NoError(t, err)

	for rec := range 2 {
		record := make([][]float64, len(testLabels))
		for i := range testLabels {
			record[i] = make([]float64, 250)
			for k := range record[i] {
				if testLabels[i] == "Cz" {
					record[i][k] = float64(rec*250+k) * 0.5
				}
			}
		}
		require.NoError(t, ew.WriteRecord(record))
	}

	require.NoError(t, ew.Close())
	require.NoError(t, f.Close())
	return path
}

func TestLoadTagsEOGChannels(t *testing.T) {
	dir := t.TempDir()
	writeRecording(t, dir, 1, study.StimulusStoryCorpsQA)

	rec, err := eeg.Load(dir, 1, study.StimulusStoryCorpsQA)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, rec.Close())
	})

	require.Len(t, rec.Channels, len(testLabels))

	for _, label := range eeg.EOGChannels {
		ch, ok := rec.Channel(label)
		require.True(t, ok, "channel %s missing", label)
		assert.Equal(t, eeg.ChannelEOG, ch.Type, "channel %s", label)
	}
	for _, label := range []string{"Fp1", "Fz", "Cz"} {
		ch, ok := rec.Channel(label)
		require.True(t, ok)
		assert.Equal(t, eeg.ChannelEEG, ch.Type, "channel %s", label)
	}
}

func TestLoadChannelMetadata(t *testing.T) {
	dir := t.TempDir()
	writeRecording(t, dir, 4, study.StimulusBangBang)

	rec, err := eeg.Load(dir, 4, study.StimulusBangBang)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, rec.Close())
	})

	ch, ok := rec.Channel("Fz")
	require.True(t, ok)
	assert.Equal(t, 250.0, ch.SampleRate)
	assert.Equal(t, 500, ch.Samples)
}

func TestRecordingData(t *testing.T) {
	dir := t.TempDir()
	writeRecording(t, dir, 2, study.StimulusBangBang)

	rec, err := eeg.Load(dir, 2, study.StimulusBangBang)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, rec.Close())
	})

	data, err := rec.Data("Cz")
	require.NoError(t, err)
	require.Len(t, data, 500)

	// 1000 uV over 4096 digital steps, so ~0.25 uV quantization.
	assert.InDelta(t, 0.0, data[0], 0.5)
	assert.InDelta(t, 62.5, data[125], 0.5)
	assert.InDelta(t, 249.5, data[499], 0.5)
}

func TestRecordingDataUnknownChannel(t *testing.T) {
	dir := t.TempDir()
	writeRecording(t, dir, 2, study.StimulusBangBang)

	rec, err := eeg.Load(dir, 2, study.StimulusBangBang)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, rec.Close())
	})

	_, err = rec.Data("Pz")
	assert.ErrorIs(t, err, eeg.ErrUnknownChannel)
}

func TestLoadMissingRecording(t *testing.T) {
	_, err := eeg.Load(t.TempDir(), 9, study.StimulusStoryCorpsQA)
	assert.True(t, errors.Is(err, os.ErrNotExist), "error = %v, want not-exist", err)
}

func TestRecordingPathConvention(t *testing.T) {
	got := eeg.RecordingPath("data", 3, study.StimulusStoryCorpsQA)
	assert.Equal(t, filepath.Join("data", "71_HS103_StoryCorps_Q&A.edf"), got)

	got = eeg.RecordingPath("data", 12, study.StimulusBangBang)
	assert.Equal(t, filepath.Join("data", "72_HS112_BangBangYouAreDead.edf"), got)
}
