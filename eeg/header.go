package eeg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// EDF header geometry: a 256-byte fixed block followed by fixed-width
// ASCII tables, one entry per signal.
const (
	fixedHeaderBytes = 256
	labelBytes       = 16
	// Bytes per signal across the tables between the labels and the
	// samples-per-record table: transducer (80), dimension (8), physical
	// min/max (8+8), digital min/max (8+8), prefiltering (80).
	skippedTableBytes = 80 + 8 + 8 + 8 + 8 + 8 + 80
)

// signalMeta is the slice of the EDF header the loader needs for channel
// typing and rate bookkeeping. The edf reader keeps its parsed header to
// itself, so the fields are decoded here from the fixed-width layout.
type signalMeta struct {
	dataRecords      int
	recordDuration   time.Duration
	labels           []string
	samplesPerRecord []int
}

func readSignalMeta(r io.ReadSeeker) (*signalMeta, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	fixed := make([]byte, fixedHeaderBytes)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("eeg: reading edf header: %w", err)
	}

	meta := &signalMeta{}

	var err error
	meta.dataRecords, err = strconv.Atoi(strings.TrimSpace(string(fixed[236:244])))
	if err != nil {
		return nil, fmt.Errorf("eeg: parsing data record count: %w", err)
	}

	durSec, err := strconv.ParseFloat(strings.TrimSpace(string(fixed[244:252])), 64)
	if err != nil {
		return nil, fmt.Errorf("eeg: parsing record duration: %w", err)
	}
	if durSec <= 0 {
		return nil, fmt.Errorf("eeg: invalid record duration %v", durSec)
	}
	meta.recordDuration = time.Duration(durSec * float64(time.Second))

	ns, err := strconv.Atoi(strings.TrimSpace(string(fixed[252:256])))
	if err != nil {
		return nil, fmt.Errorf("eeg: parsing signal count: %w", err)
	}
	if ns <= 0 {
		return nil, fmt.Errorf("eeg: header reports %d signals", ns)
	}

	labels := make([]byte, ns*labelBytes)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("eeg: reading signal labels: %w", err)
	}
	meta.labels = make([]string, ns)
	for i := range ns {
		meta.labels[i] = strings.TrimSpace(string(labels[i*labelBytes : (i+1)*labelBytes]))
	}

	sprOffset := int64(fixedHeaderBytes + ns*(labelBytes+skippedTableBytes))
	if _, err := r.Seek(sprOffset, io.SeekStart); err != nil {
		return nil, err
	}
	spr := make([]byte, ns*8)
	if _, err := io.ReadFull(r, spr); err != nil {
		return nil, fmt.Errorf("eeg: reading samples-per-record table: %w", err)
	}
	meta.samplesPerRecord = make([]int, ns)
	for i := range ns {
		meta.samplesPerRecord[i], err = strconv.Atoi(strings.TrimSpace(string(spr[i*8 : (i+1)*8])))
		if err != nil {
			return nil, fmt.Errorf("eeg: parsing samples per record: %w", err)
		}
	}

	// Leave the reader positioned for a full header parse by the caller.
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return meta, nil
}
