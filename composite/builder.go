package composite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeyus-research/isc-playground/frametable"
	"github.com/zeyus-research/isc-playground/study"
	"github.com/zeyus-research/isc-playground/timebase"
)

// Feature CSV suffixes produced by the extraction scripts.
const (
	luminanceSuffix = "-luminance.csv"
	amplitudeSuffix = "-amplitude.csv"
	loudnessSuffix  = "-loudness(EBUR128,LUFS).csv"
)

// Value columns per input file, in extraction order.
var (
	luminanceColumns = []string{"min_lum", "mean_lum", "max_lum", "diff_lum"}
	amplitudeColumns = []string{"amp_rms", "amp_peak"}
	loudnessColumns  = []string{"ebu_r128_M"}
)

// Builder produces one composite table and chart per stimulus.
type Builder struct {
	dataDir string
	outDir  string
	cfg     Config
}

// NewBuilder creates a builder reading feature CSVs from dataDir and
// writing artifacts to outDir (created on first use).
func NewBuilder(dataDir, outDir string, opts ...Option) *Builder {
	return &Builder{
		dataDir: dataDir,
		outDir:  outDir,
		cfg:     ApplyOptions(opts...),
	}
}

// Report records the artifacts written for one stimulus.
type Report struct {
	Stimulus  study.Stimulus
	Table     *frametable.Table
	Window    int // moving-average window in samples
	CSVPath   string
	ChartPath string
}

// Run processes every stimulus. A failure on one stimulus does not stop
// the others; all failures are joined into the returned error.
func (b *Builder) Run() error {
	var errs []error
	for _, stim := range study.Stimuli() {
		if _, err := b.Process(stim); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", stim, err))
		}
	}
	return errors.Join(errs...)
}

// Process builds the composite table for one stimulus and writes its CSV
// and chart. The luminance file provides the reference timebase; the
// amplitude and loudness files are resampled onto it, so the output has
// exactly one row per video frame.
func (b *Builder) Process(stim study.Stimulus) (*Report, error) {
	base := stim.FileBase()

	lum, err := frametable.Read(filepath.Join(b.dataDir, base+luminanceSuffix), luminanceColumns...)
	if err != nil {
		return nil, err
	}
	if err := lum.Validate(); err != nil {
		return nil, fmt.Errorf("reference timebase: %w", err)
	}
	ref := lum.Timestamps

	table := &frametable.Table{Timestamps: ref, Columns: lum.Columns}

	secondaries := []struct {
		suffix string
		names  []string
	}{
		{amplitudeSuffix, amplitudeColumns},
		{loudnessSuffix, loudnessColumns},
	}
	for _, sec := range secondaries {
		t, err := frametable.Read(filepath.Join(b.dataDir, base+sec.suffix), sec.names...)
		if err != nil {
			return nil, err
		}
		for _, name := range sec.names {
			s, err := t.Series(name)
			if err != nil {
				return nil, err
			}
			vals, err := timebase.Interp(ref, s)
			if err != nil {
				return nil, err
			}
			table.Columns = append(table.Columns, frametable.Column{Name: name, Values: vals})
		}
	}

	window, err := timebase.WindowForDuration(ref, b.cfg.WindowDuration)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(b.outDir, 0o755); err != nil {
		return nil, err
	}

	rep := &Report{
		Stimulus:  stim,
		Table:     table,
		Window:    window,
		CSVPath:   filepath.Join(b.outDir, stim.String()+"_composite_frame_level_analysis.csv"),
		ChartPath: filepath.Join(b.outDir, stim.String()+"_composite_time_series.png"),
	}

	if err := frametable.WriteFile(rep.CSVPath, table); err != nil {
		return nil, err
	}
	if err := renderChart(rep.ChartPath, b.cfg, stim, table, window); err != nil {
		return nil, err
	}
	return rep, nil
}
