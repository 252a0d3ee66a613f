// Command compositefeatures fuses the per-frame luminance, audio
// amplitude and loudness measurements of each study stimulus into one
// time-aligned table and chart.
//
// Usage:
//
//	compositefeatures -data <dir> [flags]
//
// The luminance trace defines the reference timebase; amplitude and
// loudness are linearly interpolated onto it. One CSV and one PNG are
// written per stimulus; a failure on one stimulus does not stop the
// others.
//
// Examples:
//
//	compositefeatures -data ./stimuli
//	compositefeatures -data ./stimuli -out ./results -window 10
//	compositefeatures -data ./stimuli -chartcfg chart.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeyus-research/isc-playground/composite"
	"github.com/zeyus-research/isc-playground/study"
)

func main() {
	dataDir := flag.String("data", "", "directory containing the per-stimulus feature CSVs (required)")
	outDir := flag.String("out", "./out", "directory for composite tables and charts (created if absent)")
	window := flag.Float64("window", 5, "moving-average span in seconds")
	chartCfg := flag.String("chartcfg", "", "optional YAML chart configuration file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: compositefeatures -data <dir> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Builds one composite frame-level table and chart per stimulus.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *dataDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := []composite.Option{composite.WithWindowDuration(*window)}
	if *chartCfg != "" {
		cfg, err := composite.LoadChartConfig(*chartCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, composite.WithChartConfig(cfg))
	}

	b := composite.NewBuilder(*dataDir, *outDir, opts...)

	failed := false
	for _, stim := range study.Stimuli() {
		rep, err := b.Process(stim)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", stim, err)
			failed = true
			continue
		}
		fmt.Printf("Saved composite frame-level analysis to %s\n", rep.CSVPath)
		fmt.Printf("Saved plot to %s\n", rep.ChartPath)
	}
	if failed {
		os.Exit(1)
	}
}
