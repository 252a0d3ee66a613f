// Command eeginfo prints channel information for one subject's EEG
// recording.
//
// Usage:
//
//	eeginfo -data <dir> -subject <id> [-stimulus <name>]
//
// Examples:
//
//	eeginfo -data ./data -subject 1
//	eeginfo -data ./data -subject 4 -stimulus BangBangYouAreDead
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/zeyus-research/isc-playground/eeg"
	"github.com/zeyus-research/isc-playground/study"
)

func main() {
	dataDir := flag.String("data", "data", "directory containing the EEG recordings")
	subject := flag.Int("subject", 0, "subject identifier (required)")
	stimName := flag.String("stimulus", "StoryCorps_Q&A", "stimulus name (StoryCorps_Q&A or BangBangYouAreDead)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eeginfo -data <dir> -subject <id> [-stimulus <name>]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the channel table of one subject's EEG recording.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *subject <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	stim, err := study.ParseStimulus(*stimName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rec, err := eeg.Load(*dataDir, *subject, stim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer rec.Close()

	fmt.Printf("Subject %d - %s (%s)\n\n", *subject, stim, rec.Path)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\tType\tRate [Hz]\tSamples\n")
	fmt.Fprintf(tw, "-------\t----\t---------\t-------\n")
	for _, ch := range rec.Channels {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%d\n", ch.Label, ch.Type, ch.SampleRate, ch.Samples)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
