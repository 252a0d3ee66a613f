package frametable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write emits t as CSV with a "timestamp,<columns...>" header row and one
// row per timestamp.
func Write(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, "timestamp")
	for _, c := range t.Columns {
		header = append(header, c.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(header))
	for i, ts := range t.Timestamps {
		rec[0] = formatValue(ts)
		for j, c := range t.Columns {
			rec[j+1] = formatValue(c.Values[i])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes t to path, creating or truncating the file.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
