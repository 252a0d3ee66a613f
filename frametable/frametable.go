// Package frametable reads and writes frame-level feature tables.
//
// The extraction scripts emit headerless CSVs with a per-row marker
// column, a timestamp column in seconds and one column per measured
// value. [Read] discards the marker, names the value columns and fails
// fast on malformed rows; [Write] emits the merged composite table with a
// header row.
package frametable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zeyus-research/isc-playground/timebase"
)

var (
	// ErrNoColumns indicates a read request without value column names.
	ErrNoColumns = errors.New("frametable: at least one value column name is required")
	// ErrNoSuchColumn indicates a lookup of a column the table does not carry.
	ErrNoSuchColumn = errors.New("frametable: no such column")
)

// Column is one named value column aligned to the table timestamps.
type Column struct {
	Name   string
	Values []float64
}

// Table holds frame-level measurements on a shared timebase.
type Table struct {
	Timestamps []float64
	Columns    []Column
}

// Read loads a headerless frame-feature CSV. Each row carries a marker
// field (discarded), a timestamp in seconds and one field per name, in
// order. Rows with a different field count, or non-numeric fields, abort
// the read.
func Read(path string, names ...string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadFrom(f, names...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadFrom reads a frame-feature table from r. See [Read].
func ReadFrom(r io.Reader, names ...string) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(names) + 2
	cr.TrimLeadingSpace = true

	t := &Table{Columns: make([]Column, len(names))}
	for i, name := range names {
		t.Columns[i].Name = name
	}

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		ts, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("frametable: row %d: bad timestamp %q: %w", row, rec[1], err)
		}
		t.Timestamps = append(t.Timestamps, ts)

		for i := range names {
			v, err := strconv.ParseFloat(rec[i+2], 64)
			if err != nil {
				return nil, fmt.Errorf("frametable: row %d: column %q: bad value %q: %w",
					row, names[i], rec[i+2], err)
			}
			t.Columns[i].Values = append(t.Columns[i].Values, v)
		}
	}
	return t, nil
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c.Values, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
}

// Series returns the named column paired with the table timestamps.
func (t *Table) Series(name string) (timebase.Series, error) {
	vals, err := t.Column(name)
	if err != nil {
		return timebase.Series{}, err
	}
	return timebase.Series{Name: name, Timestamps: t.Timestamps, Values: vals}, nil
}

// Validate checks that every column has one value per timestamp and that
// the timebase is usable as an interpolation reference.
func (t *Table) Validate() error {
	if err := timebase.CheckIncreasing(t.Timestamps); err != nil {
		return err
	}
	for _, c := range t.Columns {
		if len(c.Values) != len(t.Timestamps) {
			return fmt.Errorf("frametable: column %q has %d values for %d timestamps",
				c.Name, len(c.Values), len(t.Timestamps))
		}
	}
	return nil
}
