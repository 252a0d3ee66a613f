package frametable

import (
	"errors"
	"strings"
	"testing"
)

const luminanceCSV = `frame,0.0,12,100.5,240,0
frame,0.04,14,101.25,239,1.5
frame,0.08,13,99,241,-2.25
`

func TestReadFrom(t *testing.T) {
	tbl, err := ReadFrom(strings.NewReader(luminanceCSV), "min_lum", "mean_lum", "max_lum", "diff_lum")
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}

	if len(tbl.Timestamps) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Timestamps))
	}
	if tbl.Timestamps[1] != 0.04 {
		t.Fatalf("timestamp[1] = %v, want 0.04", tbl.Timestamps[1])
	}

	mean, err := tbl.Column("mean_lum")
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	want := []float64{100.5, 101.25, 99}
	for i := range want {
		if mean[i] != want[i] {
			t.Fatalf("mean_lum[%d] = %v, want %v", i, mean[i], want[i])
		}
	}
}

func TestReadFromWrongFieldCount(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("frame,0.0,1,2\n"), "a", "b", "c")
	if err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestReadFromNonNumericValue(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("frame,0.0,oops\n"), "amp_rms")
	if err == nil || !strings.Contains(err.Error(), "amp_rms") {
		t.Fatalf("error = %v, want value-column context", err)
	}
}

func TestReadFromNoColumnNames(t *testing.T) {
	if _, err := ReadFrom(strings.NewReader(luminanceCSV)); !errors.Is(err, ErrNoColumns) {
		t.Fatalf("error = %v, want ErrNoColumns", err)
	}
}

func TestColumnMissing(t *testing.T) {
	tbl := &Table{Timestamps: []float64{0}, Columns: []Column{{Name: "a", Values: []float64{1}}}}
	if _, err := tbl.Column("b"); !errors.Is(err, ErrNoSuchColumn) {
		t.Fatalf("error = %v, want ErrNoSuchColumn", err)
	}
}

func TestSeries(t *testing.T) {
	tbl := &Table{
		Timestamps: []float64{0, 1},
		Columns:    []Column{{Name: "amp_rms", Values: []float64{-20, -18}}},
	}
	s, err := tbl.Series("amp_rms")
	if err != nil {
		t.Fatalf("Series() error = %v", err)
	}
	if s.Name != "amp_rms" || len(s.Values) != 2 || s.Values[1] != -18 {
		t.Fatalf("unexpected series %+v", s)
	}
}

func TestWrite(t *testing.T) {
	tbl := &Table{
		Timestamps: []float64{0, 0.5},
		Columns: []Column{
			{Name: "mean_lum", Values: []float64{100.5, 99}},
			{Name: "amp_rms", Values: []float64{-20, -18.25}},
		},
	}

	var sb strings.Builder
	if err := Write(&sb, tbl); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "timestamp,mean_lum,amp_rms\n0,100.5,-20\n0.5,99,-18.25\n"
	if sb.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestWriteRejectsRaggedTable(t *testing.T) {
	tbl := &Table{
		Timestamps: []float64{0, 0.5},
		Columns:    []Column{{Name: "a", Values: []float64{1}}},
	}
	var sb strings.Builder
	if err := Write(&sb, tbl); err == nil {
		t.Fatal("expected error for ragged table")
	}
}

func TestValidateUnsortedTimestamps(t *testing.T) {
	tbl := &Table{
		Timestamps: []float64{0, 0.5, 0.5},
		Columns:    []Column{{Name: "a", Values: []float64{1, 2, 3}}},
	}
	if err := tbl.Validate(); err == nil {
		t.Fatal("expected error for duplicate timestamps")
	}
}
