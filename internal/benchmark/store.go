package benchmark

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the fixed column order of every results file.
var Header = []string{"family", "algorithm", "operation", "avg_time_s"}

// EnsureDir creates dir and any missing parents. Existing contents are left
// untouched, so calling it repeatedly is safe.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteCSV persists records to path, replacing any previous file. The data is
// written to a temporary file in the same directory and renamed into place,
// so readers never observe a partially written file.
func WriteCSV(path string, records []Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeCSV(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func encodeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			string(r.Family),
			r.Algorithm,
			string(r.Operation),
			strconv.FormatFloat(r.AvgTimeS, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV loads a results file written by WriteCSV. A header-only file yields
// an empty slice. Any structural problem is reported as a *ParseError.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Line: 1, Err: errors.New("missing header")}
		}
		return nil, &ParseError{Path: path, Line: 1, Err: err}
	}
	for i, col := range Header {
		if header[i] != col {
			return nil, &ParseError{Path: path, Line: 1, Err: fmt.Errorf("column %d is %q, expected %q", i+1, header[i], col)}
		}
	}

	records := []Record{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Err: err}
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	family, err := ParseFamily(row[0])
	if err != nil {
		return Record{}, err
	}
	op, err := ParseOperation(row[2])
	if err != nil {
		return Record{}, err
	}
	avg, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid avg_time_s %q: %w", row[3], err)
	}
	if avg < 0 || math.IsNaN(avg) || math.IsInf(avg, 0) {
		return Record{}, fmt.Errorf("avg_time_s must be a non-negative number, got %q", row[3])
	}
	return Record{Family: family, Algorithm: row[1], Operation: op, AvgTimeS: avg}, nil
}
