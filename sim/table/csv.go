package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadCSV reads a problem table from CSV. Lines starting with '#' are
// comments. Row width is checked by Validate, not by the CSV reader, so a
// ragged row surfaces as a MalformedInputError.
func ReadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var t Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", len(t), err)
		}
		t = append(t, record)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteCSV writes the table as CSV.
func WriteCSV(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	for i, row := range t {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadFile loads a problem table from path. The format is chosen by
// extension: .csv for a raw table, .yaml/.yml for a ProblemSpec.
func LoadFile(path string) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening problem table: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	case ".yaml", ".yml":
		spec, err := LoadProblemSpec(path)
		if err != nil {
			return nil, err
		}
		return spec.Table()
	default:
		return nil, fmt.Errorf("unsupported problem file extension %q (want .csv, .yaml or .yml)", filepath.Ext(path))
	}
}
