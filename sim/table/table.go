// Package table reads job-shop problem tables into the rectangular layout the
// simulation engine consumes.
//
// Row 0 is the header: columns 0 and 1 are labels, columns 2.. name the
// machines. Every following row names a job (column 0, blank = same job as the
// previous row), an operation (column 1), and the integer processing duration
// of that operation on each machine, in header order.
//
// This package has no dependencies on sim/ so both the engine and the CLI can
// import it.
package table

import (
	"strconv"
	"strings"
)

// FirstMachineColumn is the index of the first machine column in every row.
const FirstMachineColumn = 2

// Table is a raw problem table. Cells are kept as text; durations are parsed
// by Durations so the error can point at the offending cell.
type Table [][]string

// MachineNames returns the machine names from the header row, in column order.
// Returns nil for an empty table.
func (t Table) MachineNames() []string {
	if len(t) == 0 || len(t[0]) <= FirstMachineColumn {
		return nil
	}
	names := make([]string, 0, len(t[0])-FirstMachineColumn)
	for _, cell := range t[0][FirstMachineColumn:] {
		names = append(names, strings.TrimSpace(cell))
	}
	return names
}

// Rows returns the data rows (everything after the header).
func (t Table) Rows() [][]string {
	if len(t) <= 1 {
		return nil
	}
	return t[1:]
}

// JobName returns the job cell of data row i (0-based over Rows), trimmed.
// An empty result means "same job as the previous row".
func (t Table) JobName(i int) string {
	return strings.TrimSpace(t.Rows()[i][0])
}

// StartsJob reports whether data row i opens a new job. A blank job cell, or
// one repeating the name of the job in progress, continues that job.
func (t Table) StartsJob(i int) bool {
	name := t.JobName(i)
	if name == "" {
		return false
	}
	for k := i - 1; k >= 0; k-- {
		if prev := t.JobName(k); prev != "" {
			return prev != name
		}
	}
	return true
}

// OperationName returns the operation cell of data row i, trimmed.
func (t Table) OperationName(i int) string {
	return strings.TrimSpace(t.Rows()[i][1])
}

// Durations parses the machine columns of data row i.
func (t Table) Durations(i int) ([]int, error) {
	row := t.Rows()[i]
	durations := make([]int, 0, len(row)-FirstMachineColumn)
	for j := FirstMachineColumn; j < len(row); j++ {
		cell := strings.TrimSpace(row[j])
		d, err := strconv.Atoi(cell)
		if err != nil {
			return nil, &MalformedInputError{Row: i + 1, Col: j, Reason: "duration " + strconv.Quote(cell) + " is not an integer", Err: err}
		}
		if d < 0 {
			return nil, &MalformedInputError{Row: i + 1, Col: j, Reason: "duration " + cell + " is negative"}
		}
		durations = append(durations, d)
	}
	return durations, nil
}

// Validate checks the structural contract: a header with at least one machine,
// rectangular rows, a job name on the first data row, operation names on every
// row and integer, non-negative durations.
func (t Table) Validate() error {
	if len(t) == 0 {
		return &MalformedInputError{Row: 0, Col: 0, Reason: "table is empty"}
	}
	width := len(t[0])
	if width <= FirstMachineColumn {
		return &MalformedInputError{Row: 0, Col: width, Reason: "header names no machines"}
	}
	for j, name := range t.MachineNames() {
		if name == "" {
			return &MalformedInputError{Row: 0, Col: j + FirstMachineColumn, Reason: "blank machine name"}
		}
	}
	for i, row := range t.Rows() {
		if len(row) != width {
			return &MalformedInputError{Row: i + 1, Col: len(row),
				Reason: "row has " + strconv.Itoa(len(row)) + " cells, header has " + strconv.Itoa(width)}
		}
		if i == 0 && t.JobName(0) == "" {
			return &MalformedInputError{Row: 1, Col: 0, Reason: "first row has no job name to continue"}
		}
		if t.OperationName(i) == "" {
			return &MalformedInputError{Row: i + 1, Col: 1, Reason: "blank operation name"}
		}
		if _, err := t.Durations(i); err != nil {
			return err
		}
	}
	return nil
}
