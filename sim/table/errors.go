package table

import "fmt"

// MalformedInputError reports a table cell that breaks the loader contract.
// Row and Col are 0-based table coordinates (row 0 is the header).
type MalformedInputError struct {
	Row    int
	Col    int
	Reason string
	Err    error // underlying parse error, may be nil
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at row %d, column %d: %s", e.Row, e.Col, e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
