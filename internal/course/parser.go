// internal/course/parser.go
package course

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates the fields of a catalog row.
const Delimiter = ","

var (
	ErrTooFewFields = errors.New("needs at least Course Number and Title")
	ErrMissingCode  = errors.New("missing course number")
	ErrMissingTitle = errors.New("missing course title")
)

// LineError ties a parse failure to the 1-based line it came from.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Line %d: %s.", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Row is the field-level view of one non-blank line. It is what a line
// yields before the record rules are applied, so callers that only need the
// code and prerequisites (reference checks) can use it even when the line is
// rejected as a record.
type Row struct {
	Line          int
	Code          string
	Title         string
	Prerequisites []string
	Fields        int
}

// SplitLine trims raw and splits it into fields. It reports false for a
// blank line, which is skipped rather than treated as an error.
func SplitLine(lineNo int, raw string) (Row, bool) {
	line := TrimField(raw)
	if line == "" {
		return Row{}, false
	}

	fields := strings.Split(line, Delimiter)
	row := Row{Line: lineNo, Fields: len(fields)}
	row.Code = NormalizeCode(fields[0])
	if len(fields) > 1 {
		row.Title = TrimField(fields[1])
	}
	for _, f := range fields[min(2, len(fields)):] {
		if code := NormalizeCode(f); code != "" {
			row.Prerequisites = append(row.Prerequisites, code)
		}
	}
	return row, true
}

// Record applies the record rules to a row.
func (r Row) Record() (Course, error) {
	switch {
	case r.Fields < 2:
		return Course{}, &LineError{Line: r.Line, Err: ErrTooFewFields}
	case r.Code == "":
		return Course{}, &LineError{Line: r.Line, Err: ErrMissingCode}
	case r.Title == "":
		return Course{}, &LineError{Line: r.Line, Err: ErrMissingTitle}
	}
	return Course{Code: r.Code, Title: r.Title, Prerequisites: r.Prerequisites}, nil
}

// ParseLine parses one raw line into a course. ok is false and err is nil
// for a blank line.
func ParseLine(lineNo int, raw string) (c Course, ok bool, err error) {
	row, ok := SplitLine(lineNo, raw)
	if !ok {
		return Course{}, false, nil
	}
	c, err = row.Record()
	if err != nil {
		return Course{}, false, err
	}
	return c, true, nil
}
