// Package report parses expense reports and searches them for pairs of
// entries that sum to a target value.
package report

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Parse converts newline-delimited, optionally comma-separated text into
// integers in record order, then field order. There is no header row.
// A field that is not a signed 32-bit integer fails the whole parse.
func Parse(content string) ([]int32, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	var values []int32
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				line = csvErr.StartLine
			}
			return nil, &ParseError{Line: line, Err: err}
		}

		line, _ := r.FieldPos(0)
		for i, field := range record {
			v, err := strconv.ParseInt(field, 10, 32)
			if err != nil {
				return nil, &ParseError{Field: field, Line: line, Column: i + 1, Err: err}
			}
			values = append(values, int32(v))
		}
	}

	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	return values, nil
}

// Format serializes values one per line. Parse(Format(v)) returns v.
func Format(values []int32) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return sb.String()
}
