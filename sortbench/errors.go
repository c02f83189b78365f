// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortbench

import (
	"fmt"
	"strings"
)

// A DataSourceError reports that a results file could not be opened
// or read.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// A SchemaError reports that a results file was readable but does not
// have the shape a chart needs: a required column is missing, a row
// is malformed, or a required value is not a number.
type SchemaError struct {
	FileName string
	Line     int // 0 if the error is not tied to one line
	Msg      string

	// Missing lists the required columns absent from the header,
	// if that is the cause of the error.
	Missing []string
}

func (e *SchemaError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SchemaError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func missingColumns(fileName string, missing []string) *SchemaError {
	quoted := make([]string, len(missing))
	for i, m := range missing {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	word := "column"
	if len(missing) > 1 {
		word = "columns"
	}
	return &SchemaError{
		FileName: fileName,
		Line:     1,
		Msg:      fmt.Sprintf("missing required %s %s", word, strings.Join(quoted, ", ")),
		Missing:  missing,
	}
}
