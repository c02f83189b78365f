// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortbench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Load reads the results file at path. See Read for the meaning of
// required.
//
// If path cannot be opened, Load returns a *DataSourceError.
func Load(path string, required []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()
	return Read(f, path, required)
}

// Read parses a comma-separated results file from r. fileName is used
// in error messages; it is purely diagnostic.
//
// Every column named in required must appear in the header and hold
// only numbers. Other columns are numeric if every value in them
// parses as a number and are kept as strings otherwise. Every row
// must have as many fields as the header.
//
// Read returns a *SchemaError if the data does not have this shape
// and a *DataSourceError if reading from r fails.
func Read(r io.Reader, fileName string, required []string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{FileName: fileName, Msg: "missing header row"}
	} else if err != nil {
		return nil, readError(fileName, err)
	}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		header[i] = strings.TrimSpace(name)
	}

	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, &SchemaError{FileName: fileName, Line: 1, Msg: fmt.Sprintf("duplicate column %q", name)}
		}
		seen[name] = true
	}
	isRequired := make(map[string]bool, len(required))
	var missing []string
	for _, name := range required {
		isRequired[name] = true
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, missingColumns(fileName, missing)
	}

	var rows [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, readError(fileName, err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}

	var b table.Builder
	for i, name := range header {
		strs := make([]string, len(rows))
		for j, row := range rows {
			strs[j] = strings.TrimSpace(row[i])
		}
		vals, bad := parseFloats(strs)
		switch {
		case bad < 0:
			b.Add(name, vals)
		case isRequired[name]:
			return nil, &SchemaError{
				FileName: fileName,
				Line:     lines[bad],
				Msg:      fmt.Sprintf("column %q: invalid number %q", name, strs[bad]),
			}
		default:
			b.Add(name, strs)
		}
	}
	return &Table{FileName: fileName, t: b.Done()}, nil
}

// parseFloats parses every string in strs as a finite number. If one
// fails, it returns the index of the first failure; otherwise bad is
// -1. NaN and infinities are failures: they cannot be plotted.
func parseFloats(strs []string) (vals []float64, bad int) {
	vals = make([]float64, len(strs))
	for i, s := range strs {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, i
		}
		vals[i] = v
	}
	return vals, -1
}

// readError classifies an error from the CSV reader. Malformed
// records are schema errors. Anything else came from the underlying
// reader.
func readError(fileName string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &SchemaError{FileName: fileName, Line: perr.Line, Msg: perr.Err.Error()}
	}
	return &DataSourceError{Path: fileName, Err: err}
}
