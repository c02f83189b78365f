// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortbench

import (
	"fmt"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// A Table is an ordered, immutable set of benchmark result rows.
type Table struct {
	// FileName is the file the table was read from, for
	// diagnostics.
	FileName string

	t *table.Table
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.t.Len()
}

// Columns returns the names of t's columns in file order.
func (t *Table) Columns() []string {
	return t.t.Columns()
}

// Column returns the values of the numeric column name in row order.
// The returned slice must not be modified.
//
// If t has no such column, or the column is not numeric, Column
// returns a *SchemaError.
func (t *Table) Column(name string) ([]float64, error) {
	switch col := t.t.Column(name).(type) {
	case []float64:
		return col, nil
	case nil:
		return nil, missingColumns(t.FileName, []string{name})
	default:
		return nil, &SchemaError{FileName: t.FileName, Msg: fmt.Sprintf("column %q is not numeric", name)}
	}
}

// Sizes returns the values of SizeColumn in row order.
func (t *Table) Sizes() ([]float64, error) {
	return t.Column(SizeColumn)
}

// SortBySize returns a copy of t with rows in ascending order of
// SizeColumn. Rows with equal sizes keep their relative order.
func (t *Table) SortBySize() (*Table, error) {
	if _, err := t.Sizes(); err != nil {
		return nil, err
	}
	g := table.SortBy(t.t, SizeColumn)
	return &Table{FileName: t.FileName, t: table.Flatten(g)}, nil
}

// MergeSizes returns a copy of t with one row per distinct size, in
// order of first appearance. Each numeric column holds the mean of
// the merged rows. String columns are kept only if they have a single
// value within every merged group.
func (t *Table) MergeSizes() (*Table, error) {
	if _, err := t.Sizes(); err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return t, nil
	}

	var numeric []string
	for _, name := range t.t.Columns() {
		if name == SizeColumn {
			continue
		}
		if _, ok := t.t.Column(name).([]float64); ok {
			numeric = append(numeric, name)
		}
	}

	g := ggstat.Agg(SizeColumn)(ggstat.AggMean(numeric...)).F(t.t)
	for _, name := range numeric {
		// Rename drops the effectively constant copy of name
		// that Agg kept, if any.
		g = table.Rename(g, "mean "+name, name)
	}
	return &Table{FileName: t.FileName, t: table.Flatten(g)}, nil
}
