// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortbench reads tables of sorting-algorithm benchmark
// results.
//
// A results file is comma-separated text with a header row. The
// first column is the input size, "Size". Each remaining column
// holds one measurement for one algorithm and is named
// <Algorithm>_<Case>_<Metric>, for example "Quick_Worst_Copy" is
// the number of element copies Quick Sort made on its worst-case
// input. Columns this package does not know about are carried
// through unchanged.
//
// A Table is immutable once read. Operations that reorder or merge
// rows, such as SortBySize, return a new Table.
package sortbench
