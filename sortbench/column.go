// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortbench

import (
	"fmt"
	"strings"
)

// SizeColumn is the name of the column holding the input size of
// each row. It is the independent variable of every chart.
const SizeColumn = "Size"

// An Algorithm identifies one of the benchmarked sorts by the column
// name prefix used for its measurements.
type Algorithm string

const (
	Insertion Algorithm = "Insertion"
	Quick     Algorithm = "Quick"
	Comb      Algorithm = "Comb"
)

// Algorithms lists the benchmarked sorts in presentation order.
var Algorithms = []Algorithm{Insertion, Quick, Comb}

// Label returns the human-readable name of a, such as "Quick Sort".
func (a Algorithm) Label() string {
	return string(a) + " Sort"
}

// A Case selects which input ordering a measurement was taken on.
type Case string

const (
	Avg   Case = "Avg"   // mean over random inputs
	Best  Case = "Best"  // already sorted input
	Worst Case = "Worst" // reverse sorted input
)

// Describe returns the adjective used for c in axis labels.
func (c Case) Describe() string {
	switch c {
	case Best:
		return "Best-Case"
	case Worst:
		return "Worst-Case"
	}
	return "Average"
}

// ParseCase parses a case name such as "avg", "average" or "Worst".
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(s) {
	case "avg", "average", "mean":
		return Avg, nil
	case "best":
		return Best, nil
	case "worst":
		return Worst, nil
	}
	return "", fmt.Errorf("unknown case %q (want avg, best, or worst)", s)
}

// A Metric selects what a measurement counts.
type Metric string

const (
	Comp Metric = "Comp" // element comparisons
	Copy Metric = "Copy" // element copies
)

// Describe returns the plural noun used for m in axis labels.
func (m Metric) Describe() string {
	if m == Copy {
		return "Copies"
	}
	return "Comparisons"
}

// ParseMetric parses a metric name such as "comp" or "copies".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "comp", "comps", "comparison", "comparisons":
		return Comp, nil
	case "copy", "copies":
		return Copy, nil
	}
	return "", fmt.Errorf("unknown metric %q (want comp or copy)", s)
}

// ColumnName returns the name of the column holding metric m of
// algorithm a for case c.
func ColumnName(a Algorithm, c Case, m Metric) string {
	return string(a) + "_" + string(c) + "_" + string(m)
}

// Required returns the columns a results file must have to chart
// metric m for case c: SizeColumn followed by one column per
// algorithm, in the order of Algorithms.
func Required(c Case, m Metric) []string {
	cols := []string{SizeColumn}
	for _, a := range Algorithms {
		cols = append(cols, ColumnName(a, c, m))
	}
	return cols
}

// DefaultColumns are the columns needed for the default chart of
// average comparison counts.
var DefaultColumns = Required(Avg, Comp)
