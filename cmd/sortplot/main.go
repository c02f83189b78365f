// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sortplot charts sorting benchmark results.
//
// Usage:
//
//	sortplot [flags] [results.csv]
//
// Sortplot reads a comma-separated results file (by default
// sorting_analysis.csv in the current directory) with the columns
// Size, Insertion_Avg_Comp, Quick_Avg_Comp and Comb_Avg_Comp, and
// draws one line per algorithm of the average number of comparisons
// against array size. The chart is written to sorting_analysis.png
// unless -o names another file; the extension of that file selects
// the image format (png, svg, pdf, jpg, tif, eps).
//
// The -case and -metric flags chart other columns of the same file,
// for example "-case worst -metric copy" charts Insertion_Worst_Copy,
// Quick_Worst_Copy and Comb_Worst_Copy.
//
// Rows are plotted in file order. Use -sort to order them by size
// first, and -merge to average rows that repeat a size.
//
// Sortplot exits with status 1 if the results file cannot be read or
// lacks a required column.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/sortlab/sortplot/sortbench"
	"github.com/sortlab/sortplot/sortchart"
)

const (
	defaultInput  = "sorting_analysis.csv"
	defaultOutput = "sorting_analysis.png"
)

type config struct {
	input, output string

	caseName, metricName string
	sort, merge          bool
	logScale             bool
	width, height        float64 // inches
	summary              bool
}

func main() {
	cfg := config{input: defaultInput}

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: sortplot [flags] [results.csv]\n\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&cfg.output, "o", defaultOutput, "write the chart to `file`; the extension selects the format")
	flag.StringVar(&cfg.caseName, "case", "avg", "input case to chart: avg, best, or worst")
	flag.StringVar(&cfg.metricName, "metric", "comp", "metric to chart: comp or copy")
	flag.BoolVar(&cfg.sort, "sort", false, "sort rows by size before plotting")
	flag.BoolVar(&cfg.merge, "merge", false, "average rows that share a size")
	flag.BoolVar(&cfg.logScale, "log", false, "use logarithmic axes")
	flag.Float64Var(&cfg.width, "width", 10, "chart width in inches")
	flag.Float64Var(&cfg.height, "height", 6, "chart height in inches")
	flag.BoolVar(&cfg.summary, "summary", false, "print a summary table of each series to stdout")
	flag.Parse()

	switch flag.NArg() {
	case 0:
	case 1:
		cfg.input = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fail("sortplot: %v\n", err)
	}
	warn("sortplot: wrote %s\n", cfg.output)
}

// run loads cfg.input, builds the chart, and saves it to cfg.output.
// Nothing is written if loading or building fails.
func run(cfg config, stdout io.Writer) error {
	c, err := sortbench.ParseCase(cfg.caseName)
	if err != nil {
		return err
	}
	m, err := sortbench.ParseMetric(cfg.metricName)
	if err != nil {
		return err
	}

	tab, err := sortbench.Load(cfg.input, sortbench.Required(c, m))
	if err != nil {
		return err
	}
	if cfg.merge {
		if tab, err = tab.MergeSizes(); err != nil {
			return err
		}
	}
	if cfg.sort {
		if tab, err = tab.SortBySize(); err != nil {
			return err
		}
	}

	opts := sortchart.DefaultOptions()
	opts.Case, opts.Metric = c, m
	opts.LogScale = cfg.logScale
	if cfg.width > 0 {
		opts.Width = vg.Length(cfg.width) * vg.Inch
	}
	if cfg.height > 0 {
		opts.Height = vg.Length(cfg.height) * vg.Inch
	}
	chart, err := sortchart.New(tab, opts)
	if err != nil {
		return err
	}

	if cfg.summary {
		if err := sortchart.WriteSummary(stdout, chart); err != nil {
			return err
		}
	}
	return chart.Save(cfg.output)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}
