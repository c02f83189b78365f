// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortchart

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"
)

// A Summary describes the values of one Series.
type Summary struct {
	Label string

	Min, Max float64
	Mean     float64
	GeoMean  float64

	// Growth is the empirical order of growth: the slope of
	// log(Y) against log(X) fitted by least squares. Quadratic
	// algorithms approach 2 and n log n algorithms sit just above
	// 1. It is NaN with fewer than two distinct positive sizes.
	Growth float64
}

// Summarize computes a Summary of each series of c, in series order.
func Summarize(c *Chart) []Summary {
	out := make([]Summary, 0, len(c.Series))
	for _, s := range c.Series {
		ys := make([]float64, len(s.XYs))
		for i, p := range s.XYs {
			ys[i] = p.Y
		}
		sum := Summary{Label: s.Label, Growth: growth(s.XYs)}
		if len(ys) == 0 {
			sum.Min, sum.Max, sum.Mean, sum.GeoMean = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		} else {
			sum.Min, sum.Max = stats.Bounds(ys)
			sum.Mean = stats.Mean(ys)
			sum.GeoMean = stats.GeoMean(ys)
		}
		out = append(out, sum)
	}
	return out
}

func growth(xys plotter.XYs) float64 {
	var xs, ys []float64
	for _, p := range xys {
		if p.X > 0 && p.Y > 0 {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	lx, ly := vec.Map(math.Log, xs), vec.Map(math.Log, ys)
	mx, my := stats.Mean(lx), stats.Mean(ly)
	var sxy, sxx float64
	for i := range lx {
		dx := lx[i] - mx
		sxy += dx * (ly[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 {
		return math.NaN()
	}
	return sxy / sxx
}

// SummaryTable lays out summaries as a table with one row per series.
func SummaryTable(sums []Summary) *table.Table {
	n := len(sums)
	labels := make([]string, n)
	mins, maxs := make([]float64, n), make([]float64, n)
	means, geomeans := make([]float64, n), make([]float64, n)
	growths := make([]float64, n)
	for i, s := range sums {
		labels[i] = s.Label
		mins[i], maxs[i] = s.Min, s.Max
		means[i], geomeans[i] = s.Mean, s.GeoMean
		growths[i] = s.Growth
	}
	return new(table.Builder).
		Add("algorithm", labels).
		Add("min", mins).
		Add("max", maxs).
		Add("mean", means).
		Add("geomean", geomeans).
		Add("growth", growths).
		Done()
}

// WriteSummary writes a text table summarizing each series of c to w.
// If c has no points, it writes a one-line notice instead.
func WriteSummary(w io.Writer, c *Chart) error {
	if len(c.Series) == 0 || len(c.Series[0].XYs) == 0 {
		_, err := fmt.Fprintln(w, "no data rows to summarize")
		return err
	}
	return table.Fprint(w, SummaryTable(Summarize(c)), "%s", "%.0f", "%.0f", "%.1f", "%.1f", "%.2f")
}
