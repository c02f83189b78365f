// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortchart

import (
	"math"
	"strings"
	"testing"

	"github.com/sortlab/sortplot/sortbench"
)

func TestSummarize(t *testing.T) {
	// Insertion grows as n², Quick as n, Comb is flat.
	const data = `Size,Insertion_Avg_Comp,Quick_Avg_Comp,Comb_Avg_Comp
10,100,30,5
100,10000,300,5
1000,1000000,3000,5
`
	c, err := New(readTable(t, data, sortbench.DefaultColumns), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	sums := Summarize(c)
	if len(sums) != 3 {
		t.Fatalf("got %d summaries, want 3", len(sums))
	}

	near := func(a, b float64) bool { return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b)) }
	for i, want := range []Summary{
		{Label: "Insertion Sort", Min: 100, Max: 1000000, Mean: 1010100.0 / 3, GeoMean: 10000, Growth: 2},
		{Label: "Quick Sort", Min: 30, Max: 3000, Mean: 1110, GeoMean: 300, Growth: 1},
		{Label: "Comb Sort", Min: 5, Max: 5, Mean: 5, GeoMean: 5, Growth: 0},
	} {
		got := sums[i]
		if got.Label != want.Label || got.Min != want.Min || got.Max != want.Max ||
			!near(got.Mean, want.Mean) || !near(got.GeoMean, want.GeoMean) || !near(got.Growth, want.Growth) {
			t.Errorf("summary %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestSummarizeSinglePoint(t *testing.T) {
	const data = "Size,Insertion_Avg_Comp,Quick_Avg_Comp,Comb_Avg_Comp\n10,45,30,35\n"
	c, err := New(readTable(t, data, sortbench.DefaultColumns), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range Summarize(c) {
		if !math.IsNaN(s.Growth) {
			t.Errorf("%s: Growth = %v, want NaN", s.Label, s.Growth)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	c, err := New(readTable(t, scenario, sortbench.DefaultColumns), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := WriteSummary(&buf, c); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"algorithm", "growth", "Insertion Sort", "Quick Sort", "Comb Sort", "190"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	const data = "Size,Insertion_Avg_Comp,Quick_Avg_Comp,Comb_Avg_Comp\n"
	c, err := New(readTable(t, data, sortbench.DefaultColumns), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := WriteSummary(&buf, c); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "no data rows to summarize\n"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}
