// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortbench

import (
	"path/filepath"
	"reflect"
	"testing"
)

func mustLoad(t *testing.T, name string) *Table {
	t.Helper()
	tab, err := Load(filepath.Join("testdata", name), DefaultColumns)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func mustColumn(t *testing.T, tab *Table, name string) []float64 {
	t.Helper()
	col, err := tab.Column(name)
	if err != nil {
		t.Fatal(err)
	}
	return col
}

func TestSortBySize(t *testing.T) {
	tab := mustLoad(t, "unsorted.csv")
	sorted, err := tab.SortBySize()
	if err != nil {
		t.Fatal(err)
	}

	if got, want := mustColumn(t, sorted, SizeColumn), []float64{10, 10, 20, 30}; !reflect.DeepEqual(got, want) {
		t.Errorf("sizes = %v, want %v", got, want)
	}
	// Stable: the two size-10 rows keep their file order.
	if got, want := mustColumn(t, sorted, "Insertion_Avg_Comp"), []float64{45, 47, 190, 420}; !reflect.DeepEqual(got, want) {
		t.Errorf("Insertion_Avg_Comp = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(sorted.Columns(), tab.Columns()) {
		t.Errorf("columns changed: %v, want %v", sorted.Columns(), tab.Columns())
	}

	// The original is untouched.
	if got, want := mustColumn(t, tab, SizeColumn), []float64{30, 10, 20, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("original sizes = %v, want %v", got, want)
	}
}

func TestMergeSizes(t *testing.T) {
	tab := mustLoad(t, "unsorted.csv")
	merged, err := tab.MergeSizes()
	if err != nil {
		t.Fatal(err)
	}

	if got, want := merged.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for _, test := range []struct {
		col  string
		want []float64
	}{
		{SizeColumn, []float64{30, 10, 20}},
		{"Insertion_Avg_Comp", []float64{420, 46, 190}},
		{"Quick_Avg_Comp", []float64{140, 29, 85}},
		{"Comb_Avg_Comp", []float64{160, 36, 95}},
	} {
		if got := mustColumn(t, merged, test.col); !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s = %v, want %v", test.col, got, test.want)
		}
	}
}

func TestMergeSizesNoDuplicates(t *testing.T) {
	tab := mustLoad(t, "minimal.csv")
	merged, err := tab.MergeSizes()
	if err != nil {
		t.Fatal(err)
	}
	for _, col := range DefaultColumns {
		if got, want := mustColumn(t, merged, col), mustColumn(t, tab, col); !reflect.DeepEqual(got, want) {
			t.Errorf("%s = %v, want %v", col, got, want)
		}
	}
}

func TestColumnName(t *testing.T) {
	if got, want := ColumnName(Quick, Worst, Copy), "Quick_Worst_Copy"; got != want {
		t.Errorf("ColumnName = %q, want %q", got, want)
	}
	want := []string{"Size", "Insertion_Avg_Comp", "Quick_Avg_Comp", "Comb_Avg_Comp"}
	if !reflect.DeepEqual(DefaultColumns, want) {
		t.Errorf("DefaultColumns = %v, want %v", DefaultColumns, want)
	}
}

func TestParseCaseMetric(t *testing.T) {
	for in, want := range map[string]Case{"avg": Avg, "Average": Avg, "BEST": Best, "worst": Worst} {
		got, err := ParseCase(in)
		if err != nil || got != want {
			t.Errorf("ParseCase(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseCase("median"); err == nil {
		t.Errorf("ParseCase(median) succeeded")
	}
	for in, want := range map[string]Metric{"comp": Comp, "Comparisons": Comp, "copy": Copy, "copies": Copy} {
		got, err := ParseMetric(in)
		if err != nil || got != want {
			t.Errorf("ParseMetric(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseMetric("swaps"); err == nil {
		t.Errorf("ParseMetric(swaps) succeeded")
	}
}
