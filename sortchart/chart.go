// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortchart draws line charts comparing sorting algorithms
// across input sizes.
package sortchart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sortlab/sortplot/sortbench"
)

const (
	Title  = "Sorting Algorithms Performance Comparison"
	XLabel = "Array Size"
)

// Options control what a Chart shows and how it is rendered.
type Options struct {
	Case   sortbench.Case
	Metric sortbench.Metric

	// LogScale plots both axes on a logarithmic scale. Every
	// plotted value must then be positive.
	LogScale bool

	// Width and Height are the size of the rendered figure. DPI
	// applies only to raster formats.
	Width, Height vg.Length
	DPI           int
}

// DefaultOptions chart average comparison counts on a 10x6 inch
// figure.
func DefaultOptions() Options {
	return Options{
		Case:   sortbench.Avg,
		Metric: sortbench.Comp,
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		DPI:    100,
	}
}

// shapes holds the marker for each entry of sortbench.Algorithms, so
// series stay distinguishable without color.
var shapes = map[sortbench.Algorithm]draw.GlyphDrawer{
	sortbench.Insertion: draw.CircleGlyph{},
	sortbench.Quick:     draw.SquareGlyph{},
	sortbench.Comb:      draw.TriangleGlyph{},
}

// A Series is one algorithm's measurements, one point per table row.
type Series struct {
	Algorithm sortbench.Algorithm
	Label     string
	Column    string
	Shape     draw.GlyphDrawer
	XYs       plotter.XYs
}

// A Chart is a line chart of one metric for every algorithm.
type Chart struct {
	Title, XLabel, YLabel string
	Series                []*Series

	opts Options
}

// New builds a chart of t with one series per entry of
// sortbench.Algorithms. Each series has one point per row of t, in
// row order, with X the row's size.
//
// If t lacks a column the chart needs, New returns the table's
// *sortbench.SchemaError and no chart.
func New(t *sortbench.Table, opts Options) (*Chart, error) {
	if opts.Case == "" {
		opts.Case = sortbench.Avg
	}
	if opts.Metric == "" {
		opts.Metric = sortbench.Comp
	}
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.DPI <= 0 {
		opts.DPI = def.DPI
	}

	sizes, err := t.Sizes()
	if err != nil {
		return nil, err
	}
	// Look up every column before building anything.
	cols := make([][]float64, len(sortbench.Algorithms))
	for i, alg := range sortbench.Algorithms {
		cols[i], err = t.Column(sortbench.ColumnName(alg, opts.Case, opts.Metric))
		if err != nil {
			return nil, err
		}
	}

	c := &Chart{
		Title:  Title,
		XLabel: XLabel,
		YLabel: fmt.Sprintf("%s Number of %s", opts.Case.Describe(), opts.Metric.Describe()),
		opts:   opts,
	}
	for i, alg := range sortbench.Algorithms {
		xys := make(plotter.XYs, len(sizes))
		for j := range sizes {
			xys[j].X = sizes[j]
			xys[j].Y = cols[i][j]
			if opts.LogScale && (xys[j].X <= 0 || xys[j].Y <= 0) {
				return nil, fmt.Errorf("%s: row %d: log scale needs positive values, have (%g, %g)", sortbench.ColumnName(alg, opts.Case, opts.Metric), j+1, xys[j].X, xys[j].Y)
			}
		}
		c.Series = append(c.Series, &Series{
			Algorithm: alg,
			Label:     alg.Label(),
			Column:    sortbench.ColumnName(alg, opts.Case, opts.Metric),
			Shape:     shapes[alg],
			XYs:       xys,
		})
	}
	return c, nil
}

// Options returns the options c was built with, with defaults filled
// in.
func (c *Chart) Options() Options {
	return c.opts
}

// Plot lays out c as a gonum plot: one line with markers per series,
// a legend, and a background grid.
func (c *Chart) Plot() (*plot.Plot, error) {
	pl := plot.New()

	pl.Title.Text = c.Title
	pl.Title.TextStyle.Font.Size = 16
	pl.X.Label.Text = c.XLabel
	pl.Y.Label.Text = c.YLabel

	if c.opts.LogScale {
		pl.X.Scale = plot.LogScale{}
		pl.Y.Scale = plot.LogScale{}
		pl.X.Tick.Marker = plot.LogTicks{}
		pl.Y.Tick.Marker = plot.LogTicks{}
	}

	pl.Add(plotter.NewGrid())

	colors, err := seriesColors(len(c.Series))
	if err != nil {
		return nil, err
	}
	for i, s := range c.Series {
		line, points, err := plotter.NewLinePoints(s.XYs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Label, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		points.Shape = s.Shape
		points.Color = colors[i]
		points.Radius = vg.Points(3)

		pl.Add(line, points)
		pl.Legend.Add(s.Label, line, points)
	}
	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Legend.Padding = vg.Millimeter

	return pl, nil
}

func seriesColors(n int) ([]color.Color, error) {
	// Qualitative brewer palettes start at three colors.
	k := n
	if k < 3 {
		k = 3
	}
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", k)
	if err != nil {
		return nil, err
	}
	return p.Colors()[:n], nil
}

// Render draws c in the named format to w. Format is a file
// extension without the dot, such as "png", "svg" or "pdf"; the
// empty string means "png".
func (c *Chart) Render(w io.Writer, format string) error {
	pl, err := c.Plot()
	if err != nil {
		return err
	}

	format = strings.ToLower(format)
	if format == "" || format == "png" {
		can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(c.opts.Width, c.opts.Height),
			vgimg.UseDPI(c.opts.DPI), vgimg.UseBackgroundColor(color.White))}
		pl.Draw(draw.New(can))
		_, err = can.WriteTo(w)
		return err
	}

	wt, err := pl.WriterTo(c.opts.Width, c.opts.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders c to the file at path, choosing the format from the
// file extension. The file is only created once rendering succeeds.
func (c *Chart) Save(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("%s: no file extension to choose an image format", path)
	}
	var buf bytes.Buffer
	if err := c.Render(&buf, format); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}
