// Package barchart draws one static bar per row of a table: a categorical
// x axis, a linear y axis starting at zero and the value of each bar written
// above it.
package barchart

import (
	"errors"
	"fmt"
	"io"

	"github.com/midbel/datavis"
	"github.com/midbel/datavis/source"
)

const (
	DefaultCategory = "Place"
	DefaultValue    = "Visitors"
	DefaultPadding  = 0.6
	DefaultWidth    = 900
	DefaultHeight   = 600
)

var ErrNoRows = errors.New("no rows to draw")

type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: column not found", e.Column)
}

// Row is a single bar. Value is NaN when the source cell could not be parsed.
type Row struct {
	Category string
	Value    float64
}

type Options struct {
	Width   float64
	Height  float64
	Margin  datavis.Padding
	Padding float64

	Category string
	Value    string

	Locale    string
	Fill      string
	TextColor string

	XTitle string
	YTitle string
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Margin: datavis.Padding{
			Top:    40,
			Right:  10,
			Bottom: 80,
			Left:   100,
		},
		Padding:   DefaultPadding,
		Category:  DefaultCategory,
		Value:     DefaultValue,
		Locale:    "en",
		Fill:      "steelblue",
		TextColor: "#424242",
		XTitle:    "Place",
		YTitle:    "Number of Visitors",
	}
}

// Rows extracts the category and value columns of the table. Values that
// are not numbers become NaN.
func Rows(tb *source.Table, category, value string) ([]Row, error) {
	for _, c := range []string{category, value} {
		if !tb.Has(c) {
			return nil, &ColumnError{Column: c}
		}
	}
	rows := make([]Row, 0, tb.Len())
	for _, rec := range tb.Records {
		rows = append(rows, Row{
			Category: rec[category],
			Value:    datavis.ParseValue(rec[value]),
		})
	}
	return rows, nil
}

// Chart is a bar chart ready to be drawn.
type Chart struct {
	opts   Options
	rows   []Row
	x      datavis.Band
	y      datavis.Linear
	format func(float64) string
}

func New(rows []Row, opts Options) (*Chart, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	c := Chart{
		opts:   opts,
		rows:   rows,
		format: datavis.NumberFormat(opts.Locale),
	}
	var (
		width  = opts.Width - opts.Margin.Horizontal()
		height = opts.Height - opts.Margin.Vertical()
		cats   = make([]string, 0, len(rows))
	)
	for _, r := range rows {
		cats = append(cats, r.Category)
	}
	c.x = datavis.BandScaler(cats, datavis.NewRange(0, width), opts.Padding)

	max, ok := datavis.MaxY(c.points())
	if !ok || max <= 0 {
		max = 1
	}
	dom := datavis.NiceDomain(max, 0, datavis.DefaultTicks)
	c.y = datavis.NumberScaler(dom, datavis.NewRange(0, height))
	return &c, nil
}

// Upper returns the upper bound of the value axis.
func (c *Chart) Upper() float64 {
	return c.y.Invert(0)
}

// Categories returns the distinct categories in the order of the axis.
func (c *Chart) Categories() []string {
	return c.x.Values(0)
}

// Bars returns the geometry of every drawn bar, in input order. Rows whose
// value is not a number are skipped.
func (c *Chart) Bars() []datavis.Geometry {
	return c.renderer().Bars(c.serie())
}

func (c *Chart) Render(w io.Writer) error {
	ch := datavis.Chart{
		Class:   "bar-chart",
		Width:   c.opts.Width,
		Height:  c.opts.Height,
		Padding: c.opts.Margin,
		Left: datavis.NumberAxis{
			Orientation:    datavis.OrientLeft,
			Scaler:         c.y,
			Ticks:          datavis.DefaultTicks,
			Format:         c.format,
			WithInnerTicks: true,
			WithLabelTicks: true,
			Title: datavis.Title{
				Text:   c.opts.YTitle,
				Offset: c.opts.Margin.Left - datavis.FontSize,
			},
		},
		Bottom: datavis.CategoryAxis{
			Orientation:    datavis.OrientBottom,
			Scaler:         c.x,
			Rotate:         -45,
			WithInnerTicks: true,
			Title: datavis.Title{
				Text:   c.opts.XTitle,
				Offset: c.opts.Margin.Bottom - datavis.FontSize/2,
			},
		},
	}
	return ch.Render(w, c.serie())
}

func (c *Chart) serie() datavis.Serie[string, float64] {
	return datavis.Serie[string, float64]{
		Title:    c.opts.Value,
		X:        c.x,
		Y:        c.y,
		Points:   c.points(),
		Renderer: c.renderer(),
	}
}

func (c *Chart) renderer() datavis.BarRenderer[string, float64] {
	return datavis.BarRenderer[string, float64]{
		Fill:       []string{c.opts.Fill},
		WithValue:  true,
		Format:     c.format,
		TextColor:  c.opts.TextColor,
		TextOffset: 5,
	}
}

func (c *Chart) points() []datavis.Point[string, float64] {
	list := make([]datavis.Point[string, float64], 0, len(c.rows))
	for _, r := range c.rows {
		list = append(list, datavis.CategoryPoint(r.Category, r.Value))
	}
	return list
}
