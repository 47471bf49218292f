package linechart

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/midbel/datavis"
	"github.com/midbel/datavis/source"
	"github.com/midbel/slices"
)

const (
	NameColumn = "Country Name"
	CodeColumn = "Country Code"
)

var (
	ErrNoYears  = errors.New("no year column found")
	ErrNoSeries = errors.New("no series to draw")
)

type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: column not found", e.Column)
}

// Point is the value of a serie for a given year. Value is NaN when the
// source has no usable value for that year.
type Point struct {
	Year  int
	Value float64
}

func (p Point) Missing() bool {
	return math.IsNaN(p.Value)
}

type Series struct {
	Name   string
	Code   string
	Points []Point
}

// Ident gives the identifier used to refer to the serie from the outside
// (element ids, query parameters). It is the code of the serie when it has
// one.
func (s Series) Ident() string {
	if s.Code != "" {
		return s.Code
	}
	return s.Name
}

func (s Series) Last() (Point, bool) {
	for i := len(s.Points) - 1; i >= 0; i-- {
		if !s.Points[i].Missing() {
			return s.Points[i], true
		}
	}
	return Point{}, false
}

func (s Series) Max() (float64, bool) {
	var (
		max float64
		ok  bool
	)
	for _, p := range s.Points {
		if p.Missing() {
			continue
		}
		if !ok || p.Value > max {
			max = p.Value
		}
		ok = true
	}
	return max, ok
}

// Dataset is the result of reshaping a wide table: one serie per row and the
// years found in the header, in increasing order.
type Dataset struct {
	Series []Series
	Years  []int
}

func (d Dataset) Extent() Extent {
	if len(d.Years) == 0 {
		return Extent{}
	}
	e := Extent{
		Min: float64(slices.Fst(d.Years)),
		Max: float64(slices.Lst(d.Years)),
	}
	if e.Min == e.Max {
		e.Min -= 0.5
		e.Max += 0.5
	}
	return e
}

func (d Dataset) Max() (float64, bool) {
	var (
		max float64
		ok  bool
	)
	for _, s := range d.Series {
		m, found := s.Max()
		if !found {
			continue
		}
		if !ok || m > max {
			max = m
		}
		ok = true
	}
	return max, ok
}

type YearColumn struct {
	Year   int
	Column string
}

// YearColumns returns the columns coming after the name and code columns
// that carry a year, sorted by year.
func YearColumns(cols []string) []YearColumn {
	var list []YearColumn
	if len(cols) < 2 {
		return list
	}
	for _, c := range cols[2:] {
		y, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			continue
		}
		list = append(list, YearColumn{
			Year:   y,
			Column: c,
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Year < list[j].Year
	})
	return list
}

// Reshape turns a wide table (one row per country, one column per year)
// into one serie per row.
func Reshape(tb *source.Table) (*Dataset, error) {
	for _, c := range []string{NameColumn, CodeColumn} {
		if !tb.Has(c) {
			return nil, &ColumnError{Column: c}
		}
	}
	years := YearColumns(tb.Columns)
	if len(years) == 0 {
		return nil, ErrNoYears
	}
	var ds Dataset
	for _, y := range years {
		ds.Years = append(ds.Years, y.Year)
	}
	for _, rec := range tb.Records {
		s := Series{
			Name:   rec[NameColumn],
			Code:   rec[CodeColumn],
			Points: make([]Point, 0, len(years)),
		}
		for _, y := range years {
			s.Points = append(s.Points, Point{
				Year:  y.Year,
				Value: datavis.ParseValue(rec[y.Column]),
			})
		}
		ds.Series = append(ds.Series, s)
	}
	return &ds, nil
}
