package barchart

import (
	"bytes"
	"errors"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/midbel/datavis/source"
)

const places = `Place,Visitors
Schönbrunn Palace,3800000
Tiergarten Schönbrunn,2300000
Hofburg,n/a
Belvedere,1600000
Mariazell Basilica,1500000
`

func loadRows(t *testing.T) []Row {
	t.Helper()
	tb, err := source.ReadCSV(strings.NewReader(places))
	if err != nil {
		t.Fatal(err)
	}
	rows, err := Rows(tb, DefaultCategory, DefaultValue)
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestRows(t *testing.T) {
	rows := loadRows(t)
	if len(rows) != 5 {
		t.Fatalf("want 5 rows, got %d", len(rows))
	}
	if rows[0].Category != "Schönbrunn Palace" || rows[0].Value != 3800000 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if !math.IsNaN(rows[2].Value) {
		t.Errorf("unparseable value should be NaN, got %f", rows[2].Value)
	}
}

func TestRowsMissingColumn(t *testing.T) {
	tb, err := source.ReadCSV(strings.NewReader("Place,Count\nHofburg,12\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Rows(tb, DefaultCategory, DefaultValue)
	var ce *ColumnError
	if !errors.As(err, &ce) || ce.Column != DefaultValue {
		t.Fatalf("want ColumnError for %s, got %v", DefaultValue, err)
	}
}

func TestNoRows(t *testing.T) {
	_, err := New(nil, DefaultOptions())
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("want ErrNoRows, got %v", err)
	}
}

func TestUpperBound(t *testing.T) {
	rows := loadRows(t)
	ch, err := New(rows, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	upper := ch.Upper()
	if upper < 3800000 {
		t.Fatalf("upper bound %f below the maximum", upper)
	}
	if math.IsNaN(upper) {
		t.Fatalf("NaN value poisoned the upper bound")
	}
}

func TestBarsMonotonic(t *testing.T) {
	rows := loadRows(t)
	ch, err := New(rows, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	bars := ch.Bars()
	if len(bars) != 4 {
		t.Fatalf("want 4 bars (NaN skipped), got %d", len(bars))
	}
	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Value < bars[j].Value
	})
	for i := 1; i < len(bars); i++ {
		if bars[i].Height <= bars[i-1].Height {
			t.Errorf("bar %s (%f) not taller than bar %s (%f)", bars[i].Label, bars[i].Height, bars[i-1].Label, bars[i-1].Height)
		}
	}
	opts := DefaultOptions()
	height := opts.Height - opts.Margin.Vertical()
	for _, b := range bars {
		if b.Y < 0 || b.Y+b.Height > height+1e-9 {
			t.Errorf("bar %s outside of the drawing area: %+v", b.Label, b)
		}
	}
}

func TestBarsKeepBands(t *testing.T) {
	rows := loadRows(t)
	ch, err := New(rows, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	cats := ch.Categories()
	if len(cats) != len(rows) {
		t.Fatalf("every category should have a band, got %v", cats)
	}
	bars := ch.Bars()
	for i := 1; i < len(bars); i++ {
		if bars[i].X <= bars[i-1].X {
			t.Errorf("bars are not in input order")
		}
	}
}

func TestLabels(t *testing.T) {
	rows := loadRows(t)
	ch, err := New(rows, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	bars := ch.Bars()
	if bars[0].Label != "3,800,000" {
		t.Errorf("want grouped label, got %q", bars[0].Label)
	}

	opts := DefaultOptions()
	opts.Locale = "de"
	ch, err = New(rows, opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := ch.Bars()[0].Label; got != "3.800.000" {
		t.Errorf("want german grouping, got %q", got)
	}
}

func TestAllMissing(t *testing.T) {
	rows := []Row{
		{Category: "a", Value: math.NaN()},
		{Category: "b", Value: math.NaN()},
	}
	ch, err := New(rows, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(ch.Bars()) != 0 {
		t.Fatalf("no bar expected")
	}
	if ch.Upper() <= 0 {
		t.Fatalf("upper bound should stay positive, got %f", ch.Upper())
	}
}

func TestRender(t *testing.T) {
	rows := loadRows(t)
	ch, err := New(rows, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := ch.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, str := range []string{"<svg", "3,800,000", "Number of Visitors"} {
		if !strings.Contains(out, str) {
			t.Errorf("output does not contain %q", str)
		}
	}
}
