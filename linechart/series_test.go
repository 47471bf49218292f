package linechart

import (
	"errors"
	"strings"
	"testing"

	"github.com/midbel/datavis/source"
)

const fertility = `Country Name,Country Code,1960,1961,1962,
Aruba,ABW,4.82,4.655,4.471,
Belgium,BEL,2.54,2.63,2.59,
Nowhere,NWH,n/a,,x,
`

func loadDataset(t *testing.T, str string) *Dataset {
	t.Helper()
	tb, err := source.ReadCSV(strings.NewReader(str))
	if err != nil {
		t.Fatal(err)
	}
	ds, err := Reshape(tb)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestReshapeGap(t *testing.T) {
	ds := loadDataset(t, "Country Name,Country Code,1960,1961\nX,XXX,2.5,\n")
	if len(ds.Series) != 1 {
		t.Fatalf("want 1 serie, got %d", len(ds.Series))
	}
	s := ds.Series[0]
	if s.Name != "X" || s.Code != "XXX" {
		t.Fatalf("unexpected serie: %+v", s)
	}
	if len(s.Points) != 2 {
		t.Fatalf("want 2 points, got %d", len(s.Points))
	}
	if s.Points[0].Year != 1960 || s.Points[0].Value != 2.5 {
		t.Errorf("1960: unexpected point %+v", s.Points[0])
	}
	if s.Points[1].Year != 1961 || !s.Points[1].Missing() {
		t.Errorf("1961: want a gap, got %+v", s.Points[1])
	}
}

func TestReshape(t *testing.T) {
	ds := loadDataset(t, fertility)
	want := []int{1960, 1961, 1962}
	if len(ds.Years) != len(want) {
		t.Fatalf("years mismatched: want %v, got %v", want, ds.Years)
	}
	for i := range want {
		if ds.Years[i] != want[i] {
			t.Errorf("year %d: want %d, got %d", i, want[i], ds.Years[i])
		}
	}
	if len(ds.Series) != 3 {
		t.Fatalf("want 3 series, got %d", len(ds.Series))
	}
	for _, p := range ds.Series[2].Points {
		if !p.Missing() {
			t.Errorf("unparseable value should be a gap, got %f", p.Value)
		}
	}
	if _, ok := ds.Series[2].Last(); ok {
		t.Errorf("serie without values should have no last point")
	}
	max, ok := ds.Max()
	if !ok || max != 4.82 {
		t.Errorf("want max 4.82, got %f (%t)", max, ok)
	}
	ext := ds.Extent()
	if ext.Min != 1960 || ext.Max != 1962 {
		t.Errorf("unexpected extent: %+v", ext)
	}
}

func TestReshapeUnorderedYears(t *testing.T) {
	ds := loadDataset(t, "Country Name,Country Code,1962,1960\nX,XXX,3,1\n")
	pts := ds.Series[0].Points
	if pts[0].Year != 1960 || pts[0].Value != 1 || pts[1].Year != 1962 || pts[1].Value != 3 {
		t.Fatalf("points not ordered by year: %+v", pts)
	}
}

func TestReshapeSingleYear(t *testing.T) {
	ds := loadDataset(t, "Country Name,Country Code,2000\nX,XXX,1.5\n")
	ext := ds.Extent()
	if ext.Min >= 2000 || ext.Max <= 2000 {
		t.Fatalf("single year should give a non empty extent, got %+v", ext)
	}
}

func TestReshapeErrors(t *testing.T) {
	tb, err := source.ReadCSV(strings.NewReader("Country Name,1960\nX,1\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Reshape(tb)
	var ce *ColumnError
	if !errors.As(err, &ce) || ce.Column != CodeColumn {
		t.Fatalf("want ColumnError for %s, got %v", CodeColumn, err)
	}

	tb, err = source.ReadCSV(strings.NewReader("Country Name,Country Code,Region\nX,XXX,Europe\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = Reshape(tb); !errors.Is(err, ErrNoYears) {
		t.Fatalf("want ErrNoYears, got %v", err)
	}
}
