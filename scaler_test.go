package datavis

import (
	"math"
	"testing"
)

func TestLinearScaleInvert(t *testing.T) {
	var (
		dom = NumberDomain(1960, 2020)
		rg  = NewRange(0, 750)
		sc  = NumberScaler(dom, rg)
	)
	if got := sc.Scale(1960); got != 0 {
		t.Fatalf("first year: want 0, got %f", got)
	}
	if got := sc.Scale(2020); got != 750 {
		t.Fatalf("last year: want 750, got %f", got)
	}
	for _, px := range []float64{0, 12.5, 375, 749.9, 750} {
		back := sc.Scale(sc.Invert(px))
		if math.Abs(back-px) > 1e-9 {
			t.Errorf("invert(%f): roundtrip gives %f", px, back)
		}
	}
}

func TestLinearReversed(t *testing.T) {
	sc := NumberScaler(NumberDomain(10, 0), NewRange(0, 100))
	if got := sc.Scale(10); got != 0 {
		t.Errorf("top value: want 0, got %f", got)
	}
	if got := sc.Scale(0); got != 100 {
		t.Errorf("bottom value: want 100, got %f", got)
	}
	if got := sc.Scale(2.5); got != 75 {
		t.Errorf("quarter value: want 75, got %f", got)
	}
}

func TestNiceDomain(t *testing.T) {
	tests := []float64{7.3, 3456789, 1, 0.42, 250}
	for _, max := range tests {
		dom := NiceDomain(0, max, DefaultTicks)
		nice := dom.Extend()
		if nice < max {
			t.Errorf("%f: nice upper bound %f is below the maximum", max, nice)
			continue
		}
		ticks := dom.Values(DefaultTicks)
		if len(ticks) < 2 {
			t.Errorf("%f: expected at least 2 ticks, got %v", max, ticks)
			continue
		}
		step := ticks[1] - ticks[0]
		rem := math.Mod(nice, step)
		if rem > step*1e-6 && step-rem > step*1e-6 {
			t.Errorf("%f: upper bound %f not aligned on tick step %f", max, nice, step)
		}
	}
}

func TestNiceDomainReversed(t *testing.T) {
	dom := NiceDomain(7.3, 0, DefaultTicks)
	if dom.Diff(0) >= 0 {
		t.Fatalf("reversed domain should start with its upper bound")
	}
	if dom.Extend() >= 0 {
		t.Fatalf("reversed domain should have a negative extent, got %f", dom.Extend())
	}
}

func TestBandScaler(t *testing.T) {
	sc := BandScaler([]string{"a", "b", "a", "c"}, NewRange(0, 360), 0.6)
	if n := len(sc.Values(0)); n != 3 {
		t.Fatalf("expected 3 distinct categories, got %d", n)
	}
	if got := sc.Space(); math.Abs(got-100) > 1e-9 {
		t.Errorf("step: want 100, got %f", got)
	}
	if got := sc.Bandwidth(); math.Abs(got-40) > 1e-9 {
		t.Errorf("bandwidth: want 40, got %f", got)
	}
	want := map[string]float64{
		"a": 60,
		"b": 160,
		"c": 260,
	}
	for k, v := range want {
		if got := sc.Scale(k); math.Abs(got-v) > 1e-9 {
			t.Errorf("%s: want %f, got %f", k, v, got)
		}
	}
	if got := sc.Scale("unknown"); !math.IsNaN(got) {
		t.Errorf("unknown category should not be placed, got %f", got)
	}
}

func TestPaletteOrdinal(t *testing.T) {
	color := Set2.Ordinal([]string{"x", "y", "x", "z"})
	if color("x") != Set2[0] || color("y") != Set2[1] || color("z") != Set2[2] {
		t.Fatalf("colors not assigned in order: %s %s %s", color("x"), color("y"), color("z"))
	}
	keys := make([]string, len(Set2)+1)
	for i := range keys {
		keys[i] = string(rune('a' + i))
	}
	color = Set2.Ordinal(keys)
	if color(keys[len(Set2)]) != Set2[0] {
		t.Errorf("palette should cycle")
	}
}

func TestNumberFormat(t *testing.T) {
	tests := []struct {
		Locale string
		Value  float64
		Want   string
	}{
		{Locale: "en", Value: 1234567, Want: "1,234,567"},
		{Locale: "en", Value: 42, Want: "42"},
		{Locale: "de", Value: 1234567, Want: "1.234.567"},
		{Locale: "not a locale", Value: 1000, Want: "1,000"},
	}
	for _, tt := range tests {
		format := NumberFormat(tt.Locale)
		if got := format(tt.Value); got != tt.Want {
			t.Errorf("%s(%f): want %q, got %q", tt.Locale, tt.Value, tt.Want, got)
		}
	}
}

func TestMaxY(t *testing.T) {
	points := []Point[string, float64]{
		CategoryPoint("a", math.NaN()),
		CategoryPoint("b", 12),
		CategoryPoint("c", 7),
	}
	max, ok := MaxY(points)
	if !ok || max != 12 {
		t.Fatalf("want 12, got %f (%t)", max, ok)
	}
	_, ok = MaxY([]Point[string, float64]{CategoryPoint("a", math.NaN())})
	if ok {
		t.Fatalf("only missing values should not give a maximum")
	}
}

func TestIntegerTicks(t *testing.T) {
	axis := NumberAxis{
		Domain:  []float64{1970.5, 1971.0000000000002, 1971.5, 1971.9999999999998},
		Integer: true,
	}
	got := axis.values()
	if len(got) != 2 || got[0] != 1971 || got[1] != 1972 {
		t.Fatalf("drifted years should be kept and rounded, got %v", got)
	}

	rg := NewRange(0, 750)
	for _, dom := range [][2]float64{{1970.4, 1971.1}, {1960.56, 1961.36}} {
		axis := NumberAxis{
			Scaler:  NumberScaler(NumberDomain(dom[0], dom[1]), rg),
			Ticks:   DefaultTicks,
			Integer: true,
		}
		if len(axis.values()) == 0 {
			t.Errorf("%v: whole year inside the domain but no tick kept", dom)
		}
	}
	for i := 0; i < 600; i++ {
		var (
			fst = 1960 + float64(i)*0.1
			lst = fst + 1.05
		)
		axis := NumberAxis{
			Scaler:  NumberScaler(NumberDomain(fst, lst), rg),
			Ticks:   DefaultTicks,
			Integer: true,
		}
		list := axis.values()
		if len(list) == 0 {
			t.Fatalf("[%f, %f]: no tick kept", fst, lst)
		}
		for _, f := range list {
			if f != math.Trunc(f) {
				t.Errorf("[%f, %f]: tick %v is not a whole year", fst, lst, f)
			}
		}
	}
}
