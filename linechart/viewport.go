package linechart

import (
	"math"

	"github.com/midbel/datavis"
)

type Extent struct {
	Min float64
	Max float64
}

func (e Extent) Len() float64 {
	return e.Max - e.Min
}

func (e Extent) Contains(o Extent) bool {
	return o.Min >= e.Min && o.Max <= e.Max && o.Min <= o.Max
}

func (e Extent) clamp(v float64) float64 {
	return math.Max(e.Min, math.Min(v, e.Max))
}

func (e Extent) domain() datavis.Domain[float64] {
	return datavis.NumberDomain(e.Min, e.Max)
}

// YearToX projects a year onto the pixel range rg for the given domain.
func YearToX(dom Extent, rg datavis.Range, year float64) float64 {
	return datavis.NumberScaler(dom.domain(), rg).Scale(year)
}

// PixelToYear is the reciprocal of YearToX.
func PixelToYear(dom Extent, rg datavis.Range, px float64) float64 {
	switch px {
	case rg.F:
		return dom.Min
	case rg.T:
		return dom.Max
	default:
		return datavis.NumberScaler(dom.domain(), rg).Invert(px)
	}
}

type Brush struct {
	X0 float64
	X1 float64
}

// normalize clamps the selection into rg and orders its bounds. It reports
// false when nothing remains selected.
func (b Brush) normalize(rg datavis.Range) (Brush, bool) {
	b.X0 = rg.Clamp(b.X0)
	b.X1 = rg.Clamp(b.X1)
	if b.X0 > b.X1 {
		b.X0, b.X1 = b.X1, b.X0
	}
	return b, b.X0 < b.X1
}

func (b Brush) Width() float64 {
	return b.X1 - b.X0
}

// Viewport keeps the interval of years shown by the focus chart. The overview
// always covers the full extent; the brush selects a part of it.
type Viewport struct {
	full    Extent
	current Extent
	rg      datavis.Range
	brush   *Brush
}

func NewViewport(full Extent, rg datavis.Range) *Viewport {
	return &Viewport{
		full:    full,
		current: full,
		rg:      rg,
	}
}

// Brush applies a selection made on the overview. A nil, empty or zero
// width selection restores the full extent.
func (v *Viewport) Brush(sel *Brush) {
	if sel == nil {
		v.Clear()
		return
	}
	b, ok := sel.normalize(v.rg)
	if !ok {
		v.Clear()
		return
	}
	x0 := PixelToYear(v.full, v.rg, b.X0)
	x1 := PixelToYear(v.full, v.rg, b.X1)
	v.current = Extent{
		Min: v.full.clamp(math.Min(x0, x1)),
		Max: v.full.clamp(math.Max(x0, x1)),
	}
	v.brush = &b
}

func (v *Viewport) Clear() {
	v.current = v.full
	v.brush = nil
}

func (v *Viewport) Domain() Extent {
	return v.current
}

func (v *Viewport) Full() Extent {
	return v.full
}

func (v *Viewport) Range() datavis.Range {
	return v.rg
}

// Selection returns the brush in pixels of the overview. Without an active
// brush, the selection covers the whole overview.
func (v *Viewport) Selection() Brush {
	if v.brush == nil {
		return Brush{
			X0: v.rg.Min(),
			X1: v.rg.Max(),
		}
	}
	return *v.brush
}

func (v *Viewport) Brushed() bool {
	return v.brush != nil
}
