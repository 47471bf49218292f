package datavis

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

const DefaultTicks = 10

type ScalerConstraint interface {
	~float64 | ~string
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

// NiceDomain extends [f, t] outward so that both bounds fall on a tick of a
// scale having at most ticks major ticks.
func NiceDomain(f, t float64, ticks int) Domain[float64] {
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	reverse := f > t
	if reverse {
		f, t = t, f
	}
	lin := scale.Linear{Min: f, Max: t}
	lin.Nice(scale.TickOptions{Max: ticks})
	if reverse {
		return NumberDomain(lin.Max, lin.Min)
	}
	return NumberDomain(lin.Min, lin.Max)
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Min() float64 {
	return math.Min(n.fst, n.lst)
}

func (n numberDomain) Max() float64 {
	return math.Max(n.fst, n.lst)
}

func (n numberDomain) Values(c int) []float64 {
	if c <= 0 {
		c = DefaultTicks
	}
	lin := scale.Linear{Min: n.Min(), Max: n.Max()}
	if lin.Min == lin.Max {
		return []float64{lin.Min}
	}
	major, _ := lin.Ticks(scale.TickOptions{Max: c})
	return major
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min(), math.Min(v, r.Max()))
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type Linear struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Linear {
	return Linear{
		Range:  rg,
		Domain: dom,
	}
}

func (n Linear) Scale(v float64) float64 {
	return n.F + n.Diff(v)*n.Space()
}

func (n Linear) Invert(px float64) float64 {
	fst := -n.Diff(0)
	return fst + (px-n.F)/n.Space()
}

func (n Linear) Space() float64 {
	return n.Len() / n.Extend()
}

func (n Linear) Max() float64 {
	return n.Range.Max()
}

func (n Linear) Min() float64 {
	return n.Range.Min()
}

// Band maps categories onto equally sized bands with the same padding
// between bands and at both ends of the range.
type Band struct {
	Range
	Strings []string
	Padding float64
}

func BandScaler(str []string, rg Range, padding float64) Band {
	b := Band{
		Range:   rg,
		Padding: padding,
	}
	return b.Merge(str)
}

func (s Band) Scale(v string) float64 {
	x := s.Index(v)
	if x < 0 {
		return math.NaN()
	}
	return s.F + s.offset() + float64(x)*s.Space()
}

func (s Band) Index(v string) int {
	for i := range s.Strings {
		if s.Strings[i] == v {
			return i
		}
	}
	return -1
}

func (s Band) Space() float64 {
	n := float64(len(s.Strings))
	if n == 0 {
		return 0
	}
	return s.Len() / (n - s.Padding + 2*s.Padding)
}

func (s Band) Bandwidth() float64 {
	return s.Space() * (1 - s.Padding)
}

func (s Band) offset() float64 {
	return s.Space() * s.Padding
}

func (s Band) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

func (s Band) Max() float64 {
	return s.Range.Max()
}

func (s Band) Min() float64 {
	return s.Range.Min()
}

// Merge appends the values not yet known by the scaler, keeping the order
// in which they are first seen.
func (s Band) Merge(values []string) Band {
	var (
		list  []string
		seen  = make(map[string]struct{})
		empty = struct{}{}
	)
	merge := func(values []string) {
		for _, v := range values {
			_, ok := seen[v]
			if ok {
				continue
			}
			list = append(list, v)
			seen[v] = empty
		}
	}
	merge(s.Strings)
	merge(values)

	x := s
	x.Strings = list
	return x
}
