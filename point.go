package datavis

import (
	"math"
	"strconv"
	"strings"
)

type Point[T, U ScalerConstraint] struct {
	X T
	Y U
}

func NumberPoint(x, y float64) Point[float64, float64] {
	return Point[float64, float64]{
		X: x,
		Y: y,
	}
}

func CategoryPoint(x string, y float64) Point[string, float64] {
	return Point[string, float64]{
		X: x,
		Y: y,
	}
}

// Missing reports whether the Y value of the point is the NaN gap marker.
func (p Point[T, U]) Missing() bool {
	f, ok := isFloat(p.Y)
	return ok && math.IsNaN(f)
}

// MaxY returns the greatest non missing Y value of the points. ok is false
// when every point is missing.
func MaxY[T ScalerConstraint](points []Point[T, float64]) (float64, bool) {
	var (
		max float64
		ok  bool
	)
	for _, pt := range points {
		if pt.Missing() || math.IsInf(pt.Y, 0) {
			continue
		}
		if !ok || pt.Y > max {
			max = pt.Y
		}
		ok = true
	}
	return max, ok
}

func isFloat[T any](v T) (float64, bool) {
	x, ok := any(v).(float64)
	return x, ok
}

// ParseValue reads a number from a table cell. Empty, malformed and infinite
// values are returned as NaN and drawn as missing.
func ParseValue(str string) float64 {
	str = strings.TrimSpace(str)
	if str == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}
