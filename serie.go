package datavis

import (
	"github.com/midbel/svg"
)

type Serie[T, U ScalerConstraint] struct {
	Ident string
	Color string
	Title string

	X      Scaler[T]
	Y      Scaler[U]
	Points []Point[T, U]

	Renderer Renderer[T, U]
}

func (s Serie[T, U]) Render() svg.Element {
	return s.Renderer.Render(s)
}
