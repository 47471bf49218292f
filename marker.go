package datavis

import (
	"github.com/midbel/svg"
)

// MarkerSize is the diameter of a marker, in pixels.
var MarkerSize float64 = 4

// MarkerFunc draws a marker centered on pos.
type MarkerFunc func(svg.Pos) svg.Element

// Circle draws a disc filled with color. An empty color uses the color of
// the enclosing element.
func Circle(color string) MarkerFunc {
	if color == "" {
		color = currentColour
	}
	return func(pos svg.Pos) svg.Element {
		var el svg.Circle
		el.Pos = pos
		el.Fill = svg.NewFill(color)
		el.Radius = MarkerSize / 2
		return el.AsElement()
	}
}
