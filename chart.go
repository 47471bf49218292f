package datavis

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Layer is anything that can be drawn inside the area of a chart.
type Layer interface {
	Render() svg.Element
}

// LayerFunc adapts a function to the Layer interface.
type LayerFunc func() svg.Element

func (f LayerFunc) Render() svg.Element {
	return f()
}

// Chart is a drawing area surrounded by its axis. Width and Height include
// the padding. OffsetX and OffsetY move the whole chart when several charts
// share the same document.
type Chart struct {
	Class  string
	Width  float64
	Height float64

	Padding

	OffsetX float64
	OffsetY float64

	Left   Axis
	Right  Axis
	Top    Axis
	Bottom Axis
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Element draws the axis of the chart and its layers. Layers are drawn in
// the order given, on top of the axis.
func (c Chart) Element(set ...Layer) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(c.OffsetX, c.OffsetY))
	if c.Class != "" {
		g.Class = append(g.Class, c.Class)
	}
	g.Append(c.drawAxis())
	ar := c.getArea()
	for _, s := range set {
		if el := s.Render(); el != nil {
			ar.Append(el)
		}
	}
	g.Append(ar.AsElement())
	return g.AsElement()
}

// Render writes the chart as a standalone SVG document.
func (c Chart) Render(w io.Writer, set ...Layer) error {
	cs := Canvas{
		Width:  c.Width + c.OffsetX,
		Height: c.Height + c.OffsetY,
	}
	return cs.Render(w, c.Element(set...))
}

func (c Chart) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Chart) drawAxis() svg.Element {
	g := svg.NewGroup()
	g.Class = append(g.Class, "axis")
	if c.Left != nil {
		el := c.Left.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Right != nil {
		el := c.Right.Render(c.DrawingHeight(), c.DrawingWidth(), c.Width-c.Padding.Right, c.Padding.Top)
		g.Append(el)
	}
	if c.Top != nil {
		el := c.Top.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Bottom != nil {
		el := c.Bottom.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
		g.Append(el)
	}
	return g.AsElement()
}

// Canvas is the root SVG document holding one or more charts.
type Canvas struct {
	Width  float64
	Height float64
}

func (c Canvas) Render(w io.Writer, els ...svg.Element) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true
	for _, e := range els {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}
