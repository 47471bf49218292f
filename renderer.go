package datavis

import (
	"github.com/midbel/svg"
)

const currentColour = "currentColor"

type Renderer[T, U ScalerConstraint] interface {
	Render(Serie[T, U]) svg.Element
}

// BarRenderer draws one rectangle per point. Points with a missing value get
// no bar and no label.
type BarRenderer[T ~string, U ~float64] struct {
	Fill []string
	// Width is the part of the band filled by the bar when the X scaler
	// does not define its own bandwidth.
	Width      float64
	WithValue  bool
	Format     func(float64) string
	TextColor  string
	TextOffset float64
}

func (r BarRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	if r.Width <= 0 {
		r.Width = 1
	}
	if len(r.Fill) == 0 {
		r.Fill = []string{"steelblue"}
	}
	grp := getBaseGroup("", "bars")
	for i, g := range r.Bars(serie) {
		var el svg.Rect
		el.Title = g.Label
		el.Pos = svg.NewPos(g.X, g.Y)
		el.Dim = svg.NewDim(g.Width, g.Height)
		el.Fill = svg.NewFill(r.Fill[i%len(r.Fill)])
		grp.Append(el.AsElement())
		if r.WithValue {
			txt := svg.NewText(g.Label)
			txt.Font = svg.NewFont(FontSize)
			txt.Anchor = "middle"
			txt.Pos = svg.NewPos(g.X+g.Width/2, g.Y-r.TextOffset)
			var lab svg.Group
			lab.Class = append(lab.Class, "label")
			if r.TextColor != "" {
				lab.Fill = svg.NewFill(r.TextColor)
			}
			lab.Append(txt.AsElement())
			grp.Append(lab.AsElement())
		}
	}
	return grp.AsElement()
}

// Geometry is the position and size of a single bar in the drawing area.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Value  float64
	Label  string
}

// Bars computes the geometry of every bar of the serie without drawing
// anything.
func (r BarRenderer[T, U]) Bars(serie Serie[T, U]) []Geometry {
	if r.Width <= 0 {
		r.Width = 1
	}
	format := r.Format
	if format == nil {
		format = DecimalFormat(2)
	}
	var (
		list   []Geometry
		width  = serie.X.Space() * r.Width
		offset = (serie.X.Space() - width) / 2
		base   = serie.Y.Max()
	)
	if b, ok := serie.X.(interface{ Bandwidth() float64 }); ok {
		width = b.Bandwidth()
		offset = 0
	}
	for _, pt := range serie.Points {
		if pt.Missing() {
			continue
		}
		var (
			x = serie.X.Scale(pt.X) + offset
			y = serie.Y.Scale(pt.Y)
			v = float64(pt.Y)
		)
		list = append(list, Geometry{
			X:      x,
			Y:      y,
			Width:  width,
			Height: base - y,
			Value:  v,
			Label:  format(v),
		})
	}
	return list
}

// LinearRenderer joins the points of a serie with straight segments. A
// missing value breaks the line.
type LinearRenderer[T, U ScalerConstraint] struct {
	Color     string
	Width     float64
	Opacity   float64
	Class     []string
	Clip      *Range
	Highlight bool
}

func (r LinearRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	if r.Width <= 0 {
		r.Width = 1
	}
	var (
		grp = getBaseGroup("", r.Class...)
		pat = getBasePath()
		pen bool
		nb  int
	)
	grp.Id = serie.Ident
	if r.Highlight {
		grp.Class = append(grp.Class, "highlighted")
	}
	color := r.Color
	if color == "" {
		color = serie.Color
	}
	pat.Stroke = svg.NewStroke(color, r.Width)
	if r.Opacity > 0 {
		pat.Stroke.Opacity = r.Opacity
	}
	for _, pt := range serie.Points {
		if pt.Missing() {
			pen = false
			continue
		}
		pos := svg.NewPos(serie.X.Scale(pt.X), serie.Y.Scale(pt.Y))
		if r.Clip != nil && (pos.X < r.Clip.Min()-0.5 || pos.X > r.Clip.Max()+0.5) {
			pen = false
			continue
		}
		if !pen {
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
		pen = true
		nb++
	}
	if nb > 0 {
		grp.Append(pat.AsElement())
	}
	return grp.AsElement()
}

func getBasePath() svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, 1)
	pat.Fill = svg.NewFill("none")
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
