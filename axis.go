package datavis

import (
	"math"

	"github.com/midbel/svg"
)

const FontSize = 12.0

const (
	tickSize    = FontSize * 0.5
	labelOffset = FontSize * 0.75
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) svg.Element
}

// Title is the label of an axis, placed Offset pixels away from the domain
// line.
type Title struct {
	Text   string
	Offset float64
	Color  string
}

func (t Title) render(orient Orientation, length float64) svg.Element {
	var (
		txt = svg.NewText(t.Text)
		grp svg.Group
	)
	txt.Font = svg.NewFont(FontSize)
	txt.Anchor = "middle"
	grp.Class = append(grp.Class, "axis-label")
	if t.Color != "" {
		grp.Fill = svg.NewFill(t.Color)
	}
	if orient.Vertical() {
		off := -t.Offset
		if orient.Reverse() {
			off = t.Offset
		}
		grp.Transform = svg.Translate(off, length/2)
		grp.Transform.RA = -90
	} else {
		off := t.Offset
		if orient.Reverse() {
			off = -off
		}
		grp.Transform = svg.Translate(length/2, off)
	}
	grp.Append(txt.AsElement())
	return grp.AsElement()
}

// Grid describes the lines drawn across the chart area at each tick.
type Grid struct {
	Dashed  bool
	Opacity float64
}

type NumberAxis struct {
	Title
	Orientation
	Ticks          int
	Scaler         Scaler[float64]
	Domain         []float64
	Format         func(float64) string
	Class          string
	Grid           *Grid
	WithInnerTicks bool
	WithLabelTicks bool
	// Integer drops the ticks that are not whole numbers.
	Integer bool
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	if a.Class != "" {
		g.Class = append(g.Class, a.Class)
	}
	d := domainLine(a.Orientation, length, svg.NewStroke("black", 1))
	g.Append(d.AsElement())

	var (
		data   = a.values()
		font   = svg.NewFont(FontSize)
		format = a.Format
	)
	if format == nil {
		format = DecimalFormat(2)
	}
	for _, f := range data {
		var (
			pos = a.Scaler.Scale(f)
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if pos < a.Scaler.Min()-0.5 || pos > a.Scaler.Max()+0.5 {
			continue
		}
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, tickSize, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(f), 0, font)
			grp.Append(text.AsElement())
		}
		if a.Grid != nil {
			sk := d.Stroke
			sk.Opacity = a.Grid.Opacity
			if a.Grid.Dashed {
				sk.DashArray(2)
			}
			tick := lineTick(a.Orientation, 0, -size, sk)
			grp.Append(tick.AsElement())
		}
		g.Append(grp.AsElement())
	}
	if a.Title.Text != "" {
		g.Append(a.Title.render(a.Orientation, length))
	}
	return g.AsElement()
}

func (a NumberAxis) values() []float64 {
	data := a.Domain
	if len(data) == 0 {
		data = a.Scaler.Values(a.Ticks)
	}
	if !a.Integer {
		return data
	}
	var list []float64
	for _, f := range data {
		r := math.Round(f)
		if math.Abs(f-r) < 1e-9*math.Max(1, math.Abs(f)) {
			list = append(list, r)
		}
	}
	return list
}

type CategoryAxis struct {
	Title
	Orientation
	Rotate         float64
	Scaler         Scaler[string]
	Domain         []string
	Class          string
	WithInnerTicks bool
	WithOuterTicks bool
}

func (a CategoryAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	if a.Class != "" {
		g.Class = append(g.Class, a.Class)
	}
	d := domainLine(a.Orientation, length, svg.NewStroke("black", 1))
	g.Append(d.AsElement())

	var (
		align = a.Scaler.Space() / 2
		font  = svg.NewFont(FontSize)
		data  = a.Domain
	)
	if b, ok := a.Scaler.(interface{ Bandwidth() float64 }); ok {
		align = b.Bandwidth() / 2
	}
	if len(data) == 0 {
		data = a.Scaler.Values(0)
	}
	for _, s := range data {
		var (
			pos = a.Scaler.Scale(s)
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, align, tickSize, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithOuterTicks {
			sk := d.Stroke
			sk.DashArray(5)
			tick := lineTick(a.Orientation, align, -size, sk)
			grp.Append(tick.AsElement())
		}
		if a.Rotate != 0 && !a.Vertical() {
			grp.Append(rotatedText(a.Orientation, s, align, a.Rotate, font))
		} else {
			text := tickText(a.Orientation, s, align, font)
			grp.Append(text.AsElement())
		}
		g.Append(grp.AsElement())
	}
	if a.Title.Text != "" {
		g.Append(a.Title.render(a.Orientation, length))
	}
	return g.AsElement()
}

func rotatedText(orient Orientation, str string, offset, angle float64, font svg.Font) svg.Element {
	y := tickSize + labelOffset/2
	if orient.Reverse() {
		y = -y
	}
	var grp svg.Group
	grp.Transform = svg.Translate(offset, y)
	grp.Transform.RA = angle

	text := svg.NewText(str)
	text.Font = font
	text.Anchor = "end"
	if angle > 0 {
		text.Anchor = "start"
	}
	text.Baseline = "middle"
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = stroke
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, tickSize + labelOffset/2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
