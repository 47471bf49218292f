package linechart

import (
	"io"

	"github.com/midbel/datavis"
	"github.com/midbel/svg"
)

const (
	labelOffset  = 5
	titleColor   = "#333"
	contextColor = "#999"
	brushColor   = "#777"
	gridOpacity  = 0.3
)

const (
	XTitle = "Year"
	YTitle = "Fertility Rate (births per woman)"
)

func render(w io.Writer, v *Viewer, sc Scene) error {
	var (
		cs    = v.layout.Canvas()
		focus = focusChart(v.layout, sc, v.y)
		ctx   = contextChart(v.layout, sc, v.y)
	)
	return cs.Render(w, focus.Element(focusLayers(v, sc)...), ctx.Element(contextLayers(v, sc)...))
}

func focusChart(layout Layout, sc Scene, y datavis.Linear) datavis.Chart {
	grid := datavis.Grid{
		Dashed:  true,
		Opacity: gridOpacity,
	}
	return datavis.Chart{
		Class:   "focus",
		Width:   layout.Width,
		Height:  layout.Height,
		Padding: layout.Margin,
		Left: datavis.NumberAxis{
			Orientation:    datavis.OrientLeft,
			Class:          "y-axis",
			Scaler:         y,
			Ticks:          datavis.DefaultTicks,
			Format:         datavis.DecimalFormat(1),
			Grid:           &grid,
			WithInnerTicks: true,
			WithLabelTicks: true,
			Title: datavis.Title{
				Text:   YTitle,
				Offset: 50,
				Color:  titleColor,
			},
		},
		Bottom: datavis.NumberAxis{
			Orientation:    datavis.OrientBottom,
			Class:          "x-axis",
			Scaler:         yearScaler(sc.Domain, layout.Range()),
			Ticks:          datavis.DefaultTicks,
			Format:         datavis.YearFormat,
			Grid:           &grid,
			Integer:        true,
			WithInnerTicks: true,
			WithLabelTicks: true,
			Title: datavis.Title{
				Text:   XTitle,
				Offset: 40,
				Color:  titleColor,
			},
		},
	}
}

func contextChart(layout Layout, sc Scene, y datavis.Linear) datavis.Chart {
	return datavis.Chart{
		Class:   "context",
		Width:   layout.Width,
		Height:  layout.ContextHeight,
		OffsetY: layout.ContextTop(),
		Padding: datavis.Padding{
			Left:  layout.Margin.Left,
			Right: layout.Margin.Right,
		},
		Bottom: datavis.NumberAxis{
			Orientation:    datavis.OrientBottom,
			Class:          "x-axis-context",
			Scaler:         yearScaler(sc.Full, layout.Range()),
			Ticks:          datavis.DefaultTicks,
			Format:         datavis.YearFormat,
			Integer:        true,
			WithInnerTicks: true,
			WithLabelTicks: true,
		},
	}
}

func yearScaler(dom Extent, rg datavis.Range) datavis.Linear {
	return datavis.NumberScaler(dom.domain(), rg)
}

func focusLayers(v *Viewer, sc Scene) []datavis.Layer {
	var (
		rg   = v.layout.Range()
		x    = yearScaler(sc.Domain, rg)
		list []datavis.Layer
	)
	for _, ln := range sc.Lines {
		s, _ := v.Series(ln.Name)
		list = append(list, datavis.Serie[float64, float64]{
			Ident:  "serie-" + ln.Ident,
			Color:  ln.Color,
			Title:  ln.Name,
			X:      x,
			Y:      v.y,
			Points: points(s),
			Renderer: datavis.LinearRenderer[float64, float64]{
				Width:     ln.Width,
				Opacity:   ln.Opacity,
				Class:     []string{"line", ln.Emphasis.String()},
				Clip:      &rg,
				Highlight: ln.State == Permanent || ln.Hovered,
			},
		})
	}
	list = append(list, datavis.LayerFunc(func() svg.Element {
		return drawLabels(sc)
	}))
	return list
}

func contextLayers(v *Viewer, sc Scene) []datavis.Layer {
	var (
		rg   = v.layout.Range()
		x    = yearScaler(sc.Full, rg)
		y    = datavis.NumberScaler(v.y.Domain, datavis.NewRange(0, v.layout.ContextHeight))
		list []datavis.Layer
	)
	for _, ln := range sc.Lines {
		s, _ := v.Series(ln.Name)
		list = append(list, datavis.Serie[float64, float64]{
			Title:  ln.Name,
			X:      x,
			Y:      y,
			Points: points(s),
			Renderer: datavis.LinearRenderer[float64, float64]{
				Color:   contextColor,
				Width:   1,
				Opacity: 0.4,
				Class:   []string{"context-line"},
			},
		})
	}
	list = append(list, datavis.LayerFunc(func() svg.Element {
		return drawBrush(sc.Brush, rg, v.layout.ContextHeight)
	}))
	return list
}

func drawLabels(sc Scene) svg.Element {
	grp := svg.NewGroup()
	grp.Class = append(grp.Class, "labels")
	for _, ln := range sc.Lines {
		if !ln.Label.Visible || !ln.Label.Inside {
			continue
		}
		var lab svg.Group
		lab.Class = append(lab.Class, "country-label")
		lab.Fill = svg.NewFill(ln.Color)

		dot := datavis.Circle("")
		lab.Append(dot(svg.NewPos(ln.Label.X-labelOffset, ln.Label.Y)))

		txt := svg.NewText(ln.Label.Text)
		txt.Font = svg.NewFont(datavis.FontSize)
		txt.Baseline = "middle"
		txt.Pos = svg.NewPos(ln.Label.X, ln.Label.Y)
		lab.Append(txt.AsElement())
		grp.Append(lab.AsElement())
	}
	return grp.AsElement()
}

func drawBrush(b Brush, rg datavis.Range, height float64) svg.Element {
	grp := svg.NewGroup()
	grp.Class = append(grp.Class, "brush")

	var overlay svg.Rect
	overlay.Pos = svg.NewPos(rg.Min(), 0)
	overlay.Dim = svg.NewDim(rg.Max()-rg.Min(), height)
	overlay.Fill = svg.NewFill("transparent")
	over := svg.NewGroup()
	over.Class = append(over.Class, "overlay")
	over.Append(overlay.AsElement())
	grp.Append(over.AsElement())

	var sel svg.Rect
	sel.Pos = svg.NewPos(b.X0, 0)
	sel.Dim = svg.NewDim(b.Width(), height)
	sel.Fill = svg.NewFill(brushColor)
	sel.Fill.Opacity = gridOpacity
	cur := svg.NewGroup()
	cur.Class = append(cur.Class, "selection")
	cur.Append(sel.AsElement())
	grp.Append(cur.AsElement())

	return grp.AsElement()
}

func points(s Series) []datavis.Point[float64, float64] {
	list := make([]datavis.Point[float64, float64], 0, len(s.Points))
	for _, p := range s.Points {
		list = append(list, datavis.NumberPoint(float64(p.Year), p.Value))
	}
	return list
}
