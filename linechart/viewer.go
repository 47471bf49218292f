// Package linechart draws one line per serie of a wide table in a focus
// chart, together with an overview of every serie on which a brush selects
// the years shown by the focus chart. Pointing at a line highlights it and
// clicking on it pins it.
package linechart

import (
	"io"
	"math"

	"github.com/midbel/datavis"
)

const (
	DefaultWidth         = 900
	DefaultHeight        = 600
	DefaultContextHeight = 100
	DefaultGap           = 50
)

// Layout gives the size of the focus chart, margins included, and of the
// overview drawn below it.
type Layout struct {
	Width         float64
	Height        float64
	ContextHeight float64
	Gap           float64
	Margin        datavis.Padding
}

func DefaultLayout() Layout {
	return Layout{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		ContextHeight: DefaultContextHeight,
		Gap:           DefaultGap,
		Margin: datavis.Padding{
			Top:    30,
			Right:  80,
			Bottom: 100,
			Left:   70,
		},
	}
}

func (l Layout) FocusWidth() float64 {
	return l.Width - l.Margin.Horizontal()
}

func (l Layout) FocusHeight() float64 {
	return l.Height - l.Margin.Vertical()
}

func (l Layout) ContextTop() float64 {
	return l.FocusHeight() + l.Margin.Top + l.Gap
}

func (l Layout) Range() datavis.Range {
	return datavis.NewRange(0, l.FocusWidth())
}

func (l Layout) Canvas() datavis.Canvas {
	return datavis.Canvas{
		Width:  l.Width,
		Height: l.Height + l.ContextHeight,
	}
}

type Label struct {
	Text    string
	X       float64
	Y       float64
	Visible bool
	// Inside is false when the anchor of the label falls outside the years
	// shown by the focus chart.
	Inside bool
}

type Line struct {
	Name     string
	Ident    string
	Color    string
	State    State
	Hovered  bool
	Emphasis Emphasis
	Opacity  float64
	Width    float64
	Label    Label
}

type Scene struct {
	Domain  Extent
	Full    Extent
	Brush   Brush
	Brushed bool
	Upper   float64
	// Lines are given in drawing order: the hovered serie comes last.
	Lines []Line
}

// Viewer bundles the series with the selection and the viewport that the
// events update. It is not safe for concurrent use.
type Viewer struct {
	data   *Dataset
	layout Layout
	style  Style

	names  []string
	index  map[string]int
	lookup map[string]string
	color  func(string) string

	sel  *Selection
	view *Viewport
	y    datavis.Linear
}

func NewViewer(ds *Dataset, layout Layout, style Style) (*Viewer, error) {
	if ds == nil || len(ds.Series) == 0 {
		return nil, ErrNoSeries
	}
	v := Viewer{
		data:   ds,
		layout: layout,
		style:  style,
		index:  make(map[string]int),
		lookup: make(map[string]string),
	}
	for i, s := range ds.Series {
		if _, ok := v.index[s.Name]; ok {
			continue
		}
		v.index[s.Name] = i
		v.names = append(v.names, s.Name)
		v.lookup[s.Name] = s.Name
		if id := s.Ident(); id != "" {
			v.lookup[id] = s.Name
		}
	}
	v.color = datavis.Set2.Ordinal(v.names)
	v.sel = NewSelection(v.names)
	v.view = NewViewport(ds.Extent(), layout.Range())

	max, ok := ds.Max()
	if !ok || max <= 0 {
		max = 1
	}
	dom := datavis.NiceDomain(max, 0, datavis.DefaultTicks)
	v.y = datavis.NumberScaler(dom, datavis.NewRange(0, layout.FocusHeight()))
	return &v, nil
}

func (v *Viewer) Resolve(key string) (string, bool) {
	name, ok := v.lookup[key]
	return name, ok
}

func (v *Viewer) Enter(key string) {
	if name, ok := v.Resolve(key); ok {
		v.sel.Enter(name)
	}
}

func (v *Viewer) Leave(key string) {
	if name, ok := v.Resolve(key); ok {
		v.sel.Leave(name)
	}
}

func (v *Viewer) Click(key string) {
	if name, ok := v.Resolve(key); ok {
		v.sel.Click(name)
	}
}

// Brush selects the years under the pixels x0 and x1 of the overview.
func (v *Viewer) Brush(x0, x1 float64) {
	v.view.Brush(&Brush{X0: x0, X1: x1})
}

func (v *Viewer) Clear() {
	v.view.Clear()
}

func (v *Viewer) Domain() Extent {
	return v.view.Domain()
}

func (v *Viewer) Viewport() *Viewport {
	return v.view
}

func (v *Viewer) Selection() *Selection {
	return v.sel
}

func (v *Viewer) Layout() Layout {
	return v.layout
}

func (v *Viewer) Names() []string {
	return v.names
}

func (v *Viewer) Series(name string) (Series, bool) {
	i, ok := v.index[name]
	if !ok {
		return Series{}, false
	}
	return v.data.Series[i], true
}

func (v *Viewer) Pinned() []string {
	return v.sel.Pinned(v.names)
}

func (v *Viewer) Scene() Scene {
	sc := Scene{
		Domain:  v.view.Domain(),
		Full:    v.view.Full(),
		Brush:   v.view.Selection(),
		Brushed: v.view.Brushed(),
		Upper:   v.y.Invert(0),
	}
	var last *Line
	for _, name := range v.names {
		s, _ := v.Series(name)
		em := v.sel.Emphasis(name)
		ln := Line{
			Name:     name,
			Ident:    s.Ident(),
			Color:    v.color(name),
			State:    v.sel.State(name),
			Hovered:  v.sel.IsHovered(name),
			Emphasis: em,
			Opacity:  v.style.Opacity(em),
			Width:    v.style.Width,
			Label:    v.label(s, sc.Domain),
		}
		if ln.Hovered {
			ln.Width = v.style.HoverWidth
			last = &ln
			continue
		}
		sc.Lines = append(sc.Lines, ln)
	}
	if last != nil {
		sc.Lines = append(sc.Lines, *last)
	}
	return sc
}

func (v *Viewer) label(s Series, dom Extent) Label {
	lab := Label{
		Text:    s.Name,
		Visible: v.sel.LabelVisible(s.Name),
		X:       math.NaN(),
		Y:       math.NaN(),
	}
	pt, ok := s.Last()
	if !ok {
		lab.Visible = false
		return lab
	}
	year := float64(pt.Year)
	lab.X = YearToX(dom, v.layout.Range(), year) + labelOffset
	lab.Y = v.y.Scale(pt.Value)
	lab.Inside = year >= dom.Min && year <= dom.Max
	return lab
}

func (v *Viewer) Render(w io.Writer) error {
	return render(w, v, v.Scene())
}
