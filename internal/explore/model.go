// Package explore provides a terminal interface driving the line chart
// viewer: the table of series stands for the lines of the chart and the
// keyboard for the pointer.
package explore

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/midbel/datavis/linechart"
)

var ErrTerminal = errors.New("explore: stdout is not a terminal")

const (
	nameWidth = 28
	panStep   = 0.05
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	domainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#66C2A5"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the Bubble Tea explorer.
type Model struct {
	viewer *linechart.Viewer
	names  []string
	table  table.Model
	out    string

	hovered string
	status  string
	errMsg  string

	width  int
	height int
}

// New creates the explorer. Snapshots of the chart are written to out.
func New(v *linechart.Viewer, out string) *Model {
	m := Model{
		viewer: v,
		names:  v.Names(),
		out:    out,
	}
	m.table = table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(maxInt(1, len(m.names))),
	)
	m.table.SetStyles(tableStyles())
	if len(m.names) > 0 {
		m.hover(m.names[0])
	}
	m.refresh()
	return &m
}

// Run starts the explorer on the terminal.
func Run(v *linechart.Viewer, out string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrTerminal
	}
	program := tea.NewProgram(New(v, out), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run explorer: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(maxInt(1, msg.Height-6))
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		m.status, m.errMsg = "", ""
		switch msg.String() {
		case " ", "enter":
			m.viewer.Click(m.hovered)
		case "left", "h":
			m.pan(-1)
		case "right", "l":
			m.pan(1)
		case "+", "=":
			m.resize(-1)
		case "-":
			m.resize(1)
		case "c":
			m.viewer.Clear()
		case "w":
			m.snapshot()
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			if row := m.table.SelectedRow(); len(row) > 0 {
				m.hover(m.names[m.table.Cursor()])
			}
			m.refresh()
			return m, cmd
		}
		m.refresh()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ point • space pin • ←/→ pan • +/- zoom • c reset • w write svg • q quit"))
	return b.String()
}

// hover moves the pointer from the current serie to name.
func (m *Model) hover(name string) {
	if name == m.hovered {
		return
	}
	if m.hovered != "" {
		m.viewer.Leave(m.hovered)
	}
	m.hovered = name
	m.viewer.Enter(name)
}

// pan moves the brush by a fraction of the overview, keeping its width.
func (m *Model) pan(dir float64) {
	var (
		vp  = m.viewer.Viewport()
		rg  = vp.Range()
		sel = vp.Selection()
		off = dir * panStep * (rg.Max() - rg.Min())
	)
	if sel.X0+off < rg.Min() {
		off = rg.Min() - sel.X0
	}
	if sel.X1+off > rg.Max() {
		off = rg.Max() - sel.X1
	}
	if off == 0 {
		return
	}
	m.viewer.Brush(sel.X0+off, sel.X1+off)
}

// resize grows (dir > 0) or shrinks the brush on both sides.
func (m *Model) resize(dir float64) {
	var (
		vp  = m.viewer.Viewport()
		rg  = vp.Range()
		sel = vp.Selection()
		off = dir * panStep * (rg.Max() - rg.Min())
	)
	x0, x1 := rg.Clamp(sel.X0-off), rg.Clamp(sel.X1+off)
	if x1-x0 < 1 {
		return
	}
	m.viewer.Brush(x0, x1)
}

func (m *Model) snapshot() {
	f, err := os.Create(m.out)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	defer f.Close()
	if err := m.viewer.Render(f); err != nil {
		m.errMsg = err.Error()
		return
	}
	info, err := f.Stat()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.status = fmt.Sprintf("wrote %s (%s)", m.out, humanize.Bytes(uint64(info.Size())))
}

func (m *Model) refresh() {
	sc := m.viewer.Scene()
	lines := make(map[string]linechart.Line, len(sc.Lines))
	for _, ln := range sc.Lines {
		lines[ln.Name] = ln
	}
	rows := make([]table.Row, 0, len(m.names))
	for _, n := range m.names {
		ln := lines[n]
		label := "-"
		if ln.Label.Visible && ln.Label.Inside {
			label = fmt.Sprintf("%.0f,%.0f", ln.Label.X, ln.Label.Y)
		}
		rows = append(rows, table.Row{
			runewidth.Truncate(n, nameWidth, "…"),
			ln.Ident,
			ln.State.String(),
			ln.Emphasis.String(),
			fmt.Sprintf("%.2f", ln.Opacity),
			label,
		})
	}
	m.table.SetRows(rows)
}

func (m *Model) renderHeader() string {
	var (
		dom  = m.viewer.Domain()
		full = m.viewer.Viewport().Full()
		str  = fmt.Sprintf("years %.1f - %.1f", dom.Min, dom.Max)
	)
	if dom != full {
		str += headerStyle.Render(fmt.Sprintf(" of %.0f - %.0f", full.Min, full.Max))
	}
	pinned := m.viewer.Pinned()
	return domainStyle.Render(str) + headerStyle.Render(fmt.Sprintf("  •  %d pinned", len(pinned)))
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Serie", Width: nameWidth},
		{Title: "Code", Width: 5},
		{Title: "State", Width: 10},
		{Title: "Emphasis", Width: 10},
		{Title: "Opacity", Width: 7},
		{Title: "Label", Width: 10},
	}
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
