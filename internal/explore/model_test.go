package explore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/midbel/datavis/linechart"
	"github.com/midbel/datavis/source"
)

const fertility = `Country Name,Country Code,1960,1961,1962,1963
Aruba,ABW,4.82,4.655,4.471,4.271
Belgium,BEL,2.54,2.63,2.59,2.68
Chile,CHL,5.45,5.39,5.28,5.13
`

func newModel(t *testing.T) (*Model, *linechart.Viewer, string) {
	t.Helper()
	tb, err := source.ReadCSV(strings.NewReader(fertility))
	if err != nil {
		t.Fatal(err)
	}
	ds, err := linechart.Reshape(tb)
	if err != nil {
		t.Fatal(err)
	}
	v, err := linechart.NewViewer(ds, linechart.DefaultLayout(), linechart.DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "lines.svg")
	return New(v, out), v, out
}

func key(str string) tea.KeyMsg {
	switch str {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(str)}
	}
}

func TestCursorHovers(t *testing.T) {
	m, v, _ := newModel(t)
	if name, ok := v.Selection().Hovered(); !ok || name != "Aruba" {
		t.Fatalf("first serie should be hovered, got %q", name)
	}
	m.Update(key("down"))
	if name, ok := v.Selection().Hovered(); !ok || name != "Belgium" {
		t.Fatalf("cursor should hover the next serie, got %q", name)
	}
	if v.Selection().Emphasis("Aruba") != linechart.Dimmed {
		t.Fatalf("previous serie should be dimmed")
	}
}

func TestPin(t *testing.T) {
	m, v, _ := newModel(t)
	m.Update(key(" "))
	if v.Selection().State("Aruba") != linechart.Permanent {
		t.Fatalf("space should pin the hovered serie")
	}
	m.Update(key(" "))
	if v.Selection().State("Aruba") != linechart.Idle {
		t.Fatalf("space twice should release the serie")
	}
}

func TestBrushKeys(t *testing.T) {
	m, v, _ := newModel(t)
	full := v.Viewport().Full()

	m.Update(key("+"))
	dom := v.Domain()
	if dom.Min <= full.Min || dom.Max >= full.Max {
		t.Fatalf("zoom should narrow the domain, got %+v", dom)
	}
	width := v.Viewport().Selection().Width()

	m.Update(key("left"))
	if got := v.Viewport().Selection().Width(); got != width {
		t.Errorf("pan should keep the width of the brush: want %f, got %f", width, got)
	}
	if v.Domain().Min >= dom.Min {
		t.Errorf("pan left should move the domain, got %+v", v.Domain())
	}
	for i := 0; i < 50; i++ {
		m.Update(key("right"))
	}
	if !full.Contains(v.Domain()) {
		t.Errorf("domain out of the full extent: %+v", v.Domain())
	}

	m.Update(key("c"))
	if v.Domain() != full {
		t.Fatalf("reset should restore the full extent, got %+v", v.Domain())
	}
}

func TestSnapshot(t *testing.T) {
	m, _, out := newModel(t)
	m.Update(key("w"))
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	buf, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), "<svg") {
		t.Fatalf("snapshot is not an svg document")
	}
	if !strings.Contains(m.View(), "wrote") {
		t.Errorf("status should report the written file")
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}
