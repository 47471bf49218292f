package linechart

type State int

const (
	Idle State = iota
	Permanent
)

func (s State) String() string {
	if s == Permanent {
		return "permanent"
	}
	return "idle"
}

// Emphasis is the visual treatment of a serie derived from the selection.
type Emphasis int

const (
	Normal Emphasis = iota
	Dimmed
	Emphasized
)

func (e Emphasis) String() string {
	switch e {
	case Dimmed:
		return "dimmed"
	case Emphasized:
		return "emphasized"
	default:
		return "normal"
	}
}

const (
	OpacityEmphasized = 1.0
	OpacityRest       = 0.8
	OpacityDimmed     = 0.15
)

// Selection keeps the pinned state of every serie and the serie currently
// under the pointer. It is not safe for concurrent use.
type Selection struct {
	states   map[string]State
	pinned   int
	hovered  string
	hovering bool
}

func NewSelection(names []string) *Selection {
	s := Selection{
		states: make(map[string]State, len(names)),
	}
	for _, n := range names {
		s.states[n] = Idle
	}
	return &s
}

func (s *Selection) known(name string) bool {
	_, ok := s.states[name]
	return ok
}

// Enter marks an idle serie as hovered. Entering a pinned serie has no
// effect.
func (s *Selection) Enter(name string) {
	if !s.known(name) || s.states[name] != Idle {
		return
	}
	s.hovered = name
	s.hovering = true
}

// Leave forgets the hovered serie when the pointer leaves it while it is
// idle.
func (s *Selection) Leave(name string) {
	if !s.known(name) || s.states[name] != Idle {
		return
	}
	if s.hovering && s.hovered == name {
		s.hovered = ""
		s.hovering = false
	}
}

func (s *Selection) Click(name string) {
	if !s.known(name) {
		return
	}
	if s.states[name] == Permanent {
		s.states[name] = Idle
		s.pinned--
	} else {
		s.states[name] = Permanent
		s.pinned++
	}
}

func (s *Selection) State(name string) State {
	return s.states[name]
}

func (s *Selection) Hovered() (string, bool) {
	return s.hovered, s.hovering
}

func (s *Selection) IsHovered(name string) bool {
	return s.hovering && s.hovered == name
}

func (s *Selection) Active() bool {
	return s.pinned > 0 || s.hovering
}

func (s *Selection) Emphasis(name string) Emphasis {
	switch {
	case s.states[name] == Permanent || s.IsHovered(name):
		return Emphasized
	case s.Active():
		return Dimmed
	default:
		return Normal
	}
}

// LabelVisible reports whether the label of the serie should be shown.
func (s *Selection) LabelVisible(name string) bool {
	return s.states[name] == Permanent || s.IsHovered(name)
}

func (s *Selection) Pinned(names []string) []string {
	var list []string
	for _, n := range names {
		if s.states[n] == Permanent {
			list = append(list, n)
		}
	}
	return list
}

type Style struct {
	Rest       float64
	Dimmed     float64
	Emphasized float64
	Width      float64
	HoverWidth float64
}

func DefaultStyle() Style {
	return Style{
		Rest:       OpacityRest,
		Dimmed:     OpacityDimmed,
		Emphasized: OpacityEmphasized,
		Width:      1.5,
		HoverWidth: 3,
	}
}

func (s Style) Opacity(e Emphasis) float64 {
	switch e {
	case Emphasized:
		return s.Emphasized
	case Dimmed:
		return s.Dimmed
	default:
		return s.Rest
	}
}
