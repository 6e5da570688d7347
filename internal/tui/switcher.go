package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/splitpane/widgets"
)

type compositionSelectedMsg struct {
	Name string
}

// QuickSwitcher filters compositions by substring first and edit distance
// second.
type QuickSwitcher struct {
	input   textinput.Model
	all     []string
	matches []string
	cursor  int
}

func NewQuickSwitcher(compositions []string) *QuickSwitcher {
	inp := textinput.New()
	inp.Placeholder = "composition"
	inp.Prompt = "> "
	inp.Focus()
	s := &QuickSwitcher{input: inp, all: compositions}
	s.refresh()
	return s
}

func (s *QuickSwitcher) Title() string { return "Quick switcher" }

func (s *QuickSwitcher) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			if s.cursor < len(s.matches) {
				name := s.matches[s.cursor]
				return s, func() tea.Msg { return compositionSelectedMsg{Name: name} }, true
			}
			return s, nil, true
		case "up", "ctrl+p":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil, false
		case "down", "ctrl+n":
			if s.cursor < len(s.matches)-1 {
				s.cursor++
			}
			return s, nil, false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refresh()
	return s, cmd, false
}

func (s *QuickSwitcher) refresh() {
	s.matches = rankCompositions(s.input.Value(), s.all)
	if s.cursor >= len(s.matches) {
		s.cursor = max(0, len(s.matches)-1)
	}
}

func (s *QuickSwitcher) View(width, height int) string {
	list := widgets.List{Items: s.matches, Cursor: s.cursor, Empty: "(no match)"}
	return s.input.View() + "\n" + list.Render(max(10, width), max(1, height-1))
}

// rankCompositions orders names for query. Substring hits come first by
// match position; the rest are kept when their edit distance is within half
// the query length.
func rankCompositions(query string, names []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]string(nil), names...)
	}
	type scored struct {
		name  string
		sub   int
		dist  int
		order int
	}
	var hits []scored
	for i, n := range names {
		lower := strings.ToLower(n)
		if idx := strings.Index(lower, q); idx >= 0 {
			hits = append(hits, scored{name: n, sub: idx, order: i})
			continue
		}
		d := levenshtein.ComputeDistance(q, lower)
		if d <= len(q)/2 {
			hits = append(hits, scored{name: n, sub: -1, dist: d, order: i})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if (a.sub >= 0) != (b.sub >= 0) {
			return a.sub >= 0
		}
		if a.sub >= 0 {
			return a.sub < b.sub
		}
		return a.dist < b.dist
	})
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}
	return out
}
