package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/splitpane/widgets"
)

// RenderJob is one entry in the render queue.
type RenderJob struct {
	ID          string
	Composition string
	Queued      time.Time
}

func newRenderJob(composition string, now time.Time) RenderJob {
	return RenderJob{ID: uuid.NewString(), Composition: composition, Queued: now}
}

type renderRequestedMsg struct {
	Composition string
}

// RenderModal picks a composition to enqueue.
type RenderModal struct {
	compositions []string
	cursor       int
}

func NewRenderModal(compositions []string, current string) *RenderModal {
	m := &RenderModal{compositions: compositions}
	for i, c := range compositions {
		if c == current {
			m.cursor = i
		}
	}
	return m
}

func (m *RenderModal) Title() string { return "Render composition" }

func (m *RenderModal) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch k.String() {
	case "esc", "q":
		return m, nil, true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.compositions)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.compositions) == 0 {
			return m, nil, true
		}
		name := m.compositions[m.cursor]
		return m, func() tea.Msg { return renderRequestedMsg{Composition: name} }, true
	}
	return m, nil, false
}

func (m *RenderModal) View(width, height int) string {
	list := widgets.List{Items: m.compositions, Cursor: m.cursor, Empty: "(no compositions)"}
	return list.Render(max(10, width), max(1, height)) + "\nenter render · esc close"
}
