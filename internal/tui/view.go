package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/splitpane/widgets"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")).Bold(true)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	bodyHeight := m.bodyHeight()
	state := m.splitter.State()
	toolbar := widgets.Pane{
		Title:   "Toolbar",
		Content: renderToolbar(m.buttons, m.composition, updateCheckText(m.studio.Version, m.studio.LatestVersion)),
		Focused: state.Dragging,
	}
	queue := widgets.Pane{
		Title:   fmt.Sprintf("Render queue (%d)", len(m.queue)),
		Content: m.queueContent(),
	}
	var split widgets.Widget = widgets.HSplit{
		Start:       toolbar,
		End:         queue,
		StartWidth:  m.sizes.Start,
		HandleWidth: m.sizes.Handle,
		EndWidth:    m.sizes.End,
		Active:      state.Dragging,
	}
	if m.vertical() {
		split = widgets.VSplit{
			Start:        toolbar,
			End:          queue,
			StartHeight:  m.sizes.Start,
			HandleHeight: m.sizes.Handle,
			EndHeight:    m.sizes.End,
			Active:       state.Dragging,
		}
	}
	body := split.Render(m.width, bodyHeight)

	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		w := min(48, max(20, m.width-8))
		h := max(3, min(12, bodyHeight-6))
		body = widgets.RenderPopup(body, widgets.Card(top.Title(), top.View(w, h)), m.width, bodyHeight)
	}
	return strings.Join([]string{body, m.statusLine(state.String())}, "\n")
}

func (m Model) queueContent() string {
	var b strings.Builder
	if m.askAIOpen {
		b.WriteString("Ask AI\n(assistant not connected)\n\n")
	}
	if len(m.queue) == 0 {
		b.WriteString("(render queue empty)")
		return b.String()
	}
	rows := make([][]string, 0, len(m.queue))
	for _, j := range m.queue {
		rows = append(rows, []string{j.ID[:8], j.Composition, j.Queued.Format("15:04:05")})
	}
	b.WriteString(widgets.Table{Headers: []string{"JOB", "COMPOSITION", "QUEUED"}, Rows: rows}.Render(m.queueWidth(), len(rows)+1))
	return b.String()
}

// queueWidth is the text width inside the render queue pane's border and
// padding.
func (m Model) queueWidth() int {
	w := m.width
	if !m.vertical() {
		w = m.sizes.End
	}
	return max(1, w-4)
}

func (m Model) statusLine(state string) string {
	width := max(1, m.width)
	switch {
	case m.notice != "":
		return widgets.Text(noticeStyle.Render(m.notice)).Render(width, 1)
	case m.statusErr:
		return widgets.Text(errorStyle.Render(m.status)).Render(width, 1)
	}
	return widgets.Box{
		Title:   m.splitter.ID() + " " + state,
		Content: statusStyle.Render(m.status + " · " + m.keys.helpText()),
	}.Render(width, 1)
}
