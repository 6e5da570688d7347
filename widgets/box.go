package widgets

import "github.com/charmbracelet/lipgloss"

// Box is a borderless block with an optional bold bracketed title, used for the
// status row.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	body := b.Content
	if b.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render("["+b.Title+"]") + " " + body
	}
	return Text(body).Render(width, height)
}
