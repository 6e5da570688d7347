package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorder        = lipgloss.Color("#6c7086")
	paneBorderFocused = lipgloss.Color("#a6e3a1")
	paneText          = lipgloss.Color("#cdd6f4")
)

// Pane is a rounded frame with the title set into the top border. It fills
// the full width and height it is given.
type Pane struct {
	Title   string
	Content string
	Focused bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 || height < 3 {
		// too small for chrome
		return Text(p.Content).Render(width, height)
	}

	border := paneBorder
	if p.Focused {
		border = paneBorderFocused
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneText).Bold(true)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" && innerWidth > 3 {
		titleText = " " + ansi.Truncate(t, innerWidth-3, "…") + " "
	}
	titleW := ansi.StringWidth(titleText)
	leftDash := 0
	if titleW > 0 && innerWidth-titleW > 0 {
		leftDash = 1
	}
	rightDash := max(0, innerWidth-titleW-leftDash)

	rows := make([]string, 0, height)
	rows = append(rows, borderStyle.Render("╭"+strings.Repeat("─", leftDash))+
		titleStyle.Render(titleText)+
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮"))

	v := borderStyle.Render("│")
	for _, line := range fitLines(p.Content, contentWidth, height-2) {
		rows = append(rows, v+padRight(" "+line, innerWidth)+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
