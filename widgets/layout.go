package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	handleIdle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
	handleActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
)

// HSplit places two widgets side by side with a handle strip between them.
// Widths come from the caller; a zero width hides that side.
type HSplit struct {
	Start, End  Widget
	StartWidth  int
	HandleWidth int
	EndWidth    int
	Active      bool
}

func (s HSplit) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	start := renderColumn(s.Start, s.StartWidth, height)
	end := renderColumn(s.End, s.EndWidth, height)
	style, glyph := handleIdle, "│"
	if s.Active {
		style, glyph = handleActive, "┃"
	}
	strip := ""
	if s.HandleWidth > 0 {
		strip = style.Render(strings.Repeat(glyph, s.HandleWidth))
	}
	out := make([]string, height)
	for i := range out {
		out[i] = padRight(start[i]+strip+end[i], width)
	}
	return strings.Join(out, "\n")
}

// VSplit stacks two widgets with a horizontal handle rule between them.
type VSplit struct {
	Start, End   Widget
	StartHeight  int
	HandleHeight int
	EndHeight    int
	Active       bool
}

func (s VSplit) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style, glyph := handleIdle, "─"
	if s.Active {
		style, glyph = handleActive, "━"
	}
	out := make([]string, 0, height)
	out = append(out, renderColumn(s.Start, width, s.StartHeight)...)
	for i := 0; i < s.HandleHeight; i++ {
		out = append(out, style.Render(strings.Repeat(glyph, width)))
	}
	out = append(out, renderColumn(s.End, width, s.EndHeight)...)
	return strings.Join(fitLines(strings.Join(out, "\n"), width, height), "\n")
}

// renderColumn returns exactly height lines, each exactly width columns.
func renderColumn(w Widget, width, height int) []string {
	if height <= 0 {
		return nil
	}
	if width <= 0 || w == nil {
		return fitLines("", width, height)
	}
	return fitLines(w.Render(width, height), width, height)
}

func fitLines(s string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
