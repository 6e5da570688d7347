package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card frames a modal body with a rounded border and an optional title line.
func Card(title, body string) string {
	if title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(title) + "\n\n" + body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#89b4fa")).
		Padding(0, 1).
		Render(body)
}

// RenderPopup centres popup over base. Columns of base outside the popup's
// visible extent on each line are kept.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := fitLines(base, width, height)
	overlayLines := fitLines(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup), width, height)
	out := make([]string, height)
	for i := range out {
		start, end, ok := segmentBounds(overlayLines[i], width)
		if !ok {
			out[i] = baseLines[i]
			continue
		}
		left := ansi.Truncate(baseLines[i], start, "")
		segment := ansi.Truncate(dropColumns(overlayLines[i], start), end-start, "")
		right := dropColumns(baseLines[i], end)
		out[i] = padRight(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

func segmentBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	start = len(plain) - len(strings.TrimLeft(plain, " "))
	end = ansi.StringWidth(trimmed)
	return start, end, start < end
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
