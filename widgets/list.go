package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// List renders a title and one row per item, marking Cursor when it is in
// range. Rows past height are dropped from the bottom.
type List struct {
	Title  string
	Items  []string
	Cursor int
	Empty  string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, l.Title)
	}
	if len(l.Items) == 0 && l.Empty != "" {
		rows = append(rows, l.Empty)
	}
	for i, item := range l.Items {
		prefix := "  "
		if i == l.Cursor {
			prefix = "> "
		}
		rows = append(rows, prefix+item)
	}
	return strings.Join(fitLines(strings.Join(rows, "\n"), width, height), "\n")
}

// Table renders rows as aligned, space-separated columns, cutting lines at
// width.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}
	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = padRight(cell, widths[i])
		}
		return ansi.Truncate(strings.TrimRight(strings.Join(parts, "  "), " "), width, "…")
	}
	lines := []string{line(t.Headers)}
	for _, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		lines = append(lines, line(row))
	}
	return strings.Join(lines, "\n")
}
