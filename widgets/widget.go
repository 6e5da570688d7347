package widgets

import "strings"

// Widget draws itself into exactly width columns and at most height lines.
type Widget interface {
	Render(width, height int) string
}

// Text is a plain string widget.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return strings.Join(fitLines(string(t), width, height), "\n")
}
