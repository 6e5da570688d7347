package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestHSplitUsesGivenWidths(t *testing.T) {
	s := HSplit{Start: fixedWidget{"toolbar"}, End: fixedWidget{"queue"}, StartWidth: 10, HandleWidth: 1, EndWidth: 9}
	lines := plainLines(s.Render(20, 3))
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[0] != "toolbar   │queue    " {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
		if !strings.Contains(l, "│") {
			t.Fatalf("line %d missing handle strip", i)
		}
	}
}

func TestHSplitCollapsedSideIsHidden(t *testing.T) {
	s := HSplit{Start: fixedWidget{"toolbar"}, End: fixedWidget{"queue"}, StartWidth: 0, HandleWidth: 1, EndWidth: 19, Active: true}
	out := ansi.Strip(s.Render(20, 1))
	if strings.Contains(out, "toolbar") {
		t.Fatalf("collapsed side rendered: %q", out)
	}
	if !strings.HasPrefix(out, "┃queue") {
		t.Fatalf("expected active handle first, got %q", out)
	}
}

func TestVSplitStacksWithRule(t *testing.T) {
	s := VSplit{Start: fixedWidget{"top"}, End: fixedWidget{"bottom"}, StartHeight: 2, HandleHeight: 1, EndHeight: 2}
	lines := plainLines(s.Render(6, 5))
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if lines[0] != "top   " || lines[2] != "──────" || lines[3] != "bottom" {
		t.Fatalf("unexpected layout %q", lines)
	}
}

func TestPaneFillsBox(t *testing.T) {
	out := Pane{Title: "Render queue", Content: "job 1\njob 2"}.Render(20, 5)
	lines := plainLines(out)
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "Render queue") {
		t.Fatalf("title missing from border: %q", lines[0])
	}
	if !strings.Contains(lines[1], "job 1") {
		t.Fatalf("content missing: %q", lines[1])
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestPaneTooSmallForChrome(t *testing.T) {
	out := Pane{Title: "x", Content: "abc"}.Render(2, 1)
	if ansi.Strip(out) != "ab" {
		t.Fatalf("got %q", out)
	}
	if (Pane{}).Render(0, 5) != "" {
		t.Fatal("zero width should render nothing")
	}
}

func TestListMarksCursor(t *testing.T) {
	out := List{Title: "Compositions", Items: []string{"Main", "Intro"}, Cursor: 1}.Render(20, 4)
	lines := plainLines(out)
	if strings.TrimSpace(lines[2]) != "> Intro" {
		t.Fatalf("cursor row = %q", lines[2])
	}
	empty := List{Items: nil, Empty: "(nothing queued)"}.Render(20, 2)
	if !strings.Contains(empty, "nothing queued") {
		t.Fatalf("expected empty text, got %q", empty)
	}
}

func TestTableAlignsColumns(t *testing.T) {
	out := Table{Headers: []string{"KEY", "FLEX"}, Rows: [][]string{{"sidebar-to-main", "0.250"}, {"x", "0.1"}}}.Render(80, 10)
	want := "KEY              FLEX\nsidebar-to-main  0.250\nx                0.1"
	if out != want {
		t.Fatalf("got\n%s\nwant\n%s", out, want)
	}
}

func TestTableCutsLinesAtWidth(t *testing.T) {
	out := Table{Headers: []string{"KEY", "FLEX"}, Rows: [][]string{{"sidebar-to-main", "0.250"}}}.Render(10, 10)
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 10 {
			t.Fatalf("line %q is %d wide, want <= 10", line, w)
		}
	}
	if !strings.HasPrefix(out, "KEY") {
		t.Fatalf("got %q", out)
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	rows := make([]string, 9)
	for i := range rows {
		rows[i] = "row-" + string(rune('0'+i)) + "................"
	}
	out := RenderPopup(strings.Join(rows, "\n"), Card("", "Popup"), 20, 9)
	lines := plainLines(out)
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.HasPrefix(lines[0], "row-0") || !strings.HasPrefix(lines[8], "row-8") {
		t.Fatalf("expected base rows preserved, got %q / %q", lines[0], lines[8])
	}
	if !strings.HasPrefix(lines[4], "row-") {
		t.Fatalf("expected base columns left of the popup, got %q", lines[4])
	}
}

func TestBoxPrefixesTitle(t *testing.T) {
	lines := plainLines(Box{Title: "split expanded", Content: "Ready"}.Render(30, 1))
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "[split expanded] Ready") {
		t.Fatalf("got %q", lines)
	}
	if (Box{Content: "x"}).Render(0, 1) != "" {
		t.Fatalf("expected empty render for zero width")
	}
}
