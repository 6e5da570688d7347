package tui

import (
	"reflect"
	"testing"

	"github.com/jask/splitpane/internal/config"
)

func TestRankCompositions(t *testing.T) {
	names := []string{"Main", "Intro", "Outro", "Thumbnail"}
	tests := []struct {
		query string
		want  []string
	}{
		{"", names},
		{"intr", []string{"Intro"}},
		{"tro", []string{"Intro", "Outro"}},
		{"otro", []string{"Outro", "Intro"}},
		{"zzzz", []string{}},
	}
	for _, tt := range tests {
		got := rankCompositions(tt.query, names)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("rankCompositions(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestToolbarButtonLabels(t *testing.T) {
	got := toolbarButtons(config.StudioConfig{KeyboardShortcuts: false, AskAI: true})
	if len(got) != 4 || got[1].Label != "Quick switcher 🔍" || got[2].Label != "Ask AI 🤖" {
		t.Fatalf("buttons = %+v", got)
	}
	got = toolbarButtons(config.StudioConfig{KeyboardShortcuts: true})
	if len(got) != 3 || got[1].Label != "Quick switcher ⌘K" {
		t.Fatalf("buttons = %+v", got)
	}
}

func TestUpdateCheckText(t *testing.T) {
	if got := updateCheckText("4.0.0", "v4.1.0"); got != "Update available: v4.1.0" {
		t.Errorf("got %q", got)
	}
	if got := updateCheckText("v4.0.0", "4.0.0"); got != "v4.0.0 (latest)" {
		t.Errorf("got %q", got)
	}
	if got := updateCheckText("4.0.0", ""); got != "v4.0.0" {
		t.Errorf("got %q", got)
	}
}
