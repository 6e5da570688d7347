package tui

import (
	"fmt"
	"strings"

	"github.com/jask/splitpane/internal/config"
)

type buttonAction int

const (
	actionNewComposition buttonAction = iota
	actionQuickSwitcher
	actionAskAI
	actionRender
)

type toolbarButton struct {
	Label  string
	Action buttonAction
}

const newCompositionNotice = "New compositions are created by duplicating an existing one: right-click a composition and choose Duplicate."

// toolbarButtons lists the toolbar rows top to bottom. Labels follow the
// keyboard-shortcut setting and the ask-AI button only exists when enabled.
func toolbarButtons(studio config.StudioConfig) []toolbarButton {
	switcher, ask := "🔍", "🤖"
	if studio.KeyboardShortcuts {
		switcher, ask = "⌘K", "⌘I"
	}
	buttons := []toolbarButton{
		{Label: "+ New composition", Action: actionNewComposition},
		{Label: "Quick switcher " + switcher, Action: actionQuickSwitcher},
	}
	if studio.AskAI {
		buttons = append(buttons, toolbarButton{Label: "Ask AI " + ask, Action: actionAskAI})
	}
	return append(buttons, toolbarButton{Label: "Render (r)", Action: actionRender})
}

// updateCheckText compares the running and latest known versions.
func updateCheckText(current, latest string) string {
	current = strings.TrimPrefix(strings.TrimSpace(current), "v")
	latest = strings.TrimPrefix(strings.TrimSpace(latest), "v")
	switch {
	case latest == "":
		return "v" + current
	case latest != current:
		return fmt.Sprintf("Update available: v%s", latest)
	default:
		return fmt.Sprintf("v%s (latest)", current)
	}
}

func renderToolbar(buttons []toolbarButton, composition, update string) string {
	rows := make([]string, 0, len(buttons)+4)
	for _, b := range buttons {
		rows = append(rows, b.Label)
	}
	rows = append(rows, "", "Composition: "+composition, update)
	return strings.Join(rows, "\n")
}
