package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Narrow   key.Binding
	Widen    key.Binding
	Toggle   key.Binding
	Reset    key.Binding
	Cancel   key.Binding
	Switcher key.Binding
	AskAI    key.Binding
	Render   key.Binding
	Compose  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Narrow:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "narrow toolbar")),
		Widen:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "widen toolbar")),
		Toggle:   key.NewBinding(key.WithKeys("\\"), key.WithHelp("\\", "collapse/expand")),
		Reset:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset split")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Switcher: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "quick switcher")),
		// terminals deliver ctrl+i as tab
		AskAI:   key.NewBinding(key.WithKeys("ctrl+i", "tab"), key.WithHelp("ctrl+i", "ask AI")),
		Render:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "render")),
		Compose: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new composition")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrow, k.Widen, k.Toggle, k.Reset, k.Render, k.Quit}
}

func (k keyMap) helpText() string {
	parts := make([]string, 0, 6)
	for _, b := range k.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
