package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	More   key.Binding
	Less   key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Toggle key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		More: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/+", "more progress"),
		),
		Less: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/-", "less progress"),
		),
		Grow: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "grow center"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "shrink center"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "loading mode"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.More, k.Less, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.More, k.Less, k.Grow, k.Shrink},
		{k.Toggle, k.Theme, k.Help, k.Quit},
	}
}
