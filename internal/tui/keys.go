package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Reset      key.Binding
	Milestones key.Binding
	Sos        key.Binding
	Quit       key.Binding
	Help       key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Milestones, k.Sos, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Milestones, k.Sos},
		{k.Quit, k.Help},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset streak"),
		),
		Milestones: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "milestones"),
		),
		Sos: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "urge help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
