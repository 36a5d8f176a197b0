package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pick   key.Binding
	Sample key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Sample, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Sample, k.Reset},
		{k.Quit},
	}
}

func newKeyMap(pick, sample, reset, quit string) keyMap {
	return keyMap{
		Pick: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", pick),
		),
		Sample: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", sample),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", reset),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", quit),
		),
	}
}

// setBusy disables the actions that would disturb a running round.
func (k *keyMap) setBusy(busy bool) {
	k.Pick.SetEnabled(!busy)
	k.Sample.SetEnabled(!busy)
	k.Reset.SetEnabled(!busy)
}
