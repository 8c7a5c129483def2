package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	finish     key.Binding
	skip       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	finish: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "finish & reflect"),
	),
	skip: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "skip reflection"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "abandon"),
	),
}
