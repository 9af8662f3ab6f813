package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for a game session. The bindings
// implement help.KeyMap so the footer help bar renders from the same
// source of truth.
type KeyMap struct {
	Bounce    key.Binding
	Restart   key.Binding
	ForceOver key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bounce: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "bounce"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		ForceOver: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "give up"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bounce, k.Restart, k.Help, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bounce, k.Restart, k.ForceOver},
		{k.SpeedUp, k.SpeedDown, k.Quit},
	}
}
