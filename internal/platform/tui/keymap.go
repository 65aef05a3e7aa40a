package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the configuration, so players can remap them.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds key bindings from the configured key names.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Up:      binding(kb.Up, "up"),
		Down:    binding(kb.Down, "down"),
		Left:    binding(kb.Left, "left"),
		Right:   binding(kb.Right, "right"),
		Pause:   binding(kb.Pause, "pause"),
		Restart: binding(kb.Restart, "restart"),
		Quit:    binding(kb.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings of the embedded default config.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Action returns the action bound to msg, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Quit}
}

// FullHelp returns all key bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Quit},
	}
}
