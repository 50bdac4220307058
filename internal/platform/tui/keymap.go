package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paints/internal/core"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Play       key.Binding
	Back       key.Binding
	Confirm    key.Binding
	Nozzle1    key.Binding
	Nozzle2    key.Binding
	Nozzle3    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Back, k.Confirm, k.Nozzle1, k.Nozzle2, k.Nozzle3, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Back, k.Confirm},
		{k.Nozzle1, k.Nozzle2, k.Nozzle3},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/exit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "main menu"),
		),
		Nozzle1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "red"),
		),
		Nozzle2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "green"),
		),
		Nozzle3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "blue"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for keys the simulation does not care about.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Nozzle1):
		return core.ActionNozzle1
	case key.Matches(msg, k.Nozzle2):
		return core.ActionNozzle2
	case key.Matches(msg, k.Nozzle3):
		return core.ActionNozzle3
	}
	return core.ActionNone
}

// MapMouse records a left click as a pointer press at the world X under
// the cursor. Other mouse events are ignored.
func MapMouse(msg tea.MouseMsg, vp Viewport, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if !core.NewRect(0, 0, vp.Cols, vp.Rows).Contains(msg.X, msg.Y) {
		return false
	}
	frame.SetPointer(vp.WorldX(msg.X))
	return true
}
