package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"denpicker/internal/ui/input/types"
)

// keyMap describes the bindings shown in the help line and the pager.
// Dispatch itself happens in the input modes.
type keyMap struct {
	mode types.Mode
	full bool

	Choose  key.Binding
	Options key.Binding
	Focus   key.Binding
	Slots   key.Binding
	Inspect key.Binding
	Remove  key.Binding
	Clear   key.Binding
	Copy    key.Binding
	Close   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to den")),
		Options: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose option")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Slots:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓, j/k", "move between slots")),
		Inspect: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "inspect")),
		Remove:  key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "remove")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear den (when full)")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy image URL")),
		Close:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		Help:    key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?/f1", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// forMode returns a copy scoped to the active mode
func (k keyMap) forMode(mode types.Mode, full bool) keyMap {
	k.mode = mode
	k.full = full
	// ? is typed into the search box while the picker accepts input
	if mode == types.ModePicker && !full {
		k.Help = key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help"))
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case types.ModeDetail:
		return []key.Binding{k.Copy, k.Remove, k.Close}
	case types.ModeSlots:
		bindings := []key.Binding{k.Slots, k.Inspect, k.Remove, k.Focus}
		if k.full {
			bindings = append(bindings, k.Clear)
		}
		return append(bindings, k.Help, k.Quit)
	default:
		if k.full {
			return []key.Binding{k.Clear, k.Focus, k.Help}
		}
		return []key.Binding{k.Options, k.Choose, k.Focus, k.Help}
	}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Options, k.Choose, k.Focus},
		{k.Slots, k.Inspect, k.Remove, k.Clear},
		{k.Copy, k.Close},
		{k.Help, k.Quit},
	}
}
