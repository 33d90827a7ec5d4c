package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"denpicker/internal/ui/input/types"
)

// PickerMode drives the search box. Keys it does not consume are typed into the query.
type PickerMode struct{}

func NewPickerMode() *PickerMode {
	return &PickerMode{}
}

func (m *PickerMode) Name() string {
	return "picker"
}

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "tab", "shift+tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSlots}}, true
	case "up", "ctrl+p":
		return []types.Action{types.MoveOptionAction{Delta: -1}}, true
	case "down", "ctrl+n":
		return []types.Action{types.MoveOptionAction{Delta: 1}}, true
	case "f1":
		return []types.Action{types.ShowHelpAction{}}, true
	case "ctrl+x":
		if ctx.DenFull() {
			return []types.Action{types.ClearAction{}}, true
		}
		return nil, true
	case "esc":
		if ctx.Query() != "" {
			return []types.Action{types.ClearQueryAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSlots}}, true
	case "enter":
		if ctx.DenFull() {
			return nil, true
		}
		if id, ok := ctx.HighlightedOption(); ok {
			return []types.Action{types.AppendAction{ID: id}}, true
		}
		return nil, true
	}

	// The input is disabled while the den is full
	if ctx.DenFull() {
		switch msg.String() {
		case "q":
			return []types.Action{types.QuitAction{}}, true
		case "?":
			return []types.Action{types.ShowHelpAction{}}, true
		}
		return nil, true
	}
	return nil, false
}
