package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"denpicker/internal/ui/input/types"
)

// SlotsMode navigates the fixed den slots
type SlotsMode struct{}

func NewSlotsMode() *SlotsMode {
	return &SlotsMode{}
}

func (m *SlotsMode) Name() string {
	return "slots"
}

func (m *SlotsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SlotsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SlotsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []types.Action{types.QuitAction{}}, true

	case "tab", "shift+tab", "/", "a", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePicker}}, true

	case "up", "k":
		return []types.Action{types.MoveSlotAction{Delta: -1}}, true

	case "down", "j":
		return []types.Action{types.MoveSlotAction{Delta: 1}}, true

	case "enter", " ":
		if id, ok := ctx.SlotID(ctx.SlotCursor()); ok {
			return []types.Action{
				types.OpenDetailAction{ID: id},
				types.ChangeModeAction{Mode: types.ModeDetail},
			}, true
		}
		return nil, true

	case "d", "x", "delete", "backspace":
		if id, ok := ctx.SlotID(ctx.SlotCursor()); ok {
			return []types.Action{types.RemoveAction{ID: id}}, true
		}
		return nil, true

	case "ctrl+x":
		if ctx.DenFull() {
			return []types.Action{types.ClearAction{}}, true
		}
		return nil, true

	case "?", "f1":
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}
