package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"denpicker/internal/ui/input/types"
)

// DetailMode handles keys while the detail overlay is open
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDetailAction{}}
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true

	case "esc", "q", "enter", " ":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSlots}}, true

	case "y":
		if id := ctx.DetailID(); id != "" {
			return []types.Action{types.CopyImageAction{ID: id}}, true
		}
		return nil, true

	case "d", "x", "delete":
		if id := ctx.DetailID(); id != "" {
			return []types.Action{
				types.RemoveAction{ID: id},
				types.ChangeModeAction{Mode: types.ModeSlots},
			}, true
		}
		return nil, true
	}

	// The overlay swallows everything else
	return nil, true
}
