package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"denpicker/internal/ui/input/modes"
	"denpicker/internal/ui/input/types"
)

// Handler routes key presses to the active mode and owns the search box
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view layer
	ti.Placeholder = "Search by name"
	ti.CharLimit = 64
	ti.Focus()

	h := &Handler{
		currentMode: types.ModePicker,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModePicker] = modes.NewPickerMode()
	h.modes[types.ModeSlots] = modes.NewSlotsMode()
	h.modes[types.ModeDetail] = modes.NewDetailMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			cmd = h.switchMode(a.Mode, ctx, &allActions)
		case types.ClearQueryAction:
			h.textInput.Reset()
			allActions = append(allActions, types.UpdateQueryAction{Text: ""})
		default:
			allActions = append(allActions, action)
		}
	}

	// Unconsumed keys in the picker go to the search box
	if !consumed && h.isTextMode(h.currentMode) {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateQueryAction{Text: after})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context, actions *[]types.Action) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}

	if current := h.modes[h.currentMode]; current != nil {
		*actions = append(*actions, current.Exit(ctx)...)
	}

	oldMode := h.currentMode
	h.currentMode = mode

	if next := h.modes[h.currentMode]; next != nil {
		*actions = append(*actions, next.Enter(ctx)...)
	}

	if h.isTextMode(h.currentMode) {
		h.textInput.Focus()
		return textinput.Blink
	}
	if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the shared search box
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Query returns the current search text
func (h *Handler) Query() string {
	return h.textInput.Value()
}

// ResetQuery empties the search box
func (h *Handler) ResetQuery() {
	h.textInput.Reset()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModePicker
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// ChangeMode forces a mode without running enter/exit hooks
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
	if h.isTextMode(mode) {
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}
