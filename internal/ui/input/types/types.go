package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModePicker Mode = iota
	ModeSlots
	ModeDetail
)

func (m Mode) String() string {
	switch m {
	case ModePicker:
		return "picker"
	case ModeSlots:
		return "slots"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// HighlightedOption returns the id of the option under the picker cursor
	HighlightedOption() (string, bool)
	// SlotCursor returns the slot index under the cursor
	SlotCursor() int
	// SlotID returns the identifier in slot i, if occupied
	SlotID(i int) (string, bool)
	DenFull() bool
	// DetailID returns the identifier shown in the detail overlay
	DetailID() string
	Query() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
