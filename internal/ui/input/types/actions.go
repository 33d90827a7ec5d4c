package types

// Navigation actions
type MoveOptionAction struct {
	Delta int
}

func (a MoveOptionAction) Type() string { return "move_option" }

type MoveSlotAction struct {
	Delta int
}

func (a MoveSlotAction) Type() string { return "move_slot" }

// Den actions
type AppendAction struct {
	ID string
}

func (a AppendAction) Type() string { return "append" }

type RemoveAction struct {
	ID string
}

func (a RemoveAction) Type() string { return "remove" }

// ClearAction empties the den; modes only emit it when the den is full
type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// Detail overlay actions
type OpenDetailAction struct {
	ID string
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

type CopyImageAction struct {
	ID string
}

func (a CopyImageAction) Type() string { return "copy_image" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Other actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
