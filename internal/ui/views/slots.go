package views

import (
	"strings"
)

// EmptySlotText is shown in unoccupied slots
const EmptySlotText = "Your Pokemon here"

// SlotRenderer renders the fixed den slots
type SlotRenderer struct {
	styles *Styles
}

// NewSlotRenderer creates a new slot renderer
func NewSlotRenderer(styles *Styles) *SlotRenderer {
	return &SlotRenderer{styles: styles}
}

// Render draws every slot, occupied or not, in index order
func (sr *SlotRenderer) Render(state ViewState) string {
	width := 48
	if state.Width > 0 && state.Width-8 < width {
		width = state.Width - 8
	}
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	for _, slot := range state.Slots {
		style := sr.styles.Slot
		if slot.Cursor && state.Focus == "slots" {
			style = sr.styles.SlotCursor
		}
		b.WriteString(style.Width(width).Render(sr.renderSlotContent(slot, state.ShowAvatars)))
		b.WriteString("\n")
	}
	return b.String()
}

func (sr *SlotRenderer) renderSlotContent(slot SlotRow, showAvatars bool) string {
	if !slot.Occupied {
		return sr.styles.SlotEmpty.Render(EmptySlotText)
	}

	line := sr.styles.SlotName.Render(slot.Label)
	if showAvatars {
		line = RenderAvatar(slot.ID, slot.Label) + " " + line
	}
	return line + "  " + sr.styles.Dim.Render("#"+slot.ID)
}
