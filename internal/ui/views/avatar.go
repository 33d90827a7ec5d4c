package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// initial returns the first character of label, or "?" when there is none
func initial(label string) string {
	r, size := utf8.DecodeRuneInString(label)
	if size == 0 || r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

// RenderAvatar draws a one-line badge for a slot or option row
func RenderAvatar(id, label string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(AvatarColor(id)).
		Padding(0, 1).
		Render(initial(label))
}

// RenderLargeAvatar draws the enlarged badge shown in the detail overlay
func RenderLargeAvatar(id, label string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(AvatarColor(id)).
		Width(11).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Render(initial(label))
}
