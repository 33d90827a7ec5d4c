package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles the detail overlay
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderDetail renders the enlarged entry centered in the terminal
func (pr *PopupRenderer) RenderDetail(detail DetailView, width, height int, showAvatars bool) string {
	var b strings.Builder

	b.WriteString(pr.styles.DetailName.Render(detail.Label))
	b.WriteString("\n")
	if showAvatars {
		b.WriteString(RenderLargeAvatar(detail.ID, detail.Label))
		b.WriteString("\n\n")
	}
	if detail.ImageURL != "" {
		b.WriteString(pr.styles.Dim.Render(detail.ImageURL))
		b.WriteString("\n\n")
	}
	b.WriteString(pr.styles.Help.Render("y copy image URL • d remove • esc close"))

	popup := pr.styles.DetailBox.Render(
		lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()),
	)

	if width <= 0 || height <= 0 {
		return popup
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}
