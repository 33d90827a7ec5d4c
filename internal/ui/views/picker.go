package views

import (
	"strings"

	"denpicker/internal/domain"
)

// Picker labels
const (
	LabelAdd  = "Add a Pokemon to your den"
	LabelFull = "Pokemon den is full"
	ClearHint = "ctrl+x Clear den"
)

// PickerRenderer renders the search box and its dropdown
type PickerRenderer struct {
	styles *Styles
}

// NewPickerRenderer creates a new picker renderer
func NewPickerRenderer(styles *Styles) *PickerRenderer {
	return &PickerRenderer{styles: styles}
}

// Render draws the label, input box and, while the picker has focus, the matching options
func (pr *PickerRenderer) Render(state ViewState) string {
	var b strings.Builder

	if state.DenFull {
		b.WriteString(pr.styles.LabelFull.Render(LabelFull))
		b.WriteString("  ")
		b.WriteString(pr.styles.ClearHint.Render(ClearHint))
	} else {
		b.WriteString(pr.styles.Label.Render(LabelAdd))
	}
	b.WriteString("\n")

	width := 48
	if state.Width > 0 && state.Width-8 < width {
		width = state.Width - 8
	}
	if width < 10 {
		width = 10
	}

	input := state.InputView
	style := pr.styles.Input
	switch {
	case state.DenFull:
		style = pr.styles.InputDisabled
		input = ""
	case state.Focus == "picker":
		style = pr.styles.InputFocused
	}
	b.WriteString(style.Width(width).Render(input))
	b.WriteString("\n")

	if state.Focus == "picker" && !state.DenFull {
		b.WriteString(pr.renderOptions(state))
	}
	return b.String()
}

func (pr *PickerRenderer) renderOptions(state ViewState) string {
	var b strings.Builder

	if len(state.Options) == 0 {
		// Loading and failure are reported in the status line
		if state.CatalogStatus == domain.CatalogReady && state.Query != "" {
			b.WriteString(pr.styles.Dim.Render("  No matches"))
			b.WriteString("\n")
		}
		return b.String()
	}

	if state.OptionsAbove {
		b.WriteString(pr.styles.Dim.Render("  ↑ more"))
		b.WriteString("\n")
	}
	for _, opt := range state.Options {
		line := opt.Label
		if state.ShowAvatars {
			line = RenderAvatar(opt.ID, opt.Label) + " " + line
		}
		if opt.Chosen {
			line += " " + pr.styles.OptionChosen.Render("✓")
		}
		if opt.Highlighted {
			b.WriteString(pr.styles.OptionActive.Render("› " + line))
		} else {
			b.WriteString(pr.styles.Option.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if state.OptionsBelow {
		b.WriteString(pr.styles.Dim.Render("  ↓ more"))
		b.WriteString("\n")
	}
	return b.String()
}
