package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"denpicker/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	AppName       string
	Title         string
	Focus         string // "picker", "slots" or "detail"
	DenFull       bool
	DenCount      int
	DenCapacity   int
	InputView     string
	Query         string
	CatalogStatus domain.CatalogStatus
	CatalogError  string
	SpinnerView   string
	Options       []OptionRow
	OptionsAbove  bool
	OptionsBelow  bool
	Slots         []SlotRow
	Detail        *DetailView
	StatusMessage string
	HelpView      string
	ShowAvatars   bool
}

// OptionRow is one entry in the picker dropdown
type OptionRow struct {
	ID          string
	Label       string
	Chosen      bool // already in the den
	Highlighted bool
}

// SlotRow is one fixed den slot
type SlotRow struct {
	Index    int
	ID       string
	Label    string
	Occupied bool
	Cursor   bool
}

// DetailView is the content of the detail overlay
type DetailView struct {
	ID       string
	Label    string
	ImageURL string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	pickerRender *PickerRenderer
	slotRender   *SlotRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		pickerRender: NewPickerRenderer(styles),
		slotRender:   NewSlotRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Detail != nil {
		return r.popupRender.RenderDetail(*state.Detail, state.Width, state.Height, state.ShowAvatars)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")

	content.WriteString(r.pickerRender.Render(state))
	content.WriteString("\n")

	content.WriteString(r.slotRender.Render(state))

	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")

	if state.HelpView != "" {
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Logo.Render(state.AppName)
	home := r.styles.HomeLink.Render("Home")

	inner := 40
	if state.Width > 10 {
		inner = state.Width - 10
	}
	gap := inner - lipgloss.Width(logo) - lipgloss.Width(home)
	if gap < 2 {
		gap = 2
	}
	return r.styles.Header.Render(logo + strings.Repeat(" ", gap) + home)
}

func (r *Renderer) renderStatus(state ViewState) string {
	var parts []string

	switch state.CatalogStatus {
	case domain.CatalogLoading:
		parts = append(parts, r.styles.StatusLoading.Render(state.SpinnerView+" Loading catalog..."))
	case domain.CatalogFailed:
		parts = append(parts, r.styles.StatusError.Render("Catalog unavailable: "+state.CatalogError))
	}

	parts = append(parts, fmt.Sprintf("%d/%d in den", state.DenCount, state.DenCapacity))

	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}

	return r.styles.Status.Render(strings.Join(parts, "  •  "))
}
