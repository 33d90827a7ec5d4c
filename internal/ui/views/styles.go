package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header        lipgloss.Style
	Logo          lipgloss.Style
	HomeLink      lipgloss.Style
	Title         lipgloss.Style
	Label         lipgloss.Style
	LabelFull     lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	InputDisabled lipgloss.Style
	Option        lipgloss.Style
	OptionActive  lipgloss.Style
	OptionChosen  lipgloss.Style
	Slot          lipgloss.Style
	SlotCursor    lipgloss.Style
	SlotEmpty     lipgloss.Style
	SlotName      lipgloss.Style
	ClearHint     lipgloss.Style
	DetailBox     lipgloss.Style
	DetailName    lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 2).
			MarginBottom(1),
		Logo:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		HomeLink: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LabelFull: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		InputDisabled: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("241")).
			Padding(0, 1),
		Option:       lipgloss.NewStyle().PaddingLeft(2),
		OptionActive: lipgloss.NewStyle().PaddingLeft(2).Background(lipgloss.Color("238")).Bold(true),
		OptionChosen: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Slot: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SlotCursor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		SlotEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		SlotName:      lipgloss.NewStyle().Bold(true),
		ClearHint:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		DetailBox:     lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("99")).Padding(1, 3),
		DetailName:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")).MarginBottom(1),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
	}
}

var avatarPalette = []string{"203", "214", "78", "39", "99", "170", "44", "220"}

// AvatarColor picks a stable color for an identifier
func AvatarColor(id string) lipgloss.Color {
	var sum uint32
	for _, r := range id {
		sum = sum*31 + uint32(r)
	}
	return lipgloss.Color(avatarPalette[sum%uint32(len(avatarPalette))])
}
