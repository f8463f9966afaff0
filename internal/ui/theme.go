package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/idilsaglam/lucky/internal/theme"
)

// Gold is the coin color regardless of theme.
var Gold = colorful.Color{R: 1, G: 0.84, B: 0}

// Styles bundles every Lip Gloss style the screens render with.
// All of it is derived from one palette; rebuild it on theme change.
type Styles struct {
	Palette theme.Palette

	Screen lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Muted  lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Slot         lipgloss.Style
	SlotRotating lipgloss.Style
	Coin         lipgloss.Style
}

// Color converts a palette color for Lip Gloss.
func Color(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

func NewStyles(p theme.Palette) Styles {
	bg := Color(p.Background)
	primary := Color(p.Primary)
	secondary := Color(p.Secondary)
	text := Color(p.Text)

	base := lipgloss.NewStyle().Background(bg).Foreground(text)
	button := lipgloss.NewStyle().
		Background(primary).
		Foreground(text).
		Padding(0, 2)
	input := lipgloss.NewStyle().
		Background(secondary).
		Foreground(text).
		Padding(0, 1)
	slot := lipgloss.NewStyle().
		Background(bg).
		Foreground(text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		BorderBackground(bg).
		Width(7).
		Align(lipgloss.Center)

	return Styles{
		Palette: p,

		Screen: base,
		Title:  base.Bold(true),
		Label:  base,
		Muted:  base.Faint(true),

		Button:         button,
		ButtonFocused:  button.Bold(true).Reverse(true),
		ButtonDisabled: button.Faint(true),

		Input:        input,
		InputFocused: input.Bold(true),

		Slot:         slot,
		SlotRotating: slot.BorderForeground(secondary).Bold(true),
		Coin:         lipgloss.NewStyle().Background(bg).Foreground(Color(Gold)),
	}
}
