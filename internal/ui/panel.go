package ui

import "github.com/charmbracelet/lipgloss"

// Fill centers body on a width x height area painted with the palette
// background. Zero sizes render body as-is.
func (s Styles) Fill(width, height int, body string) string {
	if width <= 0 || height <= 0 {
		return s.Screen.Render(body)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(Color(s.Palette.Background)),
	)
}

// Frame draws a rounded box in the primary color around body.
func (s Styles) Frame(body string) string {
	return s.Screen.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Color(s.Palette.Primary)).
		BorderBackground(Color(s.Palette.Background)).
		Padding(0, 1).
		Render(body)
}

// RenderButton renders a label in its focused or disabled state.
func (s Styles) RenderButton(label string, focused, disabled bool) string {
	switch {
	case disabled:
		return s.ButtonDisabled.Render(label)
	case focused:
		return s.ButtonFocused.Render("> " + label + " <")
	default:
		return s.Button.Render(label)
	}
}
