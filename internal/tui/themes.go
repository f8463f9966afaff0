package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/lucky/internal/theme"
	"github.com/idilsaglam/lucky/internal/ui"
)

// themeScreen offers one button per known theme plus a way back.
type themeScreen struct {
	styles ui.Styles
	themes *theme.Manager
	names  []theme.Name
	cursor int
}

func newThemeScreen(themes *theme.Manager) *themeScreen {
	names := themes.Names()
	cursor := 0
	for i, n := range names {
		if n == themes.Current() {
			cursor = i
		}
	}
	return &themeScreen{themes: themes, names: names, cursor: cursor}
}

func (s *themeScreen) ApplyTheme(st ui.Styles) { s.styles = st }

func (s *themeScreen) Help() help.KeyMap { return themeHelp }

// back is the last entry after the theme buttons.
func (s *themeScreen) back() int { return len(s.names) }

func (s *themeScreen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, upKey):
		s.cursor = (s.cursor + s.back()) % (s.back() + 1)
	case key.Matches(km, downKey):
		s.cursor = (s.cursor + 1) % (s.back() + 1)
	case key.Matches(km, backKey):
		return show(gameScreenID)
	case key.Matches(km, exitKey):
		return tea.Quit
	case key.Matches(km, enterKey):
		if s.cursor == s.back() {
			return show(gameScreenID)
		}
		return selectTheme(s.names[s.cursor])
	}
	return nil
}

func (s *themeScreen) View() string {
	st := s.styles
	rows := []string{st.Title.Render("Select a Theme"), ""}
	for i, n := range s.names {
		label := string(n)
		if n == s.themes.Current() {
			label = "✓ " + label
		}
		rows = append(rows, st.RenderButton(label, s.cursor == i, false), "")
	}
	rows = append(rows, st.RenderButton("Back to Game", s.cursor == s.back(), false))
	return st.Frame(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
