package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/lucky/internal/model"
	"github.com/idilsaglam/lucky/internal/theme"
)

type screenID int

const (
	setupScreenID screenID = iota
	gameScreenID
	themeScreenID
)

type showScreenMsg struct{ id screenID }

type startGameMsg struct{ setup model.Setup }

type themeSelectedMsg struct{ name theme.Name }

func show(id screenID) tea.Cmd {
	return func() tea.Msg { return showScreenMsg{id: id} }
}

func startGame(s model.Setup) tea.Cmd {
	return func() tea.Msg { return startGameMsg{setup: s} }
}

func selectTheme(name theme.Name) tea.Cmd {
	return func() tea.Msg { return themeSelectedMsg{name: name} }
}
