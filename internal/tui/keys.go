package tui

import "github.com/charmbracelet/bubbles/key"

var (
	quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

	nextKey  = key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next"))
	prevKey  = key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev"))
	enterKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))

	leftKey  = key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/→", "move"))
	rightKey = key.NewBinding(key.WithKeys("right", "l", "tab"))
	startKey = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start"))
	stopKey  = key.NewBinding(key.WithKeys("x", " "), key.WithHelp("space", "stop all"))
	themeKey = key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme"))
	setupKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "new game"))
	exitKey  = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))

	upKey   = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "choose"))
	downKey = key.NewBinding(key.WithKeys("down", "j"))
	backKey = key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back"))
)

// keyMap adapts a flat binding list to help.KeyMap.
type keyMap []key.Binding

func (k keyMap) ShortHelp() []key.Binding  { return k }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

var (
	setupHelp = keyMap{nextKey, prevKey, enterKey, quitKey}
	gameHelp  = keyMap{startKey, stopKey, themeKey, leftKey, enterKey, setupKey, exitKey}
	themeHelp = keyMap{upKey, enterKey, backKey, exitKey}
)
