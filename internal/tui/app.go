// Package tui is the terminal front end: the setup, game and theme screens
// and the root model that routes messages between them.
package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/lucky/internal/theme"
	"github.com/idilsaglam/lucky/internal/ticker"
	"github.com/idilsaglam/lucky/internal/ui"
)

// Themeable is implemented by every view that draws with the palette.
type Themeable interface {
	ApplyTheme(ui.Styles)
}

// screen is the closed set of views the app switches between.
type screen interface {
	Themeable
	Update(tea.Msg) tea.Cmd
	View() string
	Help() help.KeyMap
}

// Options tune the game screen's timers and randomness.
type Options struct {
	SlotInterval  time.Duration
	CoinInterval  time.Duration
	FrameInterval time.Duration
	Diamonds      int
	Rand          *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.SlotInterval <= 0 {
		o.SlotInterval = 100 * time.Millisecond
	}
	if o.CoinInterval <= 0 {
		o.CoinInterval = time.Second
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = 50 * time.Millisecond
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// App is the root Bubble Tea model.
type App struct {
	themes *theme.Manager
	styles ui.Styles
	help   help.Model

	active screenID
	setup  *setupScreen
	game   *gameScreen
	picker *themeScreen

	width  int
	height int
}

func New(themes *theme.Manager, opts Options) App {
	opts = opts.withDefaults()
	m := App{
		themes: themes,
		help:   help.New(),
		active: setupScreenID,
		setup:  newSetupScreen(),
		game:   newGameScreen(opts),
		picker: newThemeScreen(themes),
	}
	m.applyTheme()
	return m
}

func (m App) screens() []screen {
	return []screen{m.setup, m.game, m.picker}
}

func (m App) current() screen {
	switch m.active {
	case gameScreenID:
		return m.game
	case themeScreenID:
		return m.picker
	default:
		return m.setup
	}
}

// applyTheme rebuilds the styles from the manager and pushes them to every screen.
func (m *App) applyTheme() {
	m.styles = ui.NewStyles(m.themes.Palette())
	for _, s := range m.screens() {
		s.ApplyTheme(m.styles)
	}
	m.help.Styles.ShortKey = m.styles.Label.Bold(true)
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.ShortSeparator = m.styles.Muted
	m.help.Styles.Ellipsis = m.styles.Muted
}

func (m App) Init() tea.Cmd {
	return tea.Batch(m.game.Init(), textinput.Blink)
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.game.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case ticker.TickMsg:
		// the coin rain keeps falling behind the other screens
		return m, m.game.Update(msg)

	case showScreenMsg:
		m.active = msg.id
		return m, nil

	case startGameMsg:
		m.game.Setup(msg.setup)
		m.active = gameScreenID
		return m, nil

	case themeSelectedMsg:
		m.themes.SetTheme(msg.name)
		m.applyTheme()
		return m, nil
	}

	return m, m.current().Update(msg)
}

func (m App) View() string {
	s := m.current()
	body := lipgloss.JoinVertical(lipgloss.Center,
		s.View(),
		"",
		m.help.View(s.Help()),
	)
	return m.styles.Fill(m.width, m.height, m.styles.Screen.Render(body))
}
