package tui

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/idilsaglam/lucky/internal/game"
	"github.com/idilsaglam/lucky/internal/model"
	"github.com/idilsaglam/lucky/internal/ticker"
	"github.com/idilsaglam/lucky/internal/ui"
)

const (
	startControl = iota
	stopControl
	themeControl
	controlCount
)

// Rows the game screen needs besides the coin band: diamonds, slot boxes,
// stop bar, controls and the blank lines between them, plus the help line.
const gameChromeRows = 11

const (
	diamondGlyph = "◆"
	coinGlyph    = "●"
)

// gameScreen shows the slots, the coin rain and the game controls.
type gameScreen struct {
	styles ui.Styles
	rng    *rand.Rand

	slotInterval time.Duration
	slots        game.Slots
	rotations    []*ticker.Task

	coins *game.CoinField
	spawn *ticker.Task
	frame *ticker.Task

	diamonds []colorful.Color
	focus    int
}

func newGameScreen(opts Options) *gameScreen {
	return &gameScreen{
		rng:          opts.Rand,
		slotInterval: opts.SlotInterval,
		coins:        game.NewCoinField(opts.Rand, opts.FrameInterval),
		spawn:        ticker.New(opts.CoinInterval),
		frame:        ticker.New(opts.FrameInterval),
		diamonds:     game.Diamonds(opts.Diamonds, opts.Rand),
	}
}

// Init starts the coin rain; it runs for the lifetime of the program.
func (g *gameScreen) Init() tea.Cmd {
	return tea.Batch(g.spawn.Start(), g.frame.Start())
}

func (g *gameScreen) ApplyTheme(st ui.Styles) { g.styles = st }

func (g *gameScreen) Help() help.KeyMap { return gameHelp }

func (g *gameScreen) SetSize(width, height int) {
	g.coins.Resize(width, max(1, height-gameChromeRows))
}

// Setup replaces the slot row, stopping any rotation in progress.
func (g *gameScreen) Setup(s model.Setup) {
	g.stopAll()
	g.slots = game.NewSlots(s.Slots, s.MaxNumber)
	g.rotations = make([]*ticker.Task, len(g.slots))
	for i := range g.rotations {
		g.rotations[i] = ticker.New(g.slotInterval)
	}
	g.focus = startControl
}

func (g *gameScreen) Rotating() bool { return g.slots.Rotating() }

func (g *gameScreen) startAll() tea.Cmd {
	if g.Rotating() || len(g.slots) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(g.slots))
	for i, s := range g.slots {
		s.Start()
		cmds = append(cmds, g.rotations[i].Start())
	}
	g.focus = stopControl
	return tea.Batch(cmds...)
}

func (g *gameScreen) stopAll() {
	for _, t := range g.rotations {
		t.Cancel()
	}
	g.slots.StopAll()
	if g.focus == stopControl {
		g.focus = startControl
	}
}

func (g *gameScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ticker.TickMsg:
		return g.tick(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, startKey):
			return g.startAll()
		case key.Matches(msg, stopKey):
			g.stopAll()
		case key.Matches(msg, themeKey):
			return show(themeScreenID)
		case key.Matches(msg, setupKey):
			g.stopAll()
			return show(setupScreenID)
		case key.Matches(msg, exitKey):
			return tea.Quit
		case key.Matches(msg, leftKey):
			g.focus = (g.focus + controlCount - 1) % controlCount
		case key.Matches(msg, rightKey):
			g.focus = (g.focus + 1) % controlCount
		case key.Matches(msg, enterKey):
			return g.press()
		}
	}
	return nil
}

func (g *gameScreen) press() tea.Cmd {
	switch g.focus {
	case startControl:
		return g.startAll()
	case stopControl:
		g.stopAll()
		return nil
	default:
		return show(themeScreenID)
	}
}

func (g *gameScreen) tick(msg ticker.TickMsg) tea.Cmd {
	if ok, next := g.spawn.Accept(msg); ok {
		g.coins.Spawn()
		return next
	}
	if ok, next := g.frame.Accept(msg); ok {
		g.coins.Step()
		return next
	}
	for i, t := range g.rotations {
		if ok, next := t.Accept(msg); ok {
			g.slots[i].Roll(g.rng)
			return next
		}
	}
	return nil
}

func (g *gameScreen) View() string {
	st := g.styles
	rotating := g.Rotating()

	faces := make([]string, 0, len(g.slots))
	for _, s := range g.slots {
		box := st.Slot
		if s.Rotating() {
			box = st.SlotRotating
		}
		faces = append(faces, box.Render(s.Face()))
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		st.RenderButton("Start Rotating", g.focus == startControl, rotating),
		st.Screen.Render("  "),
		st.RenderButton("Change Theme", g.focus == themeControl, false),
	)

	rows := []string{g.diamondRow(), ""}
	rows = append(rows, g.coinRows()...)
	rows = append(rows,
		lipgloss.JoinHorizontal(lipgloss.Top, faces...),
		"",
		st.RenderButton("STOP ALL SLOTS", g.focus == stopControl, !rotating),
		"",
		controls,
	)
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (g *gameScreen) diamondRow() string {
	parts := make([]string, 0, len(g.diamonds))
	for _, c := range g.diamonds {
		parts = append(parts, g.styles.Screen.Foreground(ui.Color(c)).Render(diamondGlyph))
	}
	return strings.Join(parts, g.styles.Screen.Render("   "))
}

func (g *gameScreen) coinRows() []string {
	width, height := g.coins.Size()
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, width)
	}
	for _, c := range g.coins.Coins() {
		grid[c.Row(height)][c.Col] = true
	}

	rows := make([]string, height)
	for y, cells := range grid {
		var b strings.Builder
		gap := 0
		for _, coin := range cells {
			if !coin {
				gap++
				continue
			}
			if gap > 0 {
				b.WriteString(g.styles.Screen.Render(strings.Repeat(" ", gap)))
				gap = 0
			}
			b.WriteString(g.styles.Coin.Render(coinGlyph))
		}
		if gap > 0 {
			b.WriteString(g.styles.Screen.Render(strings.Repeat(" ", gap)))
		}
		rows[y] = b.String()
	}
	return rows
}
