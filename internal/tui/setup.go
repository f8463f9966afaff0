package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/lucky/internal/model"
	"github.com/idilsaglam/lucky/internal/ui"
)

const (
	slotsField = iota
	maxField
	startButton
	setupFocusCount
)

// setupScreen asks for the slot count and the largest number.
type setupScreen struct {
	styles ui.Styles
	inputs [2]textinput.Model
	labels [2]string
	focus  int
}

func newSetupScreen() *setupScreen {
	s := &setupScreen{labels: [2]string{"Number of slots:", "Max number:"}}
	defaults := [2]int{model.DefaultSlots, model.DefaultMaxNumber}
	for i := range s.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 6
		ti.Width = 8
		ti.SetValue(strconv.Itoa(defaults[i]))
		ti.CursorEnd()
		s.inputs[i] = ti
	}
	s.inputs[slotsField].Focus()
	return s
}

func (s *setupScreen) ApplyTheme(st ui.Styles) {
	s.styles = st
	inner := st.Input.UnsetPadding()
	for i := range s.inputs {
		s.inputs[i].PromptStyle = inner
		s.inputs[i].TextStyle = inner
		s.inputs[i].PlaceholderStyle = inner.Faint(true)
		s.inputs[i].Cursor.Style = inner.Reverse(true)
		s.inputs[i].Cursor.TextStyle = inner
	}
}

func (s *setupScreen) Help() help.KeyMap { return setupHelp }

// Setup is the clamped setup the fields currently describe.
func (s *setupScreen) Setup() model.Setup {
	return model.ParseSetup(s.inputs[slotsField].Value(), s.inputs[maxField].Value())
}

func (s *setupScreen) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, nextKey):
			return s.setFocus(s.focus + 1)
		case key.Matches(msg, prevKey):
			return s.setFocus(s.focus - 1)
		case key.Matches(msg, enterKey):
			if s.focus == slotsField {
				return s.setFocus(maxField)
			}
			return startGame(s.Setup())
		}
		if msg.Type == tea.KeyRunes && s.focus < len(s.inputs) {
			in := s.inputs[s.focus]
			msg.Runes = integerRunes(msg.Runes, in.Position(), in.Value())
			if len(msg.Runes) == 0 {
				return nil
			}
		}
		if s.focus < len(s.inputs) {
			var cmd tea.Cmd
			s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
			return cmd
		}
		return nil
	}

	// cursor blink and friends
	cmds := make([]tea.Cmd, 0, len(s.inputs))
	for i := range s.inputs {
		var cmd tea.Cmd
		s.inputs[i], cmd = s.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s *setupScreen) setFocus(i int) tea.Cmd {
	s.focus = (i + setupFocusCount) % setupFocusCount
	var cmd tea.Cmd
	for j := range s.inputs {
		if j == s.focus {
			cmd = s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
	return cmd
}

// integerRunes keeps the runes that leave value a valid integer when
// inserted at pos: digits, and one minus sign at the very front.
func integerRunes(in []rune, pos int, value string) []rune {
	signed := strings.HasPrefix(value, "-")
	out := in[:0:0]
	for _, r := range in {
		atFront := pos == 0 && len(out) == 0
		switch {
		case r == '-':
			if atFront && !signed {
				out = append(out, r)
			}
		case r >= '0' && r <= '9':
			// nothing may go in front of an existing sign
			if atFront && signed {
				continue
			}
			out = append(out, r)
		}
	}
	return out
}

func (s *setupScreen) View() string {
	st := s.styles
	rows := []string{st.Title.Render("Lucky Number"), ""}
	for i := range s.inputs {
		box := st.Input
		if s.focus == i {
			box = st.InputFocused
		}
		rows = append(rows,
			st.Label.Render(s.labels[i]),
			box.Render(s.inputs[i].View()),
			"",
		)
	}
	rows = append(rows, st.RenderButton("Start Game", s.focus == startButton, false))
	return st.Frame(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
