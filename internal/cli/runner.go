package cli

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/idilsaglam/lucky/internal/config"
	"github.com/idilsaglam/lucky/internal/logging"
	"github.com/idilsaglam/lucky/internal/store/jsonstore"
	"github.com/idilsaglam/lucky/internal/theme"
	"github.com/idilsaglam/lucky/internal/tui"
	"github.com/idilsaglam/lucky/internal/ui"
)

// Options override the process's terminal; zero values use stdin/stdout.
type Options struct {
	Input       io.Reader
	Output      io.Writer
	Interactive func() bool
}

// Run starts the game and returns an exit code (0 ok, 1 error).
func Run(opt Options) int {
	interactive := opt.Interactive
	if interactive == nil {
		interactive = isTerminal
	}
	if !interactive() {
		ui.Fail("lucky needs an interactive terminal")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}

	logger, closer := logging.New(cfg.LogFile)
	defer closer.Close()

	prefs := theme.NewPreferenceStore(
		jsonstore.Open(cfg.PreferenceFile),
		logging.Component(logger, "theme"),
	)
	themes := theme.NewManager(theme.Builtin(), prefs)

	app := tui.New(themes, tui.Options{
		SlotInterval:  cfg.SlotInterval,
		CoinInterval:  cfg.CoinInterval,
		FrameInterval: cfg.FrameInterval,
		Diamonds:      cfg.Diamonds,
	})

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opt.Input))
	}
	if opt.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opt.Output))
	}
	if _, err := tea.NewProgram(app, progOpts...).Run(); err != nil {
		tuiLog := logging.Component(logger, "tui")
		tuiLog.Error().Err(err).Msg("error running game")
		ui.Fail("run: " + err.Error())
		return 1
	}
	return 0
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
