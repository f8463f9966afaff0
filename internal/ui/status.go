package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// Fail reports a startup error outside the alt screen.
func Fail(msg string) { fmt.Fprintln(os.Stderr, failStyle.Render("✖ "+msg)) }
