package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRefusesNonInteractive(t *testing.T) {
	code := Run(Options{Interactive: func() bool { return false }})
	assert.Equal(t, 1, code)
}

func TestRunRejectsBadConfig(t *testing.T) {
	t.Setenv("LUCKY_DATA_DIR", t.TempDir())
	t.Setenv("LUCKY_SLOT_INTERVAL", "-1s")

	code := Run(Options{Interactive: func() bool { return true }})
	assert.Equal(t, 1, code)
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	t.Setenv("LUCKY_DATA_DIR", t.TempDir())

	var out bytes.Buffer
	code := Run(Options{
		Input:       strings.NewReader("\x03"),
		Output:      &out,
		Interactive: func() bool { return true },
	})
	assert.Equal(t, 0, code)
}
