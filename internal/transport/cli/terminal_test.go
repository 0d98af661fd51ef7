package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/quizzer/internal/core"
)

// newPipedTerminal builds a Terminal reading from input, as when stdin is
// not a TTY.
func newPipedTerminal(t *testing.T, input string) (*Terminal, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	rl, err := readline.NewEx(&readline.Config{
		Prompt:         "quiz > ",
		Stdin:          io.NopCloser(strings.NewReader(input)),
		Stdout:         &out,
		FuncIsTerminal: func() bool { return false },
	})
	require.NoError(t, err)
	t.Cleanup(func() { rl.Close() })

	return &Terminal{
		rl:          rl,
		out:         &out,
		idlePrompt:  "quiz > ",
		interactive: false,
	}, &out
}

func TestTerminal_AskPrefilledWithoutTTY(t *testing.T) {
	term, _ := newPipedTerminal(t, "typed\n")

	answer, err := term.AskPrefilled(context.Background(), "Q: ", "old")
	require.NoError(t, err)
	assert.Equal(t, "typed", answer)
}

func TestTerminal_AskAtEndOfInput(t *testing.T) {
	term, _ := newPipedTerminal(t, "")

	_, err := term.Ask(context.Background(), "Q: ")
	assert.ErrorIs(t, err, core.ErrAborted)
}

func TestTerminal_AskCancelledContext(t *testing.T) {
	term, _ := newPipedTerminal(t, "never read\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := term.Ask(ctx, "Q: ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTerminal_ErrorLine(t *testing.T) {
	term, out := newPipedTerminal(t, "")

	term.Error("boom")
	assert.Equal(t, "Error: boom\n", ansi.Strip(out.String()))
}
