package cli

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/quizzer/internal/core"
)

type scriptedInput struct {
	lines      []string
	errs       []error
	remembered []string
	banners    []string
	closed     bool
}

func (s *scriptedInput) ReadCommand() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line, err := s.lines[0], s.errs[0]
	s.lines, s.errs = s.lines[1:], s.errs[1:]
	return line, err
}

func (s *scriptedInput) Remember(line string)                 { s.remembered = append(s.remembered, line) }
func (s *scriptedInput) ShowPrompt()                          {}
func (s *scriptedInput) Banner(text string, style core.Style) { s.banners = append(s.banners, text) }
func (s *scriptedInput) Close() error                         { s.closed = true; return nil }

type fakeRouter struct {
	executed []string
	idle     func()
}

func (f *fakeRouter) Execute(ctx context.Context, input string) bool {
	f.executed = append(f.executed, input)
	return input == "quit" || input == "q"
}

func (f *fakeRouter) ListCommands() []core.Command { return nil }
func (f *fakeRouter) OnIdle(fn func())             { f.idle = fn }

func TestReadLine_DispatchesUntilQuit(t *testing.T) {
	in := &scriptedInput{
		lines: []string{"  list ", "show 1", "q", "never"},
		errs:  []error{nil, nil, nil, nil},
	}
	r := &fakeRouter{}

	err := NewReadLine(in, r).Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"list", "show 1", "q"}, r.executed)
	assert.Equal(t, []string{"list", "show 1", "q"}, in.remembered)
	assert.Equal(t, []string{core.AppName}, in.banners)
	assert.NotNil(t, r.idle)
}

func TestReadLine_EOFQuits(t *testing.T) {
	in := &scriptedInput{}
	r := &fakeRouter{}

	require.NoError(t, NewReadLine(in, r).Start(context.Background()))
	assert.Equal(t, []string{"quit"}, r.executed)
	assert.Empty(t, in.remembered)
}

func TestReadLine_Interrupt(t *testing.T) {
	in := &scriptedInput{
		lines: []string{"half typed", ""},
		errs:  []error{readline.ErrInterrupt, readline.ErrInterrupt},
	}
	r := &fakeRouter{}

	require.NoError(t, NewReadLine(in, r).Start(context.Background()))
	// Ctrl+C with pending text only clears the line; on an empty line it quits
	assert.Equal(t, []string{"quit"}, r.executed)
	assert.Empty(t, in.remembered)
}

func TestReadLine_ReadError(t *testing.T) {
	boom := errors.New("tty gone")
	in := &scriptedInput{lines: []string{""}, errs: []error{boom}}

	err := NewReadLine(in, &fakeRouter{}).Start(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestReadLine_Shutdown(t *testing.T) {
	in := &scriptedInput{}
	require.NoError(t, NewReadLine(in, &fakeRouter{}).Shutdown(context.Background()))
	assert.True(t, in.closed)
}
