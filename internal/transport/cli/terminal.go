package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/ui"
)

// Terminal is the readline-backed prompt and output sink. It implements
// core.Prompter and core.Console.
type Terminal struct {
	rl          *readline.Instance
	out         io.Writer
	idlePrompt  string
	interactive bool
}

var (
	_ core.Prompter = (*Terminal)(nil)
	_ core.Console  = (*Terminal)(nil)
)

func NewTerminal(cfg core.AppConfig) (*Terminal, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.GetHistoryPath()), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	idle := ui.Colorize(cfg.GetPrompt(), core.StyleSuccess)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 idle,
		HistoryFile:            cfg.GetHistoryPath(),
		DisableAutoSaveHistory: true,
		HistorySearchFold:      true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "quit",
	})
	if err != nil {
		return nil, err
	}

	fd := os.Stdout.Fd()
	return &Terminal{
		rl:          rl,
		out:         rl.Stdout(),
		idlePrompt:  idle,
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}, nil
}

// ReadCommand reads one line at the idle prompt. Errors are readline's own
// (readline.ErrInterrupt, io.EOF).
func (t *Terminal) ReadCommand() (string, error) {
	return t.rl.Readline()
}

// Remember stores a command line in the persistent history.
func (t *Terminal) Remember(line string) {
	if line == "" {
		return
	}
	_ = t.rl.SaveHistory(line)
}

// ShowPrompt restores the idle prompt for the next command.
func (t *Terminal) ShowPrompt() {
	t.rl.SetPrompt(t.idlePrompt)
}

func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	return t.readAnswer(ctx, prompt, "")
}

// AskPrefilled only pre-fills the input on an interactive terminal;
// elsewhere the user simply types the whole value.
func (t *Terminal) AskPrefilled(ctx context.Context, prompt, initial string) (string, error) {
	if !t.interactive {
		initial = ""
	}
	return t.readAnswer(ctx, prompt, initial)
}

func (t *Terminal) readAnswer(ctx context.Context, prompt, initial string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	t.rl.SetPrompt(prompt)
	defer t.rl.SetPrompt(t.idlePrompt)

	var (
		line string
		err  error
	)
	if initial != "" {
		line, err = t.rl.ReadlineWithDefault(initial)
	} else {
		line, err = t.rl.Readline()
	}
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", core.ErrAborted
	}
	return line, err
}

func (t *Terminal) Print(text string, style core.Style) {
	fmt.Fprintln(t.out, ui.Colorize(text, style))
}

func (t *Terminal) Banner(text string, style core.Style) {
	fmt.Fprintln(t.out, ui.Colorize(ui.Banner(text), style))
}

func (t *Terminal) Error(msg string) {
	fmt.Fprintf(t.out, "%s: %s\n", ui.ErrorLabelStyle.Render("Error"), ui.ErrorTextStyle.Render(msg))
}

func (t *Terminal) Close() error {
	return t.rl.Close()
}
