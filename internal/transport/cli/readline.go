package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/pkg/log"
)

type router interface {
	core.CmdRouter
	OnIdle(fn func())
}

// lineSource is the idle side of the terminal.
type lineSource interface {
	ReadCommand() (string, error)
	Remember(line string)
	ShowPrompt()
	Banner(text string, style core.Style)
	Close() error
}

// ReadLine is the REPL service: it reads command lines and hands each one
// to the router, one at a time.
type ReadLine struct {
	term   lineSource
	router router
}

func NewReadLine(term lineSource, router router) *ReadLine {
	return &ReadLine{
		term:   term,
		router: router,
	}
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("REPL started")

	r.router.OnIdle(r.term.ShowPrompt)
	r.term.Banner(core.AppName, core.StyleSuccess)

	for {
		// Check context before blocking read
		if ctx.Err() != nil {
			return nil
		}

		line, err := r.term.ReadCommand()
		typed := err == nil
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				if len(line) != 0 {
					continue
				}
				line = "quit" // Ctrl+C on an empty line
			case errors.Is(err, io.EOF):
				line = "quit"
			default:
				return err
			}
		}

		line = strings.TrimSpace(line)
		if typed {
			r.term.Remember(line)
		}
		if closed := r.router.Execute(ctx, line); closed {
			logger.Info().Msg("REPL closed")
			return nil
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.term != nil {
		return r.term.Close()
	}
	return nil
}
