// Package flow runs interactive command workflows.
//
// A workflow is ordinary sequential code: every prompt or repository call
// blocks until it resolves, and the first error ends the chain. Run gives
// each workflow a single failure exit and a single finalization step, so
// callers never have to remember to redisplay the prompt on every branch.
package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/ui"
)

// ErrInvariant wraps a panic raised in the middle of a workflow.
var ErrInvariant = errors.New("internal error")

type Workflow func(ctx context.Context) error

// Reporter makes a workflow failure visible to the user.
type Reporter func(ctx context.Context, err error)

// Run executes w. If w fails or panics, report is called exactly once with
// the error. finalize runs exactly once afterwards, whatever the outcome.
// The returned error is the one given to report.
func Run(ctx context.Context, w Workflow, report Reporter, finalize func()) (err error) {
	if finalize != nil {
		defer finalize()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvariant, r)
		}
		if err != nil && report != nil {
			report(ctx, err)
		}
	}()

	return w(ctx)
}

// Ask issues one prompt decorated with the prompt style and resolves with
// the trimmed answer.
func Ask(ctx context.Context, p core.Prompter, text string) (string, error) {
	answer, err := p.Ask(ctx, ui.Colorize(text, core.StylePrompt))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// AskPrefilled is Ask with initial offered as editable input.
func AskPrefilled(ctx context.Context, p core.Prompter, text, initial string) (string, error) {
	answer, err := p.AskPrefilled(ctx, ui.Colorize(text, core.StylePrompt), initial)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
