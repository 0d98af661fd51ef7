package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/flow"
	"github.com/sandevgo/quizzer/pkg/log"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "idle"
	}
}

// UnknownCommandError is reported for command names not in the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command: '%s'", e.Name)
}

// Router dispatches one command line at a time. A line is only accepted in
// StateIdle; it runs as a single workflow and the router returns to
// StateIdle through the idle hook, except after quit, which closes it.
type Router struct {
	commands map[string]core.Command
	ordered  []core.Command
	console  core.Console

	mu     sync.Mutex
	state  State
	onIdle func()
}

var _ core.CmdRouter = (*Router)(nil)

func New(console core.Console, commands []core.Command) *Router {
	r := &Router{
		commands: make(map[string]core.Command),
		ordered:  commands,
		console:  console,
	}

	for _, cmd := range commands {
		r.commands[cmd.Name()] = cmd
		for _, alias := range cmd.Aliases() {
			r.commands[alias] = cmd
		}
		if help, ok := cmd.(*HelpCommand); ok {
			help.registry = r
		}
	}
	return r
}

// OnIdle sets the finalization hook run after every workflow, typically
// redisplaying the prompt.
func (r *Router) OnIdle(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onIdle = fn
}

func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Execute runs input to completion and reports whether the router is closed.
func (r *Router) Execute(ctx context.Context, input string) bool {
	if closed, err := r.begin(); closed {
		return true
	} else if err != nil {
		r.console.Error(err.Error())
		return false
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		r.finish()
		return false
	}

	name := strings.ToLower(parts[0])
	args := parts[1:]
	cmd, ok := r.commands[name]

	logger := log.FromCtx(ctx)
	logger.Debug().Str("cmd", name).Strs("args", args).Msg("dispatching command")

	if _, quit := cmd.(*QuitCommand); ok && quit {
		_ = cmd.Execute(ctx, args)
		r.close()
		logger.Info().Msg("router closed")
		return true
	}

	_ = flow.Run(ctx, func(ctx context.Context) error {
		if !ok {
			return &UnknownCommandError{Name: name}
		}
		return cmd.Execute(ctx, args)
	}, r.report, r.finish)
	return false
}

func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, len(r.ordered))
	copy(res, r.ordered)
	return res
}

func (r *Router) begin() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case StateClosed:
		return true, nil
	case StateRunning:
		return false, core.ErrBusy
	}
	r.state = StateRunning
	return false, nil
}

func (r *Router) finish() {
	r.mu.Lock()
	r.state = StateIdle
	hook := r.onIdle
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
}

func (r *Router) close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = StateClosed
}

// report prints one line per failure; validation errors get one per field.
func (r *Router) report(ctx context.Context, err error) {
	log.FromCtx(ctx).Warn().Err(err).Msg("command failed")

	var verr *core.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			r.console.Error(f.String())
		}
		return
	}

	r.console.Error(err.Error())

	var uerr *UnknownCommandError
	if errors.As(err, &uerr) {
		r.console.Print("Use 'help' to list the available commands.", core.StylePlain)
	}
}
