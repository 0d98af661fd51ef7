package core

import "context"

type CmdRouter interface {
	// Execute runs one command line to completion and reports whether the
	// router has been closed by it.
	Execute(ctx context.Context, input string) bool
	ListCommands() []Command
}

type Command interface {
	Name() string
	Aliases() []string
	Usage() string
	Description() string
	Execute(ctx context.Context, args []string) error
}
