package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
)

// QuitCommand closes the router. It is the only command after which the
// prompt is not shown again.
type QuitCommand struct {
	console core.Console
}

func NewQuitCommand(console core.Console) *QuitCommand {
	return &QuitCommand{console: console}
}

func (c *QuitCommand) Name() string        { return "quit" }
func (c *QuitCommand) Aliases() []string   { return []string{"q"} }
func (c *QuitCommand) Usage() string       { return "q|quit" }
func (c *QuitCommand) Description() string { return "Leave the program." }

func (c *QuitCommand) Execute(ctx context.Context, args []string) error {
	c.console.Print("Bye!", core.StylePlain)
	return nil
}
