package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
)

type registry interface {
	ListCommands() []core.Command
}

// HelpCommand prints the usage of every command the router it is
// registered with knows about.
type HelpCommand struct {
	console   core.Console
	registry  registry
	formatter *ResponseFormatter
}

func NewHelpCommand(console core.Console) *HelpCommand {
	return &HelpCommand{
		console:   console,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Aliases() []string   { return []string{"h"} }
func (c *HelpCommand) Usage() string       { return "h|help" }
func (c *HelpCommand) Description() string { return "Show this help." }

func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	c.console.Print("Commands:", core.StylePlain)
	if c.registry == nil {
		return nil
	}
	for _, cmd := range c.registry.ListCommands() {
		c.console.Print(c.formatter.Usage(cmd), core.StylePlain)
	}
	return nil
}
