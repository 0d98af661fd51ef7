package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
)

type CreditsCommand struct {
	console core.Console
}

func NewCreditsCommand(console core.Console) *CreditsCommand {
	return &CreditsCommand{console: console}
}

func (c *CreditsCommand) Name() string        { return "credits" }
func (c *CreditsCommand) Aliases() []string   { return nil }
func (c *CreditsCommand) Usage() string       { return "credits" }
func (c *CreditsCommand) Description() string { return "Credits." }

func (c *CreditsCommand) Execute(ctx context.Context, args []string) error {
	c.console.Print("Author:", core.StylePlain)
	c.console.Print(core.AppAuthor, core.StyleSuccess)
	return nil
}
