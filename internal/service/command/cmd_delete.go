package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
)

type DeleteCommand struct {
	repo      core.QuizRepository
	console   core.Console
	formatter *ResponseFormatter
}

func NewDeleteCommand(repo core.QuizRepository, console core.Console) *DeleteCommand {
	return &DeleteCommand{
		repo:      repo,
		console:   console,
		formatter: NewResponseFormatter(),
	}
}

func (c *DeleteCommand) Name() string        { return "delete" }
func (c *DeleteCommand) Aliases() []string   { return nil }
func (c *DeleteCommand) Usage() string       { return "delete <id>" }
func (c *DeleteCommand) Description() string { return "Delete the given quiz." }

func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := ParseID(args)
	if err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.console.Print(c.formatter.Deleted(id), core.StylePlain)
	return nil
}
