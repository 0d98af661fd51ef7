package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
)

type ShowCommand struct {
	repo      core.QuizRepository
	console   core.Console
	formatter *ResponseFormatter
}

func NewShowCommand(repo core.QuizRepository, console core.Console) *ShowCommand {
	return &ShowCommand{
		repo:      repo,
		console:   console,
		formatter: NewResponseFormatter(),
	}
}

func (c *ShowCommand) Name() string        { return "show" }
func (c *ShowCommand) Aliases() []string   { return nil }
func (c *ShowCommand) Usage() string       { return "show <id>" }
func (c *ShowCommand) Description() string { return "Show the question and answer of the given quiz." }

func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	id, err := ParseID(args)
	if err != nil {
		return err
	}
	quiz, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.console.Print(c.formatter.Detail(quiz), core.StylePlain)
	return nil
}
