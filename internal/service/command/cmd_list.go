package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
)

type ListCommand struct {
	repo      core.QuizRepository
	console   core.Console
	formatter *ResponseFormatter
}

func NewListCommand(repo core.QuizRepository, console core.Console) *ListCommand {
	return &ListCommand{
		repo:      repo,
		console:   console,
		formatter: NewResponseFormatter(),
	}
}

func (c *ListCommand) Name() string        { return "list" }
func (c *ListCommand) Aliases() []string   { return nil }
func (c *ListCommand) Usage() string       { return "list" }
func (c *ListCommand) Description() string { return "List the existing quizzes." }

func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	quizzes, err := c.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, q := range quizzes {
		c.console.Print(c.formatter.Entry(q), core.StylePlain)
	}
	return nil
}
