package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/flow"
)

const (
	questionPrompt = " Enter a question: "
	answerPrompt   = " Enter the answer: "
)

type AddCommand struct {
	repo      core.QuizRepository
	prompter  core.Prompter
	console   core.Console
	formatter *ResponseFormatter
}

func NewAddCommand(repo core.QuizRepository, prompter core.Prompter, console core.Console) *AddCommand {
	return &AddCommand{
		repo:      repo,
		prompter:  prompter,
		console:   console,
		formatter: NewResponseFormatter(),
	}
}

func (c *AddCommand) Name() string        { return "add" }
func (c *AddCommand) Aliases() []string   { return nil }
func (c *AddCommand) Usage() string       { return "add" }
func (c *AddCommand) Description() string { return "Add a new quiz interactively." }

func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	question, err := flow.Ask(ctx, c.prompter, questionPrompt)
	if err != nil {
		return err
	}
	answer, err := flow.Ask(ctx, c.prompter, answerPrompt)
	if err != nil {
		return err
	}

	quiz, err := c.repo.Create(ctx, question, answer)
	if err != nil {
		return err
	}
	c.console.Print(c.formatter.Added(quiz), core.StylePlain)
	return nil
}
