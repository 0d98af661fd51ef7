package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/flow"
)

type EditCommand struct {
	repo      core.QuizRepository
	prompter  core.Prompter
	console   core.Console
	formatter *ResponseFormatter
}

func NewEditCommand(repo core.QuizRepository, prompter core.Prompter, console core.Console) *EditCommand {
	return &EditCommand{
		repo:      repo,
		prompter:  prompter,
		console:   console,
		formatter: NewResponseFormatter(),
	}
}

func (c *EditCommand) Name() string        { return "edit" }
func (c *EditCommand) Aliases() []string   { return nil }
func (c *EditCommand) Usage() string       { return "edit <id>" }
func (c *EditCommand) Description() string { return "Edit the given quiz." }

// Execute offers the current question and answer as editable input, then
// saves both. The quiz may disappear between the read and the update; the
// repository reports that as not found.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	id, err := ParseID(args)
	if err != nil {
		return err
	}
	quiz, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	question, err := flow.AskPrefilled(ctx, c.prompter, questionPrompt, quiz.Question)
	if err != nil {
		return err
	}
	answer, err := flow.AskPrefilled(ctx, c.prompter, answerPrompt, quiz.Answer)
	if err != nil {
		return err
	}

	updated, err := c.repo.Update(ctx, id, question, answer)
	if err != nil {
		return err
	}
	c.console.Print(c.formatter.Changed(updated), core.StylePlain)
	return nil
}
