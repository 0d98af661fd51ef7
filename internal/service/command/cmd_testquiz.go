package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/game"
)

type TestCommand struct {
	repo   core.QuizRepository
	engine *game.Engine
}

func NewTestCommand(repo core.QuizRepository, engine *game.Engine) *TestCommand {
	return &TestCommand{
		repo:   repo,
		engine: engine,
	}
}

func (c *TestCommand) Name() string        { return "test" }
func (c *TestCommand) Aliases() []string   { return nil }
func (c *TestCommand) Usage() string       { return "test <id>" }
func (c *TestCommand) Description() string { return "Try to answer the given quiz." }

func (c *TestCommand) Execute(ctx context.Context, args []string) error {
	id, err := ParseID(args)
	if err != nil {
		return err
	}
	quiz, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = c.engine.Test(ctx, quiz)
	return err
}
