package command

import (
	"context"

	"github.com/sandevgo/quizzer/internal/service/game"
)

type PlayCommand struct {
	engine *game.Engine
}

func NewPlayCommand(engine *game.Engine) *PlayCommand {
	return &PlayCommand{engine: engine}
}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Aliases() []string   { return []string{"p"} }
func (c *PlayCommand) Usage() string       { return "p|play" }
func (c *PlayCommand) Description() string { return "Answer every quiz in random order." }

func (c *PlayCommand) Execute(ctx context.Context, args []string) error {
	_, err := c.engine.Play(ctx)
	return err
}
