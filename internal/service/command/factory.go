package command

import (
	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/game"
)

// NewCommands returns every REPL command in help order.
func NewCommands(
	repo core.QuizRepository,
	prompter core.Prompter,
	console core.Console,
	engine *game.Engine,
) []core.Command {
	return []core.Command{
		NewHelpCommand(console),
		NewListCommand(repo, console),
		NewShowCommand(repo, console),
		NewAddCommand(repo, prompter, console),
		NewDeleteCommand(repo, console),
		NewEditCommand(repo, prompter, console),
		NewTestCommand(repo, engine),
		NewPlayCommand(engine),
		NewCreditsCommand(console),
		NewQuitCommand(console),
	}
}
