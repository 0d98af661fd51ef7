package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/flow"
	"github.com/sandevgo/quizzer/pkg/log"
)

type Outcome int

const (
	// OutcomeCompleted means every quiz in the pool was answered correctly.
	OutcomeCompleted Outcome = iota
	// OutcomeFailed means the session ended on a wrong answer.
	OutcomeFailed
)

func (o Outcome) String() string {
	if o == OutcomeFailed {
		return "failed"
	}
	return "completed"
}

type Result struct {
	SessionID string
	Score     int
	Remaining int
	Outcome   Outcome
}

type Engine struct {
	repo     core.QuizRepository
	prompter core.Prompter
	console  core.Console
	rnd      *rand.Rand
}

type Option func(*Engine)

// WithRand replaces the random source used to pick questions.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

func NewEngine(
	repo core.QuizRepository,
	prompter core.Prompter,
	console core.Console,
	opts ...Option,
) *Engine {
	e := &Engine{
		repo:     repo,
		prompter: prompter,
		console:  console,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Play asks every quiz in the repository once, in random order, until the
// pool runs out or an answer is wrong.
func (e *Engine) Play(ctx context.Context) (Result, error) {
	quizzes, err := e.repo.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load quizzes: %w", err)
	}

	s := NewSession(uuid.NewString(), quizzes)
	logger := log.FromCtx(ctx).With().Str("session", s.ID).Logger()
	logger.Info().Int("pool", s.Remaining()).Msg("play session started")

	for {
		outcome, done, err := e.playOne(ctx, s)
		if err != nil {
			logger.Warn().Err(err).Int("score", s.Score()).Msg("play session aborted")
			return e.result(s, OutcomeFailed), err
		}
		if done {
			logger.Info().
				Stringer("outcome", outcome).
				Int("score", s.Score()).
				Int("remaining", s.Remaining()).
				Msg("play session finished")
			return e.result(s, outcome), nil
		}
	}
}

func (e *Engine) playOne(ctx context.Context, s *Session) (Outcome, bool, error) {
	quiz, ok := s.draw(e.rnd)
	if !ok {
		e.console.Print("Nothing left to ask.", core.StylePlain)
		e.finish(s)
		return OutcomeCompleted, true, nil
	}

	correct, err := e.ask(ctx, quiz)
	if err != nil {
		return OutcomeFailed, true, err
	}
	if !correct {
		e.console.Print("INCORRECT.", core.StyleFailure)
		e.finish(s)
		return OutcomeFailed, true, nil
	}

	s.hit()
	e.console.Print(fmt.Sprintf("CORRECT - %d hits so far.", s.Score()), core.StyleSuccess)
	return OutcomeCompleted, false, nil
}

func (e *Engine) finish(s *Session) {
	e.console.Print(fmt.Sprintf("End of game. Hits: %d", s.Score()), core.StylePlain)
	e.console.Banner(strconv.Itoa(s.Score()), core.StyleAccent)
}

// Test asks a single quiz and announces whether the answer was right.
func (e *Engine) Test(ctx context.Context, quiz core.Quiz) (bool, error) {
	correct, err := e.ask(ctx, quiz)
	if err != nil {
		return false, err
	}
	if correct {
		e.console.Print("Your answer is correct.", core.StylePlain)
		e.console.Banner("CORRECT", core.StyleSuccess)
	} else {
		e.console.Print("Your answer is incorrect.", core.StylePlain)
		e.console.Banner("INCORRECT", core.StyleFailure)
	}
	return correct, nil
}

func (e *Engine) ask(ctx context.Context, quiz core.Quiz) (bool, error) {
	answer, err := flow.Ask(ctx, e.prompter, QuestionPrompt(quiz))
	if err != nil {
		return false, err
	}
	return quiz.Check(answer), nil
}

func (e *Engine) result(s *Session, outcome Outcome) Result {
	return Result{
		SessionID: s.ID,
		Score:     s.Score(),
		Remaining: s.Remaining(),
		Outcome:   outcome,
	}
}

// QuestionPrompt turns a quiz question into prompt text ending in "? ".
func QuestionPrompt(q core.Quiz) string {
	text := strings.TrimSpace(q.Question)
	if !strings.HasSuffix(text, "?") {
		text += "?"
	}
	return text + " "
}
