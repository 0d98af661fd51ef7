package storage

import (
	"context"
	"fmt"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/pkg/log"
)

// DefaultQuizzes are loaded into an empty store when seeding is enabled.
var DefaultQuizzes = []struct {
	Question string
	Answer   string
}{
	{"Capital of Italy", "Rome"},
	{"Capital of France", "Paris"},
	{"Capital of Spain", "Madrid"},
	{"Capital of Portugal", "Lisbon"},
}

// Seed fills repo with DefaultQuizzes unless it already holds quizzes.
func Seed(ctx context.Context, repo core.QuizRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list quizzes: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, q := range DefaultQuizzes {
		if _, err := repo.Create(ctx, q.Question, q.Answer); err != nil {
			return fmt.Errorf("failed to seed quiz %q: %w", q.Question, err)
		}
	}
	log.FromCtx(ctx).Info().Int("count", len(DefaultQuizzes)).Msg("seeded default quizzes")
	return nil
}
