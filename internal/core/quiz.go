package core

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Quiz is a question/answer pair. ID is assigned by the repository on creation.
type Quiz struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Check reports whether answer matches the stored answer,
// ignoring surrounding whitespace and case.
func (q Quiz) Check(answer string) bool {
	return NormalizeAnswer(answer) == NormalizeAnswer(q.Answer)
}

// NormalizeAnswer trims and case-folds s.
func NormalizeAnswer(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

type QuizRepository interface {
	List(ctx context.Context) ([]Quiz, error)
	GetByID(ctx context.Context, id int64) (Quiz, error)
	Create(ctx context.Context, question, answer string) (Quiz, error)
	Update(ctx context.Context, id int64, question, answer string) (Quiz, error)
	Delete(ctx context.Context, id int64) error
}

// ValidateQuiz returns a *ValidationError listing every empty field.
func ValidateQuiz(question, answer string) error {
	var fields []FieldError
	if strings.TrimSpace(question) == "" {
		fields = append(fields, FieldError{Field: "question", Message: "question must not be empty"})
	}
	if strings.TrimSpace(answer) == "" {
		fields = append(fields, FieldError{Field: "answer", Message: "answer must not be empty"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
