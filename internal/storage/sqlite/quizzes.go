package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/pkg/log"
)

const timeLayout = time.RFC3339Nano

var _ core.QuizRepository = (*QuizRepo)(nil)

type QuizRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewQuizRepo(db *sql.DB) *QuizRepo {
	return &QuizRepo{db: db, now: time.Now}
}

func (r *QuizRepo) List(ctx context.Context) ([]core.Quiz, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, question, answer, created_at, updated_at FROM quizzes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []core.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(quizzes)).Msg("loaded quizzes")
	return quizzes, nil
}

func (r *QuizRepo) GetByID(ctx context.Context, id int64) (core.Quiz, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, question, answer, created_at, updated_at FROM quizzes WHERE id = ?`, id)
	q, err := scanQuiz(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Quiz{}, &core.NotFoundError{ID: id}
	}
	return q, err
}

func (r *QuizRepo) Create(ctx context.Context, question, answer string) (core.Quiz, error) {
	if err := core.ValidateQuiz(question, answer); err != nil {
		return core.Quiz{}, err
	}

	now := r.now().UTC()
	stamp := now.Format(timeLayout)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO quizzes (question, answer, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		question, answer, stamp, stamp,
	)
	if err != nil {
		return core.Quiz{}, fmt.Errorf("failed to insert quiz: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Quiz{}, err
	}

	return core.Quiz{
		ID:        id,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *QuizRepo) Update(ctx context.Context, id int64, question, answer string) (core.Quiz, error) {
	if err := core.ValidateQuiz(question, answer); err != nil {
		return core.Quiz{}, err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE quizzes SET question = ?, answer = ?, updated_at = ? WHERE id = ?`,
		question, answer, r.now().UTC().Format(timeLayout), id,
	)
	if err != nil {
		return core.Quiz{}, fmt.Errorf("failed to update quiz: %w", err)
	}
	if err := expectAffected(res, id); err != nil {
		return core.Quiz{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *QuizRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	return expectAffected(res, id)
}

func expectAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &core.NotFoundError{ID: id}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuiz(s scanner) (core.Quiz, error) {
	var q core.Quiz
	var created, updated string
	if err := s.Scan(&q.ID, &q.Question, &q.Answer, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return q, err
		}
		return q, fmt.Errorf("failed to scan quiz: %w", err)
	}
	// timestamps are informational; a malformed one is left zero
	q.CreatedAt, _ = time.Parse(timeLayout, created)
	q.UpdatedAt, _ = time.Parse(timeLayout, updated)
	return q, nil
}
