package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/quizzer/internal/core"
)

var _ core.QuizRepository = (*QuizRepo)(nil)

// QuizRepo keeps quizzes in insertion order with an id -> position index.
type QuizRepo struct {
	mu     sync.RWMutex
	items  []core.Quiz
	index  map[int64]int
	nextID int64
	now    func() time.Time
}

func NewQuizRepo() *QuizRepo {
	return &QuizRepo{
		index:  make(map[int64]int),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *QuizRepo) List(_ context.Context) ([]core.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.Quiz, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *QuizRepo) GetByID(_ context.Context, id int64) (core.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return core.Quiz{}, &core.NotFoundError{ID: id}
	}
	return r.items[pos], nil
}

func (r *QuizRepo) Create(_ context.Context, question, answer string) (core.Quiz, error) {
	if err := core.ValidateQuiz(question, answer); err != nil {
		return core.Quiz{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	q := core.Quiz{
		ID:        r.nextID,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++
	r.index[q.ID] = len(r.items)
	r.items = append(r.items, q)
	return q, nil
}

func (r *QuizRepo) Update(_ context.Context, id int64, question, answer string) (core.Quiz, error) {
	if err := core.ValidateQuiz(question, answer); err != nil {
		return core.Quiz{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[id]
	if !ok {
		return core.Quiz{}, &core.NotFoundError{ID: id}
	}
	q := &r.items[pos]
	q.Question = question
	q.Answer = answer
	q.UpdatedAt = r.now()
	return *q, nil
}

func (r *QuizRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[id]
	if !ok {
		return &core.NotFoundError{ID: id}
	}
	r.items = append(r.items[:pos], r.items[pos+1:]...)
	delete(r.index, id)
	// shift positions of everything after the removed slot
	for i := pos; i < len(r.items); i++ {
		r.index[r.items[i].ID] = i
	}
	return nil
}
