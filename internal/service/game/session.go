package game

import (
	"math/rand/v2"

	"github.com/sandevgo/quizzer/internal/core"
)

// Session is the state of one play run: the quizzes not asked yet and the
// number of correct answers so far.
type Session struct {
	ID    string
	pool  []core.Quiz
	score int
}

// NewSession starts a session over a private copy of quizzes.
func NewSession(id string, quizzes []core.Quiz) *Session {
	pool := make([]core.Quiz, len(quizzes))
	copy(pool, quizzes)
	return &Session{ID: id, pool: pool}
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Remaining() int {
	return len(s.pool)
}

// draw removes a uniformly chosen quiz from the pool.
func (s *Session) draw(rnd *rand.Rand) (core.Quiz, bool) {
	if len(s.pool) == 0 {
		return core.Quiz{}, false
	}
	i := rnd.IntN(len(s.pool))
	q := s.pool[i]
	s.pool = append(s.pool[:i], s.pool[i+1:]...)
	return q, true
}

func (s *Session) hit() {
	s.score++
}
