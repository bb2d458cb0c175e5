package selection

import (
	"errors"
	"math/rand"

	"qna-quiz-service/internal/models"
)

// ErrEmptyCategory is returned when a session is requested for a
// category with no eligible questions.
var ErrEmptyCategory = errors.New("category has no questions")

// DefaultQuestionCount is used when a session is created without an
// explicit size.
const DefaultQuestionCount = 10

// Policy selects the bounded question set that seeds a new session.
// Selection is a uniform random sample without replacement: the pool is
// shuffled and the first `desired` questions are taken, so repeated
// calls carry no bias toward any single question. One Policy serves all
// request goroutines; it uses the top-level rand functions, which are
// safe for concurrent use.
type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// Sample picks up to desired questions from the pool. A pool smaller
// than desired yields the whole pool; the short supply is a capacity
// clamp, not a failure. An empty pool is the only error case.
func (p *Policy) Sample(pool []models.Question, desired int) ([]models.Question, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyCategory
	}
	if desired <= 0 {
		desired = DefaultQuestionCount
	}

	shuffled := append([]models.Question(nil), pool...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if desired > len(shuffled) {
		desired = len(shuffled)
	}
	return shuffled[:desired], nil
}
