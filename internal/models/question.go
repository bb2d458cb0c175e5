package models

import (
	"errors"
	"time"

	"qna-quiz-service/internal/engine"
)

// Answer option correctness uses the "Y"/"N" flag the rest of the API
// speaks; it is mapped to a bool at the engine boundary.
const (
	FlagYes = "Y"
	FlagNo  = "N"
)

type Answer struct {
	ID        int    `bson:"id" json:"answer_id"`
	Text      string `bson:"text" json:"answer_text"`
	IsCorrect string `bson:"is_correct" json:"is_correct"`
	Note      string `bson:"note,omitempty" json:"note,omitempty"`
}

type Question struct {
	ID         string    `bson:"_id,omitempty" json:"question_id"`
	Text       string    `bson:"text" json:"question_text"`
	CategoryID string    `bson:"category_id" json:"category_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	AnswerType int       `bson:"answer_type" json:"answer_type"`
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	LinkURL    string    `bson:"link_url,omitempty" json:"link_url,omitempty"`
	Answers    []Answer  `bson:"answers" json:"answers"`
	CreatedAt  time.Time `bson:"created_at" json:"create_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"update_at"`
}

// Validate enforces the answer-type invariant: a single-choice question
// has exactly one correct option, a multiple-choice question at least one.
func (q *Question) Validate() error {
	if len(q.Answers) == 0 {
		return errors.New("question has no answer options")
	}
	correct := 0
	for _, a := range q.Answers {
		if a.IsCorrect == FlagYes {
			correct++
		}
	}
	switch engine.AnswerType(q.AnswerType) {
	case engine.AnswerTypeSingle:
		if correct != 1 {
			return errors.New("single-choice question must have exactly one correct answer")
		}
	case engine.AnswerTypeMultiple:
		if correct < 1 {
			return errors.New("multiple-choice question must have at least one correct answer")
		}
	default:
		return errors.New("unknown answer type")
	}
	return nil
}

// EngineQuestion maps the stored document onto the engine's question shape.
func (q Question) EngineQuestion() engine.Question {
	eq := engine.Question{
		ID:         q.ID,
		Text:       q.Text,
		AnswerType: engine.AnswerType(q.AnswerType),
		Answers:    make([]engine.Answer, 0, len(q.Answers)),
	}
	for _, a := range q.Answers {
		eq.Answers = append(eq.Answers, engine.Answer{
			ID:        a.ID,
			Text:      a.Text,
			IsCorrect: a.IsCorrect == FlagYes,
		})
	}
	return eq
}
