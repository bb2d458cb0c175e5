package models

import (
	"time"

	"qna-quiz-service/internal/engine"
)

type QuizSession struct {
	ID             string    `bson:"_id,omitempty" json:"session_id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	CategoryID     string    `bson:"category_id" json:"category_id"`
	Name           string    `bson:"name" json:"name"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	QuestionCount  int       `bson:"question_count" json:"question_count"`
	CompletedCount int       `bson:"completed_count" json:"completed_count"`
	CorrectCount   int       `bson:"correct_count" json:"correct_count"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"create_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"update_at"`
}

// SessionQuestion is one question bound to a session, snapshotted at
// creation time so later edits to the question bank cannot change a
// running quiz. UserAnswer/IsCorrect stay absent until the question is
// answered, then are written together exactly once.
type SessionQuestion struct {
	ID         string     `bson:"_id,omitempty" json:"-"`
	SessionID  string     `bson:"session_id" json:"session_id"`
	Sequence   int        `bson:"sequence" json:"sequence"`
	QuestionID string     `bson:"question_id" json:"question_id"`
	Text       string     `bson:"text" json:"question_text"`
	AnswerType int        `bson:"answer_type" json:"answer_type"`
	Answers    []Answer   `bson:"answers" json:"answers"`
	UserAnswer []int      `bson:"user_answer,omitempty" json:"user_answer,omitempty"`
	IsCorrect  *bool      `bson:"is_correct,omitempty" json:"is_correct,omitempty"`
	AnsweredAt *time.Time `bson:"answered_at,omitempty" json:"answered_at,omitempty"`
}

// NewSessionQuestion snapshots a bank question into a session binding.
func NewSessionQuestion(sessionID string, sequence int, q Question) SessionQuestion {
	return SessionQuestion{
		SessionID:  sessionID,
		Sequence:   sequence,
		QuestionID: q.ID,
		Text:       q.Text,
		AnswerType: q.AnswerType,
		Answers:    q.Answers,
	}
}

// EngineState maps the stored binding onto the engine's question state.
func (sq SessionQuestion) EngineState() engine.QuestionState {
	state := engine.QuestionState{
		Question: Question{
			ID:         sq.QuestionID,
			Text:       sq.Text,
			AnswerType: sq.AnswerType,
			Answers:    sq.Answers,
		}.EngineQuestion(),
	}
	if sq.UserAnswer != nil {
		state.UserAnswer = append([]int(nil), sq.UserAnswer...)
		if sq.IsCorrect != nil {
			state.IsCorrect = *sq.IsCorrect
		}
	}
	return state
}

// EngineStates converts a session's bound questions in sequence order.
// The slice is assumed already sorted by Sequence (the repository reads
// it that way).
func EngineStates(questions []SessionQuestion) []engine.QuestionState {
	states := make([]engine.QuestionState, 0, len(questions))
	for _, sq := range questions {
		states = append(states, sq.EngineState())
	}
	return states
}

// SubmitRequest is the body of a session answer submission.
type SubmitRequest struct {
	QuestionID        string `json:"question_id" binding:"required"`
	SelectedAnswerIDs []int  `json:"selected_answer_ids"`
}

// SubmitResponse is what the API returns for every accepted submission.
// Correct answers are always revealed, win or lose.
type SubmitResponse struct {
	IsCorrect      string   `json:"is_correct"`
	CorrectAnswers []Answer `json:"correct_answers"`
	CompletedCount int      `json:"completed_count"`
	CorrectCount   int      `json:"correct_count"`
	Accuracy       int      `json:"accuracy"`
	Completed      bool     `json:"completed"`
	ScoreID        string   `json:"score_id,omitempty"`
}
