package models

import "time"

// UserScore records one ad-hoc answer submission (outside any session).
type UserScore struct {
	ID              string    `bson:"_id,omitempty" json:"score_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	QuestionID      string    `bson:"question_id" json:"question_id"`
	CategoryID      string    `bson:"category_id" json:"category_id"`
	IsCorrect       string    `bson:"is_correct" json:"is_correct"`
	SelectedAnswers []int     `bson:"selected_answers" json:"selected_answers"`
	SubmitAt        time.Time `bson:"submit_at" json:"submit_at"`
}

type CategoryStat struct {
	CategoryID     string    `bson:"category_id" json:"category_id"`
	TotalQuestions int       `bson:"total_questions" json:"total_questions"`
	CorrectAnswers int       `bson:"correct_answers" json:"correct_answers"`
	LastAccess     time.Time `bson:"last_access" json:"last_access"`
}

type ScoreSummary struct {
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	AccuracyRate   float64        `json:"accuracy_rate"`
	CategoryStats  []CategoryStat `json:"category_stats"`
}
