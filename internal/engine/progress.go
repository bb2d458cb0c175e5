package engine

import "math"

// Progress tracks session-level completion counters. Counters only move
// forward; invariant: 0 <= CorrectCount <= CompletedCount <= QuestionCount.
type Progress struct {
	QuestionCount  int `json:"question_count"`
	CompletedCount int `json:"completed_count"`
	CorrectCount   int `json:"correct_count"`
}

// OnAnswerRecorded advances the counters for one recorded answer. Must
// be called exactly once per successful Sequencer.RecordAnswer.
func (p *Progress) OnAnswerRecorded(wasCorrect bool) {
	p.CompletedCount++
	if wasCorrect {
		p.CorrectCount++
	}
}

// Accuracy returns the percentage of answered questions answered
// correctly, rounded to the nearest integer. A session with nothing
// answered reports 0 rather than dividing by zero.
func (p Progress) Accuracy() int {
	if p.CompletedCount == 0 {
		return 0
	}
	return int(math.Round(float64(p.CorrectCount) / float64(p.CompletedCount) * 100))
}

// IsComplete reports whether every bound question has been answered.
func (p Progress) IsComplete() bool {
	return p.CompletedCount == p.QuestionCount
}
