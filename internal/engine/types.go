package engine

// AnswerType discriminates how many options of a question may be correct.
type AnswerType int

const (
	AnswerTypeSingle   AnswerType = 1
	AnswerTypeMultiple AnswerType = 2
)

type Answer struct {
	ID        int    `json:"answer_id"`
	Text      string `json:"answer_text"`
	IsCorrect bool   `json:"is_correct"`
}

type Question struct {
	ID         string     `json:"question_id"`
	Text       string     `json:"question_text"`
	AnswerType AnswerType `json:"answer_type"`
	Answers    []Answer   `json:"answers"`
}

// CorrectAnswers returns the options marked correct, in option order.
func (q Question) CorrectAnswers() []Answer {
	var correct []Answer
	for _, a := range q.Answers {
		if a.IsCorrect {
			correct = append(correct, a)
		}
	}
	return correct
}

// CorrectAnswerIDs returns the ids of the options marked correct.
func (q Question) CorrectAnswerIDs() []int {
	var ids []int
	for _, a := range q.Answers {
		if a.IsCorrect {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// QuestionState is a question bound to a session together with the
// user's recorded answer. UserAnswer == nil means not yet answered;
// IsCorrect is meaningful only once UserAnswer is set.
type QuestionState struct {
	Question
	UserAnswer []int `json:"user_answer,omitempty"`
	IsCorrect  bool  `json:"is_correct,omitempty"`
}

// Answered reports whether an answer has been recorded for this question.
func (s QuestionState) Answered() bool {
	return s.UserAnswer != nil
}
