package engine

// Status is the lifecycle state of a session. Transitions are monotonic:
// created -> in_progress -> completed, one answered question at a time.
type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// SubmitResult is returned for every accepted submission. The correct
// answers are always included so they can be revealed to the user,
// win or lose.
type SubmitResult struct {
	QuestionID     string   `json:"question_id"`
	IsCorrect      bool     `json:"is_correct"`
	CorrectAnswers []Answer `json:"correct_answers"`
	CompletedCount int      `json:"completed_count"`
	CorrectCount   int      `json:"correct_count"`
	Completed      bool     `json:"completed"`
}

// Session is the aggregate root for one quiz run: a fixed, ordered set
// of questions plus forward-only progress counters. It is rebuilt from
// stored question states on every operation, so the counters are always
// derived from the recorded answers and cannot drift from them.
type Session struct {
	ID        string
	sequencer *Sequencer
	progress  Progress
}

// NewSession binds a question-state list to a session. The question
// count is fixed at the size of the bound set; completion counters are
// derived from any answers already recorded, which makes the same
// constructor serve both fresh and resumed sessions.
func NewSession(id string, states []QuestionState) *Session {
	seq := NewSequencer(states)
	progress := Progress{QuestionCount: seq.Len()}
	for i := range states {
		if states[i].Answered() {
			progress.OnAnswerRecorded(states[i].IsCorrect)
		}
	}
	return &Session{ID: id, sequencer: seq, progress: progress}
}

func (s *Session) Sequencer() *Sequencer {
	return s.sequencer
}

func (s *Session) Progress() Progress {
	return s.progress
}

// Status derives the lifecycle state from the counters.
func (s *Session) Status() Status {
	switch {
	case s.progress.IsComplete() && s.progress.QuestionCount > 0:
		return StatusCompleted
	case s.progress.CompletedCount > 0:
		return StatusInProgress
	default:
		return StatusCreated
	}
}

// SubmitAnswer scores one selection against one bound question and, on
// success, records the answer and advances the counters as a single
// unit. No error path leaves a partial update behind: validation
// happens before any state is touched, and a completed session cannot
// accept further submissions because every question it holds already
// reports ErrAlreadyAnswered.
func (s *Session) SubmitAnswer(questionID string, selected []int) (*SubmitResult, error) {
	idx, ok := s.sequencer.IndexOf(questionID)
	if !ok {
		return nil, ErrQuestionNotInSession
	}
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}
	state, _ := s.sequencer.At(idx)
	if state.Answered() {
		return nil, ErrAlreadyAnswered
	}

	isCorrect := Evaluate(state.Question, selected)

	if err := s.sequencer.RecordAnswer(idx, selected, isCorrect); err != nil {
		return nil, err
	}
	s.progress.OnAnswerRecorded(isCorrect)

	return &SubmitResult{
		QuestionID:     questionID,
		IsCorrect:      isCorrect,
		CorrectAnswers: state.CorrectAnswers(),
		CompletedCount: s.progress.CompletedCount,
		CorrectCount:   s.progress.CorrectCount,
		Completed:      s.progress.IsComplete(),
	}, nil
}
