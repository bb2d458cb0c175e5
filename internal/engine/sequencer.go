package engine

// Sequencer provides ordered, indexable access to a session's question
// states. Navigation clamps at the sequence boundaries: stepping past
// the last or before the first question is a silently-ignored request,
// not an error. Moving to a later question is allowed even when the
// current one is unanswered.
type Sequencer struct {
	states  []QuestionState
	current int
}

func NewSequencer(states []QuestionState) *Sequencer {
	return &Sequencer{states: states}
}

func (s *Sequencer) Len() int {
	return len(s.states)
}

// Index returns the current position.
func (s *Sequencer) Index() int {
	return s.current
}

// Current returns the question state at the current position, or nil
// for an empty sequence.
func (s *Sequencer) Current() *QuestionState {
	if len(s.states) == 0 {
		return nil
	}
	return &s.states[s.current]
}

// At returns the question state at index i.
func (s *Sequencer) At(i int) (*QuestionState, bool) {
	if i < 0 || i >= len(s.states) {
		return nil, false
	}
	return &s.states[i], true
}

// Next advances to the following question, clamped at the last index.
func (s *Sequencer) Next() int {
	if s.current < len(s.states)-1 {
		s.current++
	}
	return s.current
}

// Prev moves to the preceding question, clamped at index 0.
func (s *Sequencer) Prev() int {
	if s.current > 0 {
		s.current--
	}
	return s.current
}

// Jump moves to index i, clamped to the valid range.
func (s *Sequencer) Jump(i int) int {
	if i < 0 {
		i = 0
	}
	if i > len(s.states)-1 {
		i = len(s.states) - 1
	}
	if i < 0 {
		i = 0
	}
	s.current = i
	return s.current
}

// FirstUnanswered returns the lowest index whose question has no
// recorded answer, or false when every question is answered. Used to
// resume an in-progress session at the right place.
func (s *Sequencer) FirstUnanswered() (int, bool) {
	for i := range s.states {
		if !s.states[i].Answered() {
			return i, true
		}
	}
	return 0, false
}

// IndexOf locates a question by id within the bound set.
func (s *Sequencer) IndexOf(questionID string) (int, bool) {
	for i := range s.states {
		if s.states[i].ID == questionID {
			return i, true
		}
	}
	return 0, false
}

// RecordAnswer stores the user's selection and its correctness for the
// question at index i. Both fields are set together, exactly once: a
// question that already has an answer rejects the write with
// ErrAlreadyAnswered and is left untouched.
func (s *Sequencer) RecordAnswer(i int, selected []int, isCorrect bool) error {
	state, ok := s.At(i)
	if !ok {
		return ErrQuestionNotInSession
	}
	if state.Answered() {
		return ErrAlreadyAnswered
	}
	state.UserAnswer = append([]int(nil), selected...)
	state.IsCorrect = isCorrect
	return nil
}

// States returns the underlying question states in session order.
func (s *Sequencer) States() []QuestionState {
	return s.states
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *Sequencer) AnsweredCount() int {
	n := 0
	for i := range s.states {
		if s.states[i].Answered() {
			n++
		}
	}
	return n
}
