package engine

import (
	"errors"
	"testing"
)

func testStates(n int) []QuestionState {
	states := make([]QuestionState, 0, n)
	for i := 0; i < n; i++ {
		states = append(states, QuestionState{
			Question: Question{
				ID:         string(rune('a' + i)),
				AnswerType: AnswerTypeSingle,
				Answers: []Answer{
					{ID: 1, IsCorrect: true},
					{ID: 2},
				},
			},
		})
	}
	return states
}

func TestSequencerNavigationClamps(t *testing.T) {
	seq := NewSequencer(testStates(3))

	if idx := seq.Prev(); idx != 0 {
		t.Errorf("Prev at start = %d, want 0", idx)
	}
	if idx := seq.Next(); idx != 1 {
		t.Errorf("Next = %d, want 1", idx)
	}
	if idx := seq.Next(); idx != 2 {
		t.Errorf("Next = %d, want 2", idx)
	}
	if idx := seq.Next(); idx != 2 {
		t.Errorf("Next past end = %d, want 2", idx)
	}
	if idx := seq.Prev(); idx != 1 {
		t.Errorf("Prev = %d, want 1", idx)
	}
}

func TestSequencerJumpClamps(t *testing.T) {
	seq := NewSequencer(testStates(3))

	if idx := seq.Jump(2); idx != 2 {
		t.Errorf("Jump(2) = %d, want 2", idx)
	}
	if idx := seq.Jump(99); idx != 2 {
		t.Errorf("Jump(99) = %d, want 2", idx)
	}
	if idx := seq.Jump(-5); idx != 0 {
		t.Errorf("Jump(-5) = %d, want 0", idx)
	}
}

func TestSequencerFirstUnanswered(t *testing.T) {
	seq := NewSequencer(testStates(3))

	idx, ok := seq.FirstUnanswered()
	if !ok || idx != 0 {
		t.Fatalf("FirstUnanswered = (%d, %v), want (0, true)", idx, ok)
	}

	// Answer the middle question first; resume point stays at 0.
	if err := seq.RecordAnswer(1, []int{1}, true); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	idx, ok = seq.FirstUnanswered()
	if !ok || idx != 0 {
		t.Fatalf("FirstUnanswered after answering index 1 = (%d, %v), want (0, true)", idx, ok)
	}

	if err := seq.RecordAnswer(0, []int{2}, false); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	idx, ok = seq.FirstUnanswered()
	if !ok || idx != 2 {
		t.Fatalf("FirstUnanswered = (%d, %v), want (2, true)", idx, ok)
	}

	if err := seq.RecordAnswer(2, []int{1}, true); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if _, ok := seq.FirstUnanswered(); ok {
		t.Error("FirstUnanswered reported an unanswered question in a finished sequence")
	}
}

func TestSequencerRecordAnswerImmutable(t *testing.T) {
	seq := NewSequencer(testStates(2))

	if err := seq.RecordAnswer(0, []int{1}, true); err != nil {
		t.Fatalf("first RecordAnswer: %v", err)
	}

	err := seq.RecordAnswer(0, []int{2}, false)
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("second RecordAnswer error = %v, want ErrAlreadyAnswered", err)
	}

	state, _ := seq.At(0)
	if len(state.UserAnswer) != 1 || state.UserAnswer[0] != 1 {
		t.Errorf("recorded answer was overwritten: %v", state.UserAnswer)
	}
	if !state.IsCorrect {
		t.Error("recorded correctness was overwritten")
	}
}

func TestSequencerRecordAnswerCopiesSelection(t *testing.T) {
	seq := NewSequencer(testStates(1))

	selected := []int{1}
	if err := seq.RecordAnswer(0, selected, true); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	selected[0] = 99

	state, _ := seq.At(0)
	if state.UserAnswer[0] != 1 {
		t.Errorf("stored answer aliases caller slice: %v", state.UserAnswer)
	}
}

func TestSequencerIndexOf(t *testing.T) {
	seq := NewSequencer(testStates(3))

	idx, ok := seq.IndexOf("b")
	if !ok || idx != 1 {
		t.Errorf("IndexOf(b) = (%d, %v), want (1, true)", idx, ok)
	}
	if _, ok := seq.IndexOf("missing"); ok {
		t.Error("IndexOf found a question that is not in the session")
	}
}
