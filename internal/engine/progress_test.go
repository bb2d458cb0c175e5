package engine

import "testing"

func TestProgressCounters(t *testing.T) {
	p := Progress{QuestionCount: 3}

	p.OnAnswerRecorded(true)
	if p.CompletedCount != 1 || p.CorrectCount != 1 {
		t.Errorf("after correct answer: completed=%d correct=%d", p.CompletedCount, p.CorrectCount)
	}

	p.OnAnswerRecorded(false)
	if p.CompletedCount != 2 || p.CorrectCount != 1 {
		t.Errorf("after wrong answer: completed=%d correct=%d", p.CompletedCount, p.CorrectCount)
	}

	if p.IsComplete() {
		t.Error("IsComplete before all questions answered")
	}
	p.OnAnswerRecorded(true)
	if !p.IsComplete() {
		t.Error("IsComplete false after all questions answered")
	}

	if p.CorrectCount > p.CompletedCount || p.CompletedCount > p.QuestionCount {
		t.Errorf("counter invariant violated: %+v", p)
	}
}

func TestProgressAccuracy(t *testing.T) {
	testCases := []struct {
		name      string
		completed int
		correct   int
		want      int
	}{
		{"nothing answered", 0, 0, 0},
		{"all correct", 4, 4, 100},
		{"none correct", 4, 0, 0},
		{"two thirds rounds up", 3, 2, 67},
		{"one third rounds down", 3, 1, 33},
		{"half", 2, 1, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Progress{QuestionCount: 10, CompletedCount: tc.completed, CorrectCount: tc.correct}
			if got := p.Accuracy(); got != tc.want {
				t.Errorf("Accuracy() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestProgressAccuracyIdempotent(t *testing.T) {
	p := Progress{QuestionCount: 5, CompletedCount: 3, CorrectCount: 2}
	first := p.Accuracy()
	second := p.Accuracy()
	if first != second {
		t.Errorf("Accuracy changed between reads: %d then %d", first, second)
	}
}
