package engine

import "testing"

func singleChoiceQuestion() Question {
	return Question{
		ID:         "q1",
		Text:       "Which HTTP status means Not Found?",
		AnswerType: AnswerTypeSingle,
		Answers: []Answer{
			{ID: 3, Text: "200"},
			{ID: 7, Text: "404", IsCorrect: true},
			{ID: 9, Text: "500"},
		},
	}
}

func multiChoiceQuestion() Question {
	return Question{
		ID:         "q2",
		Text:       "Which of these are HTTP methods?",
		AnswerType: AnswerTypeMultiple,
		Answers: []Answer{
			{ID: 2, Text: "GET", IsCorrect: true},
			{ID: 5, Text: "PUT", IsCorrect: true},
			{ID: 9, Text: "FETCH"},
		},
	}
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		question Question
		selected []int
		want     bool
	}{
		{"single correct", singleChoiceQuestion(), []int{7}, true},
		{"single wrong option", singleChoiceQuestion(), []int{3}, false},
		{"single with extra option", singleChoiceQuestion(), []int{7, 3}, false},
		{"multi exact match", multiChoiceQuestion(), []int{2, 5}, true},
		{"multi order independent", multiChoiceQuestion(), []int{5, 2}, true},
		{"multi missing member", multiChoiceQuestion(), []int{2}, false},
		{"multi extra member", multiChoiceQuestion(), []int{2, 5, 9}, false},
		{"multi all wrong", multiChoiceQuestion(), []int{9}, false},
		{"multi duplicate selection", multiChoiceQuestion(), []int{2, 2, 5}, true},
		{"unknown id", singleChoiceQuestion(), []int{42}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.question, tc.selected)
			if got != tc.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tc.selected, got, tc.want)
			}
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	q := multiChoiceQuestion()
	Evaluate(q, []int{2, 5})
	Evaluate(q, []int{9})

	for _, a := range q.Answers {
		switch a.ID {
		case 2, 5:
			if !a.IsCorrect {
				t.Errorf("answer %d lost its correctness marker", a.ID)
			}
		default:
			if a.IsCorrect {
				t.Errorf("answer %d gained a correctness marker", a.ID)
			}
		}
	}
}
