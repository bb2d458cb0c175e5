package service

import (
	"testing"

	"qna-quiz-service/internal/engine"
	"qna-quiz-service/internal/models"
)

func boundQuestions() []models.SessionQuestion {
	yes := true
	no := false
	return []models.SessionQuestion{
		{
			SessionID:  "s1",
			Sequence:   0,
			QuestionID: "q1",
			AnswerType: 1,
			Answers: []models.Answer{
				{ID: 7, IsCorrect: models.FlagYes},
				{ID: 3, IsCorrect: models.FlagNo},
			},
			UserAnswer: []int{7},
			IsCorrect:  &yes,
		},
		{
			SessionID:  "s1",
			Sequence:   1,
			QuestionID: "q2",
			AnswerType: 1,
			Answers: []models.Answer{
				{ID: 1, IsCorrect: models.FlagYes},
				{ID: 2, IsCorrect: models.FlagNo},
			},
			UserAnswer: []int{2},
			IsCorrect:  &no,
		},
		{
			SessionID:  "s1",
			Sequence:   2,
			QuestionID: "q3",
			AnswerType: 1,
			Answers: []models.Answer{
				{ID: 1, IsCorrect: models.FlagYes},
			},
		},
	}
}

func TestApplyProgressDerivesCountersFromStates(t *testing.T) {
	// Stored counters lag the recorded answers, as after a counter
	// update that was lost mid-submit. The read path must report what
	// the answer documents say.
	session := &models.QuizSession{
		ID:             "s1",
		QuestionCount:  3,
		CompletedCount: 0,
		CorrectCount:   0,
		Status:         string(engine.StatusCreated),
	}

	applyProgress(session, boundQuestions())

	if session.CompletedCount != 2 {
		t.Errorf("CompletedCount = %d, want 2", session.CompletedCount)
	}
	if session.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", session.CorrectCount)
	}
	if session.Status != string(engine.StatusInProgress) {
		t.Errorf("Status = %s, want %s", session.Status, engine.StatusInProgress)
	}
	if session.CorrectCount > session.CompletedCount || session.CompletedCount > session.QuestionCount {
		t.Errorf("counter invariant violated: %+v", session)
	}
}

func TestApplyProgressCompletedSession(t *testing.T) {
	yes := true
	bound := boundQuestions()
	bound[2].UserAnswer = []int{1}
	bound[2].IsCorrect = &yes

	// Stale stored counters in the other direction as well.
	session := &models.QuizSession{
		ID:             "s1",
		QuestionCount:  3,
		CompletedCount: 1,
		CorrectCount:   1,
		Status:         string(engine.StatusInProgress),
	}

	applyProgress(session, bound)

	if session.CompletedCount != 3 || session.CorrectCount != 2 {
		t.Errorf("counters = %d/%d, want 3/2", session.CompletedCount, session.CorrectCount)
	}
	if session.Status != string(engine.StatusCompleted) {
		t.Errorf("Status = %s, want %s", session.Status, engine.StatusCompleted)
	}
}

func TestApplyProgressEmptyAnswers(t *testing.T) {
	session := &models.QuizSession{ID: "s1", QuestionCount: 3, Status: string(engine.StatusCreated)}
	bound := boundQuestions()
	for i := range bound {
		bound[i].UserAnswer = nil
		bound[i].IsCorrect = nil
	}

	applyProgress(session, bound)

	if session.CompletedCount != 0 || session.CorrectCount != 0 {
		t.Errorf("counters = %d/%d, want 0/0", session.CompletedCount, session.CorrectCount)
	}
	if session.Status != string(engine.StatusCreated) {
		t.Errorf("Status = %s, want %s", session.Status, engine.StatusCreated)
	}
}

func TestSessionLockEvicted(t *testing.T) {
	s := &SessionService{}

	first := s.lock("s1")
	if again := s.lock("s1"); again != first {
		t.Fatal("lock for the same session should be reused")
	}

	s.locks.Delete("s1")

	if fresh := s.lock("s1"); fresh == first {
		t.Error("evicted lock was not replaced")
	}
}
