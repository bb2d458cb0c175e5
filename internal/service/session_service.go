package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"qna-quiz-service/internal/engine"
	"qna-quiz-service/internal/event"
	"qna-quiz-service/internal/models"
	"qna-quiz-service/internal/repository"
	"qna-quiz-service/internal/selection"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionService struct {
	Repo         *repository.SessionRepository
	QuestionRepo *repository.QuestionRepository
	StateRepo    *repository.SessionQuestionRepository
	policy       *selection.Policy
	publisher    *event.EventPublisher
	locks        sync.Map // session id -> *sync.Mutex
}

func NewSessionService(
	repo *repository.SessionRepository,
	questionRepo *repository.QuestionRepository,
	stateRepo *repository.SessionQuestionRepository,
	publisher *event.EventPublisher,
) *SessionService {
	return &SessionService{
		Repo:         repo,
		QuestionRepo: questionRepo,
		StateRepo:    stateRepo,
		policy:       selection.NewPolicy(),
		publisher:    publisher,
	}
}

// CreateSession seeds a new session with a bounded random sample of the
// category's questions. A category with fewer questions than requested
// yields a smaller session; only an empty category is an error.
func (s *SessionService) CreateSession(ctx context.Context, userID, categoryID, name, description string, desiredCount int) (*models.QuizSession, error) {
	pool, err := s.QuestionRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category questions: %w", err)
	}

	picked, err := s.policy.Sample(pool, desiredCount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &models.QuizSession{
		UserID:        userID,
		CategoryID:    categoryID,
		Name:          name,
		Description:   description,
		QuestionCount: len(picked),
		Status:        string(engine.StatusCreated),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	bound := make([]models.SessionQuestion, 0, len(picked))
	for i, q := range picked {
		bound = append(bound, models.NewSessionQuestion(session.ID, i, q))
	}
	if err := s.StateRepo.CreateMany(ctx, bound); err != nil {
		return nil, fmt.Errorf("failed to bind session questions: %w", err)
	}

	s.publish(event.SessionCreated, map[string]interface{}{
		"session_id":     session.ID,
		"category_id":    categoryID,
		"question_count": session.QuestionCount,
	})

	return session, nil
}

// SubmitAnswer runs one submission through the engine and persists the
// outcome. The read-modify-write for a session is guarded by a
// per-session mutex so a duplicate submission from a second tab
// observes AlreadyAnswered instead of double-counting.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, questionID string, selectedIDs []int) (*models.SubmitResponse, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	bound, err := s.StateRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session questions: %w", err)
	}

	run := engine.NewSession(session.ID, models.EngineStates(bound))
	result, err := run.SubmitAnswer(questionID, selectedIDs)
	if err != nil {
		return nil, err
	}

	if err := s.StateRepo.RecordAnswer(ctx, sessionID, questionID, selectedIDs, result.IsCorrect); err != nil {
		// The update filter requires user_answer to be absent, so a miss
		// means another writer recorded an answer first.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, engine.ErrAlreadyAnswered
		}
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	update := bson.M{
		"completed_count": result.CompletedCount,
		"correct_count":   result.CorrectCount,
		"status":          string(run.Status()),
		"updated_at":      time.Now(),
	}
	if err := s.Repo.Update(ctx, sessionID, update); err != nil {
		return nil, fmt.Errorf("failed to update session progress: %w", err)
	}

	s.publish(event.AnswerSubmitted, map[string]interface{}{
		"session_id":  sessionID,
		"question_id": questionID,
		"is_correct":  result.IsCorrect,
	})
	if result.Completed {
		s.publish(event.SessionCompleted, map[string]interface{}{
			"session_id":    sessionID,
			"correct_count": result.CorrectCount,
			"accuracy":      run.Progress().Accuracy(),
		})
		// A completed session accepts no further writes; drop its mutex
		// so the lock map does not grow with every session ever played.
		s.locks.Delete(sessionID)
	}

	return &models.SubmitResponse{
		IsCorrect:      flag(result.IsCorrect),
		CorrectAnswers: correctAnswerOptions(bound, questionID),
		CompletedCount: result.CompletedCount,
		CorrectCount:   result.CorrectCount,
		Accuracy:       run.Progress().Accuracy(),
		Completed:      result.Completed,
	}, nil
}

// GetSession returns a session with its counters and status derived
// from the recorded question states, not the stored columns. The stored
// counters are written on submit but the states are the source of
// truth, so a counter write that failed mid-submit can never be
// observed as a completed/answered mismatch here.
func (s *SessionService) GetSession(ctx context.Context, id string) (*models.QuizSession, error) {
	session, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bound, err := s.StateRepo.FindBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session questions: %w", err)
	}
	applyProgress(session, bound)
	return session, nil
}

// GetSessionQuestions returns the bound question states in order, with
// correctness flags stripped from still-unanswered questions so the
// client cannot peek at the answers.
func (s *SessionService) GetSessionQuestions(ctx context.Context, sessionID string) ([]models.SessionQuestion, error) {
	bound, err := s.StateRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range bound {
		if bound[i].UserAnswer == nil {
			bound[i].Answers = hideCorrectness(bound[i].Answers)
		}
	}
	return bound, nil
}

// FirstUnanswered returns the index to resume at, or -1 when every
// question is answered.
func (s *SessionService) FirstUnanswered(ctx context.Context, sessionID string) (int, error) {
	bound, err := s.StateRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	seq := engine.NewSequencer(models.EngineStates(bound))
	idx, ok := seq.FirstUnanswered()
	if !ok {
		return -1, nil
	}
	return idx, nil
}

func (s *SessionService) ListByCategory(ctx context.Context, categoryID string) ([]models.QuizSession, error) {
	return s.Repo.FindByCategory(ctx, categoryID)
}

func (s *SessionService) ListByUser(ctx context.Context, userID string) ([]models.QuizSession, error) {
	return s.Repo.FindByUser(ctx, userID)
}

func (s *SessionService) lock(sessionID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *SessionService) publish(eventType string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventType, payload); err != nil {
		log.Printf("failed to publish %s: %v", eventType, err)
	}
}

// applyProgress overwrites a session's counters and status with values
// derived from its bound question states. Completed/correct counts are
// a pure function of the recorded answers, which keeps every read
// consistent with the answer documents even if a stored counter update
// was lost.
func applyProgress(session *models.QuizSession, bound []models.SessionQuestion) {
	run := engine.NewSession(session.ID, models.EngineStates(bound))
	p := run.Progress()
	session.QuestionCount = p.QuestionCount
	session.CompletedCount = p.CompletedCount
	session.CorrectCount = p.CorrectCount
	session.Status = string(run.Status())
}

func flag(b bool) string {
	if b {
		return models.FlagYes
	}
	return models.FlagNo
}

func correctAnswerOptions(bound []models.SessionQuestion, questionID string) []models.Answer {
	for _, sq := range bound {
		if sq.QuestionID != questionID {
			continue
		}
		var correct []models.Answer
		for _, a := range sq.Answers {
			if a.IsCorrect == models.FlagYes {
				correct = append(correct, a)
			}
		}
		return correct
	}
	return nil
}

func hideCorrectness(answers []models.Answer) []models.Answer {
	hidden := make([]models.Answer, len(answers))
	for i, a := range answers {
		a.IsCorrect = ""
		hidden[i] = a
	}
	return hidden
}
