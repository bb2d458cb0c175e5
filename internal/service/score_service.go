package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"qna-quiz-service/internal/engine"
	"qna-quiz-service/internal/event"
	"qna-quiz-service/internal/models"
	"qna-quiz-service/internal/repository"
)

// ScoreService handles ad-hoc mode: answering one bank question at a
// time, outside any session, with each submission recorded as a
// UserScore for the history views.
type ScoreService struct {
	Repo         *repository.ScoreRepository
	QuestionRepo *repository.QuestionRepository
	publisher    *event.EventPublisher
}

func NewScoreService(repo *repository.ScoreRepository, questionRepo *repository.QuestionRepository, publisher *event.EventPublisher) *ScoreService {
	return &ScoreService{Repo: repo, QuestionRepo: questionRepo, publisher: publisher}
}

// SubmitAdhoc evaluates one question directly and records the outcome.
func (s *ScoreService) SubmitAdhoc(ctx context.Context, userID, questionID string, selectedIDs []int) (*models.SubmitResponse, error) {
	if len(selectedIDs) == 0 {
		return nil, engine.ErrEmptySelection
	}

	question, err := s.QuestionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	eq := question.EngineQuestion()
	isCorrect := engine.Evaluate(eq, selectedIDs)

	score := &models.UserScore{
		UserID:          userID,
		QuestionID:      questionID,
		CategoryID:      question.CategoryID,
		IsCorrect:       flag(isCorrect),
		SelectedAnswers: selectedIDs,
		SubmitAt:        time.Now(),
	}
	if err := s.Repo.Create(ctx, score); err != nil {
		return nil, fmt.Errorf("failed to record score: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(event.ScoreRecorded, map[string]interface{}{
			"score_id":    score.ID,
			"user_id":     userID,
			"question_id": questionID,
			"is_correct":  isCorrect,
		}); err != nil {
			log.Printf("failed to publish %s: %v", event.ScoreRecorded, err)
		}
	}

	var correct []models.Answer
	for _, a := range question.Answers {
		if a.IsCorrect == models.FlagYes {
			correct = append(correct, a)
		}
	}

	return &models.SubmitResponse{
		IsCorrect:      flag(isCorrect),
		CorrectAnswers: correct,
		ScoreID:        score.ID,
	}, nil
}

func (s *ScoreService) History(ctx context.Context, userID string, limit int64) ([]models.UserScore, error) {
	return s.Repo.FindByUser(ctx, userID, limit)
}

func (s *ScoreService) CategoryScores(ctx context.Context, userID, categoryID string) ([]models.UserScore, error) {
	return s.Repo.FindByUserAndCategory(ctx, userID, categoryID)
}

// Summary aggregates a user's ad-hoc history into overall and
// per-category totals. Accuracy over zero submissions is 0.
func (s *ScoreService) Summary(ctx context.Context, userID string) (*models.ScoreSummary, error) {
	scores, err := s.Repo.FindByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	summary := &models.ScoreSummary{}
	byCategory := map[string]*models.CategoryStat{}
	for _, sc := range scores {
		summary.TotalQuestions++
		stat, ok := byCategory[sc.CategoryID]
		if !ok {
			stat = &models.CategoryStat{CategoryID: sc.CategoryID}
			byCategory[sc.CategoryID] = stat
		}
		stat.TotalQuestions++
		if sc.IsCorrect == models.FlagYes {
			summary.CorrectAnswers++
			stat.CorrectAnswers++
		}
		if sc.SubmitAt.After(stat.LastAccess) {
			stat.LastAccess = sc.SubmitAt
		}
	}
	if summary.TotalQuestions > 0 {
		summary.AccuracyRate = float64(summary.CorrectAnswers) / float64(summary.TotalQuestions) * 100
	}
	for _, stat := range byCategory {
		summary.CategoryStats = append(summary.CategoryStats, *stat)
	}
	return summary, nil
}
