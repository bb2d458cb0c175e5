package service

import (
	"context"
	"time"

	"qna-quiz-service/internal/models"
	"qna-quiz-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) ListQuestions(ctx context.Context, categoryID string, skip, limit int64) ([]models.Question, error) {
	return s.Repo.FindAll(ctx, categoryID, skip, limit)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, question *models.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	update := bson.M{
		"text":        question.Text,
		"category_id": question.CategoryID,
		"answer_type": question.AnswerType,
		"note":        question.Note,
		"link_url":    question.LinkURL,
		"answers":     question.Answers,
		"updated_at":  time.Now(),
	}
	return s.Repo.Update(ctx, id, update)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
