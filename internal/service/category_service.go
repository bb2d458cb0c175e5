package service

import (
	"context"
	"time"

	"qna-quiz-service/internal/models"
	"qna-quiz-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.IsUse == "" {
		category.IsUse = models.FlagYes
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	return s.Repo.Create(ctx, category)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, category *models.Category) error {
	update := bson.M{
		"name":       category.Name,
		"is_use":     category.IsUse,
		"updated_at": time.Now(),
	}
	return s.Repo.Update(ctx, id, update)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
