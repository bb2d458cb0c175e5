package repository

import (
	"context"

	"qna-quiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScoreRepository struct {
	Col *mongo.Collection
}

func NewScoreRepository(db *mongo.Database) *ScoreRepository {
	return &ScoreRepository{Col: db.Collection("user_scores")}
}

func (r *ScoreRepository) Create(ctx context.Context, score *models.UserScore) error {
	res, err := r.Col.InsertOne(ctx, score)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		score.ID = oid.Hex()
	}
	return nil
}

func (r *ScoreRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]models.UserScore, error) {
	opts := options.Find().SetSort(bson.M{"submit_at": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var scores []models.UserScore
	for cur.Next(ctx) {
		var s models.UserScore
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, cur.Err()
}

func (r *ScoreRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID string) ([]models.UserScore, error) {
	opts := options.Find().SetSort(bson.M{"submit_at": -1})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID, "category_id": categoryID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var scores []models.UserScore
	for cur.Next(ctx) {
		var s models.UserScore
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, cur.Err()
}
