package repository

import (
	"context"
	"time"

	"qna-quiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionQuestionRepository struct {
	Col *mongo.Collection
}

func NewSessionQuestionRepository(db *mongo.Database) *SessionQuestionRepository {
	return &SessionQuestionRepository{Col: db.Collection("session_questions")}
}

// CreateMany inserts the full bound question set of a new session.
func (r *SessionQuestionRepository) CreateMany(ctx context.Context, questions []models.SessionQuestion) error {
	docs := make([]interface{}, 0, len(questions))
	for i := range questions {
		docs = append(docs, questions[i])
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

// FindBySession returns a session's question states in sequence order.
func (r *SessionQuestionRepository) FindBySession(ctx context.Context, sessionID string) ([]models.SessionQuestion, error) {
	opts := options.Find().SetSort(bson.M{"sequence": 1})
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.SessionQuestion
	for cur.Next(ctx) {
		var q models.SessionQuestion
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

// RecordAnswer writes the user's answer and its correctness onto one
// bound question. The filter requires user_answer to still be absent,
// so a concurrent duplicate submission cannot overwrite a recorded
// answer even if it slipped past the service-level check.
func (r *SessionQuestionRepository) RecordAnswer(ctx context.Context, sessionID, questionID string, userAnswer []int, isCorrect bool) error {
	now := time.Now()
	res, err := r.Col.UpdateOne(ctx,
		bson.M{
			"session_id":  sessionID,
			"question_id": questionID,
			"user_answer": bson.M{"$exists": false},
		},
		bson.M{"$set": bson.M{
			"user_answer": userAnswer,
			"is_correct":  isCorrect,
			"answered_at": now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
