package handlers

import (
	"errors"
	"net/http"

	"qna-quiz-service/internal/engine"
	"qna-quiz-service/internal/selection"

	"go.mongodb.org/mongo-driver/mongo"
)

// statusFor maps domain errors onto HTTP status codes. Anything not
// recognized is an infrastructure failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrEmptySelection):
		return http.StatusBadRequest
	case errors.Is(err, selection.ErrEmptyCategory):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrQuestionNotInSession):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrAlreadyAnswered):
		return http.StatusConflict
	case errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
