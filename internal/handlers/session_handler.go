package handlers

import (
	"context"
	"net/http"
	"strconv"

	"qna-quiz-service/internal/models"
	"qna-quiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// CreateSession creates a new quiz session for a category. The desired
// size comes from the question_count query parameter; short categories
// yield smaller sessions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		CategoryID  string `json:"category_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	desired, _ := strconv.Atoi(c.Query("question_count"))

	session, err := h.Service.CreateSession(context.Background(), userID, req.CategoryID, req.Name, req.Description, desired)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Service.GetSession(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSessionQuestions returns the session's bound question states in
// order, including recorded answers for review.
func (h *SessionHandler) GetSessionQuestions(c *gin.Context) {
	id := c.Param("id")
	questions, err := h.Service.GetSessionQuestions(context.Background(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// SubmitAnswer records one answer for one session question.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	sessionID := c.Param("id")

	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.SubmitAnswer(context.Background(), sessionID, req.QuestionID, req.SelectedAnswerIDs)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Resume returns the index of the first unanswered question, or -1 with
// completed=true when the session is done.
func (h *SessionHandler) Resume(c *gin.Context) {
	id := c.Param("id")
	idx, err := h.Service.FirstUnanswered(context.Background(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"index": idx, "completed": idx == -1})
}

func (h *SessionHandler) ListByCategory(c *gin.Context) {
	categoryID := c.Param("id")
	sessions, err := h.Service.ListByCategory(context.Background(), categoryID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) MySessions(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	sessions, err := h.Service.ListByUser(context.Background(), userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
