package main

import (
	"log"
	"os"
	"time"

	"qna-quiz-service/internal/db"
	"qna-quiz-service/internal/event"
	"qna-quiz-service/internal/handlers"
	"qna-quiz-service/internal/repository"
	"qna-quiz-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "qna_quiz_service"
	}

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(dbName)

	// Categories
	categoryRepo := repository.NewCategoryRepository(database)
	categoryService := service.NewCategoryService(categoryRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Sessions
	sessionRepo := repository.NewSessionRepository(database)
	sessionQuestionRepo := repository.NewSessionQuestionRepository(database)
	sessionService := service.NewSessionService(sessionRepo, questionRepo, sessionQuestionRepo, publisher)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Ad-hoc scores
	scoreRepo := repository.NewScoreRepository(database)
	scoreService := service.NewScoreService(scoreRepo, questionRepo, publisher)
	scoreHandler := handlers.NewScoreHandler(scoreService)

	quiz := r.Group("/api/v1/quiz")
	{
		quiz.POST("/sessions", sessionHandler.CreateSession)
		quiz.GET("/sessions/:id", sessionHandler.GetSession)
		quiz.GET("/sessions/:id/questions", sessionHandler.GetSessionQuestions)
		quiz.GET("/sessions/:id/resume", sessionHandler.Resume)
		quiz.POST("/sessions/:id/submit", sessionHandler.SubmitAnswer)
		quiz.GET("/categories/:id/sessions", sessionHandler.ListByCategory)
		quiz.GET("/my-sessions", sessionHandler.MySessions)
	}

	qna := r.Group("/api/v1/qna")
	{
		qna.GET("/questions", questionHandler.ListQuestions)
		qna.GET("/questions/:id", questionHandler.GetQuestion)
		qna.POST("/questions", questionHandler.CreateQuestion)
		qna.PUT("/questions/:id", questionHandler.UpdateQuestion)
		qna.DELETE("/questions/:id", questionHandler.DeleteQuestion)
		qna.POST("/submit", scoreHandler.SubmitAdhoc)
	}

	categories := r.Group("/api/v1/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
		categories.POST("", categoryHandler.CreateCategory)
		categories.PUT("/:id", categoryHandler.UpdateCategory)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}

	scores := r.Group("/api/v1/scores")
	{
		scores.GET("/history", scoreHandler.History)
		scores.GET("/summary", scoreHandler.Summary)
		scores.GET("/categories/:id", scoreHandler.CategoryScores)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
