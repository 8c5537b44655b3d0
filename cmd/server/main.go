package main

import (
	"log"
	"os"

	"qna/internal/db"
	"qna/internal/handlers"
	"qna/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	db.Init(logger)

	// Initialize Gin
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("qna_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	// Handlers
	authHandler := handlers.NewAuthHandler()
	questionHandler := handlers.NewQuestionHandler()
	answerHandler := handlers.NewAnswerHandler()
	commentHandler := handlers.NewCommentHandler()
	voteHandler := handlers.NewVoteHandler()

	api := r.Group("/api")

	// Public Routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)

	api.GET("/questions", questionHandler.List)
	api.GET("/questions/:qid", questionHandler.Get)
	api.GET("/questions/:qid/answers", answerHandler.ListForQuestion)
	api.GET("/answers/:aid", answerHandler.Get)
	api.GET("/users/:id/answers", answerHandler.ListByUser)
	api.GET("/comments/:cid", commentHandler.Get)

	// Protected Routes
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/questions", questionHandler.Create)
		authorized.PUT("/questions/:qid", questionHandler.Update)
		authorized.DELETE("/questions/:qid", questionHandler.Delete)

		authorized.POST("/questions/:qid/answers", answerHandler.Create)
		authorized.PUT("/answers/:aid", answerHandler.Update)
		authorized.DELETE("/answers/:aid", answerHandler.Delete)
		authorized.POST("/answers/:aid/accept", answerHandler.Accept)
		authorized.POST("/answers/:aid/vote/up", voteHandler.Up)
		authorized.POST("/answers/:aid/vote/down", voteHandler.Down)

		authorized.POST("/questions/:qid/comments", commentHandler.CreateOnQuestion)
		authorized.POST("/answers/:aid/comments", commentHandler.CreateOnAnswer)
		authorized.POST("/answers/:aid/comments/:cid/replies", commentHandler.ReplyOnAnswer)
		authorized.POST("/questions/:qid/comments/:cid/replies", commentHandler.ReplyOnQuestion)
		authorized.PUT("/comments/:cid", commentHandler.Update)
		authorized.DELETE("/comments/:cid", commentHandler.Delete)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
