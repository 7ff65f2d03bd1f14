package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BrokenMental/quiz-service/internal/services"
	"github.com/BrokenMental/quiz-service/internal/utils"
)

type HandlerManager struct {
	questionHandler *QuestionHandler
	progressHandler *ProgressHandler
	reviewHandler   *ReviewHandler
	statsHandler    *StatsHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		questionHandler: NewQuestionHandler(serviceManager.Question(), logger),
		progressHandler: NewProgressHandler(serviceManager.Progress(), logger),
		reviewHandler:   NewReviewHandler(serviceManager.Review(), logger),
		statsHandler:    NewStatsHandler(serviceManager.Stats(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		// Question routes
		questions := v1.Group("/questions")
		{
			questions.GET("", hm.questionHandler.ListQuestions)
			questions.GET("/categories", hm.questionHandler.ListCategories)
			questions.GET("/lookup", hm.questionHandler.LookupQuestion)
			questions.GET("/unsolved", hm.progressHandler.GetUnsolvedQuestions)
		}

		// Progress routes
		progress := v1.Group("/progress")
		{
			progress.POST("/solved", hm.progressHandler.RecordSolved)
		}

		// Review routes
		review := v1.Group("/review")
		{
			review.POST("", hm.reviewHandler.SaveWrongAnswer)
			review.GET("", hm.reviewHandler.ListReview)
			review.GET("/categories", hm.reviewHandler.ListCategories)
			review.DELETE("/users/:user_id", hm.reviewHandler.PurgeUser)
			review.DELETE("/:id", hm.reviewHandler.DeleteOne)
		}

		// User statistics
		users := v1.Group("/users")
		{
			users.GET("/:user_id/stats", hm.statsHandler.GetUserStats)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "quiz-service",
		})
	})
}
