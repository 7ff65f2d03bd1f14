package handlers

import (
	"net/http"
	"strconv"

	"github.com/BrokenMental/quiz-service/internal/services"
	"github.com/BrokenMental/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	BaseHandler
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService, logger utils.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     NewBaseHandler(logger),
		progressService: progressService,
	}
}

// GetUnsolvedQuestions selects a batch of questions the user has not solved
// @Summary Get unsolved questions
// @Description Selects up to limit questions from the category the user has not solved, topped up with solved ones when the pool runs short
// @Tags progress
// @Produce json
// @Param user_id query string true "User ID"
// @Param category query string true "Category"
// @Param limit query int false "Batch size (default 10, max 50)"
// @Success 200 {array} models.Question
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions/unsolved [get]
func (h *ProgressHandler) GetUnsolvedQuestions(c *gin.Context) {
	req := &services.UnsolvedQuestionsRequest{
		UserID:   c.Query("user_id"),
		Category: c.Query("category"),
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Validation failed",
				Details: "limit must be an integer",
			})
			return
		}
		req.Limit = limit
	}

	questions, err := h.progressService.GetUnsolvedQuestions(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// RecordSolved records an answered question
// @Summary Record a solved question
// @Description Records that the user answered a question; answering the same question again overwrites the earlier record
// @Tags progress
// @Accept json
// @Produce json
// @Param record body services.RecordSolvedRequest true "Solved question data"
// @Success 200 {object} services.RecordSolvedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /progress/solved [post]
func (h *ProgressHandler) RecordSolved(c *gin.Context) {
	var req services.RecordSolvedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.progressService.RecordSolved(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
