package handlers

import (
	"net/http"

	"github.com/BrokenMental/quiz-service/internal/services"
	"github.com/BrokenMental/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService, logger utils.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   NewBaseHandler(logger),
		reviewService: reviewService,
	}
}

// SaveWrongAnswer puts a wrong answer on the user's review list
// @Summary Save a wrong answer
// @Description Saves a wrong answer for later review; an earlier record for the same question is replaced
// @Tags review
// @Accept json
// @Produce json
// @Param record body services.SaveWrongAnswerRequest true "Wrong answer data"
// @Success 201 {object} services.SaveWrongAnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /review [post]
func (h *ReviewHandler) SaveWrongAnswer(c *gin.Context) {
	var req services.SaveWrongAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.reviewService.SaveWrongAnswer(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListReview returns review entries, or categories when no category is given
// @Summary List review entries
// @Description With category, returns the user's wrong answers in that category; without it, returns the distinct categories on the review list
// @Tags review
// @Produce json
// @Param user_id query string true "User ID"
// @Param category query string false "Category"
// @Success 200 {array} models.WrongAnswer
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /review [get]
func (h *ReviewHandler) ListReview(c *gin.Context) {
	userID := c.Query("user_id")
	category := c.Query("category")

	if category == "" {
		categories, err := h.reviewService.ListCategories(c.Request.Context(), userID)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
		return
	}

	records, err := h.reviewService.ListByCategory(c.Request.Context(), userID, category)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// ListCategories returns the distinct categories on the user's review list
// @Summary List review categories
// @Description Returns the distinct categories among the user's wrong answers
// @Tags review
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /review/categories [get]
func (h *ReviewHandler) ListCategories(c *gin.Context) {
	categories, err := h.reviewService.ListCategories(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// DeleteOne removes one wrong-answer record
// @Summary Delete a review entry
// @Description Removes a single wrong-answer record by its id
// @Tags review
// @Produce json
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /review/{id} [delete]
func (h *ReviewHandler) DeleteOne(c *gin.Context) {
	if err := h.reviewService.DeleteOne(c.Request.Context(), c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PurgeUser erases all stored data for a user
// @Summary Purge user data
// @Description Removes every wrong answer and solved-question record for the user; purging an unknown user succeeds with zero counts
// @Tags review
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} services.PurgeUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /review/users/{user_id} [delete]
func (h *ReviewHandler) PurgeUser(c *gin.Context) {
	resp, err := h.reviewService.PurgeUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Purged user data",
		"user_id", c.Param("user_id"),
		"wrong_answers_deleted", resp.WrongAnswersDeleted,
		"solved_deleted", resp.SolvedDeleted)

	c.JSON(http.StatusOK, resp)
}
