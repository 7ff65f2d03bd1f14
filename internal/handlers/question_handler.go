package handlers

import (
	"net/http"

	"github.com/BrokenMental/quiz-service/internal/services"
	"github.com/BrokenMental/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	BaseHandler
	questionService services.QuestionService
}

func NewQuestionHandler(questionService services.QuestionService, logger utils.Logger) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
	}
}

// ListQuestions returns the full question bank
// @Summary List questions
// @Description Returns every question in the bank
// @Tags questions
// @Produce json
// @Success 200 {array} models.Question
// @Failure 500 {object} ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.ListQuestions(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// ListCategories returns the distinct question categories
// @Summary List question categories
// @Description Returns the distinct categories present in the question bank
// @Tags questions
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse
// @Router /questions/categories [get]
func (h *QuestionHandler) ListCategories(c *gin.Context) {
	categories, err := h.questionService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// LookupQuestion finds a question by its exact text
// @Summary Look up a question by text
// @Description Returns the question whose text matches exactly
// @Tags questions
// @Produce json
// @Param text query string true "Question text"
// @Success 200 {object} models.Question
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions/lookup [get]
func (h *QuestionHandler) LookupQuestion(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: "text query parameter is required",
		})
		return
	}

	question, err := h.questionService.GetByText(c.Request.Context(), text)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}
