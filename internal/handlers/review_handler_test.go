package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/services"
	"github.com/BrokenMental/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// stubReviewService is a canned-response services.ReviewService.
type stubReviewService struct {
	saveResp   *services.SaveWrongAnswerResponse
	saveErr    error
	categories []string
	records    []*models.WrongAnswer
	deleteErr  error
	purgeResp  *services.PurgeUserResponse
}

func (s *stubReviewService) SaveWrongAnswer(_ context.Context, _ *services.SaveWrongAnswerRequest) (*services.SaveWrongAnswerResponse, error) {
	return s.saveResp, s.saveErr
}
func (s *stubReviewService) ListCategories(_ context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", services.ErrValidationFailed)
	}
	return s.categories, nil
}
func (s *stubReviewService) ListByCategory(_ context.Context, _, _ string) ([]*models.WrongAnswer, error) {
	return s.records, nil
}
func (s *stubReviewService) DeleteOne(_ context.Context, _ string) error {
	return s.deleteErr
}
func (s *stubReviewService) PurgeUser(_ context.Context, _ string) (*services.PurgeUserResponse, error) {
	return s.purgeResp, nil
}

func newReviewTestRouter(svc services.ReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	handler := NewReviewHandler(svc, logger)

	router := gin.New()
	review := router.Group("/api/v1/review")
	review.POST("", handler.SaveWrongAnswer)
	review.GET("", handler.ListReview)
	review.GET("/categories", handler.ListCategories)
	review.DELETE("/users/:user_id", handler.PurgeUser)
	review.DELETE("/:id", handler.DeleteOne)
	return router
}

func TestReviewHandler_SaveWrongAnswer(t *testing.T) {
	svc := &stubReviewService{
		saveResp: &services.SaveWrongAnswerResponse{ID: "record-1", Deleted: 1},
	}
	router := newReviewTestRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"user_id":        "user-1",
		"category":       "math",
		"question":       "What is 2+2?",
		"correct_answer": "4",
		"user_answer":    "5",
		"correct_index":  2,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp services.SaveWrongAnswerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ID != "record-1" || resp.Deleted != 1 {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestReviewHandler_SaveWrongAnswer_InvalidPayload(t *testing.T) {
	router := newReviewTestRouter(&stubReviewService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/review", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestReviewHandler_SaveWrongAnswer_ValidationError(t *testing.T) {
	svc := &stubReviewService{
		saveErr: fmt.Errorf("%w: user_id is required", services.ErrValidationFailed),
	}
	router := newReviewTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/review", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestReviewHandler_ListReview(t *testing.T) {
	svc := &stubReviewService{
		categories: []string{"math", "science"},
		records:    []*models.WrongAnswer{{ID: "r-1", UserID: "user-1", Category: "math"}},
	}
	router := newReviewTestRouter(svc)

	t.Run("without category returns categories", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/review?user_id=user-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var categories []string
		if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(categories) != 2 {
			t.Errorf("Expected 2 categories, got %v", categories)
		}
	})

	t.Run("with category returns records", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/review?user_id=user-1&category=math", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var records []models.WrongAnswer
		if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(records) != 1 || records[0].ID != "r-1" {
			t.Errorf("Unexpected records: %v", records)
		}
	})

	t.Run("missing user id is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/review", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestReviewHandler_DeleteOne(t *testing.T) {
	t.Run("missing record maps to 404", func(t *testing.T) {
		svc := &stubReviewService{
			deleteErr: fmt.Errorf("%w: wrong answer", services.ErrNotFound),
		}
		router := newReviewTestRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/review/does-not-exist", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("deleted record maps to 204", func(t *testing.T) {
		router := newReviewTestRouter(&stubReviewService{})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/review/record-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
	})
}

func TestReviewHandler_PurgeUser(t *testing.T) {
	svc := &stubReviewService{
		purgeResp: &services.PurgeUserResponse{WrongAnswersDeleted: 2, SolvedDeleted: 3},
	}
	router := newReviewTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/review/users/user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp services.PurgeUserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.WrongAnswersDeleted != 2 || resp.SolvedDeleted != 3 {
		t.Errorf("Unexpected response: %+v", resp)
	}
}
