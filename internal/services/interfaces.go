package services

import (
	"context"
	"errors"
	"time"

	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/validator"
)

// ===== SERVICE ERRORS =====

var (
	// ErrValidationFailed marks missing or malformed required input; handlers
	// surface it as a client error.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound marks an absent referenced entity, surfaced distinctly from
	// server failure. Any other error is a store failure.
	ErrNotFound = errors.New("resource not found")
)

// ===== REQUEST DTOs =====

// Use validator request types
type RecordSolvedRequest = validator.RecordSolvedRequest
type SaveWrongAnswerRequest = validator.SaveWrongAnswerRequest
type UnsolvedQuestionsRequest = validator.UnsolvedQuestionsRequest

// ===== RESPONSE DTOs =====

type RecordSolvedResponse struct {
	ID       string    `json:"id"`
	SolvedAt time.Time `json:"solved_at"`
}

type SaveWrongAnswerResponse struct {
	ID string `json:"id"`

	// Deleted is the number of stale records replaced; informational only.
	Deleted int64 `json:"deleted"`
}

type PurgeUserResponse struct {
	WrongAnswersDeleted int64 `json:"wrong_answers_deleted"`
	SolvedDeleted       int64 `json:"solved_deleted"`
}

type CategoryStatsResponse struct {
	Category     string  `json:"category"`
	TotalSolved  int64   `json:"total_solved"`
	CorrectCount int64   `json:"correct_count"`
	AvgTime      float64 `json:"avg_time"`
}

type UserStatsResponse struct {
	UserID     string                  `json:"user_id"`
	Categories []CategoryStatsResponse `json:"categories"`
}

// ===== SERVICE INTERFACES =====

// QuestionService exposes read-only question bank access.
type QuestionService interface {
	ListQuestions(ctx context.Context) ([]*models.Question, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetByText(ctx context.Context, text string) (*models.Question, error)
}

// ProgressService tracks which questions a user has solved and selects
// unsolved batches.
type ProgressService interface {
	GetUnsolvedQuestions(ctx context.Context, req *UnsolvedQuestionsRequest) ([]*models.Question, error)
	RecordSolved(ctx context.Context, req *RecordSolvedRequest) (*RecordSolvedResponse, error)
}

// ReviewService manages the per-user wrong-answer review list.
type ReviewService interface {
	SaveWrongAnswer(ctx context.Context, req *SaveWrongAnswerRequest) (*SaveWrongAnswerResponse, error)
	ListCategories(ctx context.Context, userID string) ([]string, error)
	ListByCategory(ctx context.Context, userID, category string) ([]*models.WrongAnswer, error)
	DeleteOne(ctx context.Context, id string) error
	PurgeUser(ctx context.Context, userID string) (*PurgeUserResponse, error)
}

// StatsService aggregates per-category statistics for a user.
type StatsService interface {
	GetUserStats(ctx context.Context, userID string) (*UserStatsResponse, error)
}

// ServiceManager wires services to their dependencies and owns their lifecycle.
type ServiceManager interface {
	Question() QuestionService
	Progress() ProgressService
	Review() ReviewService
	Stats() StatsService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
