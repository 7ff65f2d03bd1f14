package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/repositories"
)

type questionService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

// NewQuestionService creates a question service instance.
func NewQuestionService(repo repositories.Repository, logger *slog.Logger) QuestionService {
	return &questionService{
		repo:   repo,
		logger: logger,
	}
}

// ListQuestions returns the full question bank.
func (s *questionService) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	questions, err := s.repo.Question().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// ListCategories returns the distinct categories present in the question bank.
func (s *questionService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Question().ListCategories(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list question categories: %w", err)
	}
	return categories, nil
}

// GetByText looks up a single question by its exact text.
func (s *questionService) GetByText(ctx context.Context, text string) (*models.Question, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrValidationFailed)
	}

	question, err := s.repo.Question().GetByText(ctx, nil, text)
	if err != nil {
		return nil, fmt.Errorf("failed to get question by text: %w", err)
	}
	if question == nil {
		return nil, fmt.Errorf("%w: question", ErrNotFound)
	}
	return question, nil
}
