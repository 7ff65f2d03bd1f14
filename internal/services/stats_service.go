package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/BrokenMental/quiz-service/internal/repositories"
)

type statsService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

// NewStatsService creates a stats service instance.
func NewStatsService(repo repositories.Repository, logger *slog.Logger) StatsService {
	return &statsService{
		repo:   repo,
		logger: logger,
	}
}

// GetUserStats returns per-category solved counts, correct counts and average
// answer time for the user. A user with no solved questions gets an empty
// category list, not an error.
func (s *statsService) GetUserStats(ctx context.Context, userID string) (*UserStatsResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidationFailed)
	}

	rows, err := s.repo.Stats().GetUserCategoryStats(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	categories := make([]CategoryStatsResponse, 0, len(rows))
	for _, row := range rows {
		avg := 0.0
		if row.AvgTime != nil {
			avg = roundToOneDecimal(*row.AvgTime)
		}
		categories = append(categories, CategoryStatsResponse{
			Category:     row.Category,
			TotalSolved:  row.TotalSolved,
			CorrectCount: row.CorrectCount,
			AvgTime:      avg,
		})
	}

	return &UserStatsResponse{
		UserID:     userID,
		Categories: categories,
	}, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
