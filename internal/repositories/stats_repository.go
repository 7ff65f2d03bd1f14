package repositories

import (
	"context"

	"gorm.io/gorm"
)

// StatsRepository interface for grouped aggregations over solved questions.
type StatsRepository interface {
	// GetUserCategoryStats groups the user's solved questions by category,
	// producing count, correct count and the mean time_spent (SQL AVG skips
	// NULL values). Each category appears at most once; no ordering guarantee.
	GetUserCategoryStats(ctx context.Context, tx *gorm.DB, userID string) ([]CategoryStatsData, error)
}
