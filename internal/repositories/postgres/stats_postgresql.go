package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/BrokenMental/quiz-service/internal/cache"
	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/repositories"
)

type statsRepository struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewStatsRepository(db *gorm.DB, redisClient *redis.Client) repositories.StatsRepository {
	return &statsRepository{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *statsRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// GetUserCategoryStats groups a user's solved questions by category, with a
// short-lived cache invalidated on every progress write.
// AVG(time_spent) skips NULL rows; a group with no recorded times scans as nil.
func (r *statsRepository) GetUserCategoryStats(ctx context.Context, tx *gorm.DB, userID string) ([]repositories.CategoryStatsData, error) {
	db := r.getDB(tx)

	cacheKey := fmt.Sprintf("user:%s", userID)
	var stats []repositories.CategoryStatsData

	err := r.cacheManager.Stats.CacheOrExecute(ctx, cacheKey, &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		var results []struct {
			Category     string
			TotalSolved  int64
			CorrectCount int64
			AvgTime      *float64
		}

		if err := db.WithContext(ctx).
			Model(&models.SolvedQuestion{}).
			Select("category, "+
				"COUNT(*) as total_solved, "+
				"SUM(CASE WHEN is_correct THEN 1 ELSE 0 END) as correct_count, "+
				"AVG(time_spent) as avg_time").
			Where("user_id = ?", userID).
			Group("category").
			Scan(&results).Error; err != nil {
			return nil, fmt.Errorf("failed to get category stats: %w", err)
		}

		rows := make([]repositories.CategoryStatsData, 0, len(results))
		for _, row := range results {
			rows = append(rows, repositories.CategoryStatsData{
				Category:     row.Category,
				TotalSolved:  row.TotalSolved,
				CorrectCount: row.CorrectCount,
				AvgTime:      row.AvgTime,
			})
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
