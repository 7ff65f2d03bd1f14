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

type ReviewPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewReviewPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ReviewRepository {
	return &ReviewPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *ReviewPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ReplaceForQuestion enforces the at-most-one-record-per-(user, question)
// invariant: delete every matching row, then insert the fresh one. Both
// statements run in a single transaction so a concurrent save for the same
// pair cannot leave a duplicate behind.
func (r *ReviewPostgreSQL) ReplaceForQuestion(ctx context.Context, tx *gorm.DB, record *models.WrongAnswer) (int64, error) {
	db := r.getDB(tx)

	var deleted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("user_id = ? AND question = ?", record.UserID, record.Question).
			Delete(&models.WrongAnswer{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete stale wrong answers: %w", result.Error)
		}
		deleted = result.RowsAffected

		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create wrong answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// ListCategories retrieves the distinct categories among a user's records.
func (r *ReviewPostgreSQL) ListCategories(ctx context.Context, tx *gorm.DB, userID string) ([]string, error) {
	db := r.getDB(tx)

	var categories []string
	if err := db.WithContext(ctx).
		Model(&models.WrongAnswer{}).
		Where("user_id = ?", userID).
		Distinct("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list wrong answer categories: %w", err)
	}
	return categories, nil
}

// ListByUserAndCategory retrieves a user's records in a category, unordered.
func (r *ReviewPostgreSQL) ListByUserAndCategory(ctx context.Context, tx *gorm.DB, userID, category string) ([]*models.WrongAnswer, error) {
	db := r.getDB(tx)

	var records []*models.WrongAnswer
	if err := db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list wrong answers: %w", err)
	}
	return records, nil
}

// DeleteByID removes a single record, returning the number of rows removed.
// Zero rows is not an error here; the service layer decides how absence surfaces.
func (r *ReviewPostgreSQL) DeleteByID(ctx context.Context, tx *gorm.DB, id string) (int64, error) {
	db := r.getDB(tx)

	result := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.WrongAnswer{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete wrong answer: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByUser bulk deletes every record for a user.
func (r *ReviewPostgreSQL) DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) (int64, error) {
	db := r.getDB(tx)

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.WrongAnswer{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete wrong answers for user: %w", result.Error)
	}
	return result.RowsAffected, nil
}
