package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BrokenMental/quiz-service/internal/cache"
	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/repositories"
)

type ProgressPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewProgressPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ProgressRepository {
	return &ProgressPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (p *ProgressPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return p.db
}

// Upsert creates or overwrites the solved record for (user_id, question_id).
// The conditional write rides on the unique composite index, so concurrent
// submissions for the same pair cannot duplicate.
func (p *ProgressPostgreSQL) Upsert(ctx context.Context, tx *gorm.DB, record *models.SolvedQuestion) error {
	db := p.getDB(tx)

	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category", "is_correct", "time_spent", "solved_at",
		}),
	}).Create(record).Error; err != nil {
		return fmt.Errorf("failed to upsert solved question: %w", err)
	}

	cache.InvalidateUserStatsCache(ctx, p.cacheManager, record.UserID)
	return nil
}

// GetByUserAndQuestion retrieves the solved record for a pair; absence yields (nil, nil).
func (p *ProgressPostgreSQL) GetByUserAndQuestion(ctx context.Context, tx *gorm.DB, userID, questionID string) (*models.SolvedQuestion, error) {
	db := p.getDB(tx)

	var record models.SolvedQuestion
	if err := db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get solved question: %w", err)
	}
	return &record, nil
}

// GetSolvedQuestionIDs retrieves the ids of every question the user has
// already answered in a category.
func (p *ProgressPostgreSQL) GetSolvedQuestionIDs(ctx context.Context, tx *gorm.DB, userID, category string) ([]string, error) {
	db := p.getDB(tx)

	var ids []string
	if err := db.WithContext(ctx).
		Model(&models.SolvedQuestion{}).
		Where("user_id = ? AND category = ?", userID, category).
		Pluck("question_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get solved question ids: %w", err)
	}
	return ids, nil
}

// ListByUser retrieves all solved records for a user.
func (p *ProgressPostgreSQL) ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.SolvedQuestion, error) {
	db := p.getDB(tx)

	var records []*models.SolvedQuestion
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list solved questions: %w", err)
	}
	return records, nil
}

// DeleteByUser bulk deletes every solved record for a user. Deleting zero
// rows is not an error; the purge path is idempotent.
func (p *ProgressPostgreSQL) DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) (int64, error) {
	db := p.getDB(tx)

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.SolvedQuestion{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete solved questions: %w", result.Error)
	}

	cache.InvalidateUserStatsCache(ctx, p.cacheManager, userID)
	return result.RowsAffected, nil
}
