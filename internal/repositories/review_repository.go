package repositories

import (
	"context"

	"github.com/BrokenMental/quiz-service/internal/models"
	"gorm.io/gorm"
)

// ReviewRepository interface for wrong-answer records.
type ReviewRepository interface {
	// ReplaceForQuestion deletes every existing record for the record's
	// (user_id, question) pair and inserts the fresh record, both inside one
	// transaction. Returns the number of rows deleted.
	ReplaceForQuestion(ctx context.Context, tx *gorm.DB, record *models.WrongAnswer) (int64, error)

	// Query operations
	ListCategories(ctx context.Context, tx *gorm.DB, userID string) ([]string, error)
	ListByUserAndCategory(ctx context.Context, tx *gorm.DB, userID, category string) ([]*models.WrongAnswer, error)

	// Delete operations; both return the number of rows removed.
	DeleteByID(ctx context.Context, tx *gorm.DB, id string) (int64, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) (int64, error)
}
