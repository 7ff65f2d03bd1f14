package repositories

import (
	"context"

	"github.com/BrokenMental/quiz-service/internal/models"
	"gorm.io/gorm"
)

// ProgressRepository interface for solved-question records.
type ProgressRepository interface {
	// Upsert creates the (user_id, question_id) record or overwrites its
	// category, is_correct, time_spent and solved_at if it already exists.
	Upsert(ctx context.Context, tx *gorm.DB, record *models.SolvedQuestion) error

	// Query operations
	GetByUserAndQuestion(ctx context.Context, tx *gorm.DB, userID, questionID string) (*models.SolvedQuestion, error)
	GetSolvedQuestionIDs(ctx context.Context, tx *gorm.DB, userID, category string) ([]string, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.SolvedQuestion, error)

	// Bulk operations
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) (int64, error)
}
