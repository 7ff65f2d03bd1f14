package repositories

import (
	"context"

	"github.com/BrokenMental/quiz-service/internal/models"
	"gorm.io/gorm"
)

// QuestionRepository interface for read-only question bank access.
// Lookup methods return (nil, nil) when no question matches; absence is an
// explicit result here, not an error.
type QuestionRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Question, error)
	GetByText(ctx context.Context, tx *gorm.DB, text string) (*models.Question, error)

	// Query operations
	List(ctx context.Context, tx *gorm.DB) ([]*models.Question, error)
	ListCategories(ctx context.Context, tx *gorm.DB) ([]string, error)
	GetByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*models.Question, error)
	GetByCategoryExcluding(ctx context.Context, tx *gorm.DB, category string, excludeIDs []string) ([]*models.Question, error)

	// Selection support
	GetRandomQuestions(ctx context.Context, tx *gorm.DB, filters RandomQuestionFilters) ([]*models.Question, error)
}
