package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/BrokenMental/quiz-service/internal/cache"
	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/repositories"
)

type QuestionPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewQuestionPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.QuestionRepository {
	return &QuestionPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (q *QuestionPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return q.db
}

// ===== LOOKUP OPERATIONS =====

// GetByID retrieves a question by ID; absence yields (nil, nil).
func (q *QuestionPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Question, error) {
	db := q.getDB(tx)

	var question models.Question
	if err := db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

// GetByText retrieves the question whose text matches exactly; absence yields (nil, nil).
func (q *QuestionPostgreSQL) GetByText(ctx context.Context, tx *gorm.DB, text string) (*models.Question, error) {
	db := q.getDB(tx)

	var question models.Question
	if err := db.WithContext(ctx).Where("text = ?", text).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by text: %w", err)
	}
	return &question, nil
}

// ===== QUERY OPERATIONS =====

// List retrieves all questions, unordered, with caching.
func (q *QuestionPostgreSQL) List(ctx context.Context, tx *gorm.DB) ([]*models.Question, error) {
	db := q.getDB(tx)

	var questions []*models.Question
	err := q.cacheManager.Question.CacheOrExecute(ctx, "list", &questions, cache.QuestionCacheConfig.TTL, func() (interface{}, error) {
		var dbQuestions []*models.Question
		if err := db.WithContext(ctx).Find(&dbQuestions).Error; err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
		return dbQuestions, nil
	})
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListCategories retrieves the distinct category labels across the bank, with caching.
func (q *QuestionPostgreSQL) ListCategories(ctx context.Context, tx *gorm.DB) ([]string, error) {
	db := q.getDB(tx)

	var categories []string
	err := q.cacheManager.Fast.CacheOrExecute(ctx, "categories", &categories, cache.FastCacheConfig.TTL, func() (interface{}, error) {
		var dbCategories []string
		if err := db.WithContext(ctx).
			Model(&models.Question{}).
			Distinct("category").
			Pluck("category", &dbCategories).Error; err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		return dbCategories, nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByCategory retrieves every question in a category.
func (q *QuestionPostgreSQL) GetByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*models.Question, error) {
	db := q.getDB(tx)

	var questions []*models.Question
	if err := db.WithContext(ctx).
		Where("category = ?", category).
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to get questions by category: %w", err)
	}
	return questions, nil
}

// GetByCategoryExcluding retrieves questions in a category whose id is not in excludeIDs.
func (q *QuestionPostgreSQL) GetByCategoryExcluding(ctx context.Context, tx *gorm.DB, category string, excludeIDs []string) ([]*models.Question, error) {
	db := q.getDB(tx)

	query := db.WithContext(ctx).Where("category = ?", category)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var questions []*models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to get unsolved questions: %w", err)
	}
	return questions, nil
}

// ===== SELECTION SUPPORT =====

// GetRandomQuestions retrieves random questions based on filters
func (q *QuestionPostgreSQL) GetRandomQuestions(ctx context.Context, tx *gorm.DB, filters repositories.RandomQuestionFilters) ([]*models.Question, error) {
	db := q.getDB(tx)
	query := db.WithContext(ctx).Model(&models.Question{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if len(filters.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filters.ExcludeIDs)
	}

	query = query.Order("RANDOM()").Limit(filters.Count)

	var questions []*models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to get random questions: %w", err)
	}
	return questions, nil
}
