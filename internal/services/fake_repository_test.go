package services

import (
	"context"

	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeRepository is an in-memory repositories.Repository for service tests.
type fakeRepository struct {
	question *fakeQuestionRepo
	progress *fakeProgressRepo
	review   *fakeReviewRepo
	stats    *fakeStatsRepo
}

func newFakeRepository() *fakeRepository {
	question := &fakeQuestionRepo{}
	progress := &fakeProgressRepo{records: make(map[string]*models.SolvedQuestion)}
	review := &fakeReviewRepo{}
	return &fakeRepository{
		question: question,
		progress: progress,
		review:   review,
		stats:    &fakeStatsRepo{progress: progress},
	}
}

func (f *fakeRepository) Question() repositories.QuestionRepository { return f.question }
func (f *fakeRepository) Progress() repositories.ProgressRepository { return f.progress }
func (f *fakeRepository) Review() repositories.ReviewRepository     { return f.review }
func (f *fakeRepository) Stats() repositories.StatsRepository       { return f.stats }
func (f *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(f)
}
func (f *fakeRepository) Ping(ctx context.Context) error { return nil }
func (f *fakeRepository) Close() error                   { return nil }

// ===== QUESTIONS =====

type fakeQuestionRepo struct {
	questions []*models.Question
}

func (r *fakeQuestionRepo) add(q *models.Question) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	r.questions = append(r.questions, q)
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, _ *gorm.DB, id string) (*models.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuestionRepo) GetByText(_ context.Context, _ *gorm.DB, text string) (*models.Question, error) {
	for _, q := range r.questions {
		if q.Text == text {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuestionRepo) List(_ context.Context, _ *gorm.DB) ([]*models.Question, error) {
	return append([]*models.Question(nil), r.questions...), nil
}

func (r *fakeQuestionRepo) ListCategories(_ context.Context, _ *gorm.DB) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, q := range r.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			categories = append(categories, q.Category)
		}
	}
	return categories, nil
}

func (r *fakeQuestionRepo) GetByCategory(_ context.Context, _ *gorm.DB, category string) ([]*models.Question, error) {
	var out []*models.Question
	for _, q := range r.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) GetByCategoryExcluding(_ context.Context, _ *gorm.DB, category string, excludeIDs []string) ([]*models.Question, error) {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var out []*models.Question
	for _, q := range r.questions {
		if q.Category == category && !excluded[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) GetRandomQuestions(_ context.Context, _ *gorm.DB, filters repositories.RandomQuestionFilters) ([]*models.Question, error) {
	excluded := make(map[string]bool, len(filters.ExcludeIDs))
	for _, id := range filters.ExcludeIDs {
		excluded[id] = true
	}
	var out []*models.Question
	for _, q := range r.questions {
		if len(out) >= filters.Count {
			break
		}
		if q.Category == filters.Category && !excluded[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

// ===== PROGRESS =====

type fakeProgressRepo struct {
	records map[string]*models.SolvedQuestion
}

func progressKey(userID, questionID string) string {
	return userID + "|" + questionID
}

func (r *fakeProgressRepo) Upsert(_ context.Context, _ *gorm.DB, record *models.SolvedQuestion) error {
	key := progressKey(record.UserID, record.QuestionID)
	if existing, ok := r.records[key]; ok {
		existing.Category = record.Category
		existing.IsCorrect = record.IsCorrect
		existing.TimeSpent = record.TimeSpent
		existing.SolvedAt = record.SolvedAt
		return nil
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	stored := *record
	r.records[key] = &stored
	return nil
}

func (r *fakeProgressRepo) GetByUserAndQuestion(_ context.Context, _ *gorm.DB, userID, questionID string) (*models.SolvedQuestion, error) {
	if record, ok := r.records[progressKey(userID, questionID)]; ok {
		copied := *record
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeProgressRepo) GetSolvedQuestionIDs(_ context.Context, _ *gorm.DB, userID, category string) ([]string, error) {
	var ids []string
	for _, record := range r.records {
		if record.UserID == userID && record.Category == category {
			ids = append(ids, record.QuestionID)
		}
	}
	return ids, nil
}

func (r *fakeProgressRepo) ListByUser(_ context.Context, _ *gorm.DB, userID string) ([]*models.SolvedQuestion, error) {
	var out []*models.SolvedQuestion
	for _, record := range r.records {
		if record.UserID == userID {
			copied := *record
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) DeleteByUser(_ context.Context, _ *gorm.DB, userID string) (int64, error) {
	var deleted int64
	for key, record := range r.records {
		if record.UserID == userID {
			delete(r.records, key)
			deleted++
		}
	}
	return deleted, nil
}

// ===== REVIEW =====

type fakeReviewRepo struct {
	records []*models.WrongAnswer
}

func (r *fakeReviewRepo) ReplaceForQuestion(_ context.Context, _ *gorm.DB, record *models.WrongAnswer) (int64, error) {
	var kept []*models.WrongAnswer
	var deleted int64
	for _, existing := range r.records {
		if existing.UserID == record.UserID && existing.Question == record.Question {
			deleted++
			continue
		}
		kept = append(kept, existing)
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	stored := *record
	r.records = append(kept, &stored)
	return deleted, nil
}

func (r *fakeReviewRepo) ListCategories(_ context.Context, _ *gorm.DB, userID string) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, record := range r.records {
		if record.UserID == userID && !seen[record.Category] {
			seen[record.Category] = true
			categories = append(categories, record.Category)
		}
	}
	return categories, nil
}

func (r *fakeReviewRepo) ListByUserAndCategory(_ context.Context, _ *gorm.DB, userID, category string) ([]*models.WrongAnswer, error) {
	var out []*models.WrongAnswer
	for _, record := range r.records {
		if record.UserID == userID && record.Category == category {
			copied := *record
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) DeleteByID(_ context.Context, _ *gorm.DB, id string) (int64, error) {
	for i, record := range r.records {
		if record.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeReviewRepo) DeleteByUser(_ context.Context, _ *gorm.DB, userID string) (int64, error) {
	var kept []*models.WrongAnswer
	var deleted int64
	for _, record := range r.records {
		if record.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, record)
	}
	r.records = kept
	return deleted, nil
}

// ===== STATS =====

type fakeStatsRepo struct {
	progress *fakeProgressRepo
}

func (r *fakeStatsRepo) GetUserCategoryStats(_ context.Context, _ *gorm.DB, userID string) ([]repositories.CategoryStatsData, error) {
	type agg struct {
		total   int64
		correct int64
		timeSum float64
		timed   int64
	}
	groups := make(map[string]*agg)
	var order []string
	for _, record := range r.progress.records {
		if record.UserID != userID {
			continue
		}
		group, ok := groups[record.Category]
		if !ok {
			group = &agg{}
			groups[record.Category] = group
			order = append(order, record.Category)
		}
		group.total++
		if record.IsCorrect {
			group.correct++
		}
		if record.TimeSpent != nil {
			group.timeSum += *record.TimeSpent
			group.timed++
		}
	}

	stats := make([]repositories.CategoryStatsData, 0, len(groups))
	for _, category := range order {
		group := groups[category]
		row := repositories.CategoryStatsData{
			Category:     category,
			TotalSolved:  group.total,
			CorrectCount: group.correct,
		}
		if group.timed > 0 {
			avg := group.timeSum / float64(group.timed)
			row.AvgTime = &avg
		}
		stats = append(stats, row)
	}
	return stats, nil
}
