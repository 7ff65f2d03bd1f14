package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/BrokenMental/quiz-service/internal/events"
	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/repositories"
	"github.com/BrokenMental/quiz-service/internal/validator"
)

const (
	defaultUnsolvedLimit = 10
	maxUnsolvedLimit     = 50
)

type progressService struct {
	repo      repositories.Repository
	validator *validator.Validator
	publisher events.EventPublisher
	logger    *slog.Logger
}

// NewProgressService creates a progress service instance.
func NewProgressService(repo repositories.Repository, v *validator.Validator, publisher events.EventPublisher, logger *slog.Logger) ProgressService {
	return &progressService{
		repo:      repo,
		validator: v,
		publisher: publisher,
		logger:    logger,
	}
}

// GetUnsolvedQuestions selects up to req.Limit questions from the category that
// the user has not yet solved. When fewer unsolved questions exist than
// requested, already-solved questions top up the batch. The returned order is
// uniformly shuffled.
func (s *progressService) GetUnsolvedQuestions(ctx context.Context, req *UnsolvedQuestionsRequest) ([]*models.Question, error) {
	if req.Limit <= 0 {
		req.Limit = defaultUnsolvedLimit
	}
	if req.Limit > maxUnsolvedLimit {
		req.Limit = maxUnsolvedLimit
	}
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	solvedIDs, err := s.repo.Progress().GetSolvedQuestionIDs(ctx, nil, req.UserID, req.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to get solved question ids: %w", err)
	}

	pool, err := s.repo.Question().GetByCategoryExcluding(ctx, nil, req.Category, solvedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get unsolved questions: %w", err)
	}

	// Top up with already-solved questions when the unsolved pool runs short.
	if len(pool) < req.Limit {
		poolIDs := make([]string, len(pool))
		for i, q := range pool {
			poolIDs[i] = q.ID
		}
		extra, err := s.repo.Question().GetRandomQuestions(ctx, nil, repositories.RandomQuestionFilters{
			Category:   req.Category,
			ExcludeIDs: poolIDs,
			Count:      req.Limit - len(pool),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to top up question batch: %w", err)
		}
		pool = append(pool, extra...)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > req.Limit {
		pool = pool[:req.Limit]
	}

	s.logger.Debug("Selected unsolved questions",
		"user_id", req.UserID,
		"category", req.Category,
		"solved_count", len(solvedIDs),
		"returned", len(pool))

	return pool, nil
}

// RecordSolved records that the user answered a question. Repeat answers to
// the same question overwrite the previous record instead of adding a new one.
func (s *progressService) RecordSolved(ctx context.Context, req *RecordSolvedRequest) (*RecordSolvedResponse, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	record := &models.SolvedQuestion{
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		Category:   req.Category,
		IsCorrect:  *req.IsCorrect,
		TimeSpent:  req.TimeSpent,
		SolvedAt:   time.Now().UTC(),
	}

	if err := s.repo.Progress().Upsert(ctx, nil, record); err != nil {
		return nil, fmt.Errorf("failed to record solved question: %w", err)
	}

	// On conflict the insert ID is discarded, so re-read the stored row.
	stored, err := s.repo.Progress().GetByUserAndQuestion(ctx, nil, req.UserID, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load solved question record: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("failed to load solved question record: record missing after upsert")
	}

	s.publishAnswerRecorded(ctx, req)

	return &RecordSolvedResponse{
		ID:       stored.ID,
		SolvedAt: stored.SolvedAt,
	}, nil
}

func (s *progressService) publishAnswerRecorded(ctx context.Context, req *RecordSolvedRequest) {
	if s.publisher == nil {
		return
	}
	event := events.NewEvent(events.TypeAnswerRecorded, events.AnswerRecordedEvent{
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		Category:   req.Category,
		IsCorrect:  *req.IsCorrect,
		TimeSpent:  req.TimeSpent,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish answer recorded event", "error", err, "user_id", req.UserID)
	}
}
