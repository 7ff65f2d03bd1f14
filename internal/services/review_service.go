package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BrokenMental/quiz-service/internal/events"
	"github.com/BrokenMental/quiz-service/internal/models"
	"github.com/BrokenMental/quiz-service/internal/repositories"
	"github.com/BrokenMental/quiz-service/internal/validator"
)

type reviewService struct {
	repo      repositories.Repository
	validator *validator.Validator
	publisher events.EventPublisher
	logger    *slog.Logger
}

// NewReviewService creates a review service instance.
func NewReviewService(repo repositories.Repository, v *validator.Validator, publisher events.EventPublisher, logger *slog.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		validator: v,
		publisher: publisher,
		logger:    logger,
	}
}

// SaveWrongAnswer stores a wrong answer on the user's review list. Any earlier
// record for the same (user, question text) pair is replaced so the list holds
// at most one entry per question.
func (s *reviewService) SaveWrongAnswer(ctx context.Context, req *SaveWrongAnswerRequest) (*SaveWrongAnswerResponse, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	record := &models.WrongAnswer{
		UserID:        req.UserID,
		Category:      req.Category,
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		UserAnswer:    req.UserAnswer,
		CorrectIndex:  *req.CorrectIndex,
		CreatedAt:     time.Now().UTC(),
	}

	deleted, err := s.repo.Review().ReplaceForQuestion(ctx, nil, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save wrong answer: %w", err)
	}

	s.publishWrongAnswerSaved(ctx, record, deleted)

	return &SaveWrongAnswerResponse{
		ID:      record.ID,
		Deleted: deleted,
	}, nil
}

// ListCategories returns the distinct categories on the user's review list.
func (s *reviewService) ListCategories(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidationFailed)
	}

	categories, err := s.repo.Review().ListCategories(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list review categories: %w", err)
	}
	return categories, nil
}

// ListByCategory returns the user's wrong answers in one category.
func (s *reviewService) ListByCategory(ctx context.Context, userID, category string) ([]*models.WrongAnswer, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidationFailed)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidationFailed)
	}

	records, err := s.repo.Review().ListByUserAndCategory(ctx, nil, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list wrong answers: %w", err)
	}
	return records, nil
}

// DeleteOne removes a single wrong-answer record by id.
func (s *reviewService) DeleteOne(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidationFailed)
	}

	deleted, err := s.repo.Review().DeleteByID(ctx, nil, id)
	if err != nil {
		return fmt.Errorf("failed to delete wrong answer: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: wrong answer", ErrNotFound)
	}
	return nil
}

// PurgeUser erases every wrong answer and every solved-question record for the
// user inside one transaction. Purging an unknown user succeeds with zero
// counts, so the call is idempotent.
func (s *reviewService) PurgeUser(ctx context.Context, userID string) (*PurgeUserResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidationFailed)
	}

	var wrongDeleted, solvedDeleted int64
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		var err error
		wrongDeleted, err = txRepo.Review().DeleteByUser(ctx, nil, userID)
		if err != nil {
			return fmt.Errorf("failed to delete wrong answers: %w", err)
		}
		solvedDeleted, err = txRepo.Progress().DeleteByUser(ctx, nil, userID)
		if err != nil {
			return fmt.Errorf("failed to delete solved questions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to purge user data: %w", err)
	}

	s.publishUserPurged(ctx, userID, wrongDeleted, solvedDeleted)

	return &PurgeUserResponse{
		WrongAnswersDeleted: wrongDeleted,
		SolvedDeleted:       solvedDeleted,
	}, nil
}

func (s *reviewService) publishWrongAnswerSaved(ctx context.Context, record *models.WrongAnswer, replaced int64) {
	if s.publisher == nil {
		return
	}
	event := events.NewEvent(events.TypeWrongAnswerSaved, events.WrongAnswerSavedEvent{
		UserID:   record.UserID,
		Category: record.Category,
		Question: record.Question,
		RecordID: record.ID,
		Replaced: replaced,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish wrong answer saved event", "error", err, "user_id", record.UserID)
	}
}

func (s *reviewService) publishUserPurged(ctx context.Context, userID string, wrongDeleted, solvedDeleted int64) {
	if s.publisher == nil {
		return
	}
	event := events.NewEvent(events.TypeUserPurged, events.UserPurgedEvent{
		UserID:              userID,
		WrongAnswersDeleted: wrongDeleted,
		SolvedDeleted:       solvedDeleted,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish user purged event", "error", err, "user_id", userID)
	}
}
