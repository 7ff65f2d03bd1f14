package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
)

func newTestStatsService(repo *fakeRepository) StatsService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewStatsService(repo, logger)
}

func TestStatsService_GetUserStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates per category", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestStatsService(repo)
		progressService, _ := newTestProgressService(repo)

		mathIDs := seedQuestions(repo, "math", 3)
		scienceIDs := seedQuestions(repo, "science", 2)

		record := func(questionID, category string, correct bool, timeSpent *float64) {
			_, err := progressService.RecordSolved(ctx, &RecordSolvedRequest{
				UserID:     "user-1",
				QuestionID: questionID,
				Category:   category,
				IsCorrect:  &correct,
				TimeSpent:  timeSpent,
			})
			if err != nil {
				t.Fatalf("Failed to record solved question: %v", err)
			}
		}

		t1, t2 := 10.0, 15.5
		record(mathIDs[0], "math", true, &t1)
		record(mathIDs[1], "math", false, &t2)
		record(mathIDs[2], "math", true, nil)
		record(scienceIDs[0], "science", false, nil)
		record(scienceIDs[1], "science", false, nil)

		stats, err := service.GetUserStats(ctx, "user-1")
		if err != nil {
			t.Fatalf("Failed to get user stats: %v", err)
		}
		if stats.UserID != "user-1" {
			t.Errorf("Expected user id user-1, got %s", stats.UserID)
		}
		if len(stats.Categories) != 2 {
			t.Fatalf("Expected 2 categories, got %d", len(stats.Categories))
		}

		byCategory := make(map[string]CategoryStatsResponse)
		for _, c := range stats.Categories {
			byCategory[c.Category] = c
		}

		math := byCategory["math"]
		if math.TotalSolved != 3 {
			t.Errorf("Expected 3 solved in math, got %d", math.TotalSolved)
		}
		if math.CorrectCount != 2 {
			t.Errorf("Expected 2 correct in math, got %d", math.CorrectCount)
		}
		// Average skips records without a time. (10 + 15.5) / 2 = 12.75 -> 12.8
		if math.AvgTime != 12.8 {
			t.Errorf("Expected average time 12.8 in math, got %v", math.AvgTime)
		}

		science := byCategory["science"]
		if science.TotalSolved != 2 {
			t.Errorf("Expected 2 solved in science, got %d", science.TotalSolved)
		}
		if science.CorrectCount != 0 {
			t.Errorf("Expected 0 correct in science, got %d", science.CorrectCount)
		}
		// No record in the group carries a time.
		if science.AvgTime != 0 {
			t.Errorf("Expected zero average time in science, got %v", science.AvgTime)
		}
	})

	t.Run("user with no records gets an empty list", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestStatsService(repo)

		stats, err := service.GetUserStats(ctx, "user-1")
		if err != nil {
			t.Fatalf("Failed to get user stats: %v", err)
		}
		if len(stats.Categories) != 0 {
			t.Errorf("Expected no categories, got %d", len(stats.Categories))
		}
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestStatsService(repo)

		_, err := service.GetUserStats(ctx, "")
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("Expected ErrValidationFailed, got %v", err)
		}
	})
}
