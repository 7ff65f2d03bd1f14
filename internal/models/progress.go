package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SolvedQuestion records that a user answered a question, correctly or not.
// Exactly one row exists per (user_id, question_id); submissions for an
// already-solved question overwrite the row via upsert.
type SolvedQuestion struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID string `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_user_question"`

	// QuestionID is a weak reference into the question bank; no cascading delete.
	QuestionID string `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_question"`

	Category  string `json:"category" gorm:"not null;index;size:100"`
	IsCorrect bool   `json:"is_correct" gorm:"not null"`

	// TimeSpent is optional seconds; NULL rows are skipped by the stats average.
	TimeSpent *float64 `json:"time_spent"`

	SolvedAt time.Time `json:"solved_at" gorm:"not null"`
}

func (s *SolvedQuestion) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
