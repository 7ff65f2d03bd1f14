package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WrongAnswer is a review-list entry created when a user answers incorrectly.
// At most one row exists per (user_id, question); the save path deletes all
// matching rows before inserting the fresh one, so there is no uniqueness
// constraint on the pair.
type WrongAnswer struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID string `json:"user_id" gorm:"not null;size:255;index:idx_user_question_text"`

	Category string `json:"category" gorm:"not null;index;size:100"`

	// Question is the question text, not an id; the review list survives
	// question-bank reshuffles.
	Question string `json:"question" gorm:"type:text;not null;index:idx_user_question_text"`

	CorrectAnswer string `json:"correct_answer" gorm:"type:text;not null"`
	UserAnswer    string `json:"user_answer" gorm:"type:text;not null"`
	CorrectIndex  int    `json:"correct_index" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (w *WrongAnswer) BeforeCreate(_ *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
