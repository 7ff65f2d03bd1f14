package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is a single multiple-choice entry in the question bank.
// Questions are seeded outside this service and never mutated or deleted here.
type Question struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	Category string `json:"category" gorm:"not null;index;size:100"`

	// Text acts as a secondary natural key for the exact-match lookup path.
	Text string `json:"question" gorm:"type:text;not null;uniqueIndex"`

	// Options stored as JSONB: ordered array of 4 strings.
	Options datatypes.JSON `json:"options" gorm:"type:jsonb;not null"`

	// Answer is the 0-based index into Options.
	Answer int `json:"answer" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (q *Question) BeforeCreate(_ *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// OptionList decodes the JSONB options column.
func (q *Question) OptionList() ([]string, error) {
	var options []string
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return nil, err
	}
	return options, nil
}
