package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published by the quiz service.
const (
	TypeAnswerRecorded   = "quiz.answer_recorded"
	TypeWrongAnswerSaved = "quiz.wrong_answer_saved"
	TypeUserPurged       = "quiz.user_purged"
)

// Event is the envelope for every domain event.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// NewEvent wraps payload data in a fresh envelope.
func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// AnswerRecordedEvent is emitted after every solved-question upsert.
type AnswerRecordedEvent struct {
	UserID     string   `json:"user_id"`
	QuestionID string   `json:"question_id"`
	Category   string   `json:"category"`
	IsCorrect  bool     `json:"is_correct"`
	TimeSpent  *float64 `json:"time_spent,omitempty"`
}

// WrongAnswerSavedEvent is emitted after a wrong answer lands on the review list.
type WrongAnswerSavedEvent struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Question string `json:"question"`
	RecordID string `json:"record_id"`
	Replaced int64  `json:"replaced"`
}

// UserPurgedEvent is emitted after a user's data is erased.
type UserPurgedEvent struct {
	UserID              string `json:"user_id"`
	WrongAnswersDeleted int64  `json:"wrong_answers_deleted"`
	SolvedDeleted       int64  `json:"solved_deleted"`
}

// EventPublisher publishes domain events to the message bus.
// Publishing is best-effort: callers log failures and never fail the request.
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}
