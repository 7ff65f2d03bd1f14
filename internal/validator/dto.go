package validator

// RecordSolvedRequest marks a question as answered by a user.
// IsCorrect is a pointer so an explicit false still passes "required".
type RecordSolvedRequest struct {
	UserID     string   `json:"user_id" validate:"required"`
	QuestionID string   `json:"question_id" validate:"required"`
	Category   string   `json:"category" validate:"required"`
	IsCorrect  *bool    `json:"is_correct" validate:"required"`
	TimeSpent  *float64 `json:"time_spent" validate:"omitempty,min=0"`
}

// SaveWrongAnswerRequest records a wrong answer into the review list.
// CorrectIndex is a pointer so a provided 0 is distinguishable from missing.
type SaveWrongAnswerRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Question      string `json:"question" validate:"required"`
	CorrectAnswer string `json:"correct_answer" validate:"required"`
	UserAnswer    string `json:"user_answer" validate:"required"`
	CorrectIndex  *int   `json:"correct_index" validate:"required,min=0,max=3"`
}

// UnsolvedQuestionsRequest parameterizes the unsolved-question selection.
type UnsolvedQuestionsRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Category string `json:"category" validate:"required"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=50"`
}
