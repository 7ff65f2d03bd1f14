package repositories

// ===== SHARED FILTER STRUCTS =====

type RandomQuestionFilters struct {
	Category   string   `json:"category"`
	ExcludeIDs []string `json:"exclude_ids"`
	Count      int      `json:"count"`
}

// ===== SHARED STATISTICS STRUCTS =====

// CategoryStatsData is one row of the grouped solved-question aggregation.
// AvgTime is nil when no row in the group carries a time_spent value.
type CategoryStatsData struct {
	Category     string   `json:"category"`
	TotalSolved  int64    `json:"total_solved"`
	CorrectCount int64    `json:"correct_count"`
	AvgTime      *float64 `json:"avg_time"`
}
