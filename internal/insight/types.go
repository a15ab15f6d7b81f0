package insight

import (
	"intelligent-task-management/internal/model"
)

// AggregatePatterns is the derived view over a set of historical tasks.
// Maps are empty, never nil, when there is nothing to aggregate.
type AggregatePatterns struct {
	// CompletionByCategory maps each observed category to the
	// fraction of its tasks that completed.
	CompletionByCategory map[model.Category]float64 `json:"completion_by_category"`

	// CompletionByHour groups tasks that carry a completion
	// timestamp by hour of day and maps each hour to the fraction
	// completed within that group.
	CompletionByHour map[int]float64 `json:"completion_by_hour"`

	// AverageDurationByCategory averages actual durations per
	// category; tasks without one are excluded from the average.
	AverageDurationByCategory map[model.Category]float64 `json:"average_duration_by_category"`
}

// Suggestion is one actionable improvement hint.
type Suggestion struct {
	Type     string         `json:"type"`
	Message  string         `json:"message"`
	Severity model.Severity `json:"severity"`
}

const (
	SuggestionTypeCompletionRate      = "completion_rate"
	SuggestionTypeCategoryPerformance = "category_performance"
	SuggestionTypeTimeManagement      = "time_management"
)

// ProductivityMetrics summarizes a user's task history.
type ProductivityMetrics struct {
	TotalTasksCreated   int     `json:"total_tasks_created"`
	TotalTasksCompleted int     `json:"total_tasks_completed"`
	CompletionRate      float64 `json:"completion_rate"`

	AverageCompletionTime      float64 `json:"average_completion_time"`
	TotalProductiveTime        int     `json:"total_productive_time"`
	AverageDailyProductiveTime float64 `json:"average_daily_productive_time"`

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`

	MostProductiveHours map[int]int `json:"most_productive_hours"`

	// ProductivityScore is the 0-100 weighted composite of the
	// metrics above, rounded to two decimals.
	ProductivityScore float64 `json:"productivity_score"`
}
