package insight

import (
	"context"
	"time"

	"intelligent-task-management/internal/model"
)

// UseCase defines the business logic interface for the insight domain.
type UseCase interface {
	// AnalyzeTaskPatterns aggregates historical tasks into completion
	// rates and duration statistics. Empty input yields empty maps.
	AnalyzeTaskPatterns(ctx context.Context, records []model.TaskRecord) (AggregatePatterns, error)

	// GenerateSuggestions turns an overall completion rate (percent)
	// and aggregated patterns into ordered improvement suggestions.
	GenerateSuggestions(ctx context.Context, overallCompletionRate float64, patterns AggregatePatterns) ([]Suggestion, error)

	// Productivity derives the full metric set, streaks and the
	// composite productivity score from a task history.
	Productivity(ctx context.Context, records []model.TaskRecord) (ProductivityMetrics, error)

	// CompletionTrends counts completed tasks per ISO day for tasks
	// completed at or after since.
	CompletionTrends(ctx context.Context, records []model.TaskRecord, since time.Time) (map[string]int, error)
}
