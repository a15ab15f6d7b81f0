package schedule

import (
	"context"

	"intelligent-task-management/internal/model"
)

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// SuggestOptimalSchedule normalizes every record's priority and
	// duration through the predictor, orders by priority then due
	// date and greedily fills the available hours. Acceptance stops
	// at the first task that would overflow the budget.
	// Returns the predictor's ErrModelNotTrained when models are not
	// fitted yet.
	SuggestOptimalSchedule(ctx context.Context, input SuggestInput) ([]model.TaskRecord, error)

	// DetectTaskConflicts scans all task pairs for overlapping time
	// windows and flags categories holding too many tasks.
	DetectTaskConflicts(ctx context.Context, records []model.TaskRecord) ([]model.Conflict, error)

	// ExportSchedule pushes an accepted schedule to Google Calendar,
	// one event per task with a due date. Returns
	// ErrCalendarNotConfigured when no client is wired.
	ExportSchedule(ctx context.Context, input ExportInput) ([]ExportedEvent, error)
}
