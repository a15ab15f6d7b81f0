package schedule

import (
	"time"

	"intelligent-task-management/internal/model"
)

// SuggestInput carries the candidate tasks and the daily time budget.
type SuggestInput struct {
	Records        []model.TaskRecord
	AvailableHours int
}

// ExportInput names the calendar and the accepted schedule to push.
type ExportInput struct {
	CalendarID string
	Timezone   string
	Schedule   []model.TaskRecord
}

// ExportedEvent reports one calendar event created for a task.
type ExportedEvent struct {
	TaskTitle string    `json:"task_title"`
	EventID   string    `json:"event_id"`
	HtmlLink  string    `json:"html_link"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
