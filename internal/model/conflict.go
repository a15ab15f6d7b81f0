package model

// ConflictType tags the two kinds of scheduling conflicts.
type ConflictType string

const (
	ConflictTypeTime     ConflictType = "time_conflict"
	ConflictTypeResource ConflictType = "resource_conflict"
)

// Severity grades a conflict or suggestion.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Conflict is a detected scheduling tension. Time conflicts carry the
// overlapping pair; resource conflicts carry the overloaded category and
// its tasks.
type Conflict struct {
	Type     ConflictType `json:"type"`
	Severity Severity     `json:"severity"`

	TaskA *TaskRecord `json:"task_a,omitempty"`
	TaskB *TaskRecord `json:"task_b,omitempty"`

	Category Category     `json:"category,omitempty"`
	Tasks    []TaskRecord `json:"tasks,omitempty"`
}
