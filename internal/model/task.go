package model

import "time"

// Category is the closed set of task categories.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
	CategoryFinance  Category = "finance"
	CategorySocial   Category = "social"
	CategoryTravel   Category = "travel"
	CategoryOther    Category = "other"
)

// Categories lists every category in fixed table order. The order is
// load-bearing: one-hot encoding, tie-breaking and conflict reporting
// all iterate it.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryLearning,
	CategoryFinance,
	CategorySocial,
	CategoryTravel,
	CategoryOther,
}

// Valid reports whether c is one of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

// TaskRecord is the structured representation of one task. Optional
// fields are pointers; absence means the attribute could not be inferred
// or has not happened yet.
type TaskRecord struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`

	DueDate  *time.Time `json:"due_date,omitempty"`
	Category Category   `json:"category"`

	ComplexityScore float64  `json:"complexity_score"`
	SentimentScore  float64  `json:"sentiment_score"`
	Keywords        []string `json:"keywords"`

	EstimatedDuration *int `json:"estimated_duration,omitempty"` // minutes
	Priority          int  `json:"priority"`                     // 0..5

	ActualDuration *int       `json:"actual_duration,omitempty"` // minutes, set on completion
	Status         Status     `json:"status"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at,omitempty"`
}

// Normalize enforces the record invariants: scores stay inside their
// bounds, keywords contain no duplicates (first occurrence wins), and
// category/status fall back to their defaults.
func (t *TaskRecord) Normalize() {
	t.ComplexityScore = clamp(t.ComplexityScore, 0, 1)
	t.SentimentScore = clamp(t.SentimentScore, -1, 1)

	if !t.Category.Valid() {
		t.Category = CategoryOther
	}
	if t.Status == "" {
		t.Status = StatusPending
	}

	if len(t.Keywords) > 1 {
		seen := make(map[string]bool, len(t.Keywords))
		deduped := t.Keywords[:0]
		for _, kw := range t.Keywords {
			if !seen[kw] {
				seen[kw] = true
				deduped = append(deduped, kw)
			}
		}
		t.Keywords = deduped
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
