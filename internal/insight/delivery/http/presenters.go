package http

import (
	"time"

	"intelligent-task-management/internal/insight"
	"intelligent-task-management/internal/model"
)

// trendsDefaultDays is the lookback window when the request does not
// name one.
const trendsDefaultDays = 30

// --- Request DTOs ---

type recordsReq struct {
	Records []model.TaskRecord `json:"records"`
}

func (r recordsReq) validate() error { return nil }

type suggestionsReq struct {
	Records []model.TaskRecord `json:"records"`

	// CompletionRate optionally overrides the rate derived from the
	// records, in percent.
	CompletionRate *float64 `json:"completion_rate,omitempty"`
}

func (r suggestionsReq) validate() error { return nil }

// overallCompletionRate prefers the explicit rate and falls back to
// deriving it from the records.
func (r suggestionsReq) overallCompletionRate() float64 {
	if r.CompletionRate != nil {
		return *r.CompletionRate
	}
	if len(r.Records) == 0 {
		return 0
	}
	completed := 0
	for _, rec := range r.Records {
		if rec.Status == model.StatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(r.Records)) * 100
}

type trendsReq struct {
	Records []model.TaskRecord `json:"records"`
	Days    int                `json:"days"`
}

func (r trendsReq) validate() error { return nil }

func (r trendsReq) since(now time.Time) time.Time {
	days := r.Days
	if days <= 0 {
		days = trendsDefaultDays
	}
	return now.AddDate(0, 0, -days)
}

// --- Response DTOs ---

type patternsResp struct {
	Patterns insight.AggregatePatterns `json:"patterns"`
}

type suggestionsResp struct {
	Suggestions []insight.Suggestion `json:"suggestions"`
}

type productivityResp struct {
	Metrics insight.ProductivityMetrics `json:"metrics"`
}

type trendsResp struct {
	Trends     map[string]int `json:"trends"`
	ExportDate time.Time      `json:"export_date"`
}
