package usecase

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"intelligent-task-management/internal/insight"
	"intelligent-task-management/internal/model"
)

func ts(day, hour int) *time.Time {
	t := time.Date(2024, time.March, day, hour, 30, 0, 0, time.UTC)
	return &t
}

func minutes(m int) *int { return &m }

func completedTask(category model.Category, day, hour int, duration *int) model.TaskRecord {
	return model.TaskRecord{
		Title:          "task",
		Category:       category,
		Status:         model.StatusCompleted,
		CompletedAt:    ts(day, hour),
		ActualDuration: duration,
	}
}

func TestAnalyzeTaskPatterns_Empty(t *testing.T) {
	uc := newTestUseCase(time.Now())

	patterns, err := uc.AnalyzeTaskPatterns(context.Background(), nil)
	if err != nil {
		t.Fatalf("AnalyzeTaskPatterns: %v", err)
	}
	if patterns.CompletionByCategory == nil || len(patterns.CompletionByCategory) != 0 {
		t.Errorf("expected empty non-nil category map, got %v", patterns.CompletionByCategory)
	}
	if patterns.CompletionByHour == nil || len(patterns.CompletionByHour) != 0 {
		t.Errorf("expected empty non-nil hour map, got %v", patterns.CompletionByHour)
	}
	if patterns.AverageDurationByCategory == nil || len(patterns.AverageDurationByCategory) != 0 {
		t.Errorf("expected empty non-nil duration map, got %v", patterns.AverageDurationByCategory)
	}
}

func TestAnalyzeTaskPatterns_CompletionRates(t *testing.T) {
	uc := newTestUseCase(time.Now())
	records := []model.TaskRecord{
		completedTask(model.CategoryWork, 1, 9, minutes(60)),
		completedTask(model.CategoryWork, 2, 9, minutes(120)),
		{Title: "open", Category: model.CategoryWork, Status: model.StatusPending},
		{Title: "open", Category: model.CategoryHealth, Status: model.StatusPending},
	}

	patterns, err := uc.AnalyzeTaskPatterns(context.Background(), records)
	if err != nil {
		t.Fatalf("AnalyzeTaskPatterns: %v", err)
	}

	if got := patterns.CompletionByCategory[model.CategoryWork]; math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("work completion rate = %v, want 2/3", got)
	}
	if got := patterns.CompletionByCategory[model.CategoryHealth]; got != 0 {
		t.Errorf("health completion rate = %v, want 0", got)
	}
	if got := patterns.CompletionByHour[9]; got != 1 {
		t.Errorf("hour 9 completion rate = %v, want 1", got)
	}
	if got := patterns.AverageDurationByCategory[model.CategoryWork]; got != 90 {
		t.Errorf("work average duration = %v, want 90", got)
	}
}

func TestAnalyzeTaskPatterns_MissingDurationsExcluded(t *testing.T) {
	uc := newTestUseCase(time.Now())
	records := []model.TaskRecord{
		completedTask(model.CategoryLearning, 1, 8, minutes(40)),
		completedTask(model.CategoryLearning, 2, 8, nil),
	}

	patterns, err := uc.AnalyzeTaskPatterns(context.Background(), records)
	if err != nil {
		t.Fatalf("AnalyzeTaskPatterns: %v", err)
	}

	// The record without a duration must not drag the average down.
	if got := patterns.AverageDurationByCategory[model.CategoryLearning]; got != 40 {
		t.Errorf("learning average duration = %v, want 40", got)
	}
}

func TestGenerateSuggestions_Order(t *testing.T) {
	uc := newTestUseCase(time.Now())
	patterns := insight.AggregatePatterns{
		CompletionByCategory: map[model.Category]float64{
			model.CategoryPersonal: 0.2,
			model.CategoryWork:     0.3,
			model.CategoryFinance:  0.9,
		},
		CompletionByHour: map[int]float64{9: 0.8, 14: 0.8, 20: 0.5},
	}

	suggestions, err := uc.GenerateSuggestions(context.Background(), 50, patterns)
	if err != nil {
		t.Fatalf("GenerateSuggestions: %v", err)
	}

	wantTypes := []string{
		insight.SuggestionTypeCompletionRate,
		insight.SuggestionTypeCategoryPerformance, // work precedes personal
		insight.SuggestionTypeCategoryPerformance,
		insight.SuggestionTypeTimeManagement,
	}
	if len(suggestions) != len(wantTypes) {
		t.Fatalf("got %d suggestions, want %d: %+v", len(suggestions), len(wantTypes), suggestions)
	}
	for i, want := range wantTypes {
		if suggestions[i].Type != want {
			t.Errorf("suggestion[%d].Type = %s, want %s", i, suggestions[i].Type, want)
		}
	}

	if suggestions[0].Severity != model.SeverityHigh {
		t.Errorf("completion_rate severity = %s, want high", suggestions[0].Severity)
	}
	if want := "work"; !strings.Contains(suggestions[1].Message, want) {
		t.Errorf("first category suggestion should name work, got %q", suggestions[1].Message)
	}
	// Tied best hours resolve to the smaller hour.
	if want := "hour 9"; !strings.Contains(suggestions[3].Message, want) {
		t.Errorf("time suggestion should name hour 9, got %q", suggestions[3].Message)
	}
}

func TestGenerateSuggestions_NoConcerns(t *testing.T) {
	uc := newTestUseCase(time.Now())

	suggestions, err := uc.GenerateSuggestions(context.Background(), 95, insight.AggregatePatterns{
		CompletionByCategory: map[model.Category]float64{model.CategoryWork: 0.9},
	})
	if err != nil {
		t.Fatalf("GenerateSuggestions: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("expected no suggestions, got %+v", suggestions)
	}
}
