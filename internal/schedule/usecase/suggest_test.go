package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/prediction"
	"intelligent-task-management/internal/schedule"
)

func due(day int) *time.Time {
	t := time.Date(2024, time.March, day, 10, 0, 0, 0, time.UTC)
	return &t
}

func TestSuggestOptimalSchedule_OrdersAndFills(t *testing.T) {
	uc := newTestUseCase(&mockPredictor{
		priorities: map[string]int{"report": 5, "email": 2, "review": 5, "chores": 1},
		durations:  map[string]int{"report": 120, "email": 30, "review": 60, "chores": 240},
	})

	records := []model.TaskRecord{
		{Title: "chores"},
		{Title: "email", DueDate: due(5)},
		{Title: "report", DueDate: due(3)},
		{Title: "review", DueDate: due(2)},
	}

	got, err := uc.SuggestOptimalSchedule(context.Background(), schedule.SuggestInput{
		Records:        records,
		AvailableHours: 4,
	})
	if err != nil {
		t.Fatalf("SuggestOptimalSchedule: %v", err)
	}

	// Priority 5 first with the earlier due date ahead, then email
	// (30m, fits in the remaining 60m). Chores would overflow and
	// stops acceptance.
	wantTitles := []string{"review", "report", "email"}
	if len(got) != len(wantTitles) {
		t.Fatalf("accepted %d tasks, want %d: %+v", len(got), len(wantTitles), got)
	}
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Errorf("schedule[%d] = %s, want %s", i, got[i].Title, want)
		}
	}

	// Predictions replace whatever the records carried.
	if got[0].Priority != 5 || got[0].EstimatedDuration == nil || *got[0].EstimatedDuration != 60 {
		t.Errorf("review not normalized by predictor: %+v", got[0])
	}
}

func TestSuggestOptimalSchedule_OverflowStopsAcceptance(t *testing.T) {
	uc := newTestUseCase(&mockPredictor{
		priorities: map[string]int{"big": 5, "small": 4},
		durations:  map[string]int{"big": 300, "small": 10},
	})

	got, err := uc.SuggestOptimalSchedule(context.Background(), schedule.SuggestInput{
		Records:        []model.TaskRecord{{Title: "big"}, {Title: "small"}},
		AvailableHours: 2,
	})
	if err != nil {
		t.Fatalf("SuggestOptimalSchedule: %v", err)
	}

	// The overflowing first task ends the greedy pass; the small task
	// after it is not considered even though it would fit.
	if len(got) != 0 {
		t.Errorf("expected empty schedule, got %+v", got)
	}
}

func TestSuggestOptimalSchedule_NoBudget(t *testing.T) {
	uc := newTestUseCase(&mockPredictor{})

	for _, hours := range []int{0, -1} {
		got, err := uc.SuggestOptimalSchedule(context.Background(), schedule.SuggestInput{
			Records:        []model.TaskRecord{{Title: "anything"}},
			AvailableHours: hours,
		})
		if err != nil {
			t.Fatalf("SuggestOptimalSchedule(%d): %v", hours, err)
		}
		if len(got) != 0 {
			t.Errorf("hours=%d: expected empty schedule, got %+v", hours, got)
		}
	}
}

func TestSuggestOptimalSchedule_AbsentDueDateSortsLast(t *testing.T) {
	uc := newTestUseCase(&mockPredictor{
		priorities: map[string]int{"dated": 3, "undated": 3},
		durations:  map[string]int{"dated": 30, "undated": 30},
	})

	got, err := uc.SuggestOptimalSchedule(context.Background(), schedule.SuggestInput{
		Records:        []model.TaskRecord{{Title: "undated"}, {Title: "dated", DueDate: due(1)}},
		AvailableHours: 8,
	})
	if err != nil {
		t.Fatalf("SuggestOptimalSchedule: %v", err)
	}
	if len(got) != 2 || got[0].Title != "dated" || got[1].Title != "undated" {
		t.Errorf("expected dated before undated, got %+v", got)
	}
}

func TestSuggestOptimalSchedule_UntrainedPredictor(t *testing.T) {
	uc := newTestUseCase(&mockPredictor{err: prediction.ErrModelNotTrained})

	_, err := uc.SuggestOptimalSchedule(context.Background(), schedule.SuggestInput{
		Records:        []model.TaskRecord{{Title: "anything"}},
		AvailableHours: 8,
	})
	if !errors.Is(err, prediction.ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got %v", err)
	}
}

func TestExportSchedule_NotConfigured(t *testing.T) {
	uc := newTestUseCase(&mockPredictor{})

	_, err := uc.ExportSchedule(context.Background(), schedule.ExportInput{
		Schedule: []model.TaskRecord{{Title: "anything", DueDate: due(1)}},
	})
	if !errors.Is(err, schedule.ErrCalendarNotConfigured) {
		t.Fatalf("expected ErrCalendarNotConfigured, got %v", err)
	}
}
