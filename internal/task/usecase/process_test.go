package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/task"
)

var testNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func TestProcessTaskInput(t *testing.T) {
	uc := newTestUseCase(t, testNow)
	ctx := context.Background()

	t.Run("Report due tomorrow", func(t *testing.T) {
		out, err := uc.ProcessTaskInput(ctx, task.ProcessInput{Text: "Submit report tomorrow"})
		if err != nil {
			t.Fatalf("ProcessTaskInput: %v", err)
		}
		rec := out.Record

		if rec.Category != model.CategoryWork {
			t.Errorf("category = %s, want work", rec.Category)
		}
		if rec.DueDate == nil {
			t.Fatal("expected a due date")
		}
		want := testNow.AddDate(0, 0, 1)
		if !rec.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", rec.DueDate, want)
		}
		if rec.Status != model.StatusPending {
			t.Errorf("status = %s, want pending", rec.Status)
		}
	})

	t.Run("Duration in hours", func(t *testing.T) {
		out, err := uc.ProcessTaskInput(ctx, task.ProcessInput{Text: "Fix the build in 2 hours"})
		if err != nil {
			t.Fatalf("ProcessTaskInput: %v", err)
		}
		if out.Record.EstimatedDuration == nil {
			t.Fatal("expected an estimated duration")
		}
		if *out.Record.EstimatedDuration != 120 {
			t.Errorf("estimated duration = %d, want 120", *out.Record.EstimatedDuration)
		}
	})

	t.Run("No extractable attributes", func(t *testing.T) {
		out, err := uc.ProcessTaskInput(ctx, task.ProcessInput{Text: "something vague"})
		if err != nil {
			t.Fatalf("ProcessTaskInput: %v", err)
		}
		rec := out.Record
		if rec.DueDate != nil {
			t.Errorf("unexpected due date %v", rec.DueDate)
		}
		if rec.EstimatedDuration != nil {
			t.Errorf("unexpected duration %d", *rec.EstimatedDuration)
		}
		if rec.Category != model.CategoryOther {
			t.Errorf("category = %s, want other", rec.Category)
		}
	})

	t.Run("Empty text degrades, never fails", func(t *testing.T) {
		out, err := uc.ProcessTaskInput(ctx, task.ProcessInput{Text: ""})
		if err != nil {
			t.Fatalf("ProcessTaskInput on empty text: %v", err)
		}
		rec := out.Record
		if rec.Title != "" {
			t.Errorf("title = %q, want empty", rec.Title)
		}
		if rec.ComplexityScore != 0 {
			t.Errorf("complexity = %f, want 0", rec.ComplexityScore)
		}
		if rec.Category != model.CategoryOther {
			t.Errorf("category = %s, want other", rec.Category)
		}
	})

	t.Run("Scores stay in bounds for long text", func(t *testing.T) {
		long := strings.Repeat("Refactor the authentication infrastructure components carefully. ", 40)
		out, err := uc.ProcessTaskInput(ctx, task.ProcessInput{Text: long})
		if err != nil {
			t.Fatalf("ProcessTaskInput: %v", err)
		}
		rec := out.Record
		if rec.ComplexityScore < 0 || rec.ComplexityScore > 1 {
			t.Errorf("complexity %f out of [0,1]", rec.ComplexityScore)
		}
		if rec.SentimentScore < -1 || rec.SentimentScore > 1 {
			t.Errorf("sentiment %f out of [-1,1]", rec.SentimentScore)
		}
	})

	t.Run("Keywords are deduplicated", func(t *testing.T) {
		out, err := uc.ProcessTaskInput(ctx, task.ProcessInput{
			Text: "Review the review notes and review the summary",
		})
		if err != nil {
			t.Fatalf("ProcessTaskInput: %v", err)
		}
		seen := make(map[string]bool)
		for _, kw := range out.Record.Keywords {
			if seen[kw] {
				t.Errorf("duplicate keyword %q", kw)
			}
			seen[kw] = true
		}
	})
}

func TestExtractTitle(t *testing.T) {
	uc := newTestUseCase(t, testNow)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "First sentence",
			text: "Write the summary. Then send it out.",
			want: "Write the summary.",
		},
		{
			name: "No sentence boundary",
			text: "buy groceries",
			want: "buy groceries",
		},
		{
			name: "Truncated to 50 runes",
			text: "This is a very long first sentence that keeps going well past the limit.",
			want: strings.TrimSpace(string([]rune("This is a very long first sentence that keeps going well past the limit.")[:50])),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTitle(uc.annotator.Annotate(tt.text))
			if got != tt.want {
				t.Errorf("extractTitle(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if len([]rune(got)) > 50 {
				t.Errorf("title longer than 50 runes: %q", got)
			}
		})
	}
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{name: "Work", text: "prepare the project presentation", want: model.CategoryWork},
		{name: "Health", text: "gym workout session", want: model.CategoryHealth},
		{name: "Finance", text: "pay the electricity bill", want: model.CategoryFinance},
		{name: "Travel", text: "book the flight and hotel", want: model.CategoryTravel},
		{name: "Tie keeps earlier rule", text: "meeting about family", want: model.CategoryWork},
		{name: "No keywords", text: "do the thing", want: model.CategoryOther},
		{name: "Case insensitive", text: "URGENT MEETING DEADLINE", want: model.CategoryWork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyCategory(tt.text); got != tt.want {
				t.Errorf("classifyCategory(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}
