package usecase

import (
	"context"
	"sort"
	"time"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/schedule"
)

func (uc *implUseCase) SuggestOptimalSchedule(ctx context.Context, input schedule.SuggestInput) ([]model.TaskRecord, error) {
	accepted := []model.TaskRecord{}
	if input.AvailableHours <= 0 || len(input.Records) == 0 {
		return accepted, nil
	}

	// Overwrite priority and duration with fresh predictions so every
	// record competes on the same footing, whatever it arrived with.
	records := make([]model.TaskRecord, len(input.Records))
	copy(records, input.Records)
	for i := range records {
		records[i].Normalize()

		priority, err := uc.predictor.PredictPriority(ctx, records[i])
		if err != nil {
			uc.l.Warnf(ctx, "schedule.SuggestOptimalSchedule: predict priority: %v", err)
			return nil, err
		}
		duration, err := uc.predictor.PredictDuration(ctx, records[i])
		if err != nil {
			uc.l.Warnf(ctx, "schedule.SuggestOptimalSchedule: predict duration: %v", err)
			return nil, err
		}

		records[i].Priority = priority
		records[i].EstimatedDuration = &duration
		records[i].Normalize()
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Priority != records[j].Priority {
			return records[i].Priority > records[j].Priority
		}
		return dueBefore(records[i].DueDate, records[j].DueDate)
	})

	budget := input.AvailableHours * 60
	used := 0
	for _, rec := range records {
		duration := 0
		if rec.EstimatedDuration != nil {
			duration = *rec.EstimatedDuration
		}
		if used+duration > budget {
			break
		}
		used += duration
		accepted = append(accepted, rec)
	}

	uc.l.Infof(ctx, "schedule.SuggestOptimalSchedule: accepted %d of %d tasks into %dh", len(accepted), len(records), input.AvailableHours)
	return accepted, nil
}

// dueBefore orders due dates ascending with absent dates last.
func dueBefore(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Before(*b)
}
