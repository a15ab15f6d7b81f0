package usecase

import (
	"context"
	"time"

	"intelligent-task-management/internal/model"
)

// resourceConflictThreshold is the number of tasks a single category
// can hold before it is flagged as overloaded.
const resourceConflictThreshold = 3

func (uc *implUseCase) DetectTaskConflicts(ctx context.Context, records []model.TaskRecord) ([]model.Conflict, error) {
	conflicts := []model.Conflict{}

	normalized := make([]model.TaskRecord, len(records))
	copy(normalized, records)
	for i := range normalized {
		normalized[i].Normalize()
	}

	// Time conflicts: every unordered pair of schedulable tasks,
	// reported once.
	for i := 0; i < len(normalized); i++ {
		a := normalized[i]
		if a.DueDate == nil || a.EstimatedDuration == nil {
			continue
		}
		for j := i + 1; j < len(normalized); j++ {
			b := normalized[j]
			if b.DueDate == nil || b.EstimatedDuration == nil {
				continue
			}
			if !intervalsOverlap(a, b) {
				continue
			}

			severity := model.SeverityMedium
			if a.Priority > 3 || b.Priority > 3 {
				severity = model.SeverityHigh
			}
			conflicts = append(conflicts, model.Conflict{
				Type:     model.ConflictTypeTime,
				Severity: severity,
				TaskA:    &normalized[i],
				TaskB:    &normalized[j],
			})
		}
	}

	// Resource conflicts: categories holding more tasks than one
	// person can plausibly juggle, in canonical category order.
	byCategory := map[model.Category][]model.TaskRecord{}
	for _, rec := range normalized {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}
	for _, category := range model.Categories {
		tasks := byCategory[category]
		if len(tasks) <= resourceConflictThreshold {
			continue
		}
		conflicts = append(conflicts, model.Conflict{
			Type:     model.ConflictTypeResource,
			Severity: model.SeverityMedium,
			Category: category,
			Tasks:    tasks,
		})
	}

	uc.l.Debugf(ctx, "schedule.DetectTaskConflicts: %d conflicts over %d tasks", len(conflicts), len(records))
	return conflicts, nil
}

// intervalsOverlap treats each task as occupying [due, due+duration].
// Touching endpoints count as overlap.
func intervalsOverlap(a, b model.TaskRecord) bool {
	aStart, aEnd := taskInterval(a)
	bStart, bEnd := taskInterval(b)
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

func taskInterval(rec model.TaskRecord) (time.Time, time.Time) {
	start := *rec.DueDate
	return start, start.Add(time.Duration(*rec.EstimatedDuration) * time.Minute)
}
