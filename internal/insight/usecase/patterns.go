package usecase

import (
	"context"

	"intelligent-task-management/internal/insight"
	"intelligent-task-management/internal/model"
)

func (uc *implUseCase) AnalyzeTaskPatterns(ctx context.Context, records []model.TaskRecord) (insight.AggregatePatterns, error) {
	patterns := insight.AggregatePatterns{
		CompletionByCategory:      map[model.Category]float64{},
		CompletionByHour:          map[int]float64{},
		AverageDurationByCategory: map[model.Category]float64{},
	}
	if len(records) == 0 {
		return patterns, nil
	}

	type counter struct {
		total     int
		completed int
	}
	byCategory := map[model.Category]*counter{}
	byHour := map[int]*counter{}
	durationSum := map[model.Category]float64{}
	durationCount := map[model.Category]int{}

	for i := range records {
		rec := records[i]
		rec.Normalize()

		c := byCategory[rec.Category]
		if c == nil {
			c = &counter{}
			byCategory[rec.Category] = c
		}
		c.total++
		if rec.Status == model.StatusCompleted {
			c.completed++
		}

		if rec.CompletedAt != nil {
			hour := rec.CompletedAt.Hour()
			h := byHour[hour]
			if h == nil {
				h = &counter{}
				byHour[hour] = h
			}
			h.total++
			if rec.Status == model.StatusCompleted {
				h.completed++
			}
		}

		if rec.ActualDuration != nil {
			durationSum[rec.Category] += float64(*rec.ActualDuration)
			durationCount[rec.Category]++
		}
	}

	for category, c := range byCategory {
		patterns.CompletionByCategory[category] = float64(c.completed) / float64(c.total)
	}
	for hour, c := range byHour {
		patterns.CompletionByHour[hour] = float64(c.completed) / float64(c.total)
	}
	for category, sum := range durationSum {
		patterns.AverageDurationByCategory[category] = sum / float64(durationCount[category])
	}

	uc.l.Debugf(ctx, "insight.AnalyzeTaskPatterns: %d records, %d categories", len(records), len(patterns.CompletionByCategory))
	return patterns, nil
}
