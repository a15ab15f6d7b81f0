package usecase

import (
	"math"
	"time"

	"intelligent-task-management/internal/model"
)

// daysUntilDueDefault stands in for tasks with no due date so they rank
// as far-out rather than overdue.
const daysUntilDueDefault = 30

// prepareFeatures turns one task into the fixed feature vector the
// models are trained on. Layout: complexity, sentiment, keyword count,
// estimated duration in hours, days until due, then a one-hot block
// over the known categories in their canonical order.
func prepareFeatures(rec model.TaskRecord, now time.Time) []float64 {
	features := make([]float64, 0, 5+len(model.Categories))

	features = append(features,
		rec.ComplexityScore,
		rec.SentimentScore,
		float64(len(rec.Keywords)),
	)

	durationHours := 0.0
	if rec.EstimatedDuration != nil {
		durationHours = float64(*rec.EstimatedDuration) / 60.0
	}
	features = append(features, durationHours)

	daysUntilDue := float64(daysUntilDueDefault)
	if rec.DueDate != nil {
		daysUntilDue = math.Floor(rec.DueDate.Sub(now).Hours() / 24)
	}
	features = append(features, daysUntilDue)

	for _, cat := range model.Categories {
		if rec.Category == cat {
			features = append(features, 1)
		} else {
			features = append(features, 0)
		}
	}

	return features
}
