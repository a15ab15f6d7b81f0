package usecase

import (
	"context"
	"fmt"

	"intelligent-task-management/internal/insight"
	"intelligent-task-management/internal/model"
)

const lowCompletionRateThreshold = 70.0

func (uc *implUseCase) GenerateSuggestions(ctx context.Context, overallCompletionRate float64, patterns insight.AggregatePatterns) ([]insight.Suggestion, error) {
	suggestions := []insight.Suggestion{}

	if overallCompletionRate < lowCompletionRateThreshold {
		suggestions = append(suggestions, insight.Suggestion{
			Type:     insight.SuggestionTypeCompletionRate,
			Message:  "Your task completion rate is below 70%. Consider breaking down tasks into smaller, more manageable pieces.",
			Severity: model.SeverityHigh,
		})
	}

	// Category checks run in the canonical category order so the
	// output is stable across calls.
	for _, category := range model.Categories {
		rate, ok := patterns.CompletionByCategory[category]
		if !ok || rate >= 0.5 {
			continue
		}
		suggestions = append(suggestions, insight.Suggestion{
			Type:     insight.SuggestionTypeCategoryPerformance,
			Message:  fmt.Sprintf("You have a low completion rate in the %s category. Consider reviewing your approach to these tasks.", category),
			Severity: model.SeverityMedium,
		})
	}

	if len(patterns.CompletionByHour) > 0 {
		bestHour := bestCompletionHour(patterns.CompletionByHour)
		suggestions = append(suggestions, insight.Suggestion{
			Type:     insight.SuggestionTypeTimeManagement,
			Message:  fmt.Sprintf("You are most productive during hour %d. Try to schedule important tasks during this time.", bestHour),
			Severity: model.SeverityLow,
		})
	}

	uc.l.Debugf(ctx, "insight.GenerateSuggestions: %d suggestions", len(suggestions))
	return suggestions, nil
}

// bestCompletionHour picks the hour with the highest completion rate,
// preferring the smaller hour on ties.
func bestCompletionHour(byHour map[int]float64) int {
	best := -1
	bestRate := -1.0
	for hour := 0; hour < 24; hour++ {
		rate, ok := byHour[hour]
		if !ok {
			continue
		}
		if rate > bestRate {
			best = hour
			bestRate = rate
		}
	}
	return best
}
