package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"intelligent-task-management/internal/insight"
	"intelligent-task-management/internal/model"
)

const isoDateFormat = "2006-01-02"

// Productivity score weights. They sum to 1 and each factor is scored
// on a 0-100 scale before weighting.
const (
	completionRateWeight = 0.4
	streakWeight         = 0.2
	timeEfficiencyWeight = 0.2
	consistencyWeight    = 0.2
)

func (uc *implUseCase) Productivity(ctx context.Context, records []model.TaskRecord) (insight.ProductivityMetrics, error) {
	metrics := insight.ProductivityMetrics{
		MostProductiveHours: map[int]int{},
	}
	metrics.TotalTasksCreated = len(records)
	if metrics.TotalTasksCreated == 0 {
		return metrics, nil
	}

	var durationSum float64
	var durationCount int
	completionDays := map[string]struct{}{}

	for i := range records {
		rec := records[i]
		rec.Normalize()
		if rec.Status != model.StatusCompleted {
			continue
		}

		metrics.TotalTasksCompleted++
		if rec.ActualDuration != nil {
			durationSum += float64(*rec.ActualDuration)
			durationCount++
			metrics.TotalProductiveTime += *rec.ActualDuration
		}
		if rec.CompletedAt != nil {
			metrics.MostProductiveHours[rec.CompletedAt.Hour()]++
			completionDays[rec.CompletedAt.Format(isoDateFormat)] = struct{}{}
		}
	}

	metrics.CompletionRate = float64(metrics.TotalTasksCompleted) / float64(metrics.TotalTasksCreated) * 100
	if durationCount > 0 {
		metrics.AverageCompletionTime = durationSum / float64(durationCount)
	}
	if len(completionDays) > 0 {
		metrics.AverageDailyProductiveTime = float64(metrics.TotalProductiveTime) / float64(len(completionDays))
	}
	metrics.CurrentStreak, metrics.LongestStreak = streaks(completionDays, uc.now())
	metrics.ProductivityScore = productivityScore(metrics)

	uc.l.Debugf(ctx, "insight.Productivity: %d/%d completed, score=%.2f",
		metrics.TotalTasksCompleted, metrics.TotalTasksCreated, metrics.ProductivityScore)
	return metrics, nil
}

func (uc *implUseCase) CompletionTrends(ctx context.Context, records []model.TaskRecord, since time.Time) (map[string]int, error) {
	trends := map[string]int{}
	for i := range records {
		rec := records[i]
		rec.Normalize()
		if rec.Status != model.StatusCompleted || rec.CompletedAt == nil {
			continue
		}
		if rec.CompletedAt.Before(since) {
			continue
		}
		trends[rec.CompletedAt.Format(isoDateFormat)]++
	}
	return trends, nil
}

// streaks derives the current and longest consecutive-day completion
// streaks from the set of days with at least one completion. The
// current streak is zero when the latest completion is more than a day
// before now.
func streaks(completionDays map[string]struct{}, now time.Time) (current, longest int) {
	if len(completionDays) == 0 {
		return 0, 0
	}

	days := make([]time.Time, 0, len(completionDays))
	for day := range completionDays {
		t, err := time.Parse(isoDateFormat, day)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today, err := time.Parse(isoDateFormat, now.Format(isoDateFormat))
	if err != nil {
		return 0, longest
	}
	last := days[len(days)-1]
	if today.Sub(last) > 24*time.Hour {
		return 0, longest
	}
	return run, longest
}

func productivityScore(m insight.ProductivityMetrics) float64 {
	if m.TotalTasksCreated == 0 {
		return 0
	}

	streakScore := math.Min(float64(m.CurrentStreak)*10, 100)

	timeEfficiencyScore := 0.0
	if m.AverageCompletionTime > 0 && m.AverageDailyProductiveTime > 0 {
		timeEfficiencyScore = math.Min(m.AverageDailyProductiveTime/m.AverageCompletionTime*50, 100)
	}

	consistencyScore := 0.0
	if len(m.MostProductiveHours) > 0 {
		maxCount, total := 0, 0
		for _, count := range m.MostProductiveHours {
			if count > maxCount {
				maxCount = count
			}
			total += count
		}
		consistencyScore = float64(maxCount) / float64(total) * 100
	}

	score := m.CompletionRate*completionRateWeight +
		streakScore*streakWeight +
		timeEfficiencyScore*timeEfficiencyWeight +
		consistencyScore*consistencyWeight
	return math.Round(score*100) / 100
}
