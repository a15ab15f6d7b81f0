package usecase

import (
	"context"
	"time"

	"intelligent-task-management/internal/schedule"
	"intelligent-task-management/pkg/gcalendar"
)

// defaultEventMinutes sizes events for tasks without an estimated
// duration.
const defaultEventMinutes = 60

func (uc *implUseCase) ExportSchedule(ctx context.Context, input schedule.ExportInput) ([]schedule.ExportedEvent, error) {
	if uc.calendar == nil {
		return nil, schedule.ErrCalendarNotConfigured
	}

	reqs := make([]gcalendar.EventRequest, 0, len(input.Schedule))
	titles := make([]string, 0, len(input.Schedule))
	for i := range input.Schedule {
		rec := input.Schedule[i]
		rec.Normalize()
		if rec.DueDate == nil {
			uc.l.Debugf(ctx, "schedule.ExportSchedule: skipping %q, no due date", rec.Title)
			continue
		}

		duration := defaultEventMinutes
		if rec.EstimatedDuration != nil {
			duration = *rec.EstimatedDuration
		}
		reqs = append(reqs, gcalendar.EventRequest{
			CalendarID:  input.CalendarID,
			Summary:     rec.Title,
			Description: rec.Description,
			StartTime:   *rec.DueDate,
			EndTime:     rec.DueDate.Add(time.Duration(duration) * time.Minute),
			Timezone:    input.Timezone,
		})
		titles = append(titles, rec.Title)
	}

	events, err := uc.calendar.CreateEvents(ctx, reqs)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.ExportSchedule: %v", err)
		return nil, err
	}

	exported := make([]schedule.ExportedEvent, 0, len(events))
	for i, ev := range events {
		exported = append(exported, schedule.ExportedEvent{
			TaskTitle: titles[i],
			EventID:   ev.ID,
			HtmlLink:  ev.HtmlLink,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
		})
	}

	uc.l.Infof(ctx, "schedule.ExportSchedule: created %d events", len(exported))
	return exported, nil
}
