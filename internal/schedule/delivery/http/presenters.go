package http

import (
	"errors"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/schedule"
)

var errScheduleRequired = errors.New("schedule is required")

// --- Request DTOs ---

type suggestReq struct {
	Records        []model.TaskRecord `json:"records"`
	AvailableHours *int               `json:"available_hours,omitempty"`
}

func (r suggestReq) validate() error { return nil }

func (r suggestReq) toInput(defaultHours int) schedule.SuggestInput {
	hours := defaultHours
	if r.AvailableHours != nil {
		hours = *r.AvailableHours
	}
	return schedule.SuggestInput{
		Records:        r.Records,
		AvailableHours: hours,
	}
}

type conflictsReq struct {
	Records []model.TaskRecord `json:"records"`
}

func (r conflictsReq) validate() error { return nil }

type exportReq struct {
	Schedule   []model.TaskRecord `json:"schedule"`
	CalendarID string             `json:"calendar_id"`
	Timezone   string             `json:"timezone"`
}

func (r exportReq) validate() error {
	if len(r.Schedule) == 0 {
		return errScheduleRequired
	}
	return nil
}

func (r exportReq) toInput() schedule.ExportInput {
	return schedule.ExportInput{
		CalendarID: r.CalendarID,
		Timezone:   r.Timezone,
		Schedule:   r.Schedule,
	}
}

// --- Response DTOs ---

type suggestResp struct {
	Schedule []model.TaskRecord `json:"schedule"`
}

type conflictsResp struct {
	Conflicts []model.Conflict `json:"conflicts"`
}

type exportResp struct {
	Events []schedule.ExportedEvent `json:"events"`
}
