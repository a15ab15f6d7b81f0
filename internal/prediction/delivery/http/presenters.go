package http

import (
	"errors"

	"intelligent-task-management/internal/model"
)

var errRecordsRequired = errors.New("records are required")

// --- Request DTOs ---

type predictReq struct {
	Record model.TaskRecord `json:"record"`
}

func (r predictReq) validate() error { return nil }

type trainReq struct {
	Records []model.TaskRecord `json:"records"`
}

func (r trainReq) validate() error {
	if len(r.Records) == 0 {
		return errRecordsRequired
	}
	return nil
}

// --- Response DTOs ---

type predictResp struct {
	// Value is the predicted priority or duration in minutes,
	// depending on the endpoint.
	Value int `json:"value"`
}

type trainResp struct {
	Accuracy     float64 `json:"accuracy"`
	RecordsCount int     `json:"records_count"`
}
