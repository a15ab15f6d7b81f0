package http

import (
	"errors"
	"strings"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/task"
)

var errTextRequired = errors.New("text is required")

// --- Request DTOs ---

type processReq struct {
	Text string `json:"text"`
}

func (r processReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r processReq) toInput() task.ProcessInput {
	return task.ProcessInput{Text: r.Text}
}

type improvementsReq struct {
	Text string `json:"text"`
}

func (r improvementsReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

type similarityReq struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

func (r similarityReq) validate() error { return nil }

func (r similarityReq) toInput() task.SimilarityInput {
	return task.SimilarityInput{TextA: r.TextA, TextB: r.TextB}
}

// --- Response DTOs ---

type processResp struct {
	Record model.TaskRecord `json:"record"`
}

func newProcessResp(out task.ProcessOutput) processResp {
	return processResp{Record: out.Record}
}

type improvementsResp struct {
	Suggestions []string `json:"suggestions"`
}

type similarityResp struct {
	Score float64 `json:"score"`
}
