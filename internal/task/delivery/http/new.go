package http

import (
	"intelligent-task-management/internal/task"
	"intelligent-task-management/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Process(c interface{})
	Improvements(c interface{})
	Similarity(c interface{})
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
