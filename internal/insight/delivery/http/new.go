package http

import (
	"intelligent-task-management/internal/insight"
	"intelligent-task-management/pkg/log"
)

// Handler is the public interface for the insight HTTP delivery layer.
type Handler interface {
	Patterns(c interface{})
	Suggestions(c interface{})
	Productivity(c interface{})
	Trends(c interface{})
}

type handler struct {
	l  log.Logger
	uc insight.UseCase
}

// New creates a new HTTP handler for the insight domain.
func New(l log.Logger, uc insight.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
