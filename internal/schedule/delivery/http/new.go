package http

import (
	"intelligent-task-management/internal/schedule"
	"intelligent-task-management/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Suggest(c interface{})
	Conflicts(c interface{})
	Export(c interface{})
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase

	// defaultAvailableHours fills in when a suggest request carries
	// no time budget.
	defaultAvailableHours int
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase, defaultAvailableHours int) *handler {
	return &handler{
		l:                     l,
		uc:                    uc,
		defaultAvailableHours: defaultAvailableHours,
	}
}
