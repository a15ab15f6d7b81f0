package http

import (
	"intelligent-task-management/internal/prediction"
	"intelligent-task-management/pkg/log"
)

// Handler is the public interface for the prediction HTTP delivery layer.
type Handler interface {
	PredictPriority(c interface{})
	PredictDuration(c interface{})
	TrainPriority(c interface{})
	TrainDuration(c interface{})
}

type handler struct {
	l  log.Logger
	uc prediction.UseCase
}

// New creates a new HTTP handler for the prediction domain.
func New(l log.Logger, uc prediction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
