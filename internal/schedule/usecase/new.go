package usecase

import (
	"intelligent-task-management/internal/prediction"
	"intelligent-task-management/pkg/gcalendar"
	"intelligent-task-management/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	predictor prediction.UseCase

	// calendar is optional; nil disables exports.
	calendar *gcalendar.Client
}

func New(l log.Logger, predictor prediction.UseCase, calendar *gcalendar.Client) *implUseCase {
	return &implUseCase{
		l:         l,
		predictor: predictor,
		calendar:  calendar,
	}
}
