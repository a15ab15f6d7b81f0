package usecase

import (
	"time"

	"intelligent-task-management/pkg/log"
)

type implUseCase struct {
	l   log.Logger
	now func() time.Time
}

func New(l log.Logger) *implUseCase {
	return &implUseCase{
		l:   l,
		now: time.Now,
	}
}
