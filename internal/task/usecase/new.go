package usecase

import (
	"time"

	"github.com/jonreiter/govader"

	"intelligent-task-management/pkg/log"
	"intelligent-task-management/pkg/nlp"
)

type implUseCase struct {
	l         log.Logger
	annotator *nlp.Annotator
	sentiment *govader.SentimentIntensityAnalyzer
	now       func() time.Time
}

// New creates a new task-understanding UseCase instance.
func New(l log.Logger, annotator *nlp.Annotator) *implUseCase {
	return &implUseCase{
		l:         l,
		annotator: annotator,
		sentiment: govader.NewSentimentIntensityAnalyzer(),
		now:       time.Now,
	}
}
