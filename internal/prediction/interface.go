package prediction

import (
	"context"

	"intelligent-task-management/internal/model"
)

// UseCase defines the business logic interface for the prediction domain.
//
// Training and prediction share one fitted state (two forests plus a
// scaler); at most one training operation runs at a time per instance
// and predictions read a consistent snapshot.
type UseCase interface {
	// TrainPriority fits the priority model on historical records and
	// returns the held-out accuracy. No records is not an error; it
	// returns 0.
	TrainPriority(ctx context.Context, records []model.TaskRecord) (float64, error)

	// TrainDuration fits the duration model on records that carry an
	// actual duration. None present returns 0.
	TrainDuration(ctx context.Context, records []model.TaskRecord) (float64, error)

	// PredictPriority predicts a task priority in [0,5].
	// Returns ErrModelNotTrained when no model has been fitted or loaded.
	PredictPriority(ctx context.Context, record model.TaskRecord) (int, error)

	// PredictDuration predicts a task duration in minutes.
	// Returns ErrModelNotTrained when no model has been fitted or loaded.
	PredictDuration(ctx context.Context, record model.TaskRecord) (int, error)
}
