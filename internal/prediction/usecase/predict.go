package usecase

import (
	"context"
	"math"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/prediction"
	"intelligent-task-management/pkg/randomforest"
)

func (uc *implUseCase) PredictPriority(ctx context.Context, record model.TaskRecord) (int, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.predict(ctx, uc.priorityModel, record)
}

func (uc *implUseCase) PredictDuration(ctx context.Context, record model.TaskRecord) (int, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.predict(ctx, uc.durationModel, record)
}

func (uc *implUseCase) predict(ctx context.Context, forest *randomforest.Forest, record model.TaskRecord) (int, error) {
	if forest == nil || uc.scaler == nil {
		return 0, prediction.ErrModelNotTrained
	}

	record.Normalize()
	features := uc.scaler.Transform(prepareFeatures(record, uc.now()))
	label, err := forest.Predict(features)
	if err != nil {
		uc.l.Errorf(ctx, "prediction.predict: %v", err)
		return 0, err
	}
	return int(math.Round(label)), nil
}
