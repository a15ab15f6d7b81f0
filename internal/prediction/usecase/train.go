package usecase

import (
	"context"
	"math/rand"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/prediction/repository"
	"intelligent-task-management/pkg/randomforest"
)

const (
	trainSeed = 42
	numTrees  = 100
	maxDepth  = 10
)

func (uc *implUseCase) TrainPriority(ctx context.Context, records []model.TaskRecord) (float64, error) {
	if len(records) == 0 {
		uc.l.Warnf(ctx, "prediction.TrainPriority: no records, skipping")
		return 0, nil
	}

	now := uc.now()
	x := make([][]float64, len(records))
	y := make([]float64, len(records))
	for i, rec := range records {
		rec.Normalize()
		x[i] = prepareFeatures(rec, now)
		y[i] = float64(rec.Priority)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	forest, scaler, accuracy, err := uc.fit(x, y)
	if err != nil {
		uc.l.Errorf(ctx, "prediction.TrainPriority: %v", err)
		return 0, err
	}

	uc.priorityModel = forest
	uc.scaler = scaler

	if err := uc.saveArtifact(ctx, repository.ArtifactPriorityModel, forest); err != nil {
		return 0, err
	}
	if err := uc.saveArtifact(ctx, repository.ArtifactScaler, scaler); err != nil {
		return 0, err
	}

	uc.l.Infof(ctx, "prediction.TrainPriority: trained on %d records, accuracy=%.3f", len(records), accuracy)
	return accuracy, nil
}

func (uc *implUseCase) TrainDuration(ctx context.Context, records []model.TaskRecord) (float64, error) {
	var x [][]float64
	var y []float64
	now := uc.now()
	for _, rec := range records {
		if rec.ActualDuration == nil {
			continue
		}
		rec.Normalize()
		x = append(x, prepareFeatures(rec, now))
		y = append(y, float64(*rec.ActualDuration))
	}
	if len(x) == 0 {
		uc.l.Warnf(ctx, "prediction.TrainDuration: no records with actual durations, skipping")
		return 0, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	forest, scaler, accuracy, err := uc.fit(x, y)
	if err != nil {
		uc.l.Errorf(ctx, "prediction.TrainDuration: %v", err)
		return 0, err
	}

	uc.durationModel = forest
	uc.scaler = scaler

	if err := uc.saveArtifact(ctx, repository.ArtifactDurationModel, forest); err != nil {
		return 0, err
	}
	if err := uc.saveArtifact(ctx, repository.ArtifactScaler, scaler); err != nil {
		return 0, err
	}

	uc.l.Infof(ctx, "prediction.TrainDuration: trained on %d records, accuracy=%.3f", len(x), accuracy)
	return accuracy, nil
}

// fit shuffles deterministically, holds out a fifth of the samples,
// scales with statistics from the training split, trains a forest and
// reports exact-match accuracy on the holdout. With too few samples for
// a holdout the accuracy is measured on the training split instead.
func (uc *implUseCase) fit(x [][]float64, y []float64) (*randomforest.Forest, *standardScaler, float64, error) {
	rng := rand.New(rand.NewSource(trainSeed))
	perm := rng.Perm(len(x))
	xs := make([][]float64, len(x))
	ys := make([]float64, len(y))
	for i, p := range perm {
		xs[i] = x[p]
		ys[i] = y[p]
	}

	nTest := len(xs) / 5
	xTrain, yTrain := xs[nTest:], ys[nTest:]
	xTest, yTest := xs[:nTest], ys[:nTest]

	scaler := fitScaler(xTrain)
	xTrain = scaler.TransformAll(xTrain)
	xTest = scaler.TransformAll(xTest)

	forest, err := randomforest.Train(xTrain, yTrain, randomforest.Config{
		NumTrees: numTrees,
		MaxDepth: maxDepth,
		Seed:     trainSeed,
	})
	if err != nil {
		return nil, nil, 0, err
	}

	var accuracy float64
	if nTest == 0 {
		accuracy = forest.Accuracy(xTrain, yTrain)
	} else {
		accuracy = forest.Accuracy(xTest, yTest)
	}
	return forest, scaler, accuracy, nil
}
