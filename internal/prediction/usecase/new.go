package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"intelligent-task-management/internal/prediction/repository"
	"intelligent-task-management/pkg/log"
	"intelligent-task-management/pkg/randomforest"
)

type implUseCase struct {
	l     log.Logger
	store repository.ModelStore
	now   func() time.Time

	// mu serializes training (single writer) against predictions.
	mu            sync.RWMutex
	priorityModel *randomforest.Forest
	durationModel *randomforest.Forest
	scaler        *standardScaler
}

// New creates a prediction UseCase and loads any persisted model
// artifacts from the store. Missing artifacts leave the corresponding
// model untrained; corrupt artifacts are an error.
func New(ctx context.Context, l log.Logger, store repository.ModelStore) (*implUseCase, error) {
	uc := &implUseCase{
		l:     l,
		store: store,
		now:   time.Now,
	}

	if err := uc.loadArtifact(ctx, repository.ArtifactPriorityModel, &uc.priorityModel); err != nil {
		return nil, err
	}
	if err := uc.loadArtifact(ctx, repository.ArtifactDurationModel, &uc.durationModel); err != nil {
		return nil, err
	}
	if err := uc.loadArtifact(ctx, repository.ArtifactScaler, &uc.scaler); err != nil {
		return nil, err
	}

	return uc, nil
}

// loadArtifact unmarshals one persisted artifact into target; a missing
// artifact is not an error.
func (uc *implUseCase) loadArtifact(ctx context.Context, name string, target any) error {
	data, err := uc.store.Load(ctx, name)
	if errors.Is(err, repository.ErrArtifactNotFound) {
		uc.l.Debugf(ctx, "no persisted %s, starting untrained", name)
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("corrupt model artifact %q: %w", name, err)
	}
	uc.l.Infof(ctx, "loaded model artifact %s", name)
	return nil
}

func (uc *implUseCase) saveArtifact(ctx context.Context, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal model artifact %q: %w", name, err)
	}
	return uc.store.Save(ctx, name, data)
}
