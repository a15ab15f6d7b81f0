package repository

import (
	"context"
	"errors"
)

// Artifact names persisted by the prediction domain. Each artifact is
// independently loadable and savable.
const (
	ArtifactPriorityModel = "priority_model.json"
	ArtifactDurationModel = "duration_model.json"
	ArtifactScaler        = "scaler.json"
)

// ErrArtifactNotFound means no artifact with that name has been saved
// yet. Callers treat it as "model untrained", not as a failure.
var ErrArtifactNotFound = errors.New("model artifact not found")

// ModelStore is a durable byte store for trained-model artifacts,
// addressed by artifact name.
type ModelStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}
