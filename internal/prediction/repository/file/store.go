package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"intelligent-task-management/internal/prediction/repository"
	"intelligent-task-management/pkg/log"
)

type implStore struct {
	l   log.Logger
	dir string
}

// New creates a filesystem-backed model store rooted at dir, creating
// the directory if needed.
func New(l log.Logger, dir string) (*implStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create model directory %q: %w", dir, err)
	}
	return &implStore{l: l, dir: dir}, nil
}

func (s *implStore) Save(ctx context.Context, name string, data []byte) error {
	path := filepath.Join(s.dir, name)

	// Write-then-rename so a crash mid-save never leaves a truncated artifact.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write model artifact %q: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit model artifact %q: %w", name, err)
	}

	s.l.Debugf(ctx, "saved model artifact %s (%d bytes)", name, len(data))
	return nil
}

func (s *implStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil, repository.ErrArtifactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read model artifact %q: %w", name, err)
	}
	return data, nil
}
