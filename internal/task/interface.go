package task

import "context"

// UseCase defines the business logic interface for the task-understanding domain.
type UseCase interface {
	// ProcessTaskInput converts a free-text task description into a
	// structured task record. It never fails on malformed input;
	// attributes that cannot be inferred degrade to absent or default
	// values.
	ProcessTaskInput(ctx context.Context, input ProcessInput) (ProcessOutput, error)

	// SuggestTaskImprovements flags weaknesses of a task description in
	// fixed check order. An empty result means no concerns were found.
	SuggestTaskImprovements(ctx context.Context, text string) ([]string, error)

	// Similarity scores the lexical overlap of two task descriptions in [0,1].
	Similarity(ctx context.Context, input SimilarityInput) (float64, error)
}
