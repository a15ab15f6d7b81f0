package task

import "intelligent-task-management/internal/model"

// ProcessInput is the input for natural-language task processing.
type ProcessInput struct {
	Text string // raw task description from the user
}

// ProcessOutput carries the inferred task record. Priority and the
// completion fields are left at their zero values; they are filled by
// the prediction domain and the surrounding store respectively.
type ProcessOutput struct {
	Record model.TaskRecord
}

// SimilarityInput is a pair of task descriptions to compare.
type SimilarityInput struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}
