package usecase

import (
	"context"
	"strings"

	"intelligent-task-management/pkg/datemath"
)

// Improvement suggestion messages, in check order.
const (
	suggestionBreakDown = "Consider breaking down the task into smaller, more manageable subtasks"
	suggestionAddAction = "Add specific actions to make the task more actionable"
	suggestionAddTime   = "Add a specific deadline or time frame"
	suggestionPriority  = "Consider adding priority level or importance indicator"
)

// SuggestTaskImprovements runs the fixed-order description checks:
// verbosity, missing action verbs, missing due date, missing priority
// indicator. Each check is independent; any subset may fire.
func (uc *implUseCase) SuggestTaskImprovements(ctx context.Context, text string) ([]string, error) {
	ann := uc.annotator.Annotate(text)
	suggestions := []string{}

	if len(ann.Sentences) > 3 {
		suggestions = append(suggestions, suggestionBreakDown)
	}

	if ann.VerbCount() == 0 {
		suggestions = append(suggestions, suggestionAddAction)
	}

	if _, ok := datemath.ExtractDate(text, uc.now()); !ok {
		suggestions = append(suggestions, suggestionAddTime)
	}

	lower := strings.ToLower(text)
	hasIndicator := false
	for _, word := range priorityIndicators {
		if strings.Contains(lower, word) {
			hasIndicator = true
			break
		}
	}
	if !hasIndicator {
		suggestions = append(suggestions, suggestionPriority)
	}

	return suggestions, nil
}
