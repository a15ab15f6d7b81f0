package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/task"
	"intelligent-task-management/pkg/datemath"
	"intelligent-task-management/pkg/nlp"
)

// ProcessTaskInput converts a free-text task description into a
// structured task record.
func (uc *implUseCase) ProcessTaskInput(ctx context.Context, input task.ProcessInput) (task.ProcessOutput, error) {
	ann := uc.annotator.Annotate(input.Text)
	now := uc.now()

	record := model.TaskRecord{
		ID:              uuid.NewString(),
		Title:           extractTitle(ann),
		Description:     input.Text,
		Category:        classifyCategory(input.Text),
		ComplexityScore: calculateComplexity(ann),
		SentimentScore:  uc.sentiment.PolarityScores(input.Text).Compound,
		Keywords:        extractKeywords(ann),
		Status:          model.StatusPending,
		CreatedAt:       now,
	}

	if due, ok := datemath.ExtractDate(input.Text, now); ok {
		record.DueDate = &due
	}
	if minutes, ok := datemath.ExtractDuration(input.Text); ok {
		record.EstimatedDuration = &minutes
	}

	record.Normalize()

	uc.l.Debugf(ctx, "processed task input: category=%s complexity=%.2f keywords=%d",
		record.Category, record.ComplexityScore, len(record.Keywords))

	return task.ProcessOutput{Record: record}, nil
}

// extractTitle takes the first sentence, truncated to 50 runes. Text
// without a sentence boundary is used whole.
func extractTitle(ann nlp.Annotation) string {
	title := ann.Text
	if len(ann.Sentences) > 0 {
		title = ann.Sentences[0]
	}

	runes := []rune(title)
	if len(runes) > titleMaxRunes {
		runes = runes[:titleMaxRunes]
	}
	return strings.TrimSpace(string(runes))
}

// classifyCategory counts keyword hits per category rule; the strictly
// greatest count wins and ties keep the earlier rule. No hits at all
// falls back to the "other" category.
func classifyCategory(text string) model.Category {
	lower := strings.ToLower(text)

	best := model.CategoryOther
	bestCount := 0
	for _, rule := range categoryRules {
		count := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = rule.Category
		}
	}
	return best
}

// calculateComplexity scores the task in [0,1] from word count, sentence
// count, verb count and long noun ("technical term") count.
func calculateComplexity(ann nlp.Annotation) float64 {
	wordCount := len(ann.Tokens)
	sentenceCount := len(ann.Sentences)
	verbCount := ann.VerbCount()

	technicalTerms := 0
	for _, tok := range ann.Tokens {
		if tok.POS == nlp.POSNoun && len([]rune(tok.Text)) > technicalNounMinRunes {
			technicalTerms++
		}
	}

	complexity := float64(wordCount)/100*0.3 +
		float64(sentenceCount)/5*0.2 +
		float64(verbCount)/10*0.3 +
		float64(technicalTerms)/5*0.2

	if complexity < 0 {
		return 0
	}
	if complexity > 1 {
		return 1
	}
	return complexity
}

// extractKeywords collects the lemmas of non-stopword nouns and verbs,
// deduplicated preserving first occurrence.
func extractKeywords(ann nlp.Annotation) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, tok := range ann.Tokens {
		if tok.Stopword || (tok.POS != nlp.POSNoun && tok.POS != nlp.POSVerb) {
			continue
		}
		if seen[tok.Lemma] {
			continue
		}
		seen[tok.Lemma] = true
		keywords = append(keywords, tok.Lemma)
	}
	return keywords
}

// Similarity scores the lexical overlap of two task descriptions.
func (uc *implUseCase) Similarity(ctx context.Context, input task.SimilarityInput) (float64, error) {
	return uc.annotator.Similarity(input.TextA, input.TextB), nil
}
