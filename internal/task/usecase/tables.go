package usecase

import "intelligent-task-management/internal/model"

// categoryRule maps a category to its literal keywords. Rules are
// scanned in table order and ties keep the earlier category, so the
// order is load-bearing.
type categoryRule struct {
	Category model.Category
	Keywords []string
}

var categoryRules = []categoryRule{
	{model.CategoryWork, []string{"meeting", "report", "presentation", "deadline", "project", "email"}},
	{model.CategoryPersonal, []string{"family", "friend", "home", "house", "personal"}},
	{model.CategoryHealth, []string{"exercise", "workout", "gym", "diet", "health", "fitness"}},
	{model.CategoryLearning, []string{"study", "learn", "course", "read", "practice", "training"}},
	{model.CategoryFinance, []string{"bill", "payment", "budget", "expense", "finance", "money"}},
	{model.CategorySocial, []string{"party", "event", "gathering", "social", "meet"}},
	{model.CategoryTravel, []string{"trip", "travel", "vacation", "flight", "hotel", "booking"}},
}

// priorityIndicators are the words whose absence triggers the
// priority-level improvement suggestion.
var priorityIndicators = []string{"urgent", "important", "priority", "critical"}

const (
	titleMaxRunes = 50

	// technicalNounMinRunes is the length past which a noun counts as a
	// technical term for the complexity score.
	technicalNounMinRunes = 8
)
