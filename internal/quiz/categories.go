package quiz

import (
	"fmt"
	"sort"

	"quizdrill/internal/bank"
)

// groupByCategory buckets questions by non-empty category.
func groupByCategory(questions []bank.Question) map[string][]bank.Question {
	groups := map[string][]bank.Question{}
	for _, question := range questions {
		if question.Category == "" {
			continue
		}
		groups[question.Category] = append(groups[question.Category], question)
	}
	return groups
}

// sortedCategories returns group keys in stable order.
func sortedCategories(groups map[string][]bank.Question) []string {
	categories := make([]string, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// CheckCategories verifies a bank meets the category diversity thresholds.
// Questions without a category are excluded from every group. Pure; callable
// before any selection work.
func CheckCategories(questions []bank.Question, minCategories, minPerCategory int) error {
	groups := groupByCategory(questions)
	if len(groups) < minCategories {
		return &InsufficientDataError{
			Reason: fmt.Sprintf("found %d categories, need at least %d", len(groups), minCategories),
		}
	}
	for _, category := range sortedCategories(groups) {
		if len(groups[category]) < minPerCategory {
			return &InsufficientDataError{
				Reason: fmt.Sprintf("category %q has %d questions, need at least %d", category, len(groups[category]), minPerCategory),
			}
		}
	}
	return nil
}
