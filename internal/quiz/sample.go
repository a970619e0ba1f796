package quiz

import (
	"fmt"
	"math/rand"

	"quizdrill/internal/bank"
)

// shuffle permutes values in place with Fisher-Yates, uniform over orderings.
func shuffle[T any](r *rand.Rand, values []T) {
	for i := len(values) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// permuted returns a shuffled copy, leaving the input untouched.
func permuted[T any](r *rand.Rand, values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	shuffle(r, out)
	return out
}

// SampleFlat draws n questions uniformly without replacement.
func SampleFlat(r *rand.Rand, questions []bank.Question, n int) ([]bank.Question, error) {
	if n <= 0 {
		return nil, &InsufficientDataError{Reason: fmt.Sprintf("sample size must be positive, got %d", n)}
	}
	if n > len(questions) {
		return nil, &InsufficientDataError{
			Reason: fmt.Sprintf("bank has %d questions, need %d", len(questions), n),
		}
	}
	return permuted(r, questions)[:n], nil
}

// SampleStratified draws perCategory questions from each category and
// re-permutes the concatenation so category order is not apparent. The size
// check for every category runs before any selection, keeping the operation
// all-or-nothing.
func SampleStratified(r *rand.Rand, questions []bank.Question, perCategory int) ([]bank.Question, error) {
	if perCategory <= 0 {
		return nil, &InsufficientDataError{Reason: fmt.Sprintf("per-category count must be positive, got %d", perCategory)}
	}
	groups := groupByCategory(questions)
	if len(groups) == 0 {
		return nil, &InsufficientDataError{Reason: "no categorized questions in bank"}
	}
	categories := sortedCategories(groups)
	for _, category := range categories {
		if len(groups[category]) < perCategory {
			return nil, &InsufficientCategoryError{
				Category: category,
				Have:     len(groups[category]),
				Want:     perCategory,
			}
		}
	}
	selected := make([]bank.Question, 0, len(categories)*perCategory)
	for _, category := range categories {
		selected = append(selected, permuted(r, groups[category])[:perCategory]...)
	}
	shuffle(r, selected)
	return selected, nil
}
