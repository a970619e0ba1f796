package bank

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a bank entry.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more bank validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "bank validation failed"
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace and validates parsed questions into a Bank.
// Every entry must carry the source's fixed answer convention (2 or 4
// choices); a single bad entry rejects the whole bank.
func Normalize(source Source, questions []Question) (Bank, error) {
	collector := &issueCollector{}
	if len(questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	choices := source.Choices
	if choices == 0 && len(questions) > 0 {
		choices = len(questions[0].Answers)
	}
	if choices != 2 && choices != 4 {
		collector.add("choices", fmt.Sprintf("answer convention must be 2 or 4, got %d", choices))
	}

	seenIDs := map[string]struct{}{}
	for i, question := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		question.ID = strings.TrimSpace(question.ID)
		if question.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		question.Explanation = strings.TrimSpace(question.Explanation)
		if question.Explanation == "" {
			collector.add(prefix+".explanation", "is required")
		}

		question.Answers = trimAll(question.Answers)
		if choices == 2 || choices == 4 {
			if len(question.Answers) != choices {
				collector.add(prefix+".answers", fmt.Sprintf("expected %d answers, got %d", choices, len(question.Answers)))
			}
		}
		for answerIndex, answer := range question.Answers {
			if answer == "" {
				collector.add(fmt.Sprintf("%s.answers[%d]", prefix, answerIndex), "is required")
			}
		}

		if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Answers) {
			collector.add(prefix+".correctIndex", fmt.Sprintf("must be in [0, %d), got %d", len(question.Answers), question.CorrectIndex))
		}

		question.Category = strings.TrimSpace(question.Category)
		questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return Bank{Locale: source.Locale, Choices: choices, Questions: questions}, nil
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
