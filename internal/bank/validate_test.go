package bank

import (
	"errors"
	"strings"
	"testing"
)

func validQuestion(id string) Question {
	return Question{
		ID:           id,
		Prompt:       "Prompt " + id,
		Answers:      []string{"Ja", "Nein"},
		CorrectIndex: 0,
		Explanation:  "Because.",
	}
}

// TestNormalizeAcceptsValidBank verifies a clean bank passes wholesale.
func TestNormalizeAcceptsValidBank(t *testing.T) {
	loaded, err := Normalize(Source{Locale: "de", Choices: 2}, []Question{validQuestion("q1"), validQuestion("q2")})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(loaded.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(loaded.Questions))
	}
}

// TestNormalizeRejectsBadCorrectIndex verifies out-of-range indexes fail.
func TestNormalizeRejectsBadCorrectIndex(t *testing.T) {
	question := validQuestion("q1")
	question.CorrectIndex = 2
	_, err := Normalize(Source{Locale: "de", Choices: 2}, []Question{question})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(validationErr.Error(), "correctIndex") {
		t.Fatalf("expected correctIndex issue, got %v", validationErr)
	}
}

// TestNormalizeRejectsMixedConventions verifies the fixed answer count holds
// for every entry in the bank.
func TestNormalizeRejectsMixedConventions(t *testing.T) {
	four := validQuestion("q2")
	four.Answers = []string{"a", "b", "c", "d"}
	_, err := Normalize(Source{Locale: "de", Choices: 2}, []Question{validQuestion("q1"), four})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestNormalizeRejectsDuplicateIDs verifies duplicate ids fail the bank.
func TestNormalizeRejectsDuplicateIDs(t *testing.T) {
	_, err := Normalize(Source{Locale: "de", Choices: 2}, []Question{validQuestion("dup"), validQuestion("dup")})
	if err == nil {
		t.Fatalf("expected validation error for duplicate ids")
	}
}

// TestNormalizeRejectsEmptyBank verifies an empty payload is invalid.
func TestNormalizeRejectsEmptyBank(t *testing.T) {
	_, err := Normalize(Source{Locale: "de", Choices: 2}, nil)
	if err == nil {
		t.Fatalf("expected validation error for empty bank")
	}
}

// TestNormalizeRejectsMissingExplanation verifies required text fields.
func TestNormalizeRejectsMissingExplanation(t *testing.T) {
	question := validQuestion("q1")
	question.Explanation = "   "
	_, err := Normalize(Source{Locale: "de", Choices: 2}, []Question{question})
	if err == nil {
		t.Fatalf("expected validation error for missing explanation")
	}
}

// TestNormalizeInfersConvention verifies choices default from the first entry.
func TestNormalizeInfersConvention(t *testing.T) {
	loaded, err := Normalize(Source{Locale: "de"}, []Question{validQuestion("q1")})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if loaded.Choices != 2 {
		t.Fatalf("expected inferred choices 2, got %d", loaded.Choices)
	}
}

// TestNormalizeRejectsOddConvention verifies only 2 or 4 choices are allowed.
func TestNormalizeRejectsOddConvention(t *testing.T) {
	question := validQuestion("q1")
	question.Answers = []string{"a", "b", "c"}
	question.CorrectIndex = 1
	_, err := Normalize(Source{Locale: "de"}, []Question{question})
	if err == nil {
		t.Fatalf("expected validation error for 3-answer convention")
	}
}
