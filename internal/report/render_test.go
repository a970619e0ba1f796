package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdrill/internal/bank"
	"quizdrill/internal/quiz"
	"quizdrill/internal/session"
)

func finishedState() session.State {
	questions := []quiz.Selected{
		{
			Question: bank.Question{ID: "q1", Prompt: "Is <water> wet?", Explanation: "It is."},
			Options:  []string{"Ja", "Nein"},
			CorrectOption: 0,
		},
		{
			Question: bank.Question{ID: "q2", Prompt: "Second", Explanation: "Because."},
			Options:  []string{"Ja", "Nein"},
			CorrectOption: 1,
		},
	}
	return session.State{
		Phase:     session.PhaseResults,
		SessionID: "abc-123",
		Bank:      bank.Bank{Locale: "de"},
		Questions: questions,
		HasResult: true,
		Result: session.Result{
			TotalQuestions: 2,
			CorrectAnswers: 1,
			Percentage:     50,
			Answers: []session.AnswerRecord{
				{QuestionID: "q1", SelectedIndex: 0, IsCorrect: true, CorrectIndex: 0},
				{QuestionID: "q2", SelectedIndex: 0, IsCorrect: false, CorrectIndex: 1},
			},
		},
	}
}

// TestRenderHTML verifies the page carries score, rows, and escaping.
func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(context.Background(), finishedState())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "1 of 2 correct (50%)") {
		t.Fatalf("expected score line, got:\n%s", html)
	}
	if !strings.Contains(html, "Is &lt;water&gt; wet?") {
		t.Fatalf("expected escaped prompt, got:\n%s", html)
	}
	if !strings.Contains(html, `class="incorrect"`) || !strings.Contains(html, `class="correct"`) {
		t.Fatalf("expected row outcome classes, got:\n%s", html)
	}
}

// TestRenderHTMLWithoutResult verifies unfinished sessions are rejected.
func TestRenderHTMLWithoutResult(t *testing.T) {
	state := finishedState()
	state.HasResult = false
	if _, err := RenderHTML(context.Background(), state); err == nil {
		t.Fatalf("expected error for unfinished session")
	}
}

// TestWriteHTML verifies the report lands on disk.
func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := WriteHTML(context.Background(), path, finishedState()); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "<table>") {
		t.Fatalf("expected table in report")
	}
}
