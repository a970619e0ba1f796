package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"quizdrill/internal/quiz"
	"quizdrill/internal/session"
)

// ResultsPage builds the HTML results page for a finished session.
func ResultsPage(state session.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		result, ok := state.FinalResult()
		if !ok {
			return fmt.Errorf("session has no result to report")
		}
		if err := writeHeader(w, state, result); err != nil {
			return err
		}
		for i, question := range state.Questions {
			if err := questionRow(i, question, result.Answers[i]).Render(ctx, w); err != nil {
				return err
			}
		}
		return writeFooter(w)
	})
}

// questionRow renders one per-question detail row.
func questionRow(index int, question quiz.Selected, answer session.AnswerRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "incorrect"
		outcome := "✗"
		if answer.IsCorrect {
			class = "correct"
			outcome = "✓"
		}
		given := ""
		if answer.QuestionID != "" && answer.SelectedIndex >= 0 && answer.SelectedIndex < len(question.Options) {
			given = question.Options[answer.SelectedIndex]
		}
		_, err := fmt.Fprintf(w,
			`<tr class=%q><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`+"\n",
			class,
			index+1,
			templ.EscapeString(question.Prompt),
			templ.EscapeString(given),
			templ.EscapeString(question.Options[question.CorrectOption]),
			outcome,
			templ.EscapeString(question.Explanation),
		)
		return err
	})
}

func writeHeader(w io.Writer, state session.State, result session.Result) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Quiz results</title></head>
<body>
<h1>Quiz results</h1>
<p>Session %s (%s): %d of %d correct (%d%%)</p>
<table>
<tr><th>#</th><th>Question</th><th>Your answer</th><th>Correct answer</th><th></th><th>Explanation</th></tr>
`,
		templ.EscapeString(state.SessionID),
		templ.EscapeString(state.Bank.Locale),
		result.CorrectAnswers,
		result.TotalQuestions,
		result.Percentage,
	)
	return err
}

func writeFooter(w io.Writer) error {
	_, err := io.WriteString(w, "</table>\n</body>\n</html>\n")
	return err
}

// RenderHTML renders the results page into a string.
func RenderHTML(ctx context.Context, state session.State) (string, error) {
	var builder strings.Builder
	if err := ResultsPage(state).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
