package play

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// resultsTable renders the per-question detail table.
func (m Model) resultsTable() string {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Question", Width: questionColumnWidth(m.width)},
		{Title: "Your answer", Width: 16},
		{Title: "Correct", Width: 16},
		{Title: "", Width: 2},
	}
	rows := make([]table.Row, 0, len(m.state.Questions))
	for i, question := range m.state.Questions {
		answer := m.state.Result.Answers[i]
		given := ""
		if answer.QuestionID != "" {
			given = question.Options[answer.SelectedIndex]
		}
		outcome := "✗"
		if answer.IsCorrect {
			outcome = "✓"
		}
		rows = append(rows, table.Row{
			formatIndex(i),
			truncate(question.Prompt, questionColumnWidth(m.width)),
			truncate(given, 16),
			truncate(question.Options[question.CorrectOption], 16),
			outcome,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(m.tableStyles())
	return t.View()
}

// tableStyles returns table styles for the results view.
func (m Model) tableStyles() table.Styles {
	styles := table.DefaultStyles()
	if m.noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// questionColumnWidth fits the question column to the terminal.
func questionColumnWidth(width int) int {
	if width <= 0 {
		return 40
	}
	available := width - 3 - 16 - 16 - 2 - 10
	if available < 20 {
		return 20
	}
	return available
}

// formatIndex formats a 1-based row number.
func formatIndex(index int) string {
	return strconv.Itoa(index + 1)
}

// truncate shortens text to fit a column.
func truncate(text string, limit int) string {
	if limit <= 3 || len(text) <= limit {
		return text
	}
	return text[:limit-3] + "..."
}
