package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStart renders the start screen.
func (m Model) renderStart() string {
	title := m.stylize("quizdrill", lipgloss.Color("33"))
	locale := m.locales[m.locale]
	lines := []string{title, ""}
	if m.state.HasBank {
		lines = append(lines, fmt.Sprintf("Bank %q loaded: %d questions.", locale, len(m.state.Bank.Questions)))
		lines = append(lines, "", m.hint("enter: start  l: switch language  q: quit"))
	} else {
		lines = append(lines, fmt.Sprintf("Loading bank %q...", locale))
		lines = append(lines, "", m.hint("q: quit"))
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderQuestion renders the current question with its options.
func (m Model) renderQuestion() string {
	current, ok := m.state.Current()
	if !ok {
		return ""
	}
	header := m.stylize(
		fmt.Sprintf("Question %d/%d", m.state.Position(), m.state.Total()),
		lipgloss.Color("33"),
	)
	lines := []string{header, "", current.Prompt, ""}

	recorded, answered := m.state.Selected()
	for i, option := range current.Options {
		marker := "  "
		color := lipgloss.Color("252")
		if answered {
			switch i {
			case recorded.CorrectIndex:
				marker = "✓ "
				color = lipgloss.Color("40")
			case recorded.SelectedIndex:
				marker = "✗ "
				color = lipgloss.Color("160")
			}
		}
		lines = append(lines, m.stylize(fmt.Sprintf("%s%d. %s", marker, i+1, option), color))
	}

	lines = append(lines, "")
	if answered {
		if recorded.IsCorrect {
			lines = append(lines, m.stylize("Correct.", lipgloss.Color("40")))
		} else {
			lines = append(lines, m.stylize("Incorrect.", lipgloss.Color("160")))
		}
		lines = append(lines, current.Explanation, "", m.hint("enter: next  left: back  q: quit"))
	} else {
		lines = append(lines, m.hint(answerHint(len(current.Options))))
	}
	return strings.Join(lines, "\n") + "\n"
}

// answerHint names the valid answer keys for the option count.
func answerHint(options int) string {
	if options == 2 {
		return "1-2: answer  left: back  q: quit"
	}
	return "1-4: answer  left: back  q: quit"
}

// renderResults renders the score summary and per-question detail.
func (m Model) renderResults() string {
	result, ok := m.state.FinalResult()
	if !ok {
		return ""
	}
	header := m.stylize("Results", lipgloss.Color("33"))
	summary := fmt.Sprintf("%d of %d correct (%d%%)", result.CorrectAnswers, result.TotalQuestions, result.Percentage)
	lines := []string{header, "", summary, "", m.resultsTable()}
	if m.reportWritten {
		lines = append(lines, "", fmt.Sprintf("Report written to %s", m.reportPath))
	}
	if m.reportError != "" {
		lines = append(lines, "", m.stylize("Report failed: "+m.reportError, lipgloss.Color("160")))
	}
	hints := "r: restart  q: quit"
	if m.reportPath != "" {
		hints = "r: restart  w: write report  q: quit"
	}
	lines = append(lines, "", m.hint(hints))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderError renders the error screen with its retry hint.
func (m Model) renderError() string {
	header := m.stylize("Something went wrong", lipgloss.Color("160"))
	reason := m.state.LastError
	if reason == "" {
		reason = "unknown error"
	}
	return strings.Join([]string{header, "", reason, "", m.hint("r: retry  q: quit")}, "\n") + "\n"
}

// hint renders a dim key-hint line.
func (m Model) hint(text string) string {
	return m.stylize(text, lipgloss.Color("242"))
}

// stylize applies optional color styling.
func (m Model) stylize(text string, color lipgloss.Color) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
