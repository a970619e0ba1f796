//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"quizdrill/internal/session"
)

// theOutputListsCommands asserts stdout mentions every expected command.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theExitCodeIsZero asserts the CLI succeeded.
func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputContains asserts stdout includes the given text.
func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

// theErrorOutputContains asserts stderr includes the given text.
func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

// theSessionIsInPhase asserts the session phase by name.
func (s *featureState) theSessionIsInPhase(phase string) error {
	if string(s.state.Phase) != phase {
		return fmt.Errorf("expected phase %s, got %s (last error: %v)", phase, s.state.Phase, s.state.LastError)
	}
	return nil
}

// theResultShows asserts the final score.
func (s *featureState) theResultShows(correct, total, percentage int) error {
	result, ok := s.state.FinalResult()
	if !ok {
		return fmt.Errorf("no result in phase %s", s.state.Phase)
	}
	if result.CorrectAnswers != correct || result.TotalQuestions != total || result.Percentage != percentage {
		return fmt.Errorf("expected %d/%d at %d%%, got %d/%d at %d%%",
			correct, total, percentage,
			result.CorrectAnswers, result.TotalQuestions, result.Percentage)
	}
	return nil
}

// theBankRemainsLoaded asserts restart kept the loaded bank.
func (s *featureState) theBankRemainsLoaded() error {
	if !s.state.HasBank {
		return fmt.Errorf("expected bank to stay loaded")
	}
	if s.state.Phase != session.PhaseStart {
		return fmt.Errorf("expected START phase, got %s", s.state.Phase)
	}
	return nil
}
