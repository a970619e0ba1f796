package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quizdrill/internal/report"
	"quizdrill/internal/session"
	"quizdrill/internal/ui/play"
)

// plainInput is the answer source for the plain runner.
var plainInput io.Reader = os.Stdin

// runPlainSession walks one quiz run on a line-oriented terminal. Questions
// are presented in order; navigation is forward-only.
func runPlainSession(in io.Reader, stdout, stderr io.Writer, policy session.Config, loader play.Loader, locale, reportPath string) int {
	engine := session.NewEngine()
	state := session.New(policy)

	state, seq := session.BeginLoad(state)
	loaded, err := loader(context.Background(), locale)
	if err != nil {
		state = engine.Reduce(state, session.LoadFailed(seq, err))
	} else {
		state = engine.Reduce(state, session.BankLoaded(seq, loaded))
	}
	if state.Phase == session.PhaseError {
		fmt.Fprintf(stderr, "Load failed: %s\n", state.LastError)
		return ExitError
	}

	state = engine.Reduce(state, session.Start())
	if state.Phase == session.PhaseError {
		fmt.Fprintf(stderr, "Cannot start quiz: %s\n", state.LastError)
		return ExitError
	}

	scanner := bufio.NewScanner(in)
	for state.Phase == session.PhasePlaying {
		current, ok := state.Current()
		if !ok {
			break
		}
		fmt.Fprintf(stdout, "\nQuestion %d/%d: %s\n", state.Position(), state.Total(), current.Prompt)
		for i, option := range current.Options {
			fmt.Fprintf(stdout, "  %d. %s\n", i+1, option)
		}

		index, ok := readAnswer(scanner, stdout, len(current.Options))
		if !ok {
			fmt.Fprintln(stderr, "Input ended before the quiz finished.")
			return ExitError
		}
		state = engine.Reduce(state, session.Answer(index))
		recorded, _ := state.Selected()
		if recorded.IsCorrect {
			fmt.Fprintln(stdout, "Correct.")
		} else {
			fmt.Fprintf(stdout, "Incorrect. The correct answer was: %s\n", current.Options[recorded.CorrectIndex])
		}
		fmt.Fprintln(stdout, current.Explanation)
		state = engine.Reduce(state, session.Next())
	}

	result, ok := state.FinalResult()
	if !ok {
		fmt.Fprintln(stderr, "Quiz ended without a result.")
		return ExitError
	}
	fmt.Fprintf(stdout, "\nResult: %d of %d correct (%d%%)\n", result.CorrectAnswers, result.TotalQuestions, result.Percentage)

	if reportPath != "" {
		if err := report.WriteHTML(context.Background(), reportPath, state); err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", reportPath)
	}
	return ExitOK
}

// readAnswer prompts until a valid option number arrives or input ends.
func readAnswer(scanner *bufio.Scanner, stdout io.Writer, options int) (int, bool) {
	for {
		fmt.Fprintf(stdout, "Answer [1-%d]: ", options)
		if !scanner.Scan() {
			return 0, false
		}
		text := strings.TrimSpace(scanner.Text())
		value, err := strconv.Atoi(text)
		if err != nil || value < 1 || value > options {
			fmt.Fprintf(stdout, "Please enter a number between 1 and %d.\n", options)
			continue
		}
		return value - 1, true
	}
}
