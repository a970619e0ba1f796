//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"

	"quizdrill/internal/bank"
	"quizdrill/internal/session"
)

// featureBank builds a deterministic two-choice bank spread over categories.
func featureBank(questions, categories int) bank.Bank {
	loaded := bank.Bank{Locale: "de", Choices: 2}
	for i := 0; i < questions; i++ {
		loaded.Questions = append(loaded.Questions, bank.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Prompt:       fmt.Sprintf("Aussage %d trifft zu.", i+1),
			Answers:      []string{"Ja", "Nein"},
			CorrectIndex: i % 2,
			Explanation:  fmt.Sprintf("Begründung zu Aussage %d.", i+1),
			Category:     fmt.Sprintf("kategorie-%d", i%categories+1),
		})
	}
	return loaded
}

// aFlatQuiz builds a flat session with a loaded bank.
func (s *featureState) aFlatQuiz(questions, bankSize int) error {
	policy := session.Config{
		Mode:           session.ModeFlat,
		Questions:      questions,
		ShuffleAnswers: true,
	}
	return s.loadSession(policy, featureBank(bankSize, 2))
}

// aStratifiedQuiz builds a stratified session against a category-poor bank.
func (s *featureState) aStratifiedQuiz(needed, available int) error {
	policy := session.Config{
		Mode:           session.ModeStratified,
		PerCategory:    2,
		MinCategories:  needed,
		MinPerCategory: 2,
		ShuffleAnswers: true,
	}
	return s.loadSession(policy, featureBank(available*3, available))
}

func (s *featureState) loadSession(policy session.Config, loaded bank.Bank) error {
	state, seq := session.BeginLoad(session.New(policy))
	s.state = s.engine.Reduce(state, session.BankLoaded(seq, loaded))
	s.hasSession = true
	if s.state.Phase != session.PhaseStart {
		return fmt.Errorf("expected START after load, got %s", s.state.Phase)
	}
	return nil
}

// thePlayerStartsTheQuiz dispatches the start event.
func (s *featureState) thePlayerStartsTheQuiz() error {
	if !s.hasSession {
		return fmt.Errorf("no session prepared")
	}
	s.state = s.engine.Reduce(s.state, session.Start())
	return nil
}

// thePlayerAnswersCorrectly walks the quiz picking the correct option each time.
func (s *featureState) thePlayerAnswersCorrectly() error {
	return s.answerAll(func(correct, options int) int { return correct })
}

// thePlayerAnswersIncorrectly walks the quiz picking a wrong option each time.
func (s *featureState) thePlayerAnswersIncorrectly() error {
	return s.answerAll(func(correct, options int) int { return (correct + 1) % options })
}

func (s *featureState) answerAll(pick func(correct, options int) int) error {
	if s.state.Phase != session.PhasePlaying {
		return fmt.Errorf("expected PLAYING, got %s", s.state.Phase)
	}
	for s.state.Phase == session.PhasePlaying {
		current, ok := s.state.Current()
		if !ok {
			return fmt.Errorf("no current question at index %d", s.state.Index)
		}
		choice := pick(current.CorrectOption, len(current.Options))
		s.state = s.engine.Reduce(s.state, session.Answer(choice))
		s.state = s.engine.Reduce(s.state, session.Next())
	}
	return nil
}

// thePlayerRestarts dispatches the restart event.
func (s *featureState) thePlayerRestarts() error {
	s.state = s.engine.Reduce(s.state, session.Restart())
	return nil
}
