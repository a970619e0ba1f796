package quiz

import (
	"math/rand"

	"quizdrill/internal/bank"
)

// Selected is a question prepared for presentation: its answers in display
// order plus the display position of the correct answer.
type Selected struct {
	bank.Question
	Options       []string
	CorrectOption int
}

// ShuffleAnswers permutes a question's answers for display. The correct
// position is carried through the index permutation itself, so duplicate
// answer text cannot mis-point it. With shuffling disabled the original
// order is preserved.
func ShuffleAnswers(r *rand.Rand, question bank.Question, enabled bool) Selected {
	order := make([]int, len(question.Answers))
	for i := range order {
		order[i] = i
	}
	if enabled {
		shuffle(r, order)
	}
	options := make([]string, len(order))
	correct := 0
	for position, original := range order {
		options[position] = question.Answers[original]
		if original == question.CorrectIndex {
			correct = position
		}
	}
	return Selected{Question: question, Options: options, CorrectOption: correct}
}
