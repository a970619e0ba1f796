package session

import "quizdrill/internal/bank"

// EventKind identifies the type of session event.
type EventKind int

const (
	// EventBankLoaded delivers a validated bank from the loader.
	EventBankLoaded EventKind = iota
	// EventLoadFailed reports a loader failure.
	EventLoadFailed
	// EventStart begins a quiz run over the loaded bank.
	EventStart
	// EventAnswer records the selected option for the current question.
	EventAnswer
	// EventNext advances to the next question or finishes the quiz.
	EventNext
	// EventPrevious steps back to the prior question.
	EventPrevious
	// EventRestart discards the session and returns to the start screen.
	EventRestart
	// EventRetry leaves the error screen and requests a fresh load.
	EventRetry
)

// Event carries a session update payload.
type Event struct {
	Kind  EventKind
	Seq   int
	Bank  bank.Bank
	Err   error
	Index int
}

// BankLoaded builds a load-completion event for a load ticket.
func BankLoaded(seq int, loaded bank.Bank) Event {
	return Event{Kind: EventBankLoaded, Seq: seq, Bank: loaded}
}

// LoadFailed builds a load-failure event for a load ticket.
func LoadFailed(seq int, err error) Event {
	return Event{Kind: EventLoadFailed, Seq: seq, Err: err}
}

// Start builds a quiz start event.
func Start() Event {
	return Event{Kind: EventStart}
}

// Answer builds an answer-selection event.
func Answer(index int) Event {
	return Event{Kind: EventAnswer, Index: index}
}

// Next builds a forward-navigation event.
func Next() Event {
	return Event{Kind: EventNext}
}

// Previous builds a backward-navigation event.
func Previous() Event {
	return Event{Kind: EventPrevious}
}

// Restart builds a restart event.
func Restart() Event {
	return Event{Kind: EventRestart}
}

// Retry builds a retry event.
func Retry() Event {
	return Event{Kind: EventRetry}
}
