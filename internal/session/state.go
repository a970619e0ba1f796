package session

import (
	"time"

	"quizdrill/internal/bank"
	"quizdrill/internal/quiz"
)

// Phase is the lifecycle stage of a quiz session.
type Phase string

const (
	// PhaseStart shows the start screen; a bank may or may not be loaded yet.
	PhaseStart Phase = "START"
	// PhasePlaying walks through the selected questions.
	PhasePlaying Phase = "PLAYING"
	// PhaseResults shows the scored outcome of a finished run.
	PhaseResults Phase = "RESULTS"
	// PhaseError shows a load or start failure with a retry path.
	PhaseError Phase = "ERROR"
)

// Mode selects the question sampling policy.
type Mode string

const (
	// ModeFlat samples uniformly across the whole bank.
	ModeFlat Mode = "flat"
	// ModeStratified samples a fixed count from every category.
	ModeStratified Mode = "stratified"
)

// Config holds the selection policy for quiz runs.
type Config struct {
	Mode           Mode
	Questions      int
	PerCategory    int
	MinCategories  int
	MinPerCategory int
	ShuffleAnswers bool
}

// AnswerRecord records the outcome of answering one question.
type AnswerRecord struct {
	QuestionID    string
	SelectedIndex int
	IsCorrect     bool
	CorrectIndex  int
}

// Result is the scored outcome of one finished run.
type Result struct {
	TotalQuestions int
	CorrectAnswers int
	Percentage     int
	Answers        []AnswerRecord
}

// State captures a full quiz session. It is a value: Reduce returns an
// updated copy and never mutates shared slices in place.
type State struct {
	Phase  Phase
	Config Config

	Bank    bank.Bank
	HasBank bool
	LoadSeq int

	LastError string
	Retrying  bool

	SessionID  string
	Questions  []quiz.Selected
	Index      int
	Answers    []AnswerRecord
	Answered   []bool
	Result     Result
	HasResult  bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// New returns the initial session state for a selection policy.
func New(config Config) State {
	return State{Phase: PhaseStart, Config: config}
}

// BeginLoad issues a new load ticket; stale completions are ignored by
// Reduce so the newest request deterministically wins.
func BeginLoad(state State) (State, int) {
	state.LoadSeq++
	state.Retrying = false
	return state, state.LoadSeq
}

// Current returns the question at the cursor during play.
func (s State) Current() (quiz.Selected, bool) {
	if s.Phase != PhasePlaying || s.Index < 0 || s.Index >= len(s.Questions) {
		return quiz.Selected{}, false
	}
	return s.Questions[s.Index], true
}

// Position returns the 1-based question number during play.
func (s State) Position() int {
	return s.Index + 1
}

// Total returns the number of questions in the current run.
func (s State) Total() int {
	return len(s.Questions)
}

// IsAnswered reports whether the current question has a recorded answer.
func (s State) IsAnswered() bool {
	return s.Index >= 0 && s.Index < len(s.Answered) && s.Answered[s.Index]
}

// Selected returns the recorded answer for the current question.
func (s State) Selected() (AnswerRecord, bool) {
	if !s.IsAnswered() {
		return AnswerRecord{}, false
	}
	return s.Answers[s.Index], true
}

// FinalResult returns the scored result once the run has finished.
func (s State) FinalResult() (Result, bool) {
	if !s.HasResult {
		return Result{}, false
	}
	return s.Result, true
}
