package session

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"quizdrill/internal/bank"
	"quizdrill/internal/quiz"
)

// Engine reduces session events. Randomness, clock, and id generation are
// injected so runs are reproducible under test.
type Engine struct {
	Rand  *rand.Rand
	Now   func() time.Time
	NewID func() string
}

// NewEngine builds an engine with per-run randomness.
func NewEngine() Engine {
	return Engine{
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// Reduce applies one session event to the state. Errors never escape: a
// failed guard either leaves the state unchanged or transitions to
// PhaseError with a recorded reason.
func (e Engine) Reduce(state State, event Event) State {
	switch event.Kind {
	case EventBankLoaded:
		return reduceBankLoaded(state, event)
	case EventLoadFailed:
		return reduceLoadFailed(state, event)
	case EventStart:
		return e.reduceStart(state)
	case EventAnswer:
		return reduceAnswer(state, event.Index)
	case EventNext:
		return e.reduceNext(state)
	case EventPrevious:
		return reducePrevious(state)
	case EventRestart:
		return reduceRestart(state)
	case EventRetry:
		return reduceRetry(state)
	}
	return state
}

// reduceBankLoaded installs a freshly loaded bank, dropping stale deliveries.
func reduceBankLoaded(state State, event Event) State {
	if event.Seq != state.LoadSeq {
		return state
	}
	state.Bank = event.Bank
	state.HasBank = true
	if state.Phase == PhaseError {
		state.Phase = PhaseStart
		state.LastError = ""
	}
	return state
}

// reduceLoadFailed surfaces a loader failure on the error screen.
func reduceLoadFailed(state State, event Event) State {
	if event.Seq != state.LoadSeq {
		return state
	}
	state.Phase = PhaseError
	if event.Err != nil {
		state.LastError = event.Err.Error()
	}
	return state
}

// reduceStart samples and shuffles a fresh question set. Selection is
// all-or-nothing: a guard failure transitions to PhaseError and leaves the
// prior session untouched.
func (e Engine) reduceStart(state State) State {
	if state.Phase != PhaseStart {
		return state
	}
	if !state.HasBank {
		state.Phase = PhaseError
		state.LastError = "no question bank loaded"
		return state
	}
	selected, err := e.sample(state.Config, state.Bank)
	if err != nil {
		state.Phase = PhaseError
		state.LastError = err.Error()
		return state
	}
	questions := make([]quiz.Selected, len(selected))
	for i, question := range selected {
		questions[i] = quiz.ShuffleAnswers(e.Rand, question, state.Config.ShuffleAnswers)
	}
	state.Phase = PhasePlaying
	state.SessionID = e.NewID()
	state.Questions = questions
	state.Index = 0
	state.Answers = make([]AnswerRecord, len(questions))
	state.Answered = make([]bool, len(questions))
	state.Result = Result{}
	state.HasResult = false
	state.StartedAt = e.Now()
	state.FinishedAt = time.Time{}
	return state
}

// sample applies the configured selection policy to a bank.
func (e Engine) sample(config Config, loaded bank.Bank) ([]bank.Question, error) {
	if config.Mode == ModeStratified {
		if err := quiz.CheckCategories(loaded.Questions, config.MinCategories, config.MinPerCategory); err != nil {
			return nil, err
		}
		return quiz.SampleStratified(e.Rand, loaded.Questions, config.PerCategory)
	}
	return quiz.SampleFlat(e.Rand, loaded.Questions, config.Questions)
}

// reduceAnswer records or overwrites the answer at the cursor. The later
// answer governs; locking after the first answer is a presentation concern.
func reduceAnswer(state State, index int) State {
	current, ok := state.Current()
	if !ok {
		return state
	}
	if index < 0 || index >= len(current.Options) {
		return state
	}
	answers := make([]AnswerRecord, len(state.Answers))
	copy(answers, state.Answers)
	answered := make([]bool, len(state.Answered))
	copy(answered, state.Answered)
	answers[state.Index] = AnswerRecord{
		QuestionID:    current.ID,
		SelectedIndex: index,
		IsCorrect:     index == current.CorrectOption,
		CorrectIndex:  current.CorrectOption,
	}
	answered[state.Index] = true
	state.Answers = answers
	state.Answered = answered
	return state
}

// reduceNext advances the cursor, or scores the run at the last question.
func (e Engine) reduceNext(state State) State {
	if state.Phase != PhasePlaying || !state.IsAnswered() {
		return state
	}
	if state.Index < len(state.Questions)-1 {
		state.Index++
		return state
	}
	state.Result = score(state)
	state.HasResult = true
	state.Phase = PhaseResults
	state.FinishedAt = e.Now()
	return state
}

// score tallies a finished run. Unanswered positions count as not correct.
func score(state State) Result {
	total := len(state.Questions)
	correct := 0
	answers := make([]AnswerRecord, total)
	for i := range state.Questions {
		if !state.Answered[i] {
			continue
		}
		answers[i] = state.Answers[i]
		if answers[i].IsCorrect {
			correct++
		}
	}
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return Result{
		TotalQuestions: total,
		CorrectAnswers: correct,
		Percentage:     percentage,
		Answers:        answers,
	}
}

// reducePrevious steps back one question; the earlier answer stays recorded.
func reducePrevious(state State) State {
	if state.Phase != PhasePlaying || state.Index <= 0 {
		return state
	}
	state.Index--
	return state
}

// reduceRestart discards the session and returns to the start screen. The
// loaded bank is kept so a new run does not require a fresh fetch.
func reduceRestart(state State) State {
	if state.Phase != PhaseResults && state.Phase != PhaseError {
		return state
	}
	return clearSession(state, PhaseStart)
}

// reduceRetry leaves the error screen and flags that the loader should run
// again; the surrounding UI issues the new load ticket.
func reduceRetry(state State) State {
	if state.Phase != PhaseError {
		return state
	}
	state = clearSession(state, PhaseStart)
	state.Retrying = true
	return state
}

// clearSession drops all per-run state.
func clearSession(state State, phase Phase) State {
	state.Phase = phase
	state.LastError = ""
	state.SessionID = ""
	state.Questions = nil
	state.Index = 0
	state.Answers = nil
	state.Answered = nil
	state.Result = Result{}
	state.HasResult = false
	state.StartedAt = time.Time{}
	state.FinishedAt = time.Time{}
	return state
}
