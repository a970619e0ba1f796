package session

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"quizdrill/internal/bank"
	"quizdrill/internal/testutil"
)

func testEngine(clock *testutil.FakeClock) Engine {
	nextID := 0
	return Engine{
		Rand: rand.New(rand.NewSource(7)),
		Now:  clock.Now,
		NewID: func() string {
			nextID++
			return "session-" + string(rune('0'+nextID))
		},
	}
}

func flatConfig(n int) Config {
	return Config{Mode: ModeFlat, Questions: n, ShuffleAnswers: true}
}

func testBank(n int) bank.Bank {
	questions := make([]bank.Question, n)
	for i := range questions {
		questions[i] = bank.Question{
			ID:           "q" + string(rune('a'+i)),
			Prompt:       "Prompt",
			Answers:      []string{"Ja", "Nein"},
			CorrectIndex: i % 2,
			Explanation:  "E",
		}
	}
	return bank.Bank{Locale: "de", Choices: 2, Questions: questions}
}

func startedState(t *testing.T, e Engine, bankSize, sampleSize int) State {
	t.Helper()
	state := New(flatConfig(sampleSize))
	state, seq := BeginLoad(state)
	state = e.Reduce(state, BankLoaded(seq, testBank(bankSize)))
	state = e.Reduce(state, Start())
	if state.Phase != PhasePlaying {
		t.Fatalf("expected PLAYING after start, got %s (%s)", state.Phase, state.LastError)
	}
	return state
}

// answerCurrentCorrectly selects whichever option is correct at the cursor.
func answerCurrentCorrectly(t *testing.T, e Engine, state State) State {
	t.Helper()
	current, ok := state.Current()
	if !ok {
		t.Fatalf("no current question at index %d", state.Index)
	}
	return e.Reduce(state, Answer(current.CorrectOption))
}

// TestStateMachineLinearity verifies the full start -> playing -> results ->
// restart walk over a six-question run.
func TestStateMachineLinearity(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := startedState(t, e, 8, 6)
		if state.Index != 0 {
			t.Fatalf("expected index 0 after start, got %d", state.Index)
		}
		if state.SessionID == "" {
			t.Fatalf("expected a session id after start")
		}

		state = e.Reduce(state, Answer(1))
		state = e.Reduce(state, Next())
		if state.Phase != PhasePlaying || state.Index != 1 {
			t.Fatalf("expected index 1 after next, got %s index %d", state.Phase, state.Index)
		}

		for state.Phase == PhasePlaying {
			state = answerCurrentCorrectly(t, e, state)
			state = e.Reduce(state, Next())
		}
		if state.Phase != PhaseResults {
			t.Fatalf("expected RESULTS after last question, got %s", state.Phase)
		}
		result, ok := state.FinalResult()
		if !ok || result.TotalQuestions != 6 {
			t.Fatalf("expected a 6-question result, got %+v", result)
		}

		state = e.Reduce(state, Restart())
		if state.Phase != PhaseStart {
			t.Fatalf("expected START after restart, got %s", state.Phase)
		}
		if state.Questions != nil || state.Answers != nil || state.HasResult {
			t.Fatalf("expected session state cleared after restart")
		}
		if !state.HasBank {
			t.Fatalf("expected the bank to survive restart")
		}
	})
}

// TestScoring verifies correct answers on three of five questions score 60%.
func TestScoring(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := startedState(t, e, 6, 5)
		for i := 0; i < 5; i++ {
			current, _ := state.Current()
			pick := current.CorrectOption
			if i == 1 || i == 3 {
				pick = 1 - pick
			}
			state = e.Reduce(state, Answer(pick))
			state = e.Reduce(state, Next())
		}
		result, ok := state.FinalResult()
		if !ok {
			t.Fatalf("expected a final result, got phase %s", state.Phase)
		}
		if result.TotalQuestions != 5 || result.CorrectAnswers != 3 || result.Percentage != 60 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if len(result.Answers) != 5 {
			t.Fatalf("expected one answer record per question, got %d", len(result.Answers))
		}
	})
}

// TestBackNavigationPreservesAnswer verifies previous() shows the original
// answer unchanged.
func TestBackNavigationPreservesAnswer(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := startedState(t, e, 8, 6)

		state = e.Reduce(state, Answer(0))
		recorded, _ := state.Selected()
		state = e.Reduce(state, Next())
		state = e.Reduce(state, Previous())
		if state.Index != 0 {
			t.Fatalf("expected index 0 after previous, got %d", state.Index)
		}
		again, ok := state.Selected()
		if !ok || again != recorded {
			t.Fatalf("expected preserved answer %+v, got %+v", recorded, again)
		}
	})
}

// TestReAnswerOverwrites verifies the later answer governs.
func TestReAnswerOverwrites(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := startedState(t, e, 8, 6)

		state = e.Reduce(state, Answer(0))
		state = e.Reduce(state, Answer(1))
		recorded, ok := state.Selected()
		if !ok || recorded.SelectedIndex != 1 {
			t.Fatalf("expected overwritten selection 1, got %+v", recorded)
		}
		current, _ := state.Current()
		if recorded.IsCorrect != (1 == current.CorrectOption) {
			t.Fatalf("correctness not recomputed on overwrite: %+v", recorded)
		}
	})
}

// TestNextRequiresAnswer verifies forward navigation is gated on answering.
func TestNextRequiresAnswer(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := startedState(t, e, 8, 6)
		advanced := e.Reduce(state, Next())
		if advanced.Index != 0 {
			t.Fatalf("expected next to be ignored before answering, got index %d", advanced.Index)
		}
	})
}

// TestStartWithTooFewQuestions verifies the guard transitions to ERROR and
// leaves no partial session behind.
func TestStartWithTooFewQuestions(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := New(flatConfig(10))
		state, seq := BeginLoad(state)
		state = e.Reduce(state, BankLoaded(seq, testBank(4)))
		state = e.Reduce(state, Start())
		if state.Phase != PhaseError {
			t.Fatalf("expected ERROR for undersized bank, got %s", state.Phase)
		}
		if state.LastError == "" {
			t.Fatalf("expected a recorded reason")
		}
		if len(state.Questions) != 0 || state.SessionID != "" {
			t.Fatalf("expected no partial session on failed start")
		}
	})
}

// TestStratifiedStartChecksCategories verifies category thresholds gate
// start() for stratified runs.
func TestStratifiedStartChecksCategories(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		config := Config{
			Mode:           ModeStratified,
			PerCategory:    2,
			MinCategories:  5,
			MinPerCategory: 2,
			ShuffleAnswers: true,
		}
		loaded := testBank(8)
		for i := range loaded.Questions {
			loaded.Questions[i].Category = []string{"A", "B", "C"}[i%3]
		}
		state := New(config)
		state, seq := BeginLoad(state)
		state = e.Reduce(state, BankLoaded(seq, loaded))
		state = e.Reduce(state, Start())
		if state.Phase != PhaseError {
			t.Fatalf("expected ERROR for 3 categories with min 5, got %s", state.Phase)
		}
	})
}

// TestRetryReturnsToStart verifies the error screen recovery path.
func TestRetryReturnsToStart(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := New(flatConfig(6))
		state, seq := BeginLoad(state)
		state = e.Reduce(state, LoadFailed(seq, errors.New("boom")))
		if state.Phase != PhaseError || state.LastError != "boom" {
			t.Fatalf("expected ERROR with reason, got %s (%q)", state.Phase, state.LastError)
		}
		state = e.Reduce(state, Retry())
		if state.Phase != PhaseStart || !state.Retrying {
			t.Fatalf("expected START with retry flag, got %s retrying=%v", state.Phase, state.Retrying)
		}
	})
}

// TestStaleLoadIgnored verifies last-request-wins load handling.
func TestStaleLoadIgnored(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := New(flatConfig(6))
		state, stale := BeginLoad(state)
		state, fresh := BeginLoad(state)

		state = e.Reduce(state, LoadFailed(stale, errors.New("stale failure")))
		if state.Phase != PhaseStart {
			t.Fatalf("expected stale failure to be dropped, got %s", state.Phase)
		}
		state = e.Reduce(state, BankLoaded(stale, testBank(2)))
		if state.HasBank {
			t.Fatalf("expected stale bank to be dropped")
		}
		state = e.Reduce(state, BankLoaded(fresh, testBank(8)))
		if !state.HasBank || len(state.Bank.Questions) != 8 {
			t.Fatalf("expected the fresh bank to win, got %d questions", len(state.Bank.Questions))
		}
	})
}

// TestUnansweredPositionsScoreAsIncorrect verifies scoring tolerates gaps.
func TestUnansweredPositionsScoreAsIncorrect(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		clock := testutil.NewFakeClock(time.Unix(1000, 0))
		e := testEngine(clock)
		state := startedState(t, e, 6, 4)
		// Leave the first two positions unanswered by rewinding after
		// answering later ones is impossible forward-only, so construct the
		// gap directly.
		state.Answered = []bool{false, false, true, true}
		for i := 2; i < 4; i++ {
			state.Index = i
			state = answerCurrentCorrectly(t, e, state)
		}
		state.Index = 3
		state = e.Reduce(state, Next())
		result, ok := state.FinalResult()
		if !ok {
			t.Fatalf("expected a result, got phase %s", state.Phase)
		}
		if result.CorrectAnswers != 2 || result.Percentage != 50 {
			t.Fatalf("unexpected result with gaps: %+v", result)
		}
	})
}

// TestTimestampsComeFromClock verifies injected time flows into the session.
func TestTimestampsComeFromClock(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		start := time.Unix(5000, 0)
		clock := testutil.NewFakeClock(start)
		e := testEngine(clock)
		state := startedState(t, e, 6, 2)
		if !state.StartedAt.Equal(start) {
			t.Fatalf("expected StartedAt %v, got %v", start, state.StartedAt)
		}
		clock.Advance(90 * time.Second)
		for i := 0; i < 2; i++ {
			state = answerCurrentCorrectly(t, e, state)
			state = e.Reduce(state, Next())
		}
		if !state.FinishedAt.Equal(start.Add(90 * time.Second)) {
			t.Fatalf("expected FinishedAt from clock, got %v", state.FinishedAt)
		}
	})
}

// runWithTimeout executes a test body with a timeout.
func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
