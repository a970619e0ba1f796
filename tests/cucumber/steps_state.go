//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"quizdrill/internal/session"
)

// featureState holds scenario state for the quizdrill feature suite. CLI
// scenarios run inside a scratch workspace; session scenarios drive the
// reducer directly with a seeded engine.
type featureState struct {
	workspaceDir string
	previousWD   string
	stdout       bytes.Buffer
	stderr       bytes.Buffer
	exitCode     int

	engine     session.Engine
	state      session.State
	hasSession bool
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a workspace with a valid configuration$`, state.aWorkspaceWithValidConfig)
	ctx.Step(`^a workspace with a bank entry whose correct index is out of range$`, state.aWorkspaceWithBrokenBank)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)

	ctx.Step(`^a flat quiz of (\d+) questions drawn from a bank of (\d+) questions$`, state.aFlatQuiz)
	ctx.Step(`^a stratified quiz needing (\d+) categories drawn from a bank with (\d+) categories$`, state.aStratifiedQuiz)
	ctx.Step(`^the player starts the quiz$`, state.thePlayerStartsTheQuiz)
	ctx.Step(`^the player answers every question correctly$`, state.thePlayerAnswersCorrectly)
	ctx.Step(`^the player answers every question incorrectly$`, state.thePlayerAnswersIncorrectly)
	ctx.Step(`^the player restarts$`, state.thePlayerRestarts)
	ctx.Step(`^the session is in the "([^"]+)" phase$`, state.theSessionIsInPhase)
	ctx.Step(`^the result shows (\d+) of (\d+) correct at (\d+)%$`, state.theResultShows)
	ctx.Step(`^the bank remains loaded$`, state.theBankRemainsLoaded)
}

// reset clears buffers and builds a fresh seeded engine before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workspaceDir = ""
	s.previousWD = ""
	s.hasSession = false
	s.engine = session.Engine{
		Rand:  rand.New(rand.NewSource(7)),
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// cleanup restores the working directory and removes scratch files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workspaceDir != "" {
		_ = os.RemoveAll(s.workspaceDir)
	}
}
