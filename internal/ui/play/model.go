package play

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"quizdrill/internal/bank"
	"quizdrill/internal/session"
)

// Loader fetches the question bank for a locale.
type Loader func(ctx context.Context, locale string) (bank.Bank, error)

// Options configures the play UI model.
type Options struct {
	NoColor    bool
	ReportPath string
	Writer     ReportWriter
}

// ReportWriter persists a finished session; wired from the report package.
type ReportWriter func(ctx context.Context, path string, state session.State) error

// Model drives one quiz session in the terminal.
type Model struct {
	engine  session.Engine
	state   session.State
	loader  Loader
	locales []string
	locale  int

	reportPath    string
	writeReport   ReportWriter
	reportWritten bool
	reportError   string

	noColor bool
	width   int
	height  int

	initialSeq int
}

// loadedMsg delivers a finished bank load with its ticket.
type loadedMsg struct {
	seq    int
	bank   bank.Bank
	err    error
	locale string
}

// NewModel constructs the play UI for a set of configured locales.
func NewModel(policy session.Config, locales []string, startLocale string, loader Loader, opts Options) Model {
	locale := 0
	for i, candidate := range locales {
		if candidate == startLocale {
			locale = i
		}
	}
	// The first load ticket is issued here because Init cannot return an
	// updated model, only a command.
	state, seq := session.BeginLoad(session.New(policy))
	return Model{
		engine:      session.NewEngine(),
		state:       state,
		loader:      loader,
		locales:     locales,
		locale:      locale,
		reportPath:  opts.ReportPath,
		writeReport: opts.Writer,
		noColor:     opts.NoColor,
		initialSeq:  seq,
	}
}

// Init kicks off the initial bank load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd(m.initialSeq, m.locales[m.locale])
}

// loadCmd fetches a locale's bank in the background.
func (m Model) loadCmd(seq int, locale string) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		loaded, err := loader(context.Background(), locale)
		return loadedMsg{seq: seq, bank: loaded, err: err, locale: locale}
	}
}

// beginLoad issues a fresh load ticket for the current locale.
func (m Model) beginLoad(state session.State) (session.State, tea.Cmd) {
	state, seq := session.BeginLoad(state)
	return state, m.loadCmd(seq, m.locales[m.locale])
}

// Update consumes key presses and load completions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case loadedMsg:
		if typed.err != nil {
			m.state = m.engine.Reduce(m.state, session.LoadFailed(typed.seq, typed.err))
		} else {
			m.state = m.engine.Reduce(m.state, session.BankLoaded(typed.seq, typed.bank))
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey dispatches a key press for the current phase.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := key.String()
	if pressed == "ctrl+c" || pressed == "q" {
		return m, tea.Quit
	}
	switch m.state.Phase {
	case session.PhaseStart:
		return m.handleStartKey(pressed)
	case session.PhasePlaying:
		return m.handlePlayingKey(pressed)
	case session.PhaseResults:
		return m.handleResultsKey(pressed)
	case session.PhaseError:
		return m.handleErrorKey(pressed)
	}
	return m, nil
}

func (m Model) handleStartKey(pressed string) (tea.Model, tea.Cmd) {
	switch pressed {
	case "enter", "s":
		m.state = m.engine.Reduce(m.state, session.Start())
		return m, nil
	case "l":
		if len(m.locales) < 2 {
			return m, nil
		}
		m.locale = (m.locale + 1) % len(m.locales)
		var cmd tea.Cmd
		m.state, cmd = m.beginLoad(m.state)
		return m, cmd
	}
	return m, nil
}

func (m Model) handlePlayingKey(pressed string) (tea.Model, tea.Cmd) {
	if index, ok := answerKey(pressed); ok {
		if !m.state.IsAnswered() {
			m.state = m.engine.Reduce(m.state, session.Answer(index))
		}
		return m, nil
	}
	switch pressed {
	case "enter", "right":
		m.state = m.engine.Reduce(m.state, session.Next())
		return m, nil
	case "left":
		m.state = m.engine.Reduce(m.state, session.Previous())
		return m, nil
	}
	return m, nil
}

func (m Model) handleResultsKey(pressed string) (tea.Model, tea.Cmd) {
	switch pressed {
	case "r":
		m.reportWritten = false
		m.reportError = ""
		m.state = m.engine.Reduce(m.state, session.Restart())
		return m, nil
	case "w":
		if m.reportPath == "" || m.writeReport == nil {
			return m, nil
		}
		if err := m.writeReport(context.Background(), m.reportPath, m.state); err != nil {
			m.reportError = err.Error()
		} else {
			m.reportWritten = true
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleErrorKey(pressed string) (tea.Model, tea.Cmd) {
	if pressed != "r" {
		return m, nil
	}
	m.state = m.engine.Reduce(m.state, session.Retry())
	var cmd tea.Cmd
	m.state, cmd = m.beginLoad(m.state)
	return m, cmd
}

// answerKey maps digit keys onto option indexes.
func answerKey(pressed string) (int, bool) {
	switch pressed {
	case "1", "2", "3", "4":
		return int(pressed[0] - '1'), true
	}
	return 0, false
}

// View renders the screen for the current phase.
func (m Model) View() string {
	switch m.state.Phase {
	case session.PhaseStart:
		return m.renderStart()
	case session.PhasePlaying:
		return m.renderQuestion()
	case session.PhaseResults:
		return m.renderResults()
	case session.PhaseError:
		return m.renderError()
	}
	return ""
}
