package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"quizdrill/internal/bank"
	"quizdrill/internal/config"
	"quizdrill/internal/report"
	"quizdrill/internal/ui/play"
)

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", ".quizdrill.yml", "Path to config file")
		locale := flags.String("locale", "", "Bank locale (default: config default_locale)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: config ui.mode)")
		noColor := flags.Bool("no-color", false, "Disable color output")
		reportPath := flags.String("report", "", "Write an HTML results report to this path")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		baseDir, err := configDir(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve config path: %v\n", err)
			return ExitError
		}

		startLocale := *locale
		if startLocale == "" {
			startLocale = cfg.DefaultLocale
		}
		if _, err := cfg.Source(baseDir, startLocale); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}

		loader := bankLoader(cfg, baseDir)

		mode := *uiMode
		if mode == "" {
			mode = cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		if !decision.useLive {
			return runPlainSession(plainInput, stdout, stderr, cfg.SessionConfig(), loader, startLocale, *reportPath)
		}

		model := play.NewModel(cfg.SessionConfig(), cfg.Locales(), startLocale, loader, play.Options{
			NoColor:    *noColor || cfg.UI.NoColor,
			ReportPath: *reportPath,
			Writer:     report.WriteHTML,
		})
		program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			fmt.Fprintf(stderr, "UI failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// bankLoader builds the locale-keyed loader used by both UI modes.
func bankLoader(cfg config.Config, baseDir string) play.Loader {
	return func(ctx context.Context, locale string) (bank.Bank, error) {
		source, err := cfg.Source(baseDir, locale)
		if err != nil {
			return bank.Bank{}, err
		}
		return bank.Load(ctx, source)
	}
}

// configDir returns the absolute directory holding the config file.
func configDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Dir(abs), nil
}
