package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"quizdrill/internal/bank"
	"quizdrill/internal/config"
	"quizdrill/internal/quiz"
	"quizdrill/internal/session"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", ".quizdrill.yml", "Path to config file")
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

		locales := flags.Args()
		if len(locales) == 0 {
			locales = cfg.Locales()
		}

		failed := false
		for _, locale := range locales {
			if err := validateBank(cfg, baseDir, locale); err != nil {
				fmt.Fprintf(stderr, "Bank %s: %v\n", locale, err)
				failed = true
				continue
			}
			fmt.Fprintf(stdout, "Bank %s: OK\n", locale)
		}
		if failed {
			return ExitError
		}
		return ExitOK
	}
}

// validateBank loads one bank and checks it against the selection policy.
func validateBank(cfg config.Config, baseDir, locale string) error {
	source, err := cfg.Source(baseDir, locale)
	if err != nil {
		return err
	}
	loaded, err := bank.Load(context.Background(), source)
	if err != nil {
		return err
	}
	policy := cfg.SessionConfig()
	if policy.Mode == session.ModeStratified {
		if err := quiz.CheckCategories(loaded.Questions, policy.MinCategories, policy.MinPerCategory); err != nil {
			return err
		}
		return nil
	}
	if len(loaded.Questions) < policy.Questions {
		return &quiz.InsufficientDataError{
			Reason: fmt.Sprintf("bank has %d questions, need %d", len(loaded.Questions), policy.Questions),
		}
	}
	return nil
}
