package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"quizdrill/internal/bank"
	"quizdrill/internal/config"
)

// runBanks builds the handler for the banks command.
func runBanks(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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

		failed := false
		for _, locale := range cfg.Locales() {
			source, err := cfg.Source(baseDir, locale)
			if err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", locale, err)
				failed = true
				continue
			}
			loaded, err := bank.Load(context.Background(), source)
			if err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", locale, err)
				failed = true
				continue
			}
			fmt.Fprintf(stdout, "%-8s %3d questions  %d categories  %d choices\n",
				locale, len(loaded.Questions), countCategories(loaded), loaded.Choices)
		}
		if failed {
			return ExitError
		}
		return ExitOK
	}
}

// countCategories counts distinct non-empty categories in a bank.
func countCategories(loaded bank.Bank) int {
	categories := map[string]struct{}{}
	for _, question := range loaded.Questions {
		if question.Category != "" {
			categories[question.Category] = struct{}{}
		}
	}
	return len(categories)
}
