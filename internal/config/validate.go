package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	locales := map[string]struct{}{}
	if len(cfg.Banks) == 0 {
		add("banks", "at least one bank is required")
	}
	for i, bankCfg := range cfg.Banks {
		fieldPrefix := fmt.Sprintf("banks[%d]", i)
		locale := strings.TrimSpace(bankCfg.Locale)
		if locale == "" {
			add(fieldPrefix+".locale", "is required")
		} else if _, exists := locales[locale]; exists {
			add("banks.locale", fmt.Sprintf("duplicate locale %q", locale))
		} else {
			locales[locale] = struct{}{}
		}

		hasPath := strings.TrimSpace(bankCfg.Path) != ""
		hasURL := strings.TrimSpace(bankCfg.URL) != ""
		switch {
		case !hasPath && !hasURL:
			add(fieldPrefix, "either path or url is required")
		case hasPath && hasURL:
			add(fieldPrefix, "path and url are mutually exclusive")
		case hasURL && !strings.HasPrefix(bankCfg.URL, "http://") && !strings.HasPrefix(bankCfg.URL, "https://"):
			add(fieldPrefix+".url", fmt.Sprintf("unsupported scheme in %q", bankCfg.URL))
		}

		if bankCfg.Choices != 0 && bankCfg.Choices != 2 && bankCfg.Choices != 4 {
			add(fieldPrefix+".choices", fmt.Sprintf("must be 2 or 4, got %d", bankCfg.Choices))
		}
	}

	defaultLocale := strings.TrimSpace(cfg.DefaultLocale)
	if defaultLocale == "" {
		add("default_locale", "is required")
	} else if _, ok := locales[defaultLocale]; !ok && len(cfg.Banks) > 0 {
		add("default_locale", fmt.Sprintf("unknown locale %q", defaultLocale))
	}

	switch cfg.Quiz.Mode {
	case "flat", "stratified":
	default:
		add("quiz.mode", fmt.Sprintf("unsupported mode %q (expected flat|stratified)", cfg.Quiz.Mode))
	}
	if cfg.Quiz.Questions < 1 {
		add("quiz.questions", "must be >= 1")
	}
	if cfg.Quiz.PerCategory < 1 {
		add("quiz.per_category", "must be >= 1")
	}
	if cfg.Quiz.MinCategories < 1 {
		add("quiz.min_categories", "must be >= 1")
	}
	if cfg.Quiz.MinPerCategory < 1 {
		add("quiz.min_per_category", "must be >= 1")
	}
	if cfg.Quiz.Mode == "stratified" && cfg.Quiz.MinPerCategory < cfg.Quiz.PerCategory {
		add("quiz.min_per_category", fmt.Sprintf("must be >= per_category (%d) for stratified runs", cfg.Quiz.PerCategory))
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		add("ui.mode", fmt.Sprintf("unsupported mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// ResolveBankPath makes a bank path absolute relative to the config file.
func ResolveBankPath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		baseDir = "."
	}
	return filepath.Join(baseDir, path)
}
