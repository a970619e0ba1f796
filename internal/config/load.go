package config

import (
	"fmt"
	"os"
	"path/filepath"

	"quizdrill/internal/bank"
	"quizdrill/internal/session"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg, filepath.Dir(path)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Source resolves the bank source for a locale, relative to the config dir.
func (c Config) Source(baseDir, locale string) (bank.Source, error) {
	for _, bankCfg := range c.Banks {
		if bankCfg.Locale != locale {
			continue
		}
		return bank.Source{
			Locale:  bankCfg.Locale,
			Path:    ResolveBankPath(baseDir, bankCfg.Path),
			URL:     bankCfg.URL,
			Choices: bankCfg.Choices,
		}, nil
	}
	return bank.Source{}, fmt.Errorf("no bank configured for locale %q", locale)
}

// Locales lists the configured bank locales in config order.
func (c Config) Locales() []string {
	locales := make([]string, 0, len(c.Banks))
	for _, bankCfg := range c.Banks {
		locales = append(locales, bankCfg.Locale)
	}
	return locales
}

// SessionConfig converts the quiz section into the engine's policy type.
func (c Config) SessionConfig() session.Config {
	mode := session.ModeFlat
	if c.Quiz.Mode == "stratified" {
		mode = session.ModeStratified
	}
	shuffle := true
	if c.Quiz.ShuffleAnswers != nil {
		shuffle = *c.Quiz.ShuffleAnswers
	}
	return session.Config{
		Mode:           mode,
		Questions:      c.Quiz.Questions,
		PerCategory:    c.Quiz.PerCategory,
		MinCategories:  c.Quiz.MinCategories,
		MinPerCategory: c.Quiz.MinPerCategory,
		ShuffleAnswers: shuffle,
	}
}
