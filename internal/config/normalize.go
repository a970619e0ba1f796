package config

// Default thresholds and sample sizes applied by Normalize.
const (
	DefaultQuestions      = 10
	DefaultPerCategory    = 2
	DefaultMinCategories  = 5
	DefaultMinPerCategory = 2
)

// Normalize fills defaults so Validate and the rest of the program see a
// fully populated config.
func Normalize(cfg *Config) {
	if cfg.DefaultLocale == "" && len(cfg.Banks) == 1 {
		cfg.DefaultLocale = cfg.Banks[0].Locale
	}
	if cfg.Quiz.Mode == "" {
		cfg.Quiz.Mode = "flat"
	}
	if cfg.Quiz.Questions == 0 {
		cfg.Quiz.Questions = DefaultQuestions
	}
	if cfg.Quiz.PerCategory == 0 {
		cfg.Quiz.PerCategory = DefaultPerCategory
	}
	if cfg.Quiz.MinCategories == 0 {
		cfg.Quiz.MinCategories = DefaultMinCategories
	}
	if cfg.Quiz.MinPerCategory == 0 {
		cfg.Quiz.MinPerCategory = DefaultMinPerCategory
	}
	if cfg.Quiz.ShuffleAnswers == nil {
		enabled := true
		cfg.Quiz.ShuffleAnswers = &enabled
	}
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
}
