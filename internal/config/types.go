package config

// Config is the application configuration schema (.quizdrill.yml).
type Config struct {
	Version       int          `yaml:"version"`
	Banks         []BankConfig `yaml:"banks"`
	DefaultLocale string       `yaml:"default_locale"`
	Quiz          QuizConfig   `yaml:"quiz"`
	UI            UIConfig     `yaml:"ui"`
}

// BankConfig points at one locale's question bank.
type BankConfig struct {
	Locale  string `yaml:"locale"`
	Path    string `yaml:"path"`
	URL     string `yaml:"url"`
	Choices int    `yaml:"choices"`
}

// QuizConfig holds the selection policy for quiz runs.
type QuizConfig struct {
	Mode           string `yaml:"mode"`
	Questions      int    `yaml:"questions"`
	PerCategory    int    `yaml:"per_category"`
	MinCategories  int    `yaml:"min_categories"`
	MinPerCategory int    `yaml:"min_per_category"`
	ShuffleAnswers *bool  `yaml:"shuffle_answers"`
}

// UIConfig holds terminal UI defaults.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}
