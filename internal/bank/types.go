package bank

// Question is a single loaded question record.
type Question struct {
	ID           string   `json:"id" yaml:"id"`
	Prompt       string   `json:"question" yaml:"question"`
	Answers      []string `json:"answers" yaml:"answers"`
	CorrectIndex int      `json:"correctIndex" yaml:"correctIndex"`
	Explanation  string   `json:"explanation" yaml:"explanation"`
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// Bank is a fully validated question bank for one locale.
type Bank struct {
	Locale    string
	Choices   int
	Questions []Question
}

// Source identifies where a bank is fetched from and its answer convention.
type Source struct {
	Locale  string
	Path    string
	URL     string
	Choices int
}
