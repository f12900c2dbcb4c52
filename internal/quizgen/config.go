package quizgen

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Batch
	// responses carry five questions per topic, so this is sized well
	// above a single-question budget.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
