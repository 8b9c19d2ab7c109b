package openai

const (
	// DefaultModel is the default OpenAI model
	DefaultModel = "gpt-3.5-turbo"

	// DefaultMaxTokens caps the completion length
	DefaultMaxTokens = 1000
)
