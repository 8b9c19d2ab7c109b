package openai

import (
	"errors"
	"net/http"

	"github.com/openai/openai-go/v3"
)

var (
	// ErrRateLimited is returned on HTTP 429
	ErrRateLimited = errors.New("openai: rate limited")

	// ErrUnauthorized is returned on HTTP 401/403
	ErrUnauthorized = errors.New("openai: unauthorized")

	// ErrEmptyResponse is returned when the model produced no text
	ErrEmptyResponse = errors.New("openai: empty response")
)

// Config holds OpenAI client configuration
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	return nil
}

// openAIImpl is the internal implementation of IOpenAI
type openAIImpl struct {
	client      openai.Client
	model       string
	maxTokens   int
	temperature float64
}

// Request is a single-turn generation request
type Request struct {
	Instructions string
	Input        string
	MaxTokens    int
	Temperature  float64
}

// Response is the text produced by the model
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
