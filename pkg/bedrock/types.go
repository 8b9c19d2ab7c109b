package bedrock

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

var (
	// ErrThrottled is returned when Bedrock rejects the call for rate reasons
	ErrThrottled = errors.New("bedrock: throttled")

	// ErrAccessDenied is returned for invalid or unauthorized credentials
	ErrAccessDenied = errors.New("bedrock: access denied")

	// ErrModelUnavailable is returned when the model or service is not ready
	ErrModelUnavailable = errors.New("bedrock: model unavailable")

	// ErrEmptyResponse is returned when the model produced no text
	ErrEmptyResponse = errors.New("bedrock: empty response")
)

// Config holds Bedrock client configuration
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Model           string
	MaxTokens       int
	Temperature     float64
}

// Validate fills defaults. It never fails for a missing key pair: the
// default credential chain is tried instead.
func (c *Config) Validate() error {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Temperature < 0 {
		return errors.New("bedrock: temperature must not be negative")
	}
	return nil
}

// converseAPI is the subset of the bedrockruntime client used here.
type converseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// bedrockImpl is the internal implementation of IBedrock
type bedrockImpl struct {
	api         converseAPI
	model       string
	maxTokens   int
	temperature float64
}

// Request is a single-turn or multi-turn Converse request.
// Zero MaxTokens / Temperature fall back to the client defaults.
type Request struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message is one conversation turn
type Message struct {
	Role string
	Text string
}

// Response is the text produced by the model
type Response struct {
	Text       string
	StopReason string
	Usage      Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
