package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mrdom-sdr/config"
	"mrdom-sdr/pkg/bedrock"
	"mrdom-sdr/pkg/openai"
)

// BedrockAdapter adapts pkg/bedrock to llmprovider.Provider interface
type BedrockAdapter struct {
	client bedrock.IBedrock
}

// NewBedrockAdapter creates a new Bedrock adapter
func NewBedrockAdapter(client bedrock.IBedrock) *BedrockAdapter {
	return &BedrockAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *BedrockAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	bedrockReq := &bedrock.Request{
		System:      req.SystemInstruction.Text(),
		Messages:    convertToBedrockMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, bedrockReq)
	if err != nil {
		return nil, &ProviderError{Provider: config.ProviderBedrock, Err: mapBedrockError(err)}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text}}},
		ProviderName: config.ProviderBedrock,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *BedrockAdapter) Name() string {
	return config.ProviderBedrock
}

// Model returns model name
func (a *BedrockAdapter) Model() string {
	return a.client.Model()
}

func convertToBedrockMessages(msgs []Message) []bedrock.Message {
	out := make([]bedrock.Message, 0, len(msgs))
	for _, m := range msgs {
		role := bedrock.RoleUser
		if m.Role == RoleAssistant {
			role = bedrock.RoleAssistant
		}
		out = append(out, bedrock.Message{Role: role, Text: m.Text()})
	}
	return out
}

func mapBedrockError(err error) error {
	switch {
	case errors.Is(err, bedrock.ErrThrottled):
		return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	case errors.Is(err, bedrock.ErrAccessDenied):
		return fmt.Errorf("%w: %v", ErrProviderAuth, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return err
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface.
// The Responses API takes a single input string, so multi-turn history is flattened.
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		Instructions: req.SystemInstruction.Text(),
		Input:        flattenMessages(req.Messages),
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: config.ProviderOpenAI, Err: mapOpenAIError(err)}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text}}},
		ProviderName: config.ProviderOpenAI,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return config.ProviderOpenAI
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func flattenMessages(msgs []Message) string {
	if len(msgs) == 1 {
		return msgs[0].Text()
	}
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Text()))
	}
	return strings.Join(lines, "\n")
}

func mapOpenAIError(err error) error {
	switch {
	case errors.Is(err, openai.ErrRateLimited):
		return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	case errors.Is(err, openai.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrProviderAuth, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return err
}
