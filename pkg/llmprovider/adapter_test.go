package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrdom-sdr/pkg/bedrock"
	"mrdom-sdr/pkg/openai"
)

type mockBedrock struct {
	lastReq *bedrock.Request
	resp    *bedrock.Response
	err     error
}

func (m *mockBedrock) GenerateContent(ctx context.Context, req *bedrock.Request) (*bedrock.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

func (m *mockBedrock) Model() string { return "amazon.nova-lite-v1:0" }

type mockOpenAI struct {
	lastReq *openai.Request
	resp    *openai.Response
	err     error
}

func (m *mockOpenAI) GenerateContent(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

func (m *mockOpenAI) Model() string { return "gpt-3.5-turbo" }

func TestBedrockAdapter_GenerateContent(t *testing.T) {
	client := &mockBedrock{resp: &bedrock.Response{
		Text:  "Qual o tamanho da sua equipe?",
		Usage: bedrock.Usage{InputTokens: 10, OutputTokens: 7, TotalTokens: 17},
	}}
	adapter := NewBedrockAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), NewTextRequest("BANT", "Quanto custa?"))
	require.NoError(t, err)

	assert.Equal(t, "Qual o tamanho da sua equipe?", resp.Text())
	assert.Equal(t, "bedrock", resp.ProviderName)
	assert.Equal(t, "amazon.nova-lite-v1:0", resp.ModelName)
	assert.Equal(t, 17, resp.Usage.TotalTokens)

	require.NotNil(t, client.lastReq)
	assert.Equal(t, "BANT", client.lastReq.System)
	require.Len(t, client.lastReq.Messages, 1)
	assert.Equal(t, bedrock.RoleUser, client.lastReq.Messages[0].Role)
	assert.Equal(t, "Quanto custa?", client.lastReq.Messages[0].Text)

	assert.Equal(t, "bedrock", adapter.Name())
	assert.Equal(t, "amazon.nova-lite-v1:0", adapter.Model())
}

func TestBedrockAdapter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"throttled", fmt.Errorf("%w: slow", bedrock.ErrThrottled), ErrProviderRateLimited},
		{"access denied", fmt.Errorf("%w: nope", bedrock.ErrAccessDenied), ErrProviderAuth},
		{"deadline", context.DeadlineExceeded, ErrProviderTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewBedrockAdapter(&mockBedrock{err: tt.err})
			_, err := adapter.GenerateContent(context.Background(), NewTextRequest("", "oi"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var perr *ProviderError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "bedrock", perr.Provider)
		})
	}

	t.Run("empty request", func(t *testing.T) {
		client := &mockBedrock{}
		_, err := NewBedrockAdapter(client).GenerateContent(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Nil(t, client.lastReq)
	})
}

func TestOpenAIAdapter_GenerateContent(t *testing.T) {
	client := &mockOpenAI{resp: &openai.Response{
		Text:  "Vamos marcar!",
		Usage: openai.Usage{InputTokens: 4, OutputTokens: 3, TotalTokens: 7},
	}}
	adapter := NewOpenAIAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), NewTextRequest("SDR", "Quero uma demo"))
	require.NoError(t, err)

	assert.Equal(t, "Vamos marcar!", resp.Text())
	assert.Equal(t, "openai", resp.ProviderName)
	assert.Equal(t, "SDR", client.lastReq.Instructions)
	assert.Equal(t, "Quero uma demo", client.lastReq.Input)
}

func TestOpenAIAdapter_FlattensHistory(t *testing.T) {
	client := &mockOpenAI{resp: &openai.Response{Text: "ok"}}
	adapter := NewOpenAIAdapter(client)

	_, err := adapter.GenerateContent(context.Background(), &Request{
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "oi"}}},
			{Role: RoleAssistant, Parts: []Part{{Text: "olá"}}},
			{Role: RoleUser, Parts: []Part{{Text: "preço?"}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "user: oi\nassistant: olá\nuser: preço?", client.lastReq.Input)
}

func TestOpenAIAdapter_Errors(t *testing.T) {
	adapter := NewOpenAIAdapter(&mockOpenAI{err: fmt.Errorf("%w: bad key", openai.ErrUnauthorized)})
	_, err := adapter.GenerateContent(context.Background(), NewTextRequest("", "oi"))
	assert.ErrorIs(t, err, ErrProviderAuth)

	adapter = NewOpenAIAdapter(&mockOpenAI{err: fmt.Errorf("%w: slow", openai.ErrRateLimited)})
	_, err = adapter.GenerateContent(context.Background(), NewTextRequest("", "oi"))
	assert.ErrorIs(t, err, ErrProviderRateLimited)
}
