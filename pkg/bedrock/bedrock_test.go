package bedrock

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockConverseClient struct {
	lastInput *bedrockruntime.ConverseInput
	output    *bedrockruntime.ConverseOutput
	err       error
}

func (m *mockConverseClient) Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	m.lastInput = params
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

type mockAPIError struct {
	code    string
	message string
}

func (e *mockAPIError) Error() string                 { return e.message }
func (e *mockAPIError) ErrorCode() string             { return e.code }
func (e *mockAPIError) ErrorMessage() string          { return e.message }
func (e *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

func textOutput(text string) *bedrockruntime.ConverseOutput {
	return &bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{
			Value: types.Message{
				Role:    types.ConversationRoleAssistant,
				Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: text}},
			},
		},
		StopReason: types.StopReasonEndTurn,
		Usage: &types.TokenUsage{
			InputTokens:  aws.Int32(12),
			OutputTokens: aws.Int32(5),
		},
	}
}

func newTestClient(t *testing.T, api converseAPI) *bedrockImpl {
	t.Helper()
	cfg := Config{}
	require.NoError(t, cfg.Validate())
	cfg.Temperature = DefaultTemperature
	return newBedrockImpl(cfg, api)
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultRegion, cfg.Region)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)

	bad := Config{Temperature: -1}
	assert.Error(t, bad.Validate())
}

func TestGenerateContent_Success(t *testing.T) {
	mock := &mockConverseClient{output: textOutput("Olá! Qual o seu orçamento?")}
	client := newTestClient(t, mock)

	resp, err := client.GenerateContent(context.Background(), &Request{
		System:   "Você é um SDR.",
		Messages: []Message{{Role: RoleUser, Text: "Quanto custa?"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Olá! Qual o seu orçamento?", resp.Text)
	assert.Equal(t, "end_turn", resp.StopReason)
	assert.Equal(t, 12, resp.Usage.InputTokens)
	assert.Equal(t, 5, resp.Usage.OutputTokens)
	assert.Equal(t, 17, resp.Usage.TotalTokens)

	in := mock.lastInput
	require.NotNil(t, in)
	assert.Equal(t, DefaultModel, aws.ToString(in.ModelId))
	assert.Equal(t, int32(DefaultMaxTokens), aws.ToInt32(in.InferenceConfig.MaxTokens))
	assert.InDelta(t, DefaultTemperature, aws.ToFloat32(in.InferenceConfig.Temperature), 0.0001)
	require.Len(t, in.System, 1)
	sys, ok := in.System[0].(*types.SystemContentBlockMemberText)
	require.True(t, ok)
	assert.Equal(t, "Você é um SDR.", sys.Value)
	require.Len(t, in.Messages, 1)
	assert.Equal(t, types.ConversationRoleUser, in.Messages[0].Role)
}

func TestGenerateContent_RequestOverrides(t *testing.T) {
	mock := &mockConverseClient{output: textOutput("ok")}
	client := newTestClient(t, mock)

	_, err := client.GenerateContent(context.Background(), &Request{
		Messages:    []Message{{Role: RoleUser, Text: "oi"}},
		MaxTokens:   50,
		Temperature: 0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(50), aws.ToInt32(mock.lastInput.InferenceConfig.MaxTokens))
	assert.InDelta(t, 0.2, aws.ToFloat32(mock.lastInput.InferenceConfig.Temperature), 0.0001)
	assert.Nil(t, mock.lastInput.System)
}

func TestGenerateContent_NoMessages(t *testing.T) {
	mock := &mockConverseClient{output: textOutput("ok")}
	client := newTestClient(t, mock)

	_, err := client.GenerateContent(context.Background(), &Request{})
	assert.Error(t, err)
	assert.Nil(t, mock.lastInput)
}

func TestGenerateContent_EmptyOutput(t *testing.T) {
	mock := &mockConverseClient{output: &bedrockruntime.ConverseOutput{}}
	client := newTestClient(t, mock)

	_, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: RoleUser, Text: "oi"}},
	})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"throttling", &mockAPIError{code: "ThrottlingException", message: "slow down"}, ErrThrottled},
		{"access denied", &mockAPIError{code: "AccessDeniedException", message: "denied"}, ErrAccessDenied},
		{"bad token", &mockAPIError{code: "UnrecognizedClientException", message: "bad"}, ErrAccessDenied},
		{"model not ready", &mockAPIError{code: "ModelNotReadyException", message: "warming"}, ErrModelUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, &mockConverseClient{err: tt.err})
			_, err := client.GenerateContent(context.Background(), &Request{
				Messages: []Message{{Role: RoleUser, Text: "oi"}},
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown error is wrapped", func(t *testing.T) {
		base := errors.New("connection reset")
		client := newTestClient(t, &mockConverseClient{err: base})
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: RoleUser, Text: "oi"}},
		})
		assert.ErrorIs(t, err, base)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
