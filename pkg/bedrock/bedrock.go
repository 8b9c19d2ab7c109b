package bedrock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
	"go.opentelemetry.io/otel/trace"

	"mrdom-sdr/pkg/tracer"
)

func newRuntimeClient(ctx context.Context, cfg Config) (*bedrockruntime.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("bedrock: load aws config: %w", err)
	}
	return bedrockruntime.NewFromConfig(awsCfg), nil
}

// newBedrockImpl creates a new Bedrock implementation
func newBedrockImpl(cfg Config, api converseAPI) *bedrockImpl {
	return &bedrockImpl{
		api:         api,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// GenerateContent sends a Converse request to Bedrock
func (b *bedrockImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, errors.New("bedrock: request has no messages")
	}

	ctx, span := tracer.StartSpan(ctx, "bedrock.converse",
		trace.WithAttributes(tracer.StringAttr("llm.model", b.model)),
	)
	defer span.End()

	out, err := b.api.Converse(ctx, b.transformRequest(req))
	if err != nil {
		tracer.RecordError(span, err)
		return nil, mapError(err)
	}

	resp, err := transformResponse(out)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		tracer.IntAttr("llm.input_tokens", resp.Usage.InputTokens),
		tracer.IntAttr("llm.output_tokens", resp.Usage.OutputTokens),
	)
	tracer.SetOK(span)
	return resp, nil
}

// Model returns the model being used
func (b *bedrockImpl) Model() string {
	return b.model
}

func (b *bedrockImpl) transformRequest(req *Request) *bedrockruntime.ConverseInput {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = b.maxTokens
	}
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = b.temperature
	}

	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(b.model),
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(int32(maxTokens)),
			Temperature: aws.Float32(float32(temperature)),
		},
	}

	if req.System != "" {
		input.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: req.System},
		}
	}

	for _, m := range req.Messages {
		role := types.ConversationRoleUser
		if m.Role == RoleAssistant {
			role = types.ConversationRoleAssistant
		}
		input.Messages = append(input.Messages, types.Message{
			Role: role,
			Content: []types.ContentBlock{
				&types.ContentBlockMemberText{Value: m.Text},
			},
		})
	}

	return input
}

func transformResponse(out *bedrockruntime.ConverseOutput) (*Response, error) {
	resp := &Response{StopReason: string(out.StopReason)}

	if out.Usage != nil {
		resp.Usage = Usage{
			InputTokens:  int(aws.ToInt32(out.Usage.InputTokens)),
			OutputTokens: int(aws.ToInt32(out.Usage.OutputTokens)),
			TotalTokens:  int(aws.ToInt32(out.Usage.TotalTokens)),
		}
		if resp.Usage.TotalTokens == 0 {
			resp.Usage.TotalTokens = resp.Usage.InputTokens + resp.Usage.OutputTokens
		}
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, ErrEmptyResponse
	}

	var sb strings.Builder
	for _, block := range msg.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			sb.WriteString(text.Value)
		}
	}
	if sb.Len() == 0 {
		return nil, ErrEmptyResponse
	}
	resp.Text = sb.String()

	return resp, nil
}

// mapError translates Bedrock API error codes into package sentinels.
func mapError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "TooManyRequestsException", "ServiceQuotaExceededException":
			return fmt.Errorf("%w: %s", ErrThrottled, apiErr.ErrorMessage())
		case "AccessDeniedException", "UnrecognizedClientException", "ExpiredTokenException":
			return fmt.Errorf("%w: %s", ErrAccessDenied, apiErr.ErrorMessage())
		case "ModelNotReadyException", "ServiceUnavailableException", "ResourceNotFoundException":
			return fmt.Errorf("%w: %s", ErrModelUnavailable, apiErr.ErrorMessage())
		}
	}
	return fmt.Errorf("bedrock: converse failed: %w", err)
}
