package bedrock

import "context"

// IBedrock defines the interface for the AWS Bedrock Converse client.
// Implementations are safe for concurrent use.
type IBedrock interface {
	// GenerateContent sends a single Converse request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model id being used
	Model() string
}

// New creates a Bedrock client with the given configuration.
// Static credentials are used when present, otherwise the default AWS chain.
func New(ctx context.Context, cfg Config) (IBedrock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	api, err := newRuntimeClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newBedrockImpl(cfg, api), nil
}
