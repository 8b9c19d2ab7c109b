package bedrock

const (
	// DefaultRegion is used when no region is configured
	DefaultRegion = "us-east-1"

	// DefaultModel is the default Bedrock model id
	DefaultModel = "amazon.nova-lite-v1:0"

	// DefaultMaxTokens caps the completion length
	DefaultMaxTokens = 1000

	// DefaultTemperature is the default sampling temperature
	DefaultTemperature = 0.7

	RoleUser      = "user"
	RoleAssistant = "assistant"
)
