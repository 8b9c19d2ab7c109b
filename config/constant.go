package config

// Provider names understood by pkg/llmprovider.
const (
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
)
