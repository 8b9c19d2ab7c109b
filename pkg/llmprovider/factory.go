package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"mrdom-sdr/config"
	"mrdom-sdr/pkg/bedrock"
	"mrdom-sdr/pkg/log"
	"mrdom-sdr/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warn(ctx, "llmprovider.InitializeProviders", "error", errMsg)
			continue
		}
		if cfg.CircuitBreaker.Enabled {
			provider = NewCircuitBreakerProvider(provider, cfg.CircuitBreaker, l)
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: %d provider(s) failed to initialize, continuing with %d",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case config.ProviderBedrock:
		client, err := bedrock.New(ctx, bedrock.Config{
			Region:          cfg.Region,
			AccessKeyID:     cfg.APIKey,
			SecretAccessKey: cfg.SecretKey,
			Model:           cfg.Model,
			MaxTokens:       cfg.MaxTokens,
			Temperature:     cfg.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bedrock client: %w", err)
		}
		return NewBedrockAdapter(client), nil

	case config.ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		client, err := openai.New(openai.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

// NewManagerConfig converts the LLM section of the service config.
// An empty or "0" max_total_timeout disables the global timeout.
func NewManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	mc := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}

	if cfg.RetryDelay != "" {
		d, err := time.ParseDuration(cfg.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid retry_delay %q: %w", cfg.RetryDelay, err)
		}
		mc.RetryDelay = d
	}

	if cfg.MaxTotalTimeout != "" && cfg.MaxTotalTimeout != "0" {
		d, err := time.ParseDuration(cfg.MaxTotalTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid max_total_timeout %q: %w", cfg.MaxTotalTimeout, err)
		}
		mc.MaxTotalTimeout = d
	}

	return mc, nil
}

// NewManagerFromConfig validates the LLM section, initializes the configured providers
// and wraps them in a Manager.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	if cfg == nil || len(cfg.EnabledProviderNames()) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if err := config.ValidateLLMConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	mc, err := NewManagerConfig(cfg)
	if err != nil {
		return nil, err
	}

	return NewManager(providers, mc, l), nil
}
