package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	App         AppConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Tracer     TracerConfig

	// Model backend
	AWS     AWSConfig
	Bedrock BedrockConfig
	OpenAI  OpenAIConfig
	LLM     LLMConfig

	// Integrations
	Chatwoot ChatwootConfig
	N8N      N8NConfig
	Webhook  WebhookConfig
	Ngrok    NgrokConfig
}

type EnvironmentConfig struct {
	Name string
}

type AppConfig struct {
	Name                string
	Version             string
	Debug               bool
	AgentOSEnabled      bool
	AutoResponseEnabled bool
	EscalationKeywords  []string
	CORSOrigins         []string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TracerConfig struct {
	Enabled  bool
	Exporter string // "stdout" or "noop"
}

type AWSConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// HasCredentials reports whether static AWS credentials are configured.
func (c AWSConfig) HasCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

type BedrockConfig struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig     `yaml:"providers"`
	FallbackEnabled bool                 `yaml:"fallback_enabled"`
	RetryAttempts   int                  `yaml:"retry_attempts"`
	RetryDelay      string               `yaml:"retry_delay"`
	MaxTotalTimeout string               `yaml:"max_total_timeout"` // empty or "0" disables the global timeout
	CircuitBreaker  CircuitBreakerConfig `yaml:"circuit_breaker"`
}

// ProviderConfig holds configuration for a single LLM provider.
// For bedrock, APIKey/SecretKey carry the AWS access key pair.
type ProviderConfig struct {
	Name        string  `yaml:"name"`
	Enabled     bool    `yaml:"enabled"`
	Priority    int     `yaml:"priority"`
	APIKey      string  `yaml:"api_key"`
	SecretKey   string  `yaml:"secret_key"`
	Region      string  `yaml:"region,omitempty"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"`
}

type CircuitBreakerConfig struct {
	Enabled     bool
	MaxFailures uint32
	Timeout     time.Duration
	Interval    time.Duration
}

type ChatwootConfig struct {
	BaseURL     string
	AccessToken string
	AccountID   string
	HMACSecret  string
}

type N8NConfig struct {
	BaseURL string
	APIKey  string
}

type WebhookConfig struct {
	AllowedIPs      []string
	RateLimitPerMin int
}

// NgrokConfig points at a local ngrok agent used in development to print the public webhook URLs.
type NgrokConfig struct {
	APIURL string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/mrdom/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/mrdom/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & application
	cfg.Environment.Name = viper.GetString("environment.name")
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		cfg.Environment.Name = env
	}
	cfg.App.Name = viper.GetString("app.name")
	cfg.App.Version = viper.GetString("app.version")
	cfg.App.Debug = viper.GetBool("app.debug")
	if debug := os.Getenv("DEBUG"); debug != "" {
		cfg.App.Debug = viper.GetBool("debug")
	}
	cfg.App.AgentOSEnabled = viper.GetBool("agentos.enabled")
	cfg.App.AutoResponseEnabled = viper.GetBool("auto_response.enabled")
	cfg.App.EscalationKeywords = splitList(viper.GetString("escalation_keywords"))
	cfg.App.CORSOrigins = splitList(viper.GetString("cors_origins"))

	// Server
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = strings.ToLower(level)
	}
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Logger.Encoding = strings.ToLower(format)
	}
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Tracer.Enabled = viper.GetBool("tracer.enabled")
	cfg.Tracer.Exporter = viper.GetString("tracer.exporter")

	// AWS Bedrock
	cfg.AWS.AccessKeyID = viper.GetString("aws.access_key_id")
	cfg.AWS.SecretAccessKey = viper.GetString("aws.secret_access_key")
	cfg.AWS.Region = viper.GetString("aws.default_region")
	cfg.Bedrock.Model = viper.GetString("bedrock.model")
	cfg.Bedrock.MaxTokens = viper.GetInt("agent.max_tokens")
	cfg.Bedrock.Temperature = viper.GetFloat64("agent.temperature")

	// OpenAI fallback
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.CircuitBreaker.Enabled = viper.GetBool("llm.circuit_breaker.enabled")
	cfg.LLM.CircuitBreaker.MaxFailures = viper.GetUint32("llm.circuit_breaker.max_failures")
	cfg.LLM.CircuitBreaker.Timeout = viper.GetDuration("llm.circuit_breaker.timeout")
	cfg.LLM.CircuitBreaker.Interval = viper.GetDuration("llm.circuit_breaker.interval")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:      getStringFromMap(providerMap, "name"),
						Enabled:   getBoolFromMap(providerMap, "enabled"),
						Priority:  getIntFromMap(providerMap, "priority"),
						APIKey:    expandEnvVar(getStringFromMap(providerMap, "api_key")),
						SecretKey: expandEnvVar(getStringFromMap(providerMap, "secret_key")),
						Region:    getStringFromMap(providerMap, "region"),
						BaseURL:   getStringFromMap(providerMap, "base_url"),
						Model:     getStringFromMap(providerMap, "model"),
						MaxTokens: getIntFromMap(providerMap, "max_tokens"),
						Timeout:   getStringFromMap(providerMap, "timeout"),
					}
					provider.Temperature = getFloatFromMap(providerMap, "temperature")
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = defaultProviders(cfg)
	}

	// Chatwoot
	cfg.Chatwoot.BaseURL = viper.GetString("chatwoot.base_url")
	cfg.Chatwoot.AccessToken = viper.GetString("chatwoot.access_token")
	cfg.Chatwoot.AccountID = viper.GetString("chatwoot.account_id")
	cfg.Chatwoot.HMACSecret = viper.GetString("chatwoot.hmac_secret")

	// N8N
	cfg.N8N.BaseURL = viper.GetString("n8n.base_url")
	cfg.N8N.APIKey = viper.GetString("n8n.api_key")

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))
	cfg.Ngrok.APIURL = viper.GetString("ngrok.api_url")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("app.name", "MrDom SDR AgentOS + Bedrock")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.debug", false)
	viper.SetDefault("agentos.enabled", true)
	viper.SetDefault("auto_response.enabled", true)
	viper.SetDefault("escalation_keywords", "falar com humano,atendente,supervisor")
	viper.SetDefault("cors_origins", "http://localhost:3000")

	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("tracer.enabled", false)
	viper.SetDefault("tracer.exporter", "stdout")

	viper.SetDefault("aws.default_region", "us-east-1")
	viper.SetDefault("bedrock.model", "amazon.nova-lite-v1:0")
	viper.SetDefault("agent.max_tokens", 1000)
	viper.SetDefault("agent.temperature", 0.7)
	viper.SetDefault("openai.model", "gpt-3.5-turbo")

	viper.SetDefault("chatwoot.base_url", "https://app.chatwoot.com")
	viper.SetDefault("n8n.base_url", "http://localhost:5678")
	viper.SetDefault("webhook.rate_limit_per_min", 0)

	// LLM defaults: a single round trip, no global timeout
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "")
	viper.SetDefault("llm.circuit_breaker.enabled", false)
	viper.SetDefault("llm.circuit_breaker.max_failures", 5)
	viper.SetDefault("llm.circuit_breaker.timeout", "30s")
	viper.SetDefault("llm.circuit_breaker.interval", "60s")
}

// defaultProviders derives the provider chain from the flat AWS / OpenAI settings
// when no llm.providers section is present: Bedrock first, OpenAI as fallback.
func defaultProviders(cfg *Config) []ProviderConfig {
	providers := []ProviderConfig{
		{
			Name:        ProviderBedrock,
			Enabled:     cfg.AWS.HasCredentials(),
			Priority:    1,
			APIKey:      cfg.AWS.AccessKeyID,
			SecretKey:   cfg.AWS.SecretAccessKey,
			Region:      cfg.AWS.Region,
			Model:       cfg.Bedrock.Model,
			MaxTokens:   cfg.Bedrock.MaxTokens,
			Temperature: cfg.Bedrock.Temperature,
		},
		{
			Name:        ProviderOpenAI,
			Enabled:     cfg.OpenAI.APIKey != "",
			Priority:    2,
			APIKey:      cfg.OpenAI.APIKey,
			BaseURL:     cfg.OpenAI.BaseURL,
			Model:       cfg.OpenAI.Model,
			MaxTokens:   cfg.Bedrock.MaxTokens,
			Temperature: cfg.Bedrock.Temperature,
		},
	}
	return providers
}

// ValidateLLMConfig validates the LLM configuration
func ValidateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// EnabledProviderNames returns the names of enabled providers ordered by priority.
func (c LLMConfig) EnabledProviderNames() []string {
	enabled := make([]ProviderConfig, 0, len(c.Providers))
	for _, p := range c.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	sort.Slice(enabled, func(i, j int) bool { return enabled[i].Priority < enabled[j].Priority })

	names := make([]string, len(enabled))
	for i, p := range enabled {
		names[i] = p.Name
	}
	return names
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getFloatFromMap(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
