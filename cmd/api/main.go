package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mrdom-sdr/config"
	_ "mrdom-sdr/docs" // Swagger docs
	"mrdom-sdr/internal/agent"
	agentUC "mrdom-sdr/internal/agent/usecase"
	"mrdom-sdr/internal/httpserver"
	"mrdom-sdr/internal/middleware"
	"mrdom-sdr/internal/router"
	"mrdom-sdr/internal/webhook"
	"mrdom-sdr/pkg/chatwoot"
	"mrdom-sdr/pkg/llmprovider"
	"mrdom-sdr/pkg/log"
	"mrdom-sdr/pkg/tracer"
)

// @title       MrDom SDR API
// @description Routes inbound chat messages from Chatwoot, N8N or direct calls to qualification, sales and support agents backed by AWS Bedrock.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s %s...", cfg.App.Name, cfg.App.Version)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Model: %s (%s)", cfg.Bedrock.Model, cfg.AWS.Region)

	// 3. Tracing
	shutdownTracer, err := tracer.Setup(ctx, cfg.Tracer)
	if err != nil {
		logger.Error(ctx, "Failed to set up tracing: ", err)
		return
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Warnf(ctx, "Tracer shutdown: %v", err)
		}
	}()

	// 4. Agents
	registry := agent.NewRegistry(nil)
	if !cfg.App.AgentOSEnabled {
		logger.Warn(ctx, "Agents disabled by AGENTOS_ENABLED=false")
	} else {
		if !cfg.AWS.HasCredentials() {
			logger.Warn(ctx, "AWS credentials not configured: Bedrock provider disabled")
		}

		manager, mErr := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
		if mErr != nil {
			logger.Warnf(ctx, "No model provider available, agent routes will answer 503: %v", mErr)
		} else {
			registry = agent.NewRegistry(manager)
			logger.Infof(ctx, "Agents initialized: %v (providers: %v)", registry.IDs(), cfg.LLM.EnabledProviderNames())
		}
	}
	uc := agentUC.New(registry, router.New(), logger)

	// 5. Chatwoot replies (optional)
	var replier webhook.Replier
	chatwootClient := chatwoot.NewClient(cfg.Chatwoot.BaseURL, cfg.Chatwoot.AccessToken, cfg.Chatwoot.AccountID)
	if chatwootClient.Enabled() {
		replier = chatwootClient
		logger.Infof(ctx, "Chatwoot replies enabled for account %s", cfg.Chatwoot.AccountID)
	} else {
		logger.Info(ctx, "Chatwoot replies skipped: CHATWOOT_ACCESS_TOKEN or CHATWOOT_ACCOUNT_ID is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg),
		Info: httpserver.AppInfo{
			Name:            cfg.App.Name,
			Version:         cfg.App.Version,
			Debug:           cfg.App.Debug,
			AgentOSEnabled:  cfg.App.AgentOSEnabled,
			AWSCredentials:  cfg.AWS.HasCredentials(),
			AWSRegion:       cfg.AWS.Region,
			BedrockModel:    cfg.Bedrock.Model,
			ChatwootEnabled: cfg.Chatwoot.AccessToken != "",
			N8NEnabled:      cfg.N8N.APIKey != "",
		},
		AgentUC: uc,
		Replier: replier,
		WebhookConfig: webhook.Config{
			Security: webhook.SecurityConfig{
				Secret:          cfg.Chatwoot.HMACSecret,
				AllowedIPs:      cfg.Webhook.AllowedIPs,
				RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			},
			AutoResponseEnabled: cfg.App.AutoResponseEnabled,
			EscalationKeywords:  cfg.App.EscalationKeywords,
			ChatwootBaseURL:     cfg.Chatwoot.BaseURL,
			ChatwootAccountID:   cfg.Chatwoot.AccountID,
			ChatwootEnabled:     cfg.Chatwoot.AccessToken != "",
			N8NBaseURL:          cfg.N8N.BaseURL,
			N8NEnabled:          cfg.N8N.APIKey != "",
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if cfg.Ngrok.APIURL != "" {
		go announcePublicWebhooks(ctx, logger, cfg.Ngrok.APIURL)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
