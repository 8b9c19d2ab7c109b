package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"mrdom-sdr/internal/agent"
	"mrdom-sdr/internal/middleware"
	"mrdom-sdr/internal/webhook"
	"mrdom-sdr/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	startedAt   time.Time
	mw          middleware.Middleware
	info        AppInfo

	// Agent domain
	agentUC      agent.UseCase
	defaultModel string

	// Webhooks
	replier       webhook.Replier
	webhookConfig webhook.Config
}

// AppInfo is what /info, /metrics and the health checks report about the deployment.
type AppInfo struct {
	Name            string
	Version         string
	Debug           bool
	AgentOSEnabled  bool
	AWSCredentials  bool
	AWSRegion       string
	BedrockModel    string
	ChatwootEnabled bool
	N8NEnabled      bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	Info        AppInfo

	// Agent domain
	AgentUC agent.UseCase

	// Webhooks. Replier may be nil when Chatwoot replies are not configured.
	Replier       webhook.Replier
	WebhookConfig webhook.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		startedAt:     time.Now(),
		mw:            cfg.Middleware,
		info:          cfg.Info,
		agentUC:       cfg.AgentUC,
		defaultModel:  cfg.Info.BedrockModel,
		replier:       cfg.Replier,
		webhookConfig: cfg.WebhookConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.agentUC == nil {
		return errors.New("agent usecase is required")
	}
	return nil
}
