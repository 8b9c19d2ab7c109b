package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "mrdom-sdr/internal/agent/delivery/http"
	"mrdom-sdr/internal/webhook"
)

// setupAgentDomain registers /api/v1/agents/*.
func (srv *HTTPServer) setupAgentDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := agentHTTP.New(srv.l, srv.agentUC, srv.defaultModel)
	agentHTTP.RegisterRoutes(api, h)

	if srv.agentUC.Available() {
		srv.l.Infof(ctx, "Agent domain registered")
	} else {
		srv.l.Warnf(ctx, "Agent domain registered without agents: dispatch routes answer 503")
	}
	return nil
}

// setupWebhookDomain registers /api/v1/webhooks/*.
func (srv *HTTPServer) setupWebhookDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := webhook.NewHandler(srv.agentUC, srv.replier, srv.webhookConfig, srv.l)
	webhook.RegisterRoutes(api, h)

	if srv.webhookConfig.Security.Secret == "" {
		srv.l.Warnf(ctx, "Chatwoot HMAC secret not configured, signatures are not verified")
	}
	srv.l.Infof(ctx, "Webhook routes registered at %s/webhooks", APIPrefix)
	return nil
}
