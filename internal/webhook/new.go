package webhook

import (
	"context"

	"mrdom-sdr/internal/agent"
	pkgLog "mrdom-sdr/pkg/log"
)

// Replier posts an agent reply back into a Chatwoot conversation.
type Replier interface {
	Enabled() bool
	SendMessage(ctx context.Context, conversationID, text string) error
}

type Handler struct {
	agentUC  agent.UseCase
	security *SecurityValidator
	replier  Replier
	cfg      Config
	l        pkgLog.Logger
}

// NewHandler builds the webhook handler. replier may be nil when Chatwoot
// replies are not configured.
func NewHandler(
	agentUC agent.UseCase,
	replier Replier,
	cfg Config,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		agentUC:  agentUC,
		security: NewSecurityValidator(cfg.Security),
		replier:  replier,
		cfg:      cfg,
		l:        l,
	}
}
