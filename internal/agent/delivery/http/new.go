package http

import (
	"mrdom-sdr/internal/agent"
	"mrdom-sdr/pkg/log"
)

type handler struct {
	l            log.Logger
	uc           agent.UseCase
	defaultModel string
}

// New creates a new HTTP handler for the agent domain.
// defaultModel is reported by /status while no agent is registered.
func New(l log.Logger, uc agent.UseCase, defaultModel string) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		defaultModel: defaultModel,
	}
}
