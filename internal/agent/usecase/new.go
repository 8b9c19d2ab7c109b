package usecase

import (
	"sync/atomic"

	"mrdom-sdr/internal/agent"
	"mrdom-sdr/internal/router"
	"mrdom-sdr/pkg/log"
)

// implUseCase is the private implementation of agent.UseCase.
type implUseCase struct {
	registry *agent.Registry
	router   router.Router
	l        log.Logger

	total    atomic.Int64
	failed   atomic.Int64
	perAgent map[agent.ID]*atomic.Int64
}

var _ agent.UseCase = (*implUseCase)(nil)

// New creates a new agent UseCase implementation.
func New(registry *agent.Registry, r router.Router, l log.Logger) *implUseCase {
	perAgent := make(map[agent.ID]*atomic.Int64, len(agent.AllIDs))
	for _, id := range agent.AllIDs {
		perAgent[id] = new(atomic.Int64)
	}

	return &implUseCase{
		registry: registry,
		router:   r,
		l:        l,
		perAgent: perAgent,
	}
}
