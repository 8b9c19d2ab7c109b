package usecase

import (
	"context"

	"mrdom-sdr/internal/agent"
)

// Suggest returns the classifier choice and the registered agents.
// It does not require the registry to be populated.
func (uc *implUseCase) Suggest(ctx context.Context, message string) agent.SuggestOutput {
	return agent.SuggestOutput{
		Message:         message,
		SuggestedAgent:  agent.ID(uc.router.Classify(message)),
		AvailableAgents: uc.registry.IDs(),
	}
}

func (uc *implUseCase) Status(ctx context.Context) agent.StatusOutput {
	ids := uc.registry.IDs()
	return agent.StatusOutput{
		Available:       len(ids) > 0,
		ModelProvider:   agent.ModelProviderName,
		Model:           uc.registry.Model(),
		AvailableAgents: ids,
		TotalAgents:     len(ids),
	}
}

func (uc *implUseCase) List(ctx context.Context) ([]agent.Agent, error) {
	if !uc.Available() {
		return nil, agent.ErrAgentsUnavailable
	}
	return uc.registry.List(), nil
}

func (uc *implUseCase) Available() bool {
	return uc.registry.Len() > 0
}

// Stats snapshots the dispatch counters.
func (uc *implUseCase) Stats() agent.Stats {
	per := make(map[agent.ID]int64, len(uc.perAgent))
	for id, c := range uc.perAgent {
		per[id] = c.Load()
	}
	return agent.Stats{
		Total:    uc.total.Load(),
		Failed:   uc.failed.Load(),
		PerAgent: per,
	}
}
