package main

import "mrdom-sdr/internal/agent"

type usageView struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

type dispatchView struct {
	Success            bool      `json:"success"`
	AgentType          string    `json:"agent_type"`
	Response           string    `json:"response,omitempty"`
	Error              string    `json:"error,omitempty"`
	ContextUsed        bool      `json:"context_used"`
	Provider           string    `json:"provider,omitempty"`
	Model              string    `json:"model,omitempty"`
	Usage              usageView `json:"usage"`
	SelectedAgent      string    `json:"selected_agent,omitempty"`
	AllSuggestedAgents []string  `json:"all_suggested_agents,omitempty"`
}

func newDispatchView(o agent.DispatchOutput) dispatchView {
	return dispatchView{
		Success:     o.Success,
		AgentType:   string(o.AgentID),
		Response:    o.Response,
		Error:       o.Error,
		ContextUsed: o.ContextUsed,
		Provider:    o.Provider,
		Model:       o.Model,
		Usage: usageView{
			InputTokens:  o.Usage.InputTokens,
			OutputTokens: o.Usage.OutputTokens,
			TotalTokens:  o.Usage.TotalTokens,
		},
	}
}

func newBestDispatchView(o agent.BestDispatchOutput) dispatchView {
	v := newDispatchView(o.DispatchOutput)
	v.SelectedAgent = string(o.SelectedAgent)
	v.AllSuggestedAgents = idsToStrings(o.AllSuggestedAgents)
	return v
}

type statusView struct {
	AgentOSAvailable bool     `json:"agentos_available"`
	ModelProvider    string   `json:"model_provider"`
	Model            string   `json:"model"`
	AvailableAgents  []string `json:"available_agents"`
	TotalAgents      int      `json:"total_agents"`
}

func newStatusView(o agent.StatusOutput) statusView {
	return statusView{
		AgentOSAvailable: o.Available,
		ModelProvider:    o.ModelProvider,
		Model:            o.Model,
		AvailableAgents:  idsToStrings(o.AvailableAgents),
		TotalAgents:      o.TotalAgents,
	}
}

func idsToStrings(ids []agent.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
