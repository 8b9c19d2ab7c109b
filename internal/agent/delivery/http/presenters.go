package http

import (
	"mrdom-sdr/internal/agent"
)

// --- Request DTOs ---

type processReq struct {
	AgentType string         `json:"agent_type" binding:"required"`
	Message   string         `json:"message"    binding:"required"`
	Context   map[string]any `json:"context"`
}

func (r processReq) toInput() agent.DispatchInput {
	return agent.DispatchInput{
		AgentID: agent.ID(r.AgentType),
		Message: r.Message,
		Context: r.Context,
	}
}

type processBestReq struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context"`
}

func (r processBestReq) validate() error {
	if r.Message == "" {
		return errMessageRequired
	}
	return nil
}

func (r processBestReq) toInput() agent.DispatchBestInput {
	return agent.DispatchBestInput{
		Message: r.Message,
		Context: r.Context,
	}
}

type suggestReq struct {
	Message string `json:"message" binding:"required"`
}

// --- Response DTOs ---

type statusResp struct {
	AgentOSAvailable bool     `json:"agentos_available"`
	ModelProvider    string   `json:"model_provider"`
	Model            string   `json:"model"`
	AvailableAgents  []string `json:"available_agents"`
	TotalAgents      int      `json:"total_agents"`
}

func (h *handler) newStatusResp(o agent.StatusOutput) statusResp {
	model := o.Model
	if model == "" {
		model = h.defaultModel
	}
	return statusResp{
		AgentOSAvailable: o.Available,
		ModelProvider:    o.ModelProvider,
		Model:            model,
		AvailableAgents:  idsToStrings(o.AvailableAgents),
		TotalAgents:      o.TotalAgents,
	}
}

type agentItemResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type listResp struct {
	Agents []agentItemResp `json:"agents"`
}

func (h *handler) newListResp(agents []agent.Agent) listResp {
	items := make([]agentItemResp, 0, len(agents))
	for _, a := range agents {
		desc := a.Description
		if desc == "" {
			desc = agent.DescriptionDefault
		}
		items = append(items, agentItemResp{
			ID:          string(a.ID),
			Name:        a.Name,
			Description: desc,
		})
	}
	return listResp{Agents: items}
}

type processResp struct {
	Success     bool   `json:"success"`
	AgentType   string `json:"agent_type"`
	Message     string `json:"message"`
	Response    string `json:"response,omitempty"`
	ContextUsed bool   `json:"context_used"`
	Error       string `json:"error,omitempty"`
}

func (h *handler) newProcessResp(req processReq, o agent.DispatchOutput) processResp {
	return processResp{
		Success:     o.Success,
		AgentType:   string(o.AgentID),
		Message:     req.Message,
		Response:    o.Response,
		ContextUsed: o.ContextUsed,
		Error:       o.Error,
	}
}

type dispatchResultResp struct {
	Success            bool     `json:"success"`
	AgentType          string   `json:"agent_type"`
	Response           string   `json:"response,omitempty"`
	ContextUsed        bool     `json:"context_used"`
	Error              string   `json:"error,omitempty"`
	SelectedAgent      string   `json:"selected_agent"`
	AllSuggestedAgents []string `json:"all_suggested_agents"`
}

type processBestResp struct {
	Success            bool               `json:"success"`
	SelectedAgent      string             `json:"selected_agent"`
	AllSuggestedAgents []string           `json:"all_suggested_agents"`
	Result             dispatchResultResp `json:"result"`
}

func (h *handler) newProcessBestResp(o agent.BestDispatchOutput) processBestResp {
	suggested := idsToStrings(o.AllSuggestedAgents)
	return processBestResp{
		Success:            o.Success,
		SelectedAgent:      string(o.SelectedAgent),
		AllSuggestedAgents: suggested,
		Result: dispatchResultResp{
			Success:            o.Success,
			AgentType:          string(o.AgentID),
			Response:           o.Response,
			ContextUsed:        o.ContextUsed,
			Error:              o.Error,
			SelectedAgent:      string(o.SelectedAgent),
			AllSuggestedAgents: suggested,
		},
	}
}

type suggestResp struct {
	Message         string   `json:"message"`
	SuggestedAgent  string   `json:"suggested_agent"`
	AvailableAgents []string `json:"available_agents"`
}

func (h *handler) newSuggestResp(o agent.SuggestOutput) suggestResp {
	return suggestResp{
		Message:         o.Message,
		SuggestedAgent:  string(o.SuggestedAgent),
		AvailableAgents: idsToStrings(o.AvailableAgents),
	}
}

func idsToStrings(ids []agent.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
