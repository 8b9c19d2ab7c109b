package agent

import "mrdom-sdr/pkg/llmprovider"

// ID identifies one of the fixed agents.
type ID string

const (
	IDQualification ID = "qualification"
	IDSales         ID = "sales"
	IDSupport       ID = "support"
)

// AllIDs lists the agents in registry order.
var AllIDs = []ID{IDQualification, IDSales, IDSupport}

// Agent is a named persona bound to a fixed instruction and a shared model backend.
// Agents are created once at startup and never mutated.
type Agent struct {
	ID          ID
	Name        string
	Description string
	Instruction string
	Provider    llmprovider.Provider
}

// --- UseCase Inputs ---

type DispatchInput struct {
	AgentID ID
	Message string
	Context map[string]any
}

type DispatchBestInput struct {
	Message string
	Context map[string]any
}

// --- UseCase Outputs ---

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// DispatchOutput is the result of one agent call. On failure Success is false
// and Error carries the underlying message.
type DispatchOutput struct {
	Success     bool
	AgentID     ID
	Response    string
	Error       string
	ContextUsed bool
	Provider    string
	Model       string
	Usage       Usage
}

type BestDispatchOutput struct {
	DispatchOutput
	SelectedAgent      ID
	AllSuggestedAgents []ID
}

type SuggestOutput struct {
	Message         string
	SuggestedAgent  ID
	AvailableAgents []ID
}

type StatusOutput struct {
	Available       bool
	ModelProvider   string
	Model           string
	AvailableAgents []ID
	TotalAgents     int
}

// Stats are process-lifetime dispatch counters.
type Stats struct {
	Total    int64
	Failed   int64
	PerAgent map[ID]int64
}
