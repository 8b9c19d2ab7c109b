package agent

import "mrdom-sdr/pkg/llmprovider"

// Registry holds the agents available to the dispatcher.
// It is read-only after NewRegistry returns.
type Registry struct {
	agents map[ID]*Agent
	order  []ID
}

// NewRegistry builds the three agents on a shared provider.
// A nil provider yields an empty registry; the service then reports agents unavailable.
func NewRegistry(provider llmprovider.Provider) *Registry {
	r := &Registry{agents: make(map[ID]*Agent)}
	if provider == nil {
		return r
	}

	r.register(&Agent{ID: IDQualification, Name: "Qualification", Description: DescriptionQualification, Instruction: InstructionQualification, Provider: provider})
	r.register(&Agent{ID: IDSales, Name: "Sales", Description: DescriptionSales, Instruction: InstructionSales, Provider: provider})
	r.register(&Agent{ID: IDSupport, Name: "Support", Description: DescriptionSupport, Instruction: InstructionSupport, Provider: provider})
	return r
}

func (r *Registry) register(a *Agent) {
	r.agents[a.ID] = a
	r.order = append(r.order, a.ID)
}

// Get retrieves an agent by id.
func (r *Registry) Get(id ID) (*Agent, bool) {
	a, ok := r.agents[id]
	return a, ok
}

// List returns the agents in registry order.
func (r *Registry) List() []Agent {
	out := make([]Agent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.agents[id])
	}
	return out
}

// IDs returns the registered agent ids in registry order.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Model returns the model of the shared provider, or "" when empty.
func (r *Registry) Model() string {
	if len(r.order) == 0 {
		return ""
	}
	return r.agents[r.order[0]].Provider.Model()
}
