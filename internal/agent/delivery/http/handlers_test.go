package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mrdom-sdr/internal/agent"
	"mrdom-sdr/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	available     bool
	dispatchOut   agent.DispatchOutput
	dispatchErr   error
	bestOut       agent.BestDispatchOutput
	bestErr       error
	agents        []agent.Agent
	dispatchCalls int
	bestCalls     int
}

func (m *mockUseCase) Dispatch(ctx context.Context, input agent.DispatchInput) (agent.DispatchOutput, error) {
	m.dispatchCalls++
	return m.dispatchOut, m.dispatchErr
}
func (m *mockUseCase) DispatchBest(ctx context.Context, input agent.DispatchBestInput) (agent.BestDispatchOutput, error) {
	m.bestCalls++
	return m.bestOut, m.bestErr
}
func (m *mockUseCase) Suggest(ctx context.Context, message string) agent.SuggestOutput {
	return agent.SuggestOutput{Message: message, SuggestedAgent: agent.IDSales, AvailableAgents: m.ids()}
}
func (m *mockUseCase) Status(ctx context.Context) agent.StatusOutput {
	return agent.StatusOutput{Available: m.available, ModelProvider: agent.ModelProviderName, AvailableAgents: m.ids(), TotalAgents: len(m.agents)}
}
func (m *mockUseCase) List(ctx context.Context) ([]agent.Agent, error) {
	if !m.available {
		return nil, agent.ErrAgentsUnavailable
	}
	return m.agents, nil
}
func (m *mockUseCase) Available() bool   { return m.available }
func (m *mockUseCase) Stats() agent.Stats { return agent.Stats{} }

func (m *mockUseCase) ids() []agent.ID {
	ids := make([]agent.ID, 0, len(m.agents))
	for _, a := range m.agents {
		ids = append(ids, a.ID)
	}
	return ids
}

func availableUseCase() *mockUseCase {
	return &mockUseCase{
		available: true,
		agents: []agent.Agent{
			{ID: agent.IDQualification, Name: "Qualification", Description: agent.DescriptionQualification},
			{ID: agent.IDSales, Name: "Sales", Description: agent.DescriptionSales},
			{ID: agent.IDSupport, Name: "Support"},
		},
	}
}

// ── Helpers ────────────────────────────────────────────────────────────────

func setupRouter(uc agent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, "amazon.nova-lite-v1:0"))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestStatus(t *testing.T) {
	r := setupRouter(&mockUseCase{})
	w, body := doRequest(r, http.MethodGet, "/api/v1/agents/status", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["agentos_available"] != false || body["model"] != "amazon.nova-lite-v1:0" || body["model_provider"] != "AWS Bedrock" {
		t.Errorf("unexpected body %v", body)
	}
	if body["total_agents"].(float64) != 0 {
		t.Errorf("expected 0 agents, got %v", body["total_agents"])
	}
}

func TestList(t *testing.T) {
	t.Run("Unavailable", func(t *testing.T) {
		w, body := doRequest(setupRouter(&mockUseCase{}), http.MethodGet, "/api/v1/agents/list", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if body["message"] != errAgentsUnavailable.Error() {
			t.Errorf("unexpected message %v", body["message"])
		}
	})

	t.Run("Available", func(t *testing.T) {
		w, body := doRequest(setupRouter(availableUseCase()), http.MethodGet, "/api/v1/agents/list", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		agents := body["agents"].([]interface{})
		if len(agents) != 3 {
			t.Fatalf("expected 3 agents, got %d", len(agents))
		}
		first := agents[0].(map[string]interface{})
		if first["id"] != "qualification" || first["name"] != "Qualification" || first["description"] != agent.DescriptionQualification {
			t.Errorf("unexpected first agent %v", first)
		}
		last := agents[2].(map[string]interface{})
		if last["description"] != agent.DescriptionDefault {
			t.Errorf("expected default description, got %v", last["description"])
		}
	})
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name       string
		uc         *mockUseCase
		body       string
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "unavailable",
			uc:         &mockUseCase{},
			body:       `{"agent_type":"sales","message":"oi"}`,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "missing message",
			uc:         availableUseCase(),
			body:       `{"agent_type":"sales"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown agent",
			uc: func() *mockUseCase {
				m := availableUseCase()
				m.dispatchErr = fmt.Errorf("%w: 'marketing'", agent.ErrUnknownAgent)
				return m
			}(),
			body:       `{"agent_type":"marketing","message":"oi"}`,
			wantStatus: http.StatusBadRequest,
			wantCalls:  1,
		},
		{
			name: "backend failure",
			uc: func() *mockUseCase {
				m := availableUseCase()
				m.dispatchOut = agent.DispatchOutput{AgentID: agent.IDSales, Error: "throttled"}
				m.dispatchErr = fmt.Errorf("%w: throttled", agent.ErrBackend)
				return m
			}(),
			body:       `{"agent_type":"sales","message":"oi"}`,
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
		{
			name: "success",
			uc: func() *mockUseCase {
				m := availableUseCase()
				m.dispatchOut = agent.DispatchOutput{Success: true, AgentID: agent.IDSales, Response: "Vamos agendar", ContextUsed: true}
				return m
			}(),
			body:       `{"agent_type":"sales","message":"demo","context":{"lead":"acme"}}`,
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doRequest(setupRouter(tt.uc), http.MethodPost, "/api/v1/agents/process", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.uc.dispatchCalls != tt.wantCalls {
				t.Errorf("expected %d dispatch calls, got %d", tt.wantCalls, tt.uc.dispatchCalls)
			}
			if tt.wantStatus == http.StatusOK {
				if body["success"] != true || body["agent_type"] != "sales" || body["message"] != "demo" || body["response"] != "Vamos agendar" || body["context_used"] != true {
					t.Errorf("unexpected body %v", body)
				}
			}
			if tt.name == "backend failure" && body["message"] != "throttled" {
				t.Errorf("expected underlying message, got %v", body["message"])
			}
		})
	}
}

func TestProcessBest(t *testing.T) {
	t.Run("Unavailable", func(t *testing.T) {
		w, _ := doRequest(setupRouter(&mockUseCase{}), http.MethodPost, "/api/v1/agents/process-best", `{"message":"oi"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Missing message", func(t *testing.T) {
		uc := availableUseCase()
		w, body := doRequest(setupRouter(uc), http.MethodPost, "/api/v1/agents/process-best", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body["message"] != errMessageRequired.Error() {
			t.Errorf("unexpected message %v", body["message"])
		}
		if uc.bestCalls != 0 {
			t.Error("use case must not be called")
		}
	})

	t.Run("Empty body", func(t *testing.T) {
		w, _ := doRequest(setupRouter(availableUseCase()), http.MethodPost, "/api/v1/agents/process-best", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		uc := availableUseCase()
		uc.bestOut = agent.BestDispatchOutput{
			DispatchOutput:     agent.DispatchOutput{Success: true, AgentID: agent.IDSales, Response: "ok"},
			SelectedAgent:      agent.IDSales,
			AllSuggestedAgents: []agent.ID{agent.IDSales},
		}
		w, body := doRequest(setupRouter(uc), http.MethodPost, "/api/v1/agents/process-best", `{"message":"agendar demo"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body["success"] != true || body["selected_agent"] != "sales" {
			t.Errorf("unexpected body %v", body)
		}
		result := body["result"].(map[string]interface{})
		if result["response"] != "ok" || result["agent_type"] != "sales" {
			t.Errorf("unexpected result %v", result)
		}
	})

	t.Run("Backend failure stays 200", func(t *testing.T) {
		uc := availableUseCase()
		uc.bestOut = agent.BestDispatchOutput{
			DispatchOutput: agent.DispatchOutput{Success: false, AgentID: agent.IDSupport, Error: "boom"},
			SelectedAgent:  agent.IDSupport,
		}
		w, body := doRequest(setupRouter(uc), http.MethodPost, "/api/v1/agents/process-best", `{"message":"erro"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body["success"] != false {
			t.Errorf("expected success=false, got %v", body)
		}
	})
}

func TestSuggest(t *testing.T) {
	w, body := doRequest(setupRouter(&mockUseCase{}), http.MethodPost, "/api/v1/agents/suggest", `{"message":"agendar demo"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("suggest must work without agents, got %d", w.Code)
	}
	if body["suggested_agent"] != "sales" || body["message"] != "agendar demo" {
		t.Errorf("unexpected body %v", body)
	}

	w, _ = doRequest(setupRouter(&mockUseCase{}), http.MethodPost, "/api/v1/agents/suggest", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without message, got %d", w.Code)
	}
}

func TestMapError(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{}, "")
	tests := []struct {
		err  error
		want int
	}{
		{agent.ErrAgentsUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: message", agent.ErrMissingField), http.StatusBadRequest},
		{fmt.Errorf("%w: x", agent.ErrUnknownAgent), http.StatusBadRequest},
		{fmt.Errorf("%w: json: unsupported type: chan int", agent.ErrInvalidContext), http.StatusBadRequest},
		{fmt.Errorf("%w: x", agent.ErrBackend), http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got, _ := h.mapError(tt.err); got != tt.want {
			t.Errorf("mapError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
