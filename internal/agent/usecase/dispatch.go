package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"mrdom-sdr/internal/agent"
	"mrdom-sdr/pkg/llmprovider"
	"mrdom-sdr/pkg/tracer"
)

// Dispatch sends a message to the requested agent, once.
func (uc *implUseCase) Dispatch(ctx context.Context, input agent.DispatchInput) (agent.DispatchOutput, error) {
	ctx, span := tracer.StartSpan(ctx, "agent.dispatch",
		trace.WithAttributes(tracer.StringAttr("agent.id", string(input.AgentID))),
	)
	defer span.End()

	a, ok := uc.registry.Get(input.AgentID)
	if !ok {
		err := fmt.Errorf("%w: '%s'", agent.ErrUnknownAgent, input.AgentID)
		tracer.RecordError(span, err)
		return agent.DispatchOutput{
			Success: false,
			AgentID: input.AgentID,
			Error:   err.Error(),
		}, err
	}

	uc.total.Add(1)
	if c, ok := uc.perAgent[a.ID]; ok {
		c.Add(1)
	}

	text, err := buildPrompt(input.Message, input.Context)
	if err != nil {
		uc.failed.Add(1)
		tracer.RecordError(span, err)
		return agent.DispatchOutput{Success: false, AgentID: a.ID, Error: err.Error()}, err
	}

	resp, err := a.Provider.GenerateContent(ctx, llmprovider.NewTextRequest(a.Instruction, text))
	if err != nil {
		uc.failed.Add(1)
		uc.l.Warnf(ctx, "internal.agent.usecase.Dispatch: agent=%s: %v", a.ID, err)
		tracer.RecordError(span, err)
		return agent.DispatchOutput{
			Success: false,
			AgentID: a.ID,
			Error:   err.Error(),
		}, fmt.Errorf("%w: %v", agent.ErrBackend, err)
	}

	out := agent.DispatchOutput{
		Success:     true,
		AgentID:     a.ID,
		Response:    resp.Text(),
		ContextUsed: input.Context != nil,
		Provider:    resp.ProviderName,
		Model:       resp.ModelName,
	}
	if resp.Usage != nil {
		out.Usage = agent.Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	span.SetAttributes(tracer.StringAttr("llm.provider", out.Provider))
	tracer.SetOK(span)
	return out, nil
}

// DispatchBest classifies the message and dispatches it to the chosen agent.
func (uc *implUseCase) DispatchBest(ctx context.Context, input agent.DispatchBestInput) (agent.BestDispatchOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return agent.BestDispatchOutput{}, fmt.Errorf("%w: message", agent.ErrMissingField)
	}
	if uc.registry.Len() == 0 {
		return agent.BestDispatchOutput{}, agent.ErrAgentsUnavailable
	}

	decision := uc.router.Explain(input.Message)
	best := agent.ID(decision.Intent)
	uc.l.Debugf(ctx, "internal.agent.usecase.DispatchBest: selected=%s keyword=%q", best, decision.MatchedKeyword)

	result, err := uc.Dispatch(ctx, agent.DispatchInput{
		AgentID: best,
		Message: input.Message,
		Context: input.Context,
	})
	if err != nil {
		uc.l.Infof(ctx, "internal.agent.usecase.DispatchBest: %v", err)
	}

	return agent.BestDispatchOutput{
		DispatchOutput:     result,
		SelectedAgent:      best,
		AllSuggestedAgents: []agent.ID{best},
	}, nil
}

// buildPrompt appends the JSON-serialized context to the message.
func buildPrompt(message string, ctxData map[string]any) (string, error) {
	if len(ctxData) == 0 {
		return message, nil
	}
	raw, err := json.Marshal(ctxData)
	if err != nil {
		return "", fmt.Errorf("%w: %v", agent.ErrInvalidContext, err)
	}
	return message + agent.ContextPrefix + string(raw), nil
}
