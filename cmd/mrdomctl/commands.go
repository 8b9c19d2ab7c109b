package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mrdom-sdr/config"
	"mrdom-sdr/internal/agent"
	agentUC "mrdom-sdr/internal/agent/usecase"
	"mrdom-sdr/internal/router"
	"mrdom-sdr/pkg/llmprovider"
	"mrdom-sdr/pkg/log"
)

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <message>",
		Short: "Show which agent the keyword router picks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			out := router.New().Explain(message)
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"message":         message,
				"suggested_agent": string(out.Intent),
				"matched_keyword": out.MatchedKeyword,
				"reasoning":       out.Reasoning,
			})
		},
	}
}

// useCaseFactory builds the agent use case a command talks to.
type useCaseFactory func(cmd *cobra.Command, verbose bool) (agent.UseCase, error)

func askCmd(newUC useCaseFactory) *cobra.Command {
	var agentID string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Send a message to an agent (best match unless --agent is set)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, err := newUC(cmd, verbose)
			if err != nil {
				return err
			}
			if !uc.Available() {
				return agent.ErrAgentsUnavailable
			}

			message := strings.Join(args, " ")
			if agentID == "" {
				out, err := uc.DispatchBest(ctx, agent.DispatchBestInput{Message: message})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), newBestDispatchView(out))
			}

			out, err := uc.Dispatch(ctx, agent.DispatchInput{AgentID: agent.ID(agentID), Message: message})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newDispatchView(out))
		},
	}

	cmd.Flags().StringVarP(&agentID, "agent", "a", "", "agent id: qualification, sales or support")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log provider calls to stderr")
	return cmd
}

func agentsCmd(newUC useCaseFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List the registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUC(cmd, false)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newStatusView(uc.Status(cmd.Context())))
		},
	}
}

// newUseCase wires the agent use case from the same configuration the API uses.
func newUseCase(cmd *cobra.Command, verbose bool) (agent.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.NewNop()
	if verbose {
		l = log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console"})
	}

	registry := agent.NewRegistry(nil)
	if !cfg.App.AgentOSEnabled {
		fmt.Fprintln(cmd.ErrOrStderr(), "agents disabled by AGENTOS_ENABLED=false")
		return agentUC.New(registry, router.New(), l), nil
	}

	manager, err := llmprovider.NewManagerFromConfig(cmd.Context(), &cfg.LLM, l)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "no model provider available: %v\n", err)
	} else {
		registry = agent.NewRegistry(manager)
	}

	return agentUC.New(registry, router.New(), l), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
