package agent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch sends the message to one agent. Unknown ids fail with ErrUnknownAgent
	// and backend failures with ErrBackend; the output is filled in both cases.
	Dispatch(ctx context.Context, input DispatchInput) (DispatchOutput, error)

	// DispatchBest classifies then dispatches. Agent and backend failures are
	// reported in the output, not as an error.
	DispatchBest(ctx context.Context, input DispatchBestInput) (BestDispatchOutput, error)

	Suggest(ctx context.Context, message string) SuggestOutput
	Status(ctx context.Context) StatusOutput
	List(ctx context.Context) ([]Agent, error)
	Available() bool
	Stats() Stats
}
