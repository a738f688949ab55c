package input

import (
	"context"

	"diplomacy-agent/internal/domain/entity"
)

// OrderRequest carries everything one power needs to decide a phase: the
// board snapshot, the engine's legal-order sets, the agent's state and any
// press the power is allowed to see.
type OrderRequest struct {
	Power        entity.Power
	Phase        entity.Phase
	Board        entity.BoardState
	Possible     entity.PossibleOrders
	Agent        entity.AgentState
	Press        []entity.PressMessage
	SystemPrompt string
}

type OrderResult struct {
	Power     entity.Power
	Orders    []string
	Rejected  []string
	Reasoning string
	RawReply  string
	// FellBack is set when the reply was unusable and the hold set was
	// substituted for the LLM's proposals.
	FellBack bool
}

type OrderGenerator interface {
	Generate(ctx context.Context, req OrderRequest) (*OrderResult, error)
}
