package input

import (
	"context"

	"diplomacy-agent/internal/domain/entity"
)

// RoundRequest asks for orders from every listed power in one phase.
// Possible is keyed by power and pre-filtered by the engine to that power's
// own units.
type RoundRequest struct {
	Phase    entity.Phase
	Board    entity.BoardState
	Powers   []entity.Power
	Possible map[entity.Power]entity.PossibleOrders
	Press    []entity.PressMessage
}

type RoundResult struct {
	Orders map[entity.Power]*OrderResult
}

type RoundRunner interface {
	Run(ctx context.Context, req RoundRequest) (*RoundResult, error)
}
