// Package orchestrator fans a phase out to every power's generator and
// collects the round's orders. One power's failure never sinks the round;
// that power holds and the rest proceed.
package orchestrator

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"diplomacy-agent/internal/application/port/input"
	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/domain/entity"
	"diplomacy-agent/internal/usecase/orders"
)

var _ input.RoundRunner = (*UseCase)(nil)

type UseCase struct {
	agents     output.AgentRegistry
	generators map[entity.Power]input.OrderGenerator
	presenter  output.PresenterPort
	logger     output.LoggerPort

	// MaxConcurrent caps how many powers query their models at once.
	// Zero means no cap.
	MaxConcurrent int
}

func New(
	agents output.AgentRegistry,
	generators map[entity.Power]input.OrderGenerator,
	presenter output.PresenterPort,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		agents:     agents,
		generators: generators,
		presenter:  presenter,
		logger:     logger,
	}
}

func (uc *UseCase) Run(ctx context.Context, req input.RoundRequest) (*input.RoundResult, error) {
	uc.presenter.ShowRoundStart(req.Phase, req.Board.PhaseName, len(req.Powers))

	result := &input.RoundResult{Orders: make(map[entity.Power]*input.OrderResult, len(req.Powers))}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	if uc.MaxConcurrent > 0 {
		g.SetLimit(uc.MaxConcurrent)
	}

	for _, power := range req.Powers {
		g.Go(func() error {
			uc.presenter.ShowPowerStart(power)
			res := uc.generateForPower(ctx, power, req)

			mu.Lock()
			result.Orders[power] = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// generateForPower always returns a result: when the generator fails or no
// generator exists, the power's units hold.
func (uc *UseCase) generateForPower(ctx context.Context, power entity.Power, req input.RoundRequest) *input.OrderResult {
	possible := req.Possible[power]

	gen, ok := uc.generators[power]
	if !ok {
		uc.logger.Warn("No generator configured, holding", "power", power)
		return uc.holdResult(power, possible)
	}

	orderReq := input.OrderRequest{
		Power:    power,
		Phase:    req.Phase,
		Board:    req.Board,
		Possible: possible,
		Press:    entity.VisiblePress(req.Press, power),
	}
	if agent, ok := uc.agents.Get(power); ok {
		orderReq.Agent = agent.Snapshot()
	}

	res, err := gen.Generate(ctx, orderReq)
	if err != nil {
		uc.logger.Error("Order generation failed, holding", "power", power, "error", err)
		uc.presenter.ShowPowerError(power, err)
		return uc.holdResult(power, possible)
	}

	if agent, ok := uc.agents.Get(power); ok && res.Reasoning != "" {
		agent.AddDiary(res.Reasoning, req.Board.PhaseName)
	}

	uc.presenter.ShowPowerResult(power, res.Orders, res.Rejected, res.FellBack)
	return res
}

func (uc *UseCase) holdResult(power entity.Power, possible entity.PossibleOrders) *input.OrderResult {
	return &input.OrderResult{
		Power:    power,
		Orders:   orders.Fallback(possible),
		FellBack: true,
	}
}
