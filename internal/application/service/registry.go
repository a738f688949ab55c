package service

import (
	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/domain/entity"
)

var _ output.AgentRegistry = (*AgentRegistryImpl)(nil)

type AgentRegistryImpl struct {
	agents map[entity.Power]output.PowerAgent
}

func NewAgentRegistry() *AgentRegistryImpl {
	return &AgentRegistryImpl{
		agents: make(map[entity.Power]output.PowerAgent),
	}
}

func (r *AgentRegistryImpl) Register(agent output.PowerAgent) {
	r.agents[agent.Power()] = agent
}

func (r *AgentRegistryImpl) Get(power entity.Power) (output.PowerAgent, bool) {
	agent, ok := r.agents[power]
	return agent, ok
}

func (r *AgentRegistryImpl) List() []output.PowerAgent {
	result := make([]output.PowerAgent, 0, len(r.agents))
	for _, agent := range r.agents {
		result = append(result, agent)
	}
	return result
}
