package output

import "diplomacy-agent/internal/domain/entity"

// PowerAgent is the stateful side of one seat at the table: goals,
// relationships and diary that persist across phases.
type PowerAgent interface {
	Power() entity.Power
	Snapshot() entity.AgentState
	AddDiary(entry, phaseName string)
}

type AgentRegistry interface {
	Register(agent PowerAgent)
	Get(power entity.Power) (PowerAgent, bool)
	List() []PowerAgent
}
