package entity

// BoardState is a snapshot of the position as supplied by the hosting game
// engine. The module never derives it; adjudication and map topology live
// outside.
type BoardState struct {
	// PhaseName is the engine's short phase label, e.g. "S1901M" or "F1902R".
	PhaseName string
	Units     map[Power][]string
	Centers   map[Power][]string
}

// PossibleOrders maps a unit location to the orders the engine considers
// legal for it this phase, e.g. "PAR" -> ["A PAR H", "A PAR - BUR", ...].
type PossibleOrders map[string][]string

// AgentState is the slice of an agent's mutable state that feeds prompts.
type AgentState struct {
	Goals         []string
	Relationships map[Power]Relationship
	Diary         string
}
