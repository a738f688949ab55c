package entity

// Phase selects which order prompt the agent renders. Movement phases ask
// for move/support/hold/convoy orders, retreat phases for retreat/disband
// orders for dislodged units.
type Phase string

const (
	PhaseMovement Phase = "movement"
	PhaseRetreat  Phase = "retreat"
)

func (p Phase) Valid() bool {
	return p == PhaseMovement || p == PhaseRetreat
}
