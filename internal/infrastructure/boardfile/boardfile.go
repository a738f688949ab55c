// Package boardfile reads a game snapshot exported by the engine: phase,
// units, centers, the legal-order sets per power and any pending press.
package boardfile

import (
	"encoding/json"
	"fmt"
	"os"

	"diplomacy-agent/internal/domain/entity"
)

type Snapshot struct {
	Phase     string                                 `json:"phase"`
	PhaseType entity.Phase                           `json:"phase_type"`
	Units     map[entity.Power][]string              `json:"units"`
	Centers   map[entity.Power][]string              `json:"centers"`
	Possible  map[entity.Power]entity.PossibleOrders `json:"possible_orders"`
	Press     []entity.PressMessage                  `json:"press,omitempty"`
}

func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse board file %s: %w", path, err)
	}

	if s.Phase == "" {
		return nil, fmt.Errorf("board file %s: missing phase", path)
	}
	if !s.PhaseType.Valid() {
		return nil, fmt.Errorf("board file %s: unknown phase_type %q", path, s.PhaseType)
	}
	return &s, nil
}

// Board converts the snapshot into the board state handed to prompts.
func (s *Snapshot) Board() entity.BoardState {
	return entity.BoardState{
		PhaseName: s.Phase,
		Units:     s.Units,
		Centers:   s.Centers,
	}
}
