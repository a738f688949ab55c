package output

import "diplomacy-agent/internal/domain/entity"

// PresenterPort surfaces round progress to whoever is watching the run.
type PresenterPort interface {
	ShowRoundStart(phase entity.Phase, phaseName string, powers int)
	ShowPowerStart(power entity.Power)
	ShowPowerResult(power entity.Power, orders []string, rejected []string, fellBack bool)
	ShowPowerError(power entity.Power, err error)
}
