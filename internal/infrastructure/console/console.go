// Package console renders round progress to the terminal.
package console

import (
	"github.com/fatih/color"

	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/domain/entity"
)

var _ output.PresenterPort = (*ConsolePresenter)(nil)

type ConsolePresenter struct{}

func NewConsolePresenter() *ConsolePresenter {
	return &ConsolePresenter{}
}

func (p *ConsolePresenter) ShowRoundStart(phase entity.Phase, phaseName string, powers int) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("\n━━━ %s (%s, %d powers) ━━━\n", phaseName, phase, powers)
}

func (p *ConsolePresenter) ShowPowerStart(power entity.Power) {
	dim := color.New(color.Faint)
	dim.Printf("  %s thinking...\n", power)
}

func (p *ConsolePresenter) ShowPowerResult(power entity.Power, orders []string, rejected []string, fellBack bool) {
	if fellBack {
		yellow := color.New(color.FgYellow, color.Bold)
		yellow.Printf("⚠ %s fell back to holds\n", power)
	} else {
		green := color.New(color.FgGreen)
		green.Printf("✓ %s\n", power)
	}

	dim := color.New(color.Faint)
	for _, order := range orders {
		dim.Printf("   %s\n", order)
	}
	if len(rejected) > 0 {
		red := color.New(color.FgRed)
		red.Printf("   rejected: %v\n", rejected)
	}
}

func (p *ConsolePresenter) ShowPowerError(power entity.Power, err error) {
	red := color.New(color.FgRed)
	red.Printf("❌ %s: %v\n", power, err)
}

// NopPresenter discards all progress output, for tests and quiet runs.
type NopPresenter struct{}

var _ output.PresenterPort = (*NopPresenter)(nil)

func (NopPresenter) ShowRoundStart(entity.Phase, string, int)               {}
func (NopPresenter) ShowPowerStart(entity.Power)                            {}
func (NopPresenter) ShowPowerResult(entity.Power, []string, []string, bool) {}
func (NopPresenter) ShowPowerError(entity.Power, error)                     {}

// Quiet returns a presenter for the verbosity asked for.
func Quiet(quiet bool) output.PresenterPort {
	if quiet {
		return NopPresenter{}
	}
	return NewConsolePresenter()
}
