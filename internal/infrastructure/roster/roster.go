// Package roster loads the game roster: which model plays each power and
// where per-power prompt overrides live.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"diplomacy-agent/internal/domain/entity"
)

type Seat struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type Roster struct {
	// Powers maps power names to the seat playing them. Powers absent
	// from the roster sit the game out.
	Powers map[entity.Power]Seat `yaml:"powers"`

	// PromptsDir holds optional <power>_system_prompt.txt overrides.
	PromptsDir string `yaml:"prompts_dir"`

	// ReplyLogDir is where the exchange audit log is written.
	ReplyLogDir string `yaml:"reply_log_dir"`

	DefaultModel       string  `yaml:"default_model"`
	DefaultTemperature float32 `yaml:"default_temperature"`
}

func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}

	if err := r.normalize(); err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	r.applyDefaults()
	return &r, nil
}

// normalize folds power names to canonical form and validates every seat.
func (r *Roster) normalize() error {
	if len(r.Powers) == 0 {
		return fmt.Errorf("no powers configured")
	}
	powers := make(map[entity.Power]Seat, len(r.Powers))
	for name, seat := range r.Powers {
		power, ok := entity.ParsePower(string(name))
		if !ok {
			return fmt.Errorf("unknown power %q", name)
		}
		if seat.Model == "" && r.DefaultModel == "" {
			return fmt.Errorf("power %s has no model and no default_model is set", power)
		}
		powers[power] = seat
	}
	r.Powers = powers
	return nil
}

func (r *Roster) applyDefaults() {
	if r.ReplyLogDir == "" {
		r.ReplyLogDir = "log"
	}
	for power, seat := range r.Powers {
		if seat.Model == "" {
			seat.Model = r.DefaultModel
		}
		if seat.Temperature == 0 {
			seat.Temperature = r.DefaultTemperature
		}
		r.Powers[power] = seat
	}
}

// PowerList returns the configured powers in board order.
func (r *Roster) PowerList() []entity.Power {
	var powers []entity.Power
	for _, power := range entity.AllPowers() {
		if _, ok := r.Powers[power]; ok {
			powers = append(powers, power)
		}
	}
	return powers
}
