// Package agent holds the per-power state that persists across phases:
// strategic goals, relationships with the other powers, a private journal
// and the negotiation diary fed back into later prompts.
package agent

import (
	"fmt"
	"strings"
	"sync"

	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/domain/entity"
)

// recentDiaryEntries caps how many raw entries FormatDiary keeps after the
// consolidated head.
const recentDiaryEntries = 40

var _ output.PowerAgent = (*Agent)(nil)

type Agent struct {
	mu sync.Mutex

	power         entity.Power
	goals         []string
	relationships map[entity.Power]entity.Relationship
	journal       []string
	diary         []string
	consolidated  string

	logger output.LoggerPort
}

func New(power entity.Power, logger output.LoggerPort) *Agent {
	return &Agent{
		power:         power,
		relationships: entity.NeutralRelationships(power),
		logger:        logger.WithField("power", string(power)),
	}
}

func (a *Agent) Power() entity.Power { return a.power }

// Snapshot returns a copy of the agent's state safe to hand to a prompt
// builder while other phases mutate the agent.
func (a *Agent) Snapshot() entity.AgentState {
	a.mu.Lock()
	defer a.mu.Unlock()

	goals := make([]string, len(a.goals))
	copy(goals, a.goals)

	rels := make(map[entity.Power]entity.Relationship, len(a.relationships))
	for p, r := range a.relationships {
		rels[p] = r
	}

	return entity.AgentState{
		Goals:         goals,
		Relationships: rels,
		Diary:         a.formatDiaryLocked(),
	}
}

// AddJournal appends a private note that never feeds prompts, unlike the
// diary.
func (a *Agent) AddJournal(entry string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.journal = append(a.journal, entry)
}

func (a *Agent) Journal() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.journal...)
}

func (a *Agent) AddDiary(entry, phaseName string) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.diary = append(a.diary, fmt.Sprintf("[%s] %s", phaseName, entry))
}

// Consolidate replaces the diary's older entries with a single summary,
// keeping recent entries verbatim.
func (a *Agent) Consolidate(summary string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.consolidated = strings.TrimSpace(summary)
	if len(a.diary) > recentDiaryEntries {
		a.diary = a.diary[len(a.diary)-recentDiaryEntries:]
	}
}

func (a *Agent) formatDiaryLocked() string {
	var parts []string
	if a.consolidated != "" {
		parts = append(parts, "[CONSOLIDATED HISTORY]\n"+a.consolidated)
	}
	entries := a.diary
	if len(entries) > recentDiaryEntries {
		entries = entries[len(entries)-recentDiaryEntries:]
	}
	parts = append(parts, entries...)
	return strings.Join(parts, "\n")
}

// ApplyStateUpdate folds a model-suggested state change into the agent.
// Unknown keys are ignored, unknown powers and standings are skipped with
// a warning, and the agent never holds a relationship with itself.
func (a *Agent) ApplyStateUpdate(update map[string]any, phaseName string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if goals, ok := stringList(firstPresent(update, "updated_goals", "goals", "initial_goals")); ok {
		a.goals = goals
		a.logger.Debug("Goals updated", "phase", phaseName, "goals", goals)
	}

	raw := firstPresent(update, "updated_relationships", "relationships", "initial_relationships")
	rels, ok := raw.(map[string]any)
	if !ok {
		return
	}
	for name, value := range rels {
		power, ok := entity.ParsePower(name)
		if !ok || power == a.power {
			a.logger.Warn("Ignoring relationship for invalid power", "name", name, "phase", phaseName)
			continue
		}
		label, _ := value.(string)
		standing, ok := entity.ParseRelationship(label)
		if !ok {
			a.logger.Warn("Ignoring invalid relationship label", "target", name, "label", label, "phase", phaseName)
			continue
		}
		a.relationships[power] = standing
	}
}

// SetGoals overwrites the goal list, used when seeding a fresh agent.
func (a *Agent) SetGoals(goals []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.goals = append([]string(nil), goals...)
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return nil
}

func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out, len(out) > 0
}
