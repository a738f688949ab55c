package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                          {}
func (nopLogger) Info(string, ...any)                           {}
func (nopLogger) Warn(string, ...any)                           {}
func (nopLogger) Error(string, ...any)                          {}
func (l nopLogger) WithField(string, any) output.LoggerPort     { return l }
func (l nopLogger) WithFields(map[string]any) output.LoggerPort { return l }
func (nopLogger) Close() error                                  { return nil }

type scriptedLLM struct {
	reply string
	err   error
}

func (s *scriptedLLM) Chat(context.Context, output.ChatRequest) (*output.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: s.reply},
	}, nil
}

func TestNew_StartsNeutralTowardAllOthers(t *testing.T) {
	a := New(entity.France, nopLogger{})
	state := a.Snapshot()

	assert.Len(t, state.Relationships, 6)
	assert.NotContains(t, state.Relationships, entity.France)
	for _, standing := range state.Relationships {
		assert.Equal(t, entity.RelNeutral, standing)
	}
}

func TestApplyStateUpdate_GoalsAndRelationships(t *testing.T) {
	a := New(entity.France, nopLogger{})

	a.ApplyStateUpdate(map[string]any{
		"updated_goals": []any{"Take Belgium", "Keep England friendly"},
		"updated_relationships": map[string]any{
			"england": "Friendly",
			"GERMANY": "enemy",
		},
	}, "S1901M")

	state := a.Snapshot()
	assert.Equal(t, []string{"Take Belgium", "Keep England friendly"}, state.Goals)
	assert.Equal(t, entity.RelFriendly, state.Relationships[entity.England])
	assert.Equal(t, entity.RelEnemy, state.Relationships[entity.Germany])
	assert.Equal(t, entity.RelNeutral, state.Relationships[entity.Italy])
}

func TestApplyStateUpdate_IgnoresSelfAndGarbage(t *testing.T) {
	a := New(entity.France, nopLogger{})

	a.ApplyStateUpdate(map[string]any{
		"updated_relationships": map[string]any{
			"FRANCE":   "Ally",
			"ATLANTIS": "Friendly",
			"ENGLAND":  "Best Friends Forever",
		},
	}, "S1901M")

	state := a.Snapshot()
	assert.NotContains(t, state.Relationships, entity.France)
	assert.Equal(t, entity.RelNeutral, state.Relationships[entity.England])
}

func TestJournal_NeverReachesSnapshot(t *testing.T) {
	a := New(entity.Russia, nopLogger{})
	a.AddJournal("England lied about the Channel.")

	assert.Equal(t, []string{"England lied about the Channel."}, a.Journal())
	assert.NotContains(t, a.Snapshot().Diary, "England lied")
}

func TestDiary_EntriesCarryPhaseAndConsolidation(t *testing.T) {
	a := New(entity.Turkey, nopLogger{})

	a.AddDiary("Promised Russia the Black Sea.", "S1901M")
	a.AddDiary("Russia moved to BLA anyway.", "F1901M")
	a.AddDiary("   ", "F1901M")

	diary := a.Snapshot().Diary
	assert.Contains(t, diary, "[S1901M] Promised Russia the Black Sea.")
	assert.Contains(t, diary, "[F1901M] Russia moved to BLA anyway.")
	assert.Equal(t, 2, strings.Count(diary, "\n")+1)

	a.Consolidate("Opened with a Russian feint.")
	assert.Contains(t, a.Snapshot().Diary, "[CONSOLIDATED HISTORY]\nOpened with a Russian feint.")
}

func TestInitialize_AppliesModelState(t *testing.T) {
	llm := &scriptedLLM{reply: `Here is my opening plan.

{"initial_goals": ["Hold the Channel", "Ally with Germany"],
 "initial_relationships": {"GERMANY": "Friendly", "FRANCE": "Unfriendly"}}`}

	a := New(entity.England, nopLogger{})
	a.Initialize(context.Background(), llm, nil, "test-model", "")

	state := a.Snapshot()
	assert.Equal(t, []string{"Hold the Channel", "Ally with Germany"}, state.Goals)
	assert.Equal(t, entity.RelFriendly, state.Relationships[entity.Germany])
	assert.Equal(t, entity.RelUnfriendly, state.Relationships[entity.France])
}

func TestInitialize_DefaultsOnTransportError(t *testing.T) {
	a := New(entity.England, nopLogger{})
	a.Initialize(context.Background(), &scriptedLLM{err: errors.New("boom")}, nil, "test-model", "")

	state := a.Snapshot()
	require.NotEmpty(t, state.Goals)
	assert.Equal(t, defaultGoals, state.Goals)
	assert.Equal(t, entity.RelNeutral, state.Relationships[entity.Germany])
}

func TestInitialize_DefaultsOnUnparsableReply(t *testing.T) {
	a := New(entity.England, nopLogger{})
	a.Initialize(context.Background(), &scriptedLLM{reply: "no json here"}, nil, "test-model", "")

	assert.Equal(t, defaultGoals, a.Snapshot().Goals)
}
