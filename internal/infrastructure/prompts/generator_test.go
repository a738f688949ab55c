package prompts

import (
	"strings"
	"testing"

	"diplomacy-agent/internal/domain/entity"
)

func orderContextFixture() OrderContext {
	return OrderContext{
		Power: entity.France,
		Board: entity.BoardState{
			PhaseName: "S1901M",
			Units:     map[entity.Power][]string{entity.France: {"A PAR", "F BRE"}},
			Centers:   map[entity.Power][]string{entity.France: {"PAR", "BRE", "MAR"}},
		},
		Possible: entity.PossibleOrders{
			"PAR": {"A PAR H", "A PAR - BUR"},
			"BRE": {"F BRE H", "F BRE - MAO"},
		},
		Agent: entity.AgentState{
			Goals: []string{"Secure Iberia"},
			Relationships: map[entity.Power]entity.Relationship{
				entity.England: entity.RelUnfriendly,
				entity.Germany: entity.RelNeutral,
			},
		},
	}
}

func TestGenerateOrderPrompt(t *testing.T) {
	data := BuildOrderPromptData(orderContextFixture())

	prompt, err := GenerateOrderPrompt(MovementPrompt, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"You are playing as FRANCE",
		"S1901M",
		"- Secure Iberia",
		"ENGLAND: Unfriendly",
		"A PAR - BUR",
		"F BRE - MAO",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateOrderPrompt_InstructionsAppendedVerbatim(t *testing.T) {
	data := BuildOrderPromptData(orderContextFixture())

	prompt, err := GenerateOrderPrompt(MovementPrompt, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(prompt, MovementPrompt) {
		t.Error("phase instructions must end the prompt unmodified")
	}
}

func TestGenerateOrderPrompt_DeterministicOrdering(t *testing.T) {
	data := BuildOrderPromptData(orderContextFixture())
	first, err := GenerateOrderPrompt(MovementPrompt, data)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		data := BuildOrderPromptData(orderContextFixture())
		prompt, err := GenerateOrderPrompt(MovementPrompt, data)
		if err != nil {
			t.Fatal(err)
		}
		if prompt != first {
			t.Fatal("prompt generation must be deterministic for identical input")
		}
	}
}

func TestGenerateOrderPrompt_PressSection(t *testing.T) {
	ctx := orderContextFixture()
	ctx.Press = []entity.PressMessage{
		{Sender: entity.England, Recipient: entity.France, PhaseName: "S1901M", Content: "Shall we split the Channel?"},
		{Sender: entity.England, Recipient: entity.Germany, PhaseName: "S1901M", Content: "France is weak."},
	}

	prompt, err := GenerateOrderPrompt(MovementPrompt, BuildOrderPromptData(ctx))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(prompt, "Shall we split the Channel?") {
		t.Error("prompt missing press addressed to the power")
	}
	if strings.Contains(prompt, "France is weak.") {
		t.Error("prompt leaked press the power cannot see")
	}
}

func TestGenerateInitialStatePrompt(t *testing.T) {
	prompt, err := GenerateInitialStatePrompt(InitialStateData{
		Power:         entity.Turkey,
		AllowedLabels: "Enemy, Unfriendly, Neutral, Friendly, Ally",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "TURKEY") {
		t.Error("prompt missing the power name")
	}
	if !strings.Contains(prompt, "initial_goals") {
		t.Error("prompt missing the expected reply shape")
	}
}
