package prompts

import (
	"bytes"
	"sort"
	"text/template"

	"diplomacy-agent/internal/domain/entity"
)

type RelationshipInfo struct {
	Power    entity.Power
	Standing entity.Relationship
}

type LocationOrders struct {
	Location string
	Options  []string
}

type OrderPromptData struct {
	Power         entity.Power
	PhaseName     string
	Goals         []string
	Relationships []RelationshipInfo
	Units         []string
	Centers       []string
	Possible      []LocationOrders
	Diary         string
	Press         []entity.PressMessage
}

// BuildOrderPromptData flattens an order request into template data with
// deterministic ordering.
func BuildOrderPromptData(req OrderContext) OrderPromptData {
	rels := make([]RelationshipInfo, 0, len(req.Agent.Relationships))
	for power, standing := range req.Agent.Relationships {
		rels = append(rels, RelationshipInfo{Power: power, Standing: standing})
	}
	sort.Slice(rels, func(i, j int) bool { return rels[i].Power < rels[j].Power })

	possible := make([]LocationOrders, 0, len(req.Possible))
	for location, options := range req.Possible {
		possible = append(possible, LocationOrders{Location: location, Options: options})
	}
	sort.Slice(possible, func(i, j int) bool { return possible[i].Location < possible[j].Location })

	return OrderPromptData{
		Power:         req.Power,
		PhaseName:     req.Board.PhaseName,
		Goals:         req.Agent.Goals,
		Relationships: rels,
		Units:         req.Board.Units[req.Power],
		Centers:       req.Board.Centers[req.Power],
		Possible:      possible,
		Diary:         req.Agent.Diary,
		Press:         entity.VisiblePress(req.Press, req.Power),
	}
}

// OrderContext is the slice of an order request the generator needs.
type OrderContext struct {
	Power    entity.Power
	Board    entity.BoardState
	Possible entity.PossibleOrders
	Agent    entity.AgentState
	Press    []entity.PressMessage
}

// GenerateOrderPrompt renders the board context and appends the phase
// instructions verbatim. The instructions text is never templated, so the
// phase templates round-trip byte-for-byte.
func GenerateOrderPrompt(instructions string, data OrderPromptData) (string, error) {
	tmpl, err := template.New("context").Parse(contextTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	buf.WriteString("\n")
	buf.WriteString(instructions)
	return buf.String(), nil
}

type InitialStateData struct {
	Power         entity.Power
	AllowedLabels string
}

// GenerateInitialStatePrompt renders the opening-strategy prompt used to
// seed a fresh agent's goals and relationships.
func GenerateInitialStatePrompt(data InitialStateData) (string, error) {
	tmpl, err := template.New("initial_state").Parse(initialStateTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
