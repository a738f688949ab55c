package entity

import "strings"

type Power string

const (
	Austria Power = "AUSTRIA"
	England Power = "ENGLAND"
	France  Power = "FRANCE"
	Germany Power = "GERMANY"
	Italy   Power = "ITALY"
	Russia  Power = "RUSSIA"
	Turkey  Power = "TURKEY"
)

// AllPowers returns the seven powers in board order.
func AllPowers() []Power {
	return []Power{Austria, England, France, Germany, Italy, Russia, Turkey}
}

func (p Power) Valid() bool {
	switch p {
	case Austria, England, France, Germany, Italy, Russia, Turkey:
		return true
	}
	return false
}

// ParsePower normalizes a free-form power name (LLMs mix case freely).
func ParsePower(s string) (Power, bool) {
	p := Power(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", false
	}
	return p, true
}

// Relationship is the agent's stance toward another power.
type Relationship string

const (
	RelEnemy      Relationship = "Enemy"
	RelUnfriendly Relationship = "Unfriendly"
	RelNeutral    Relationship = "Neutral"
	RelFriendly   Relationship = "Friendly"
	RelAlly       Relationship = "Ally"
)

// ParseRelationship normalizes a free-form label ("enemy", "ALLY", ...).
func ParseRelationship(s string) (Relationship, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	normalized := strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:])
	r := Relationship(normalized)
	switch r {
	case RelEnemy, RelUnfriendly, RelNeutral, RelFriendly, RelAlly:
		return r, true
	}
	return "", false
}

// NeutralRelationships is the default stance toward every other power.
func NeutralRelationships(self Power) map[Power]Relationship {
	result := make(map[Power]Relationship, 6)
	for _, p := range AllPowers() {
		if p != self {
			result[p] = RelNeutral
		}
	}
	return result
}
