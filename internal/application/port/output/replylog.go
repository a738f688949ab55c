package output

import (
	"time"

	"diplomacy-agent/internal/domain/entity"
)

// ReplyRecord is one audited LLM exchange. Every prompt sent on behalf of a
// power is recorded, whether or not the reply was usable.
type ReplyRecord struct {
	ID        string       `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Model     string       `json:"model"`
	Power     entity.Power `json:"power"`
	PhaseName string       `json:"phase"`
	Kind      string       `json:"kind"` // "orders", "retreats", "initialization"
	Prompt    string       `json:"prompt"`
	Reply     string       `json:"reply"`
	Outcome   string       `json:"outcome"`
}

type ReplyLogPort interface {
	Record(rec ReplyRecord)
	Close() error
}
