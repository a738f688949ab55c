package entity

// RecipientGlobal marks a press message broadcast to the whole table.
const RecipientGlobal Power = "GLOBAL"

// PressMessage is one diplomatic message exchanged during negotiation.
type PressMessage struct {
	Sender    Power  `json:"sender"`
	Recipient Power  `json:"recipient"`
	PhaseName string `json:"phase"`
	Content   string `json:"content"`
}

// VisiblePress returns the chronological subset of messages the given power
// can legitimately see: broadcasts plus anything it sent or received.
func VisiblePress(messages []PressMessage, power Power) []PressMessage {
	visible := make([]PressMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Recipient == RecipientGlobal || msg.Sender == power || msg.Recipient == power {
			visible = append(visible, msg)
		}
	}
	return visible
}
