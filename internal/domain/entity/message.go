package entity

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn of an LLM conversation.
type Message struct {
	Role    MessageRole
	Content string
}

// ParsedReply is the two-section structure of an order reply: the free-text
// reasoning segment and the order lines that follow the orders heading.
type ParsedReply struct {
	Reasoning string
	Orders    []string
}
