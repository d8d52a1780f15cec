package conversation

import "pizzaiolo/internal/order"

// Message roles, matching the chat wire format.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a conversation's append-only history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TurnResult is the outcome of processing one user turn.
type TurnResult struct {
	Reply    string             `json:"message"`
	Order    order.PartialOrder `json:"order"`
	Complete bool               `json:"complete"`
}

// LastUserMessage returns the content of the most recent user-authored
// message in history, or "" when there is none.
func LastUserMessage(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content
		}
	}
	return ""
}
