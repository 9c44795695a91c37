// README: Chat message model shared by the gateway and the conversation engine.
package llm

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry in a conversation transcript. The
// transcript is owned by the caller: the server never stores it between
// turns, it only appends and returns.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CloneTranscript copies a transcript so a turn can append without mutating
// the caller's slice backing array.
func CloneTranscript(messages []Message) []Message {
	out := make([]Message, len(messages))
	copy(out, messages)
	return out
}
