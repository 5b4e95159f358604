package models

// Message roles
const (
	RoleDeveloper = "developer"
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged turn of a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewMessage creates a message with the given role and content
func NewMessage(role, content string) Message {
	return Message{Role: role, Content: content}
}

// IsDeveloper reports whether the message carries the persistent instruction.
// Transcripts loaded from older dumps may use the "system" role for it.
func (m Message) IsDeveloper() bool {
	return m.Role == RoleDeveloper || m.Role == RoleSystem
}
