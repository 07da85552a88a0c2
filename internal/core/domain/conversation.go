package domain

import "time"

// Role identifies who authored a conversation message.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationMessage is one immutable entry in a session history.
type ConversationMessage struct {
	// ID is unique per message.
	ID string

	// Seq is the assignment order within the session and defines display order.
	Seq int

	Role      Role
	Text      string
	CreatedAt time.Time
}

// SessionState is the turn-taking state of an assistant session.
type SessionState int

// Session states.
const (
	SessionIdle SessionState = iota
	SessionAwaitingReply
)

// String returns the string representation.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionAwaitingReply:
		return "awaiting_reply"
	default:
		return "unknown"
	}
}
