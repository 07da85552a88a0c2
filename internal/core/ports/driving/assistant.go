package driving

import (
	"context"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// AssistantService opens assistant conversations for work orders.
type AssistantService interface {
	// Open starts a conversation for the work order with the given task ID.
	// The conversation starts with one assistant greeting.
	Open(ctx context.Context, taskID string) (Conversation, error)

	// Ask answers a single question about a work order immediately,
	// without a session or reply delay.
	Ask(ctx context.Context, taskID, question string) (*domain.Answer, error)
}

// Conversation is one assistant session bound to a single work order.
type Conversation interface {
	// ID returns the session identifier.
	ID() string

	// WorkOrder returns the work order the session was opened for.
	WorkOrder() domain.WorkOrder

	// Document returns the session playbook, or nil if there is none.
	Document() *domain.PlaybookDocument

	// Submit appends a user message and schedules the assistant reply.
	// Returns domain.ErrEmptyInput, domain.ErrReplyPending or
	// domain.ErrSessionClosed without touching the history.
	Submit(text string) (domain.ConversationMessage, error)

	// Messages returns a copy of the history in display order.
	Messages() []domain.ConversationMessage

	// State returns the current turn-taking state.
	State() domain.SessionState

	// Replies delivers each assistant reply after it has been appended.
	// The channel is closed by Close.
	Replies() <-chan domain.ConversationMessage

	// Close discards the session. A pending reply is dropped.
	Close()
}
