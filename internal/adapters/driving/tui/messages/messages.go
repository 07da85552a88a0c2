// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewQueue is the work order priority queue.
	ViewQueue ViewType = iota
	// ViewChat is the assistant conversation for one work order.
	ViewChat
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewQueue:
		return "queue"
	case ViewChat:
		return "chat"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// QueueLoaded carries the open work orders grouped by priority.
type QueueLoaded struct {
	Queue *domain.PriorityQueue
	Err   error
}

// ChatRequested asks the app to open an assistant session.
type ChatRequested struct {
	WorkOrder domain.WorkOrder
}

// SessionOpened carries a newly opened conversation.
type SessionOpened struct {
	Conversation driving.Conversation
	Err          error
}

// ReplyReceived is delivered when the assistant reply has been appended.
// Closed is true when the session ended before a reply arrived.
type ReplyReceived struct {
	SessionID string
	Message   domain.ConversationMessage
	Closed    bool
}

// WorkOrderResolved carries the outcome of resolving a work order.
type WorkOrderResolved struct {
	Result *domain.ResolveResult
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
