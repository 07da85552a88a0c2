package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.Conversation = (*Session)(nil)

var sessionLog = logger.For("session")

// SessionConfig holds the collaborators a session needs.
type SessionConfig struct {
	Classifier *IntentClassifier
	Generator  *ResponseGenerator
	Scheduler  driven.ReplyScheduler
	Delay      time.Duration

	// Metrics is optional.
	Metrics driven.Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

// Session holds one assistant conversation for a work order.
//
// All state lives behind mu. The reply task computes its text without the
// lock and only takes it to append, so the scheduler goroutine never blocks
// a caller for longer than an append.
type Session struct {
	id        string
	workOrder domain.WorkOrder
	document  *domain.PlaybookDocument
	cfg       SessionConfig

	mu       sync.Mutex
	messages []domain.ConversationMessage
	state    domain.SessionState
	closed   bool
	cancel   func()
	turn     uint64 // bumped on each accepted submission
	replies  chan domain.ConversationMessage
}

// OpenSession starts a session with one assistant greeting. doc may be nil.
func OpenSession(wo domain.WorkOrder, doc *domain.PlaybookDocument, cfg SessionConfig) *Session {
	if cfg.Classifier == nil {
		cfg.Classifier = NewIntentClassifier()
	}
	if cfg.Generator == nil {
		cfg.Generator = NewResponseGenerator()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Session{
		id:        uuid.NewString(),
		workOrder: wo,
		document:  doc,
		cfg:       cfg,
		state:     domain.SessionIdle,
		// Capacity 1: at most one reply is ever in flight.
		replies: make(chan domain.ConversationMessage, 1),
	}
	s.appendLocked(domain.RoleAssistant, cfg.Generator.Greeting(doc, wo))

	sessionLog.Debug("%s opened for work order %s", s.id, wo.TaskID)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// WorkOrder returns the session's work order.
func (s *Session) WorkOrder() domain.WorkOrder {
	return s.workOrder
}

// Document returns the session's playbook, or nil.
func (s *Session) Document() *domain.PlaybookDocument {
	return s.document
}

// Submit appends the trimmed user text and schedules a reply.
func (s *Session) Submit(text string) (domain.ConversationMessage, error) {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ConversationMessage{}, domain.ErrSessionClosed
	}
	if trimmed == "" {
		s.mu.Unlock()
		return domain.ConversationMessage{}, domain.ErrEmptyInput
	}
	if s.state == domain.SessionAwaitingReply {
		s.mu.Unlock()
		sessionLog.Debug("%s: submission ignored, reply pending", s.id)
		return domain.ConversationMessage{}, domain.ErrReplyPending
	}

	msg := s.appendLocked(domain.RoleUser, trimmed)
	s.state = domain.SessionAwaitingReply
	s.turn++
	turn := s.turn
	s.mu.Unlock()

	// Scheduling happens outside the lock: a zero-delay scheduler may run
	// the task before Schedule returns.
	submittedAt := s.cfg.Now()
	cancel := s.cfg.Scheduler.Schedule(s.cfg.Delay, func() {
		s.deliver(trimmed, submittedAt)
	})

	// If the reply already ran and a newer submission took over, cancel
	// belongs to a finished task and must not replace the newer one.
	s.mu.Lock()
	if s.turn == turn && s.state == domain.SessionAwaitingReply && !s.closed {
		s.cancel = cancel
	}
	closed := s.closed
	s.mu.Unlock()
	if closed {
		cancel()
	}

	return msg, nil
}

// deliver runs on the scheduler's goroutine.
func (s *Session) deliver(question string, submittedAt time.Time) {
	intent := s.cfg.Classifier.Classify(question)
	text := s.cfg.Generator.Generate(intent, s.document, s.workOrder)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		sessionLog.Debug("%s: reply discarded after close", s.id)
		return
	}

	reply := s.appendLocked(domain.RoleAssistant, text)
	s.state = domain.SessionIdle
	s.cancel = nil

	select {
	case s.replies <- reply:
	default:
		// Nobody drained the previous notification; history is authoritative.
	}

	if s.cfg.Metrics != nil {
		s.cfg.Metrics.IntentClassified(intent)
		s.cfg.Metrics.ReplyDelivered(s.cfg.Now().Sub(submittedAt))
	}
	sessionLog.Debug("%s: replied with intent %s", s.id, intent)
}

// appendLocked adds a message. Caller must hold mu (or own s exclusively).
func (s *Session) appendLocked(role domain.Role, text string) domain.ConversationMessage {
	msg := domain.ConversationMessage{
		ID:        uuid.NewString(),
		Seq:       len(s.messages) + 1,
		Role:      role,
		Text:      text,
		CreatedAt: s.cfg.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a copy of the history in display order.
func (s *Session) Messages() []domain.ConversationMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ConversationMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// State returns the current turn-taking state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsTyping reports whether a reply is pending.
func (s *Session) IsTyping() bool {
	return s.State() == domain.SessionAwaitingReply
}

// Replies delivers each assistant reply after it is appended.
func (s *Session) Replies() <-chan domain.ConversationMessage {
	return s.replies
}

// Close discards the session and drops any pending reply.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	close(s.replies)
	sessionLog.Debug("%s closed", s.id)
}
