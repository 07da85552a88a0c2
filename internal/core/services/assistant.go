package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// AssistantService opens playbook-aware conversations for work orders.
type AssistantService struct {
	orders     driven.WorkOrderStore
	catalog    driving.PlaybookCatalog
	scheduler  driven.ReplyScheduler
	delay      time.Duration
	classifier *IntentClassifier
	generator  *ResponseGenerator
	metrics    driven.Metrics
}

// NewAssistantService creates an assistant service.
// Sessions wait delay before replying, using scheduler.
func NewAssistantService(
	orders driven.WorkOrderStore,
	catalog driving.PlaybookCatalog,
	scheduler driven.ReplyScheduler,
	delay time.Duration,
) *AssistantService {
	return &AssistantService{
		orders:     orders,
		catalog:    catalog,
		scheduler:  scheduler,
		delay:      delay,
		classifier: NewIntentClassifier(),
		generator:  NewResponseGenerator(),
	}
}

// SetMetrics sets the optional metrics recorder.
func (s *AssistantService) SetMetrics(m driven.Metrics) {
	s.metrics = m
}

// Open starts a session for the work order.
func (s *AssistantService) Open(ctx context.Context, taskID string) (driving.Conversation, error) {
	wo, err := s.orders.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("loading work order %s: %w", taskID, err)
	}

	doc := s.catalog.Lookup(wo.IssueDocumentID)
	if doc == nil && wo.IssueDocumentID != "" {
		logger.Warn("Work order %s references unknown playbook %q", wo.TaskID, wo.IssueDocumentID)
	}

	return OpenSession(*wo, doc, SessionConfig{
		Classifier: s.classifier,
		Generator:  s.generator,
		Scheduler:  s.scheduler,
		Delay:      s.delay,
		Metrics:    s.metrics,
	}), nil
}

// Ask classifies and answers a single question immediately.
func (s *AssistantService) Ask(ctx context.Context, taskID, question string) (*domain.Answer, error) {
	wo, err := s.orders.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("loading work order %s: %w", taskID, err)
	}

	doc := s.catalog.Lookup(wo.IssueDocumentID)
	intent := s.classifier.Classify(question)
	logger.Debug("Question %q for %s classified as %s", question, taskID, intent)

	if s.metrics != nil {
		s.metrics.IntentClassified(intent)
	}

	return &domain.Answer{
		TaskID:   wo.TaskID,
		Question: question,
		Intent:   intent,
		Text:     s.generator.Generate(intent, doc, *wo),
	}, nil
}
