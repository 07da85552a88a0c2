// Package metrics exports assistant and sync counters to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
)

// Ensure Recorder implements the interface.
var _ driven.Metrics = (*Recorder)(nil)

// Namespace prefixes every metric name.
const Namespace = "techassist"

// Recorder implements driven.Metrics with Prometheus collectors.
type Recorder struct {
	intents   *prometheus.CounterVec
	replies   prometheus.Histogram
	syncs     *prometheus.CounterVec
	toolCalls *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "intents_classified_total",
				Help:      "Questions classified, by intent",
			},
			[]string{"intent"},
		),
		replies: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "reply_latency_seconds",
				Help:      "Time from question submission to reply append",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8),
			},
		),
		syncs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "sync_attempts_total",
				Help:      "Work order pushes to the backend, by outcome",
			},
			[]string{"status"},
		),
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "tool_calls_total",
				Help:      "MCP tool calls, by tool and outcome",
			},
			[]string{"tool", "status"},
		),
	}

	for _, c := range []prometheus.Collector{r.intents, r.replies, r.syncs, r.toolCalls} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// IntentClassified counts a classified question.
func (r *Recorder) IntentClassified(intent domain.Intent) {
	r.intents.WithLabelValues(intent.String()).Inc()
}

// ReplyDelivered observes reply latency.
func (r *Recorder) ReplyDelivered(latency time.Duration) {
	r.replies.Observe(latency.Seconds())
}

// SyncAttempted counts a backend push.
func (r *Recorder) SyncAttempted(success bool) {
	r.syncs.WithLabelValues(outcome(success)).Inc()
}

// ToolCalled counts an MCP tool invocation.
func (r *Recorder) ToolCalled(tool string, success bool) {
	r.toolCalls.WithLabelValues(tool, outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
