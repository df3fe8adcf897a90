// Package metrics exposes turn outcomes as Prometheus collectors fed by lifecycle hooks.
package metrics

import (
	"context"

	"github.com/aretw0/taproom/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of one engine.
type Metrics struct {
	Turns          *prometheus.CounterVec
	Clarifications *prometheus.CounterVec
	UnknownRefs    *prometheus.CounterVec
	TurnDuration   prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taproom_turns_total",
				Help: "Total number of resolved turns by outcome",
			},
			[]string{"outcome"},
		),
		Clarifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taproom_clarifications_total",
				Help: "Total number of clarifications asked by kind",
			},
			[]string{"kind"},
		),
		UnknownRefs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taproom_unknown_menu_references_total",
				Help: "Resolved products skipped because the catalog has no match",
			},
			[]string{"reason"},
		),
		TurnDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "taproom_turn_duration_seconds",
				Help:    "Duration of turn resolution",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
	}
	reg.MustRegister(m.Turns, m.Clarifications, m.UnknownRefs, m.TurnDuration)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurnEnd: func(_ context.Context, e *domain.TurnEvent) {
			m.Turns.WithLabelValues(string(e.Outcome)).Inc()
			m.TurnDuration.Observe(e.Duration.Seconds())
		},
		OnClarification: func(_ context.Context, e *domain.ClarificationEvent) {
			m.Clarifications.WithLabelValues(string(e.Kind)).Inc()
		},
		OnUnknownMenuReference: func(_ context.Context, e *domain.AnomalyEvent) {
			m.UnknownRefs.WithLabelValues(e.Reason).Inc()
		},
	}
}
