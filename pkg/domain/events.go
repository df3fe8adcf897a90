package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTurnStart      EventType = "turn_start"
	EventTurnEnd        EventType = "turn_end"
	EventClarification  EventType = "clarification"
	EventUnknownMenuRef EventType = "unknown_menu_reference"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TurnEvent marks the start or end of a resolver pass.
type TurnEvent struct {
	EventBase
	TextLength int           `json:"text_length"`
	Outcome    OutcomeKind   `json:"outcome,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
}

// ClarificationEvent is emitted whenever a turn short-circuits on a question.
type ClarificationEvent struct {
	EventBase
	Kind          ClarificationKind `json:"kind"`
	RequiredCount int               `json:"required_count,omitempty"`
}

// AnomalyEvent is emitted for every unknown menu reference skipped during assembly.
type AnomalyEvent struct {
	EventBase
	Anomaly
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTurnStart            func(context.Context, *TurnEvent)
	OnTurnEnd              func(context.Context, *TurnEvent)
	OnClarification        func(context.Context, *ClarificationEvent)
	OnUnknownMenuReference func(context.Context, *AnomalyEvent)
}

// Merge combines two hook sets; both callbacks run, receiver first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTurnStart:            chain(h.OnTurnStart, other.OnTurnStart),
		OnTurnEnd:              chain(h.OnTurnEnd, other.OnTurnEnd),
		OnClarification:        chain(h.OnClarification, other.OnClarification),
		OnUnknownMenuReference: chain(h.OnUnknownMenuReference, other.OnUnknownMenuReference),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
