package runtime

import (
	"context"
	"time"

	"github.com/aretw0/taproom/pkg/domain"
)

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t}
}

func (e *Engine) emitTurnStart(ctx context.Context, turn domain.Turn) {
	if e.hooks.OnTurnStart == nil {
		return
	}
	e.hooks.OnTurnStart(ctx, &domain.TurnEvent{
		EventBase:  e.base(domain.EventTurnStart),
		TextLength: len(turn.Text),
	})
}

func (e *Engine) emitTurnEnd(ctx context.Context, turn domain.Turn, outcome *domain.Outcome, elapsed time.Duration) {
	if e.hooks.OnTurnEnd == nil {
		return
	}
	e.hooks.OnTurnEnd(ctx, &domain.TurnEvent{
		EventBase:  e.base(domain.EventTurnEnd),
		TextLength: len(turn.Text),
		Outcome:    outcome.Kind,
		Duration:   elapsed,
	})
}

func (e *Engine) emitClarification(ctx context.Context, c domain.Clarification) {
	if e.hooks.OnClarification == nil {
		return
	}
	e.hooks.OnClarification(ctx, &domain.ClarificationEvent{
		EventBase:     e.base(domain.EventClarification),
		Kind:          c.Kind,
		RequiredCount: c.RequiredCount,
	})
}

func (e *Engine) emitUnknownMenuReference(ctx context.Context, anomaly domain.Anomaly) {
	if e.hooks.OnUnknownMenuReference == nil {
		return
	}
	e.hooks.OnUnknownMenuReference(ctx, &domain.AnomalyEvent{
		EventBase: e.base(domain.EventUnknownMenuRef),
		Anomaly:   anomaly,
	})
}
