package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/taproom/internal/logging"
	"github.com/aretw0/taproom/internal/order"
	"github.com/aretw0/taproom/internal/resolver"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
)

// Engine runs the resolver pipeline for one turn:
// table -> drink -> snacks -> assembly, stopping at the first clarification.
// It keeps no state between turns and is safe for concurrent use.
type Engine struct {
	catalog   ports.Catalog
	tables    *resolver.TableResolver
	snacks    *resolver.SnackResolver
	assembler *order.Assembler
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	now       func() time.Time

	quantityNouns []string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger keeps the no-op default.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithQuantityNouns adds words that mark "for <digits>" as a quantity instead of a table.
func WithQuantityNouns(nouns ...string) EngineOption {
	return func(e *Engine) {
		e.quantityNouns = append(e.quantityNouns, nouns...)
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine builds the pipeline against catalog.
func NewEngine(catalog ports.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: catalog,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.tables = resolver.NewTableResolver(e.quantityNouns...)
	e.snacks = resolver.NewSnackResolver(catalog)
	e.assembler = order.NewAssembler(catalog)
	return e
}

// Resolve runs a full turn. Missing information, empty orders and unknown menu references
// are outcomes, not errors; the only error is a cancelled context.
func (e *Engine) Resolve(ctx context.Context, turn domain.Turn) (*domain.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := e.now()
	e.emitTurnStart(ctx, turn)

	outcome := e.resolve(ctx, turn)

	e.emitTurnEnd(ctx, turn, outcome, e.now().Sub(start))
	e.logger.DebugContext(ctx, "turn resolved", "outcome", outcome.Kind, "text_length", len(turn.Text))
	return outcome, nil
}

func (e *Engine) resolve(ctx context.Context, turn domain.Turn) *domain.Outcome {
	table := e.tables.Resolve(turn.Text, turn.Context.Table)
	if table.Pending() {
		return e.clarify(ctx, *table.Ask)
	}

	drink := resolver.ResolveDrink(turn.Text)

	snack := e.snacks.Resolve(turn.Text, turn.Context)
	if snack.Pending() {
		return e.clarify(ctx, *snack.Ask)
	}

	proposal, anomalies := e.assembler.Assemble(table.Value, drink, snack.Value)
	for _, anomaly := range anomalies {
		e.logger.WarnContext(ctx, "unknown menu reference skipped",
			"reference", anomaly.Reference, "reason", anomaly.Reason, "table", table.Value)
		e.emitUnknownMenuReference(ctx, anomaly)
	}

	if proposal == nil {
		return domain.NewEmptyOrderOutcome()
	}
	return domain.NewProposalOutcome(*proposal)
}

func (e *Engine) clarify(ctx context.Context, c domain.Clarification) *domain.Outcome {
	e.logger.DebugContext(ctx, "clarification required", "kind", c.Kind, "required_count", c.RequiredCount)
	e.emitClarification(ctx, c)
	return domain.NewClarificationOutcome(c)
}

// Menu returns the catalog items the engine prices against.
func (e *Engine) Menu() []domain.MenuItem {
	return e.catalog.Items()
}

// Flavours returns the crisp flavour labels offered in clarifications.
func (e *Engine) Flavours() []string {
	return e.snacks.Flavours()
}
