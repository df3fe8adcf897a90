package taproom

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/taproom/internal/logging"
	"github.com/aretw0/taproom/internal/runtime"
	"github.com/aretw0/taproom/pkg/adapters/file"
	"github.com/aretw0/taproom/pkg/adapters/memory"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
)

// Engine is the high-level entry point for the Taproom library.
// It wraps the internal runtime and adds optional memoization of turn outcomes.
type Engine struct {
	runtime       *runtime.Engine
	catalog       ports.Catalog
	menuPath      string
	cache         ports.TurnCache
	hooks         domain.LifecycleHooks
	logger        *slog.Logger
	quantityNouns []string
	fingerprint   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCatalog injects the menu the engine resolves and prices against.
func WithCatalog(c ports.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithMenuFile loads the menu from a YAML or JSON file. Ignored when WithCatalog is also given.
func WithMenuFile(path string) Option {
	return func(e *Engine) {
		e.menuPath = path
	}
}

// WithCache memoizes outcomes. Turns are pure, so this only saves work.
func WithCache(c ports.TurnCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithQuantityNouns extends the words that mark "for <digits>" as a quantity rather than a
// table. Needed whenever the menu gains a product sold in a new unit.
func WithQuantityNouns(nouns ...string) Option {
	return func(e *Engine) {
		e.quantityNouns = append(e.quantityNouns, nouns...)
	}
}

// New initializes a new Taproom Engine.
// Without WithCatalog or WithMenuFile it serves the built-in menu.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if eng.catalog == nil {
		if eng.menuPath != "" {
			c, err := file.LoadCatalog(eng.menuPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load menu: %w", err)
			}
			eng.catalog = c
			eng.logger = eng.logger.With("menu", eng.menuPath)
		} else {
			eng.catalog = memory.NewDefaultCatalog()
		}
	}

	fingerprint, err := catalogFingerprint(eng.catalog.Items(), eng.quantityNouns)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint catalog: %w", err)
	}
	eng.fingerprint = fingerprint

	eng.runtime = runtime.NewEngine(eng.catalog,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithQuantityNouns(eng.quantityNouns...),
	)
	return eng, nil
}

// Resolve runs one turn. Cache failures are logged and never fail the turn.
func (e *Engine) Resolve(ctx context.Context, turn domain.Turn) (*domain.Outcome, error) {
	if e.cache == nil {
		return e.runtime.Resolve(ctx, turn)
	}

	key, err := e.CacheKey(turn)
	if err != nil {
		e.logger.WarnContext(ctx, "turn cache key failed", "error", err)
		return e.runtime.Resolve(ctx, turn)
	}

	cached, err := e.cache.Get(ctx, key)
	switch {
	case err == nil:
		e.logger.DebugContext(ctx, "turn cache hit", "key", key)
		return cached, nil
	case !errors.Is(err, domain.ErrCacheMiss):
		e.logger.WarnContext(ctx, "turn cache read failed", "key", key, "error", err)
	}

	outcome, err := e.runtime.Resolve(ctx, turn)
	if err != nil {
		return nil, err
	}
	if err := e.cache.Set(ctx, key, outcome); err != nil {
		e.logger.WarnContext(ctx, "turn cache write failed", "key", key, "error", err)
	}
	return outcome, nil
}

// Menu returns the catalog items.
func (e *Engine) Menu() []domain.MenuItem {
	return e.runtime.Menu()
}

// Flavours returns the crisp flavour labels offered in clarifications.
func (e *Engine) Flavours() []string {
	return e.runtime.Flavours()
}

// Catalog returns the underlying menu lookup.
func (e *Engine) Catalog() ports.Catalog {
	return e.catalog
}

// CacheKey derives the memoization key of a turn: a SHA-256 over the engine's catalog
// fingerprint, the text and the normalized context.
func (e *Engine) CacheKey(turn domain.Turn) (string, error) {
	b, err := json.Marshal(turn)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(e.fingerprint))
	h.Write([]byte{0})
	h.Write(b)
	return "turn:" + hex.EncodeToString(h.Sum(nil)), nil
}

func catalogFingerprint(items []domain.MenuItem, nouns []string) (string, error) {
	b, err := json.Marshal(struct {
		Items []domain.MenuItem `json:"items"`
		Nouns []string          `json:"nouns"`
	}{items, nouns})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

var _ ports.Resolver = (*Engine)(nil)
