package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/taproom"
	"github.com/aretw0/taproom/internal/config"
	"github.com/aretw0/taproom/internal/metrics"
	"github.com/aretw0/taproom/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/taproom/pkg/adapters/redis"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the engine with the infrastructure built for it.
type Services struct {
	Engine   *taproom.Engine
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry

	closers []func() error
}

// NewServices initializes an engine with standard CLI conventions: metrics and debug hooks,
// the configured menu and the configured cache backend.
func NewServices(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Services, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	svc := &Services{Metrics: m, Registry: reg}

	engineOpts := []taproom.Option{
		taproom.WithLogger(logger),
		taproom.WithLifecycleHooks(m.Hooks().Merge(debugHooks(logger))),
		taproom.WithQuantityNouns(cfg.Menu.QuantityNouns...),
	}
	if cfg.Menu.Path != "" {
		engineOpts = append(engineOpts, taproom.WithMenuFile(cfg.Menu.Path))
	}

	cache, closer, err := newCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		svc.closers = append(svc.closers, closer)
	}
	if cache != nil {
		engineOpts = append(engineOpts, taproom.WithCache(cache))
	}

	engine, err := taproom.New(engineOpts...)
	if err != nil {
		_ = svc.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	svc.Engine = engine
	return svc, nil
}

// MetricsHandler serves the registry in the Prometheus exposition format.
func (s *Services) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})
}

// Close releases the cache connection, if any.
func (s *Services) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	s.closers = nil
	return errors.Join(errs...)
}

// newCache builds the configured turn cache. An unreachable Redis is logged, not fatal:
// cache failures never fail a turn.
func newCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ports.TurnCache, func() error, error) {
	switch cfg.Backend {
	case "", config.CacheNone:
		return nil, nil, nil
	case config.CacheMemory:
		c := memory.NewCache(cfg.TTL, memory.WithMaxEntries(cfg.MaxEntries))
		return c, c.Close, nil
	case config.CacheRedis:
		c := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redisAdapter.WithTTL(cfg.TTL),
			redisAdapter.WithPrefix(cfg.Redis.Prefix),
		)
		if err := c.Ping(ctx); err != nil {
			logger.Warn("redis cache unreachable, turns will be computed", "addr", cfg.Redis.Addr, "error", err)
		}
		return c, c.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// debugHooks trace the pipeline at debug level.
func debugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurnStart: func(ctx context.Context, e *domain.TurnEvent) {
			logger.DebugContext(ctx, "turn started", "text_length", e.TextLength)
		},
		OnClarification: func(ctx context.Context, e *domain.ClarificationEvent) {
			logger.DebugContext(ctx, "clarification requested", "kind", e.Kind, "required", e.RequiredCount)
		},
	}
}
