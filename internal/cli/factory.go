// Package cli implements the arbor commands on top of the library.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Runtime bundles the parser and the services built around it from configuration.
type Runtime struct {
	Config   config.Config
	Logger   *slog.Logger
	Parser   *arbor.Parser
	Cache    ports.DocumentCache  // nil when caching is disabled
	Registry *prometheus.Registry // nil when metrics are disabled

	closers []func() error
}

// NewRuntime initializes a parser with standard CLI conventions.
func NewRuntime(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	rt := &Runtime{Config: cfg, Logger: logger}

	policy, err := domain.ParseTrailingTextPolicy(cfg.Parser.TrailingText)
	if err != nil {
		return nil, err
	}

	opts := []arbor.Option{
		arbor.WithLogger(logger),
		arbor.WithTrailingText(policy),
		arbor.WithUnquotedValues(cfg.Parser.UnquotedValues),
		arbor.WithLifecycleHooks(observability.LoggingHooks(logger)),
	}

	cache, err := rt.createCache(ctx)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		rt.Cache = cache
		opts = append(opts, arbor.WithCache(cache))
	}

	if cfg.Metrics.Enabled {
		rt.Registry = prometheus.NewRegistry()
		opts = append(opts, arbor.WithLifecycleHooks(observability.NewMetrics(rt.Registry).Hooks()))
	}

	rt.Parser = arbor.New(opts...)
	return rt, nil
}

func (rt *Runtime) createCache(ctx context.Context) (ports.DocumentCache, error) {
	c := rt.Config.Cache
	switch c.Backend {
	case config.CacheMemory:
		rt.Logger.Debug("Document cache enabled", "backend", c.Backend, "ttl", c.TTL)
		return memory.NewCache(memory.WithTTL(c.TTL)), nil
	case config.CacheRedis:
		cache := redis.New(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			redis.WithTTL(c.TTL),
			redis.WithPrefix(c.Prefix),
		)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			_ = cache.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", c.Redis.Addr, err)
		}
		rt.closers = append(rt.closers, cache.Close)
		rt.Logger.Debug("Document cache enabled", "backend", c.Backend, "addr", c.Redis.Addr)
		return cache, nil
	}
	return nil, nil
}

// Close releases connections opened by NewRuntime.
func (rt *Runtime) Close() error {
	var first error
	for _, closeFn := range rt.closers {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
	}
	rt.closers = nil
	return first
}
