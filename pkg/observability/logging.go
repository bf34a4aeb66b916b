package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
)

// LoggingHooks writes one debug record per finished parse.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnParseDone: func(ctx context.Context, e *domain.ParseEvent) {
			logger.DebugContext(ctx, "parse_done",
				"bytes", e.InputBytes,
				"nodes", e.Nodes,
				"depth", e.Depth,
				"duration", e.Duration,
				"cache_hit", e.CacheHit,
			)
		},
	}
}
