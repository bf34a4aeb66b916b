package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventParseStart EventType = "parse_start"
	EventParseDone  EventType = "parse_done"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ParseEvent describes one invocation of the parser.
// Result fields are zero on EventParseStart.
type ParseEvent struct {
	EventBase
	InputBytes int           `json:"input_bytes"`
	Nodes      int           `json:"nodes,omitempty"`
	Depth      int           `json:"depth,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	CacheHit   bool          `json:"cache_hit,omitempty"`
}

// LifecycleHooks defines callbacks for parser observability.
type LifecycleHooks struct {
	OnParseStart func(context.Context, *ParseEvent)
	OnParseDone  func(context.Context, *ParseEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnParseStart: chain(h.OnParseStart, other.OnParseStart),
		OnParseDone:  chain(h.OnParseDone, other.OnParseDone),
	}
}

func chain(a, b func(context.Context, *ParseEvent)) func(context.Context, *ParseEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *ParseEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
