package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSearchStart EventType = "search_start"
	EventSearchEnd   EventType = "search_end"
	EventCacheHit    EventType = "cache_hit"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SearchEvent describes a search being started or finished.
type SearchEvent struct {
	EventBase
	Strategy string `json:"strategy"`
	Start    State  `json:"start"`
	Goal     State  `json:"goal"`

	// Set on EventSearchEnd and EventCacheHit only.
	Found    bool          `json:"found,omitempty"`
	Steps    int           `json:"steps,omitempty"`
	Expanded int           `json:"expanded,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for solver observability.
type LifecycleHooks struct {
	OnSearchStart func(context.Context, *SearchEvent)
	OnSearchEnd   func(context.Context, *SearchEvent)
	OnCacheHit    func(context.Context, *SearchEvent)
}

// Merge returns hooks that call h first and then other, for every callback either defines.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnSearchStart: chain(h.OnSearchStart, other.OnSearchStart),
		OnSearchEnd:   chain(h.OnSearchEnd, other.OnSearchEnd),
		OnCacheHit:    chain(h.OnCacheHit, other.OnCacheHit),
	}
}

func chain(a, b func(context.Context, *SearchEvent)) func(context.Context, *SearchEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *SearchEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
