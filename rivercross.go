package rivercross

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/rivercross/internal/logging"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/ports"
	"github.com/aretw0/rivercross/pkg/search"
)

// Solver is the high-level entry point for the rivercross library.
// It wraps the search drivers and adds caching, logging and lifecycle hooks.
type Solver struct {
	cache       ports.SolutionCache
	hooks       domain.LifecycleHooks
	searchHooks search.Hooks
	logger      *slog.Logger
	maxDepth    int
	inflight    keyLocks
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithCache stores finished solutions in cache and answers repeated solves from it.
func WithCache(cache ports.SolutionCache) Option {
	return func(s *Solver) {
		s.cache = cache
	}
}

// WithLifecycleHooks registers observability hooks. Calling it more than once chains the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Solver) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithSearchHooks registers per-node and per-iteration callbacks forwarded to the search
// drivers. Calling it more than once chains the hooks.
func WithSearchHooks(hooks search.Hooks) Option {
	return func(s *Solver) {
		s.searchHooks = s.searchHooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithMaxDepth bounds iterative deepening. Zero leaves it unbounded.
func WithMaxDepth(depth int) Option {
	return func(s *Solver) {
		s.maxDepth = depth
	}
}

// New initializes a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// Report is the answer to a Solve call.
type Report struct {
	*domain.Solution
	// Cached is true when the solution came from the cache instead of a fresh search.
	Cached bool
}

// Solve finds a path from start to goal with the given strategy.
// An exhausted search is not an error: the report has Found == false.
func (s *Solver) Solve(ctx context.Context, strategy search.Strategy, start, goal domain.State) (*Report, error) {
	strategy, err := search.ParseStrategy(string(strategy))
	if err != nil {
		return nil, err
	}

	key := ports.CacheKey(string(strategy), start, goal)
	event := func(t domain.EventType) *domain.SearchEvent {
		return &domain.SearchEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: t},
			Strategy:  string(strategy),
			Start:     start,
			Goal:      goal,
		}
	}

	// Identical requests wait for the first one so they can be answered from the cache.
	if s.cache != nil {
		unlock := s.inflight.Lock(key)
		defer unlock()
	}

	if sol := s.lookup(ctx, key); sol != nil {
		if s.hooks.OnCacheHit != nil {
			e := event(domain.EventCacheHit)
			e.Found, e.Steps, e.Expanded = sol.Found, sol.Steps(), sol.Expanded
			s.hooks.OnCacheHit(ctx, e)
		}
		s.logger.Debug("solution served from cache", "strategy", strategy, "key", key)
		return &Report{Solution: sol, Cached: true}, nil
	}

	if s.hooks.OnSearchStart != nil {
		s.hooks.OnSearchStart(ctx, event(domain.EventSearchStart))
	}
	s.logger.Debug("search started", "strategy", strategy, "start", domain.Encode(start), "goal", domain.Encode(goal))

	began := time.Now()
	res, err := search.Run(strategy, start, goal,
		search.WithMaxDepth(s.maxDepth),
		search.WithLogger(s.logger),
		search.WithHooks(s.searchHooks),
	)
	elapsed := time.Since(began)

	end := event(domain.EventSearchEnd)
	end.Duration = elapsed
	end.Err = err
	if res != nil {
		end.Found, end.Expanded = res.Found, res.Expanded
		end.Steps = len(res.Path())
	}
	if s.hooks.OnSearchEnd != nil {
		s.hooks.OnSearchEnd(ctx, end)
	}

	if err != nil {
		s.logger.Warn("search failed", "strategy", strategy, "error", err)
		return nil, err
	}

	sol := res.Solution()
	s.logger.Debug("search finished",
		"strategy", strategy,
		"found", sol.Found,
		"steps", sol.Steps(),
		"expanded", sol.Expanded,
		"duration", elapsed,
	)

	s.store(ctx, key, sol)
	return &Report{Solution: sol}, nil
}

// SolveEncoded decodes start and goal from the persisted two-line format and solves.
func (s *Solver) SolveEncoded(ctx context.Context, strategy, start, goal string) (*Report, error) {
	st, err := search.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	from, err := domain.Decode(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	to, err := domain.Decode(goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	return s.Solve(ctx, st, from, to)
}

func (s *Solver) lookup(ctx context.Context, key string) *domain.Solution {
	if s.cache == nil {
		return nil
	}
	sol, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrSolutionNotFound) {
			s.logger.Warn("cache lookup failed", "key", key, "error", err)
		}
		return nil
	}
	return sol
}

func (s *Solver) store(ctx context.Context, key string, sol *domain.Solution) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, key, sol); err != nil {
		s.logger.Warn("cache store failed", "key", key, "error", err)
	}
}
