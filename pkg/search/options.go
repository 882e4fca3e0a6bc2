package search

import (
	"log/slog"

	"github.com/aretw0/rivercross/internal/logging"
)

// Hooks are optional callbacks fired while a driver runs.
type Hooks struct {
	// OnExpand is called once per expanded node with the number of successors generated.
	OnExpand func(node Node, successors int)
	// OnIteration is called by iterative deepening after every depth bound.
	OnIteration func(limit int, outcome Outcome, expanded int)
}

// Merge returns hooks that call h first and then other, for every callback either defines.
func (h Hooks) Merge(other Hooks) Hooks {
	merged := h
	if other.OnExpand != nil {
		if first := h.OnExpand; first != nil {
			merged.OnExpand = func(n Node, successors int) {
				first(n, successors)
				other.OnExpand(n, successors)
			}
		} else {
			merged.OnExpand = other.OnExpand
		}
	}
	if other.OnIteration != nil {
		if first := h.OnIteration; first != nil {
			merged.OnIteration = func(limit int, outcome Outcome, expanded int) {
				first(limit, outcome, expanded)
				other.OnIteration(limit, outcome, expanded)
			}
		} else {
			merged.OnIteration = other.OnIteration
		}
	}
	return merged
}

type config struct {
	maxDepth int
	hooks    Hooks
	logger   *slog.Logger
}

// Option configures a driver.
type Option func(*config)

// WithMaxDepth bounds iterative deepening. Zero, the default, leaves it unbounded.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithHooks registers search callbacks.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c
}

func (c *config) expanded(n Node, successors int) {
	if c.hooks.OnExpand != nil {
		c.hooks.OnExpand(n, successors)
	}
}

func (c *config) iteration(limit int, outcome Outcome, expanded int) {
	c.logger.Debug("depth iteration finished", "limit", limit, "outcome", outcome.String(), "expanded", expanded)
	if c.hooks.OnIteration != nil {
		c.hooks.OnIteration(limit, outcome, expanded)
	}
}
