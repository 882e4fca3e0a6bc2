package search

import (
	"fmt"
	"strings"

	"github.com/aretw0/rivercross/pkg/domain"
)

// Strategy selects a search driver.
type Strategy string

const (
	BFS   Strategy = "bfs"
	DFS   Strategy = "dfs"
	IDDFS Strategy = "iddfs"
	// AStar is the greedy best-first driver. The selector name is kept for compatibility;
	// the ordering ignores path cost except to break ties.
	AStar Strategy = "astar"
)

// Strategies lists every selector in a stable order.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, IDDFS, AStar}
}

// ParseStrategy validates a selector. Matching is case-insensitive.
func ParseStrategy(s string) (Strategy, error) {
	candidate := Strategy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Strategies() {
		if candidate == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of bfs, dfs, iddfs, astar)", ErrUnknownStrategy, s)
}

// Run dispatches to the driver selected by strategy.
func Run(strategy Strategy, start, goal domain.State, opts ...Option) (*Result, error) {
	switch strategy {
	case BFS:
		return BreadthFirst(start, goal, opts...), nil
	case DFS:
		return DepthFirst(start, goal, opts...), nil
	case IDDFS:
		return IterativeDeepening(start, goal, opts...)
	case AStar:
		return Greedy(start, goal, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}
}
