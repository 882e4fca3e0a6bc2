package search

import "errors"

// ErrUnknownStrategy is returned when a strategy selector is not one of bfs, dfs, iddfs, astar.
var ErrUnknownStrategy = errors.New("unknown search strategy")

// ErrDepthLimit is returned by iterative deepening when a configured depth ceiling is passed
// before the search space is exhausted.
var ErrDepthLimit = errors.New("depth limit reached")
