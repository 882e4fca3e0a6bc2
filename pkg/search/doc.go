/*
Package search implements the state-space search drivers for the rivercross puzzle.

Four strategies share one node arena (Tree), one successor rule (domain.Successors) and
one path reconstruction (Tree.Path):

  - BreadthFirst: FIFO frontier, fewest crossings.
  - DepthFirst: LIFO frontier.
  - IterativeDeepening: repeated depth-limited passes returning a tagged Outcome.
  - Greedy: priority frontier ordered by Score, selected as "astar".

Deduplication and priority use two separate notions of node equality. StateSet compares
nodes by state only; the priority frontier compares them with an explicit CompareFunc
(ByScore, then ByCost). Every frontier is paired with a pending set so a state already
waiting to be expanded is never enqueued twice.

Drivers are synchronous and keep the whole tree in memory until they return.
*/
package search
