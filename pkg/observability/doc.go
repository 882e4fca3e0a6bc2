/*
Package observability provides tools for monitoring the rivercross solver.

It turns the solver's lifecycle hooks into Prometheus metrics (searches by outcome,
expanded nodes, solution length, cache hits) and counts iterative deepening passes
through the search driver hooks that the HTTP server exposes on /metrics.
*/
package observability
