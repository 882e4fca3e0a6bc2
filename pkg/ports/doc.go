/*
Package ports defines the driven ports (interfaces) for the rivercross solver.

These interfaces decouple the solver from external implementations, allowing completed
solutions to be cached in various backends.

# Key Interfaces

  - SolutionCache: Stores finished solutions keyed by strategy, start and goal (e.g., Memory or Redis).
*/
package ports
