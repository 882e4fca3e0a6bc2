/*
Package domain contains the core domain models of the rivercross puzzle.

It defines the puzzle configuration, the rules that decide which configurations are legal,
the move generator and the solution transcript. This package is kept pure and free of
search bookkeeping, I/O adapters or persistence, following Hexagonal Architecture principles.

# Key Entities

  - State: Missionary and cannibal counts on both banks plus the boat location.
  - Transition: A legal successor state and the label of the crossing that produced it.
  - Solution: The forward action list and expansion count reported by a search.
  - LifecycleHooks: Callbacks fired around each solve for logging and metrics.
*/
package domain
