/*
Package rivercross solves the missionaries and cannibals river-crossing puzzle by
uninformed and greedy state-space search.

A puzzle instance is a pair of states: where everyone starts and where they must end up.
Each state records how many missionaries and cannibals stand on each bank and which bank
holds the boat. The boat carries one or two people, and cannibals may never outnumber
missionaries on a bank that has any missionaries.

# Strategies

  - bfs: breadth-first graph search. Finds a path with the fewest crossings.
  - dfs: depth-first graph search.
  - iddfs: iterative deepening. Same path length as bfs, more expansions.
  - astar: greedy best-first, ordered by people still misplaced on the left bank.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/rivercross"
		"github.com/aretw0/rivercross/pkg/adapters/memory"
		"github.com/aretw0/rivercross/pkg/domain"
		"github.com/aretw0/rivercross/pkg/search"
	)

	func main() {
		solver := rivercross.New(rivercross.WithCache(memory.NewCache()))

		start := domain.NewState(3, 3, 0, 0, domain.Left)
		goal := domain.NewState(0, 0, 3, 3, domain.Right)

		report, err := solver.Solve(context.Background(), search.BFS, start, goal)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(report.Transcript())
	}

# Architecture

The module follows a hexagonal layout:

  - pkg/domain: states, transitions and the solution report.
  - pkg/search: the four drivers over a shared node arena.
  - pkg/ports: the SolutionCache port and its contract test suite.
  - pkg/adapters: memory and redis caches, the HTTP API and the MCP server.
  - cmd/rivercross: the command-line entry point.
*/
package rivercross
