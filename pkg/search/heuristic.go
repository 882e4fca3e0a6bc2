package search

import (
	"cmp"

	"github.com/aretw0/rivercross/pkg/domain"
)

// Score ranks a state for the greedy strategy: the sum of the missionary and cannibal
// differences between s and goal on the left bank. Lower is better.
//
// The score is signed and is not an admissible distance estimate. It can be negative and
// does not decrease monotonically toward the goal, so greedy search makes no optimality
// guarantee.
func Score(s, goal domain.State) int {
	return (s.Left.Missionaries - goal.Left.Missionaries) + (s.Left.Cannibals - goal.Left.Cannibals)
}

// ByCost orders nodes by ascending path cost. This is the priority notion of node equality
// and is unrelated to StateSet identity.
func ByCost(tree *Tree) CompareFunc {
	return func(a, b NodeID) int {
		return cmp.Compare(tree.Node(a).Cost, tree.Node(b).Cost)
	}
}

// ByScore orders nodes by ascending Score against goal.
func ByScore(tree *Tree, goal domain.State) CompareFunc {
	return func(a, b NodeID) int {
		return cmp.Compare(Score(tree.Node(a).State, goal), Score(tree.Node(b).State, goal))
	}
}

// Then falls back to next when first reports a tie.
func Then(first, next CompareFunc) CompareFunc {
	return func(a, b NodeID) int {
		if c := first(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}
