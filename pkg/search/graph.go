package search

import (
	"github.com/aretw0/rivercross/pkg/domain"
)

// BreadthFirst searches with a FIFO frontier. It returns a solution with the fewest crossings.
func BreadthFirst(start, goal domain.State, opts ...Option) *Result {
	return graphSearch(BFS, start, goal, func(*Tree) Frontier { return NewQueue() }, newConfig(opts))
}

// DepthFirst searches with a LIFO frontier. The solution found may be longer than the
// breadth-first one.
func DepthFirst(start, goal domain.State, opts ...Option) *Result {
	return graphSearch(DFS, start, goal, func(*Tree) Frontier { return NewStack() }, newConfig(opts))
}

// Greedy searches with a priority frontier ordered by Score, then by path cost.
func Greedy(start, goal domain.State, opts ...Option) *Result {
	return graphSearch(AStar, start, goal, func(t *Tree) Frontier {
		return NewPriorityQueue(Then(ByScore(t, goal), ByCost(t)))
	}, newConfig(opts))
}

// graphSearch is the loop shared by the frontier-based strategies: pop, mark explored,
// expand, and enqueue every child that is neither explored nor pending. The goal is tested
// when a child is generated.
func graphSearch(strategy Strategy, start, goal domain.State, newFrontier func(*Tree) Frontier, cfg *config) *Result {
	tree := NewTree(start)
	res := &Result{Strategy: strategy, Tree: tree, Goal: NoParent}

	if start == goal {
		res.Goal = tree.Root()
		res.Found = true
		return res
	}

	frontier := track(newFrontier(tree), tree)
	frontier.Push(tree.Root())
	explored := NewStateSet()

	for {
		id, ok := frontier.Pop()
		if !ok {
			cfg.logger.Debug("frontier exhausted", "strategy", string(strategy), "expanded", res.Expanded, "explored", explored.Len())
			return res
		}

		node := tree.Node(id)
		explored.Add(node.State)

		children := domain.Successors(node.State)
		res.Expanded += len(children)
		cfg.expanded(node, len(children))

		for _, child := range children {
			if explored.Has(child.State) || frontier.Pending(child.State) {
				continue
			}
			cid := tree.Add(id, child.State, child.Action)
			if child.State == goal {
				res.Goal = cid
				res.Found = true
				return res
			}
			frontier.Push(cid)
		}
	}
}
