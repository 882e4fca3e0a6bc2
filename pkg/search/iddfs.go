package search

import (
	"fmt"

	"github.com/aretw0/rivercross/pkg/domain"
)

// Outcome is the result of one depth-limited pass.
type Outcome int

const (
	// OutcomeCutoff means the bound was hit before the space was fully explored.
	OutcomeCutoff Outcome = iota
	// OutcomeFound means the goal was reached within the bound.
	OutcomeFound
	// OutcomeExhausted means every reachable state was explored within the bound.
	OutcomeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCutoff:
		return "cutoff"
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// IterativeDeepening runs depth-limited searches with bounds 0, 1, 2, ... until one finds the
// goal or reports the space exhausted. Expanded accumulates across every pass.
// The only error is ErrDepthLimit, when WithMaxDepth is set and passed.
func IterativeDeepening(start, goal domain.State, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	res := &Result{Strategy: IDDFS, Tree: NewTree(start), Goal: NoParent}

	if start == goal {
		res.Goal = res.Tree.Root()
		res.Found = true
		return res, nil
	}

	for limit := 0; ; limit++ {
		if cfg.maxDepth > 0 && limit > cfg.maxDepth {
			return res, fmt.Errorf("%w: %d", ErrDepthLimit, cfg.maxDepth)
		}

		tree := NewTree(start)
		outcome, id := depthLimited(tree, goal, limit, res, cfg)
		cfg.iteration(limit, outcome, res.Expanded)

		switch outcome {
		case OutcomeFound:
			res.Tree = tree
			res.Goal = id
			res.Found = true
			return res, nil
		case OutcomeExhausted:
			res.Tree = tree
			return res, nil
		}
	}
}

type frame struct {
	id        NodeID
	remaining int
}

// depthLimited explores tree from its root with an explicit stack of frames carrying the
// remaining depth budget. A state is pushed again only when it is reached with a larger
// budget than any earlier visit in this pass; active paths are therefore simple and the pass
// reports OutcomeExhausted once the bound exceeds the longest simple path.
func depthLimited(tree *Tree, goal domain.State, limit int, res *Result, cfg *config) (Outcome, NodeID) {
	root := tree.Root()
	budgets := map[domain.State]int{tree.Node(root).State: limit}
	stack := []frame{{id: root, remaining: limit}}
	cutoff := false

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := tree.Node(fr.id)
		if node.State == goal {
			return OutcomeFound, fr.id
		}
		if fr.remaining == 0 {
			cutoff = true
			continue
		}

		children := domain.Successors(node.State)
		res.Expanded += len(children)
		cfg.expanded(node, len(children))

		// Push in reverse so children are explored in generation order.
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			remaining := fr.remaining - 1
			if seen, ok := budgets[child.State]; ok && seen >= remaining {
				continue
			}
			budgets[child.State] = remaining
			stack = append(stack, frame{id: tree.Add(fr.id, child.State, child.Action), remaining: remaining})
		}
	}

	if cutoff {
		return OutcomeCutoff, NoParent
	}
	return OutcomeExhausted, NoParent
}
