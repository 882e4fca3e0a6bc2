package search

import "github.com/aretw0/rivercross/pkg/domain"

// Result is the exit contract shared by every driver.
type Result struct {
	Strategy Strategy
	// Tree holds every node generated by the final pass of the search.
	Tree *Tree
	// Goal is the terminal node when Found is true, NoParent otherwise.
	Goal  NodeID
	Found bool
	// Expanded counts successors produced by the move generator, kept or discarded.
	Expanded int
}

// Path returns the forward action list, or nil when no solution was found.
func (r *Result) Path() []string {
	if !r.Found {
		return nil
	}
	return r.Tree.Path(r.Goal)
}

// States returns the states along the solution, start first.
func (r *Result) States() []domain.State {
	if !r.Found {
		return nil
	}
	return r.Tree.States(r.Goal)
}

// Solution converts the result into the domain report.
func (r *Result) Solution() *domain.Solution {
	actions := r.Path()
	if actions == nil {
		actions = []string{}
	}
	return &domain.Solution{
		Strategy: string(r.Strategy),
		Found:    r.Found,
		Actions:  actions,
		States:   r.States(),
		Expanded: r.Expanded,
	}
}
