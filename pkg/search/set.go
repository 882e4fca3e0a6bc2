package search

import "github.com/aretw0/rivercross/pkg/domain"

// StateSet is a set of states keyed on state identity. It is the deduplication notion of
// node equality: two nodes wrapping equal states are interchangeable here.
type StateSet struct {
	m map[domain.State]struct{}
}

// NewStateSet returns an empty set.
func NewStateSet() *StateSet {
	return &StateSet{m: make(map[domain.State]struct{})}
}

func (s *StateSet) Add(state domain.State) {
	s.m[state] = struct{}{}
}

func (s *StateSet) Remove(state domain.State) {
	delete(s.m, state)
}

func (s *StateSet) Has(state domain.State) bool {
	_, ok := s.m[state]
	return ok
}

func (s *StateSet) Len() int {
	return len(s.m)
}
