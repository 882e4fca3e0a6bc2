package domain

import (
	"fmt"
	"strings"
)

// Solution is the outcome of one search.
type Solution struct {
	Strategy string `json:"strategy"`

	// Found is false when the strategy exhausted the reachable space without meeting the goal.
	Found bool `json:"found"`

	// Actions is the forward list of crossing labels from start to goal.
	Actions []string `json:"actions"`

	// States holds the configuration after each crossing, starting with the start state.
	// It has len(Actions)+1 entries when Found is true.
	States []State `json:"states,omitempty"`

	// Expanded counts every successor produced by the move generator during the search.
	Expanded int `json:"expanded"`
}

// Steps returns the number of crossings in the solution.
func (s *Solution) Steps() int {
	return len(s.Actions)
}

// Transcript renders the textual report: one action per line followed by the step and
// expansion summary.
func (s *Solution) Transcript() string {
	var sb strings.Builder
	if !s.Found {
		sb.WriteString("no solution found\n")
	} else {
		for _, a := range s.Actions {
			sb.WriteString(a)
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "done in %d steps!\n", s.Steps())
	}
	fmt.Fprintf(&sb, "%d nodes were expanded\n", s.Expanded)
	return sb.String()
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (s *Solution) Clone() *Solution {
	if s == nil {
		return nil
	}
	c := *s
	c.Actions = append([]string(nil), s.Actions...)
	if s.States != nil {
		c.States = append([]State(nil), s.States...)
	}
	return &c
}
