package domain_test

import (
	"testing"

	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessors_ClassicStart(t *testing.T) {
	start := domain.NewState(3, 3, 0, 0, domain.Left)

	got := domain.Successors(start)
	require.Len(t, got, 3)

	assert.Equal(t, domain.Transition{
		State:  domain.NewState(3, 2, 0, 1, domain.Right),
		Action: "move 1 cannibal from left to right",
	}, got[0])
	assert.Equal(t, domain.Transition{
		State:  domain.NewState(3, 1, 0, 2, domain.Right),
		Action: "move 2 cannibals from left to right",
	}, got[1])
	assert.Equal(t, domain.Transition{
		State:  domain.NewState(2, 2, 1, 1, domain.Right),
		Action: "move 1 missionary and 1 cannibal from left to right",
	}, got[2])
}

func TestSuccessors_FromRightBank(t *testing.T) {
	s := domain.NewState(3, 1, 0, 2, domain.Right)

	got := domain.Successors(s)
	require.Len(t, got, 2)
	assert.Equal(t, "move 1 cannibal from right to left", got[0].Action)
	assert.Equal(t, domain.NewState(3, 2, 0, 1, domain.Left), got[0].State)
	assert.Equal(t, "move 2 cannibals from right to left", got[1].Action)
	assert.Equal(t, domain.NewState(3, 3, 0, 0, domain.Left), got[1].State)
}

func TestSuccessors_Blocked(t *testing.T) {
	// Boat on the empty bank: nothing can be loaded.
	s := domain.NewState(0, 0, 3, 3, domain.Left)
	assert.Empty(t, domain.Successors(s))
}

func TestSuccessors_DeduplicatesDoubleCannibalLoad(t *testing.T) {
	s := domain.NewState(0, 3, 3, 0, domain.Left)

	got := domain.Successors(s)
	seen := make(map[domain.State]bool)
	for _, tr := range got {
		assert.False(t, seen[tr.State], "duplicate successor %v", tr.State)
		seen[tr.State] = true
	}
	assert.Len(t, got, 2)
}

func TestSuccessors_AlwaysValid(t *testing.T) {
	// Walk the whole reachable space from the classic start and check every successor.
	start := domain.NewState(3, 3, 0, 0, domain.Left)
	seen := map[domain.State]bool{start: true}
	queue := []domain.State{start}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, tr := range domain.Successors(s) {
			assert.True(t, tr.State.IsValid(), "invalid successor %v of %v", tr.State, s)
			assert.GreaterOrEqual(t, tr.State.Left.Missionaries, 0)
			assert.GreaterOrEqual(t, tr.State.Left.Cannibals, 0)
			assert.GreaterOrEqual(t, tr.State.Right.Missionaries, 0)
			assert.GreaterOrEqual(t, tr.State.Right.Cannibals, 0)
			assert.NotEqual(t, s.Boat, tr.State.Boat)
			if !seen[tr.State] {
				seen[tr.State] = true
				queue = append(queue, tr.State)
			}
		}
	}
	assert.Greater(t, len(seen), 1)
}

func TestSolution_Transcript(t *testing.T) {
	sol := &domain.Solution{
		Found:    true,
		Actions:  []string{"move 2 cannibals from left to right", "move 1 cannibal from right to left"},
		Expanded: 7,
	}
	assert.Equal(t, "move 2 cannibals from left to right\nmove 1 cannibal from right to left\ndone in 2 steps!\n7 nodes were expanded\n", sol.Transcript())

	none := &domain.Solution{Expanded: 12}
	assert.Equal(t, "no solution found\n12 nodes were expanded\n", none.Transcript())

	trivial := &domain.Solution{Found: true}
	assert.Equal(t, "done in 0 steps!\n0 nodes were expanded\n", trivial.Transcript())
}

func TestSolution_Clone(t *testing.T) {
	sol := &domain.Solution{Found: true, Actions: []string{"a"}, States: []domain.State{{}, {}}}
	c := sol.Clone()
	c.Actions[0] = "b"
	c.States[0].Boat = domain.Right
	assert.Equal(t, "a", sol.Actions[0])
	assert.Equal(t, domain.Left, sol.States[0].Boat)
}
