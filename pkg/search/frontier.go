package search

import (
	"container/heap"

	"github.com/aretw0/rivercross/pkg/domain"
)

// Frontier orders the nodes that are waiting to be expanded.
type Frontier interface {
	Push(id NodeID)
	// Pop removes the next node. ok is false when the frontier is empty.
	Pop() (id NodeID, ok bool)
	Len() int
}

// Queue is a FIFO frontier.
type Queue struct {
	items []NodeID
	head  int
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Push(id NodeID) { q.items = append(q.items, id) }

func (q *Queue) Pop() (NodeID, bool) {
	if q.head == len(q.items) {
		return 0, false
	}
	id := q.items[q.head]
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append([]NodeID(nil), q.items[q.head:]...)
		q.head = 0
	}
	return id, true
}

func (q *Queue) Len() int { return len(q.items) - q.head }

// Stack is a LIFO frontier.
type Stack struct {
	items []NodeID
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) Push(id NodeID) { s.items = append(s.items, id) }

func (s *Stack) Pop() (NodeID, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	id := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return id, true
}

func (s *Stack) Len() int { return len(s.items) }

// CompareFunc orders two nodes: negative if a ranks before b, positive if after, zero if tied.
type CompareFunc func(a, b NodeID) int

// PriorityQueue pops the node that ranks first under its CompareFunc. Ties are broken by
// insertion order, so the frontier is deterministic.
type PriorityQueue struct {
	h priorityHeap
}

// NewPriorityQueue returns an empty priority frontier ordered by compare.
func NewPriorityQueue(compare CompareFunc) *PriorityQueue {
	return &PriorityQueue{h: priorityHeap{compare: compare}}
}

func (p *PriorityQueue) Push(id NodeID) {
	heap.Push(&p.h, prioritized{id: id, seq: p.h.seq})
	p.h.seq++
}

func (p *PriorityQueue) Pop() (NodeID, bool) {
	if p.h.Len() == 0 {
		return 0, false
	}
	return heap.Pop(&p.h).(prioritized).id, true
}

func (p *PriorityQueue) Len() int { return p.h.Len() }

type prioritized struct {
	id  NodeID
	seq int
}

type priorityHeap struct {
	items   []prioritized
	compare CompareFunc
	seq     int
}

func (h priorityHeap) Len() int { return len(h.items) }

func (h priorityHeap) Less(i, j int) bool {
	if c := h.compare(h.items[i].id, h.items[j].id); c != 0 {
		return c < 0
	}
	return h.items[i].seq < h.items[j].seq
}

func (h priorityHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *priorityHeap) Push(x any) { h.items = append(h.items, x.(prioritized)) }

func (h *priorityHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

// tracked wraps a frontier with the set of states it currently holds, so drivers can ask
// whether a state is already waiting without inspecting the container.
type tracked struct {
	Frontier
	tree    *Tree
	pending *StateSet
}

func track(f Frontier, tree *Tree) *tracked {
	return &tracked{Frontier: f, tree: tree, pending: NewStateSet()}
}

func (t *tracked) Push(id NodeID) {
	t.pending.Add(t.tree.Node(id).State)
	t.Frontier.Push(id)
}

func (t *tracked) Pop() (NodeID, bool) {
	id, ok := t.Frontier.Pop()
	if ok {
		t.pending.Remove(t.tree.Node(id).State)
	}
	return id, ok
}

// Pending reports whether a node wrapping state is waiting in the frontier.
func (t *tracked) Pending(state domain.State) bool {
	return t.pending.Has(state)
}
