package search

import (
	"slices"

	"github.com/aretw0/rivercross/pkg/domain"
)

// NodeID is a stable index into a Tree.
type NodeID int

// NoParent marks the root node.
const NoParent NodeID = -1

// Node wraps a state with a link to the node it was generated from.
type Node struct {
	State  domain.State
	Parent NodeID
	// Action is empty for the root.
	Action string
	// Cost is the number of crossings from the root.
	Cost int
}

// Tree is an append-only arena of search nodes. Nodes are never removed, so a NodeID
// stays valid for as long as the Tree is reachable, even after the frontier that produced it
// has been discarded.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree holding only the root.
func NewTree(root domain.State) *Tree {
	return &Tree{nodes: []Node{{State: root, Parent: NoParent}}}
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Add appends a child of parent and returns its ID.
func (t *Tree) Add(parent NodeID, state domain.State, action string) NodeID {
	t.nodes = append(t.nodes, Node{
		State:  state,
		Parent: parent,
		Action: action,
		Cost:   t.nodes[parent].Cost + 1,
	})
	return NodeID(len(t.nodes) - 1)
}

// Node returns the node stored under id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Path walks parent links from id back to the root and returns the actions in forward order.
func (t *Tree) Path(id NodeID) []string {
	var actions []string
	for cur := id; t.nodes[cur].Parent != NoParent; cur = t.nodes[cur].Parent {
		actions = append(actions, t.nodes[cur].Action)
	}
	slices.Reverse(actions)
	return actions
}

// States returns the states from the root to id, inclusive.
func (t *Tree) States(id NodeID) []domain.State {
	var states []domain.State
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		states = append(states, t.nodes[cur].State)
	}
	slices.Reverse(states)
	return states
}
