package domain

import "fmt"

// Transition is a legal successor of a state together with the label of the crossing that
// produced it.
type Transition struct {
	State  State  `json:"state"`
	Action string `json:"action"`
}

// Load is the number of each entity carried by the boat in one crossing.
type Load struct {
	Missionaries int
	Cannibals    int
}

// Loads lists the candidate boat loads tried from the boat's bank, in generation order.
// The last entry repeats "2 cannibals"; it collapses into the earlier one during
// deduplication.
var Loads = []Load{
	{Missionaries: 1},
	{Missionaries: 2},
	{Cannibals: 1},
	{Cannibals: 2},
	{Missionaries: 1, Cannibals: 1},
	{Cannibals: 2},
}

// String describes the load, e.g. "1 missionary and 1 cannibal".
func (l Load) String() string {
	switch {
	case l.Missionaries > 0 && l.Cannibals > 0:
		return fmt.Sprintf("%s and %s", count(l.Missionaries, "missionary", "missionaries"), count(l.Cannibals, "cannibal", "cannibals"))
	case l.Missionaries > 0:
		return count(l.Missionaries, "missionary", "missionaries")
	default:
		return count(l.Cannibals, "cannibal", "cannibals")
	}
}

func count(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// Apply ferries the load from the boat's bank to the other bank and flips the boat.
// The result may be invalid; callers check IsValid.
func (s State) Apply(l Load) State {
	from, to := s.Bank(s.Boat), s.Bank(s.Boat.Opposite())
	from.Missionaries -= l.Missionaries
	from.Cannibals -= l.Cannibals
	to.Missionaries += l.Missionaries
	to.Cannibals += l.Cannibals

	next := State{Boat: s.Boat.Opposite()}
	if s.Boat == Left {
		next.Left, next.Right = from, to
	} else {
		next.Left, next.Right = to, from
	}
	return next
}

// Successors returns every legal state reachable from s in one crossing.
// Results keep generation order and are deduplicated by resulting state. An empty
// result means the state is blocked.
func Successors(s State) []Transition {
	out := make([]Transition, 0, len(Loads))
	seen := make(map[State]struct{}, len(Loads))

	for _, l := range Loads {
		next := s.Apply(l)
		if !next.IsValid() {
			continue
		}
		if _, dup := seen[next]; dup {
			continue
		}
		seen[next] = struct{}{}
		out = append(out, Transition{
			State:  next,
			Action: fmt.Sprintf("move %s from %s to %s", l, s.Boat, s.Boat.Opposite()),
		})
	}
	return out
}
