package domain

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Side identifies one of the two river banks.
type Side int

const (
	Left Side = iota
	Right
)

// String returns the lowercase bank name used in action labels.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the other bank.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Bank holds the entity counts on one side of the river.
type Bank struct {
	Missionaries int `json:"missionaries" yaml:"missionaries"`
	Cannibals    int `json:"cannibals" yaml:"cannibals"`
}

// Safe reports whether the bank satisfies the non-negativity and
// "missionaries are never outnumbered" rules. A bank without missionaries is exempt
// from the second rule.
func (b Bank) Safe() bool {
	if b.Missionaries < 0 || b.Cannibals < 0 {
		return false
	}
	return b.Missionaries == 0 || b.Missionaries >= b.Cannibals
}

// State is an immutable puzzle configuration.
// It is comparable, so it can be used directly as a map key.
type State struct {
	Left  Bank `json:"left" yaml:"left"`
	Right Bank `json:"right" yaml:"right"`
	Boat  Side `json:"boat" yaml:"boat"`
}

// NewState builds a state from the four counts and the boat location.
func NewState(leftM, leftC, rightM, rightC int, boat Side) State {
	return State{
		Left:  Bank{Missionaries: leftM, Cannibals: leftC},
		Right: Bank{Missionaries: rightM, Cannibals: rightC},
		Boat:  boat,
	}
}

// IsValid reports whether both banks are safe.
func (s State) IsValid() bool {
	return s.Left.Safe() && s.Right.Safe()
}

// Bank returns the counts on the given side.
func (s State) Bank(side Side) Bank {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// String returns the persisted two-line encoding.
func (s State) String() string {
	return Encode(s)
}

// Encode renders the state as two "missionaries,cannibals,boat" lines, left bank first.
func Encode(s State) string {
	return fmt.Sprintf("%d,%d,%d\n%d,%d,%d",
		s.Left.Missionaries, s.Left.Cannibals, boatFlag(s.Boat == Left),
		s.Right.Missionaries, s.Right.Cannibals, boatFlag(s.Boat == Right))
}

func boatFlag(here bool) int {
	if here {
		return 1
	}
	return 0
}

// Decode parses the two-line encoding produced by Encode.
// It does not enforce IsValid: goal states that can never be reached are still expressible.
func Decode(text string) (State, error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n")), "\n")
	if len(lines) != 2 {
		return State{}, &ParseError{Input: text, Err: fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformedState, len(lines))}
	}

	var banks [2]Bank
	var flags [2]bool
	for i, line := range lines {
		bank, flag, err := decodeBank(line)
		if err != nil {
			return State{}, &ParseError{Line: i + 1, Input: text, Err: err}
		}
		banks[i] = bank
		flags[i] = flag
	}

	var boat Side
	switch {
	case flags[0] && flags[1]:
		return State{}, &ParseError{Input: text, Err: ErrBoatAmbiguous}
	case flags[0]:
		boat = Left
	case flags[1]:
		boat = Right
	default:
		return State{}, &ParseError{Input: text, Err: ErrBoatMissing}
	}

	return State{Left: banks[0], Right: banks[1], Boat: boat}, nil
}

func decodeBank(line string) (Bank, bool, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 3 {
		return Bank{}, false, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedState, len(fields))
	}

	var values [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Bank{}, false, fmt.Errorf("%w: field %d: %v", ErrMalformedState, i+1, err)
		}
		if v < 0 {
			return Bank{}, false, fmt.Errorf("%w: field %d is negative", ErrMalformedState, i+1)
		}
		values[i] = v
	}

	if values[2] > 1 {
		return Bank{}, false, fmt.Errorf("%w: boat flag must be 0 or 1, got %d", ErrMalformedState, values[2])
	}

	return Bank{Missionaries: values[0], Cannibals: values[1]}, values[2] == 1, nil
}

// ParseState reads an encoded state from r.
func ParseState(r io.Reader) (State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return State{}, fmt.Errorf("failed to read state: %w", err)
	}
	return Decode(string(data))
}

// LoadState reads an encoded state from a file.
func LoadState(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("failed to open state file: %w", err)
	}
	defer f.Close()

	s, err := ParseState(f)
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
