package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/rivercross/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a solution path.
// states holds the configuration after each crossing, start first, and actions the label
// of each crossing, so len(states) == len(actions)+1. Shapes:
// - Start: ((Circle))
// - Goal: (((Double circle)))
// - Default: [Rectangle]
// Start and goal also get overlay class styles.
func GenerateMermaid(states []domain.State, actions []string) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	if len(states) == 0 {
		return sb.String()
	}
	last := len(states) - 1

	for i, s := range states {
		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case i == last:
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(i), opener, label(s), closer)
	}

	for i := 0; i < last && i < len(actions); i++ {
		// Quotes would end the edge label early.
		action := strings.ReplaceAll(actions[i], "\"", "'")
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", nodeID(i), action, nodeID(i+1))
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	// Black text keeps contrast on both light and dark themes.
	sb.WriteString("    classDef start fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef goal fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	fmt.Fprintf(&sb, "    class %s start;\n", nodeID(0))
	if last > 0 {
		fmt.Fprintf(&sb, "    class %s goal;\n", nodeID(last))
	}

	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("s%d", i)
}

// label shows both banks and the boat, e.g. "3M 3C ⛵ | 0M 0C".
func label(s domain.State) string {
	bank := func(b domain.Bank, boat bool) string {
		out := fmt.Sprintf("%dM %dC", b.Missionaries, b.Cannibals)
		if boat {
			out += " ⛵"
		}
		return out
	}
	return bank(s.Left, s.Boat == domain.Left) + " | " + bank(s.Right, s.Boat == domain.Right)
}
