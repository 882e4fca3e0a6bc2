package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// ReportMarkdown formats a solution as a markdown document with a numbered crossing list.
func ReportMarkdown(sol *domain.Solution) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Solution (%s)\n\n", sol.Strategy)

	if !sol.Found {
		sb.WriteString("**No solution found.**\n\n")
	} else {
		for i, a := range sol.Actions {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, a)
		}
		if len(sol.Actions) > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Done in **%d** steps.\n\n", sol.Steps())
	}

	fmt.Fprintf(&sb, "_%d nodes were expanded._\n", sol.Expanded)
	return sb.String()
}

// RenderReport renders a solution for the terminal.
func RenderReport(sol *domain.Solution) (string, error) {
	render, err := NewRenderer()
	if err != nil {
		return "", err
	}
	return render(ReportMarkdown(sol))
}
