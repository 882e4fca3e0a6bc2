package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the rivercross ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()
	// Water-like gradient, deep blue to teal.
	lines := []struct {
		text  string
		color string
	}{
		{"        _                                    ", "#1e3a8a"},
		{"   _ __(_)_   _____ _ __ ___ _ __ ___  ___ ___", "#1d4ed8"},
		{"  | '__| \\ \\ / / _ \\ '__/ __| '__/ _ \\/ __/ __|", "#0284c7"},
		{"  | |  | |\\ V /  __/ | | (__| | | (_) \\__ \\__ \\", "#0891b2"},
		{"  |_|  |_| \\_/ \\___|_|  \\___|_|  \\___/|___/___/", "#0d9488"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
