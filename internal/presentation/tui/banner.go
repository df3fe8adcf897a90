package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Taproom ASCII art banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Stout gradient: cream head into dark body
	lines := []struct {
		text  string
		color string
	}{
		{"  _____                                     ", "#f5e6c8"},
		{" |_   _|_ _ _ __  _ __ ___   ___  _ __ ___  ", "#e0c9a0"},
		{"   | |/ _` | '_ \\| '__/ _ \\ / _ \\| '_ ` _ \\ ", "#b98f5e"},
		{"   | | (_| | |_) | | | (_) | (_) | | | | | |", "#8a5a2b"},
		{"   |_|\\__,_| .__/|_|  \\___/ \\___/|_| |_| |_|", "#5c3a1a"},
		{"           |_|                              ", "#3b2410"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
