package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner for the headless commands.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct{ text, color string }{
		{" _ _                     _               ", "#00ffff"},
		{"| (_)_ __  _ __  _ __ (_)_ __ ___   ___ _ __ ", "#33ddff"},
		{"| | | '_ \\| '_ \\| '__|| | '_ ` _ \\ / _ \\ '__|", "#66bbff"},
		{"| | | | | | |_) | |   | | | | | | |  __/ |   ", "#9999ff"},
		{"|_|_|_| |_| .__/|_|   |_|_| |_| |_|\\___|_|   ", "#cc77ff"},
		{"          |_|                                ", "#ff55ff"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
