package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/san-kum/linprimer/internal/viz"
)

// Markdown renders prose for the terminal.
type Markdown func(string) (string, error)

// NewMarkdown returns a glamour renderer wrapped to width. Light themes get
// the light glamour style.
func NewMarkdown(width int, t viz.Theme) Markdown {
	style := "dark"
	if t.Name == viz.ThemePaper.Name {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return PlainMarkdown
	}
	return func(md string) (string, error) {
		out, err := r.Render(md)
		if err != nil {
			return md, err
		}
		return strings.Trim(out, "\n"), nil
	}
}

// PlainMarkdown leaves prose untouched.
func PlainMarkdown(md string) (string, error) { return md, nil }
