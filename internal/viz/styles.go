package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles a theme produces.
type Styles struct {
	Panel    lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Subtle   lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	KeyHint  lipgloss.Style
	Math     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Item:    lipgloss.NewStyle().Foreground(t.Text),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		Running: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Label:   lipgloss.NewStyle().Foreground(t.Muted),
		Value:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Math:    lipgloss.NewStyle().Foreground(t.Accent).Padding(0, 2),
	}
}

// GradientText colours each rune of text between two hex colours.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	sr, sg, sb := parseHex(string(start))
	er, eg, eb := parseHex(string(end))

	var out strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		mix := func(a, b int) int { return a + int(t*float64(b-a)) }
		color := lipgloss.Color(hexColor(mix(sr, er), mix(sg, eg), mix(sb, eb)))
		out.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(c)))
	}
	return out.String()
}

// ProgressBar renders filled/total as a bar of width cells.
func ProgressBar(filled, total, width int, s Styles) string {
	n := 0
	if total > 0 {
		n = filled * width / total
	}
	n = max(0, min(n, width))
	return s.Value.Render(strings.Repeat("█", n)) + s.Subtle.Render(strings.Repeat("░", width-n))
}

func Separator(width int, s Styles) string {
	if width < 8 {
		return s.Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return s.Subtle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func hexColor(r, g, b int) string {
	clamp := func(v int) int { return max(0, min(v, 255)) }
	return "#" + strconv.FormatInt(int64(1<<24|clamp(r)<<16|clamp(g)<<8|clamp(b)), 16)[1:]
}
