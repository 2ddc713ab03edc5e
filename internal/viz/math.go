package viz

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/linprimer/internal/tex"
)

var (
	envPattern    = regexp.MustCompile(`\\begin\{(\w+)\}(.*?)\\end\{(\w+)\}`)
	hatPattern    = regexp.MustCompile(`\\hat(?:\{([^}]*)\}|\s+(\w))`)
	fracPattern   = regexp.MustCompile(`\\frac\{([^}]*)\}\{([^}]*)\}`)
	vecPattern    = regexp.MustCompile(`\\vec\{([^}]*)\}`)
	mathbbPattern = regexp.MustCompile(`\\mathbb\{R\}`)
	textPattern   = regexp.MustCompile(`\\(?:text|mathrm)\{([^}]*)\}`)
	supPattern    = regexp.MustCompile(`\^\{?([0-9n])\}?`)
	overPattern   = regexp.MustCompile(`\s*\\over\s*`)
)

var symbols = strings.NewReplacer(
	`\alpha`, "α",
	`\beta`, "β",
	`\lambda`, "λ",
	`\times`, "×",
	`\cdot`, "·",
	`\in`, "∈",
	`\neq`, "≠",
	`\ne`, "≠",
	`\leq`, "≤",
	`\geq`, "≥",
	`\ldots`, "…",
	`\dots`, "…",
	`\quad`, "  ",
	`\rightarrow`, "→",
	`\sim`, "~",
	`\{`, "{",
	`\}`, "}",
	`\,`, " ",
	`\left`, "",
	`\right`, "",
)

var superscripts = map[string]string{
	"0": "⁰", "1": "¹", "2": "²", "3": "³", "4": "⁴",
	"5": "⁵", "6": "⁶", "7": "⁷", "8": "⁸", "9": "⁹", "n": "ⁿ",
}

type brackets struct {
	open, close      string
	top, mid, bot    [2]string
	inlineL, inlineR string
}

var envBrackets = map[string]brackets{
	"bmatrix": {"[", "]", [2]string{"⎡", "⎤"}, [2]string{"⎢", "⎥"}, [2]string{"⎣", "⎦"}, "[", "]"},
	"pmatrix": {"(", ")", [2]string{"⎛", "⎞"}, [2]string{"⎜", "⎟"}, [2]string{"⎝", "⎠"}, "(", ")"},
	"vmatrix": {"|", "|", [2]string{"│", "│"}, [2]string{"│", "│"}, [2]string{"│", "│"}, "|", "|"},
}

// TextRenderer lays out TeX markup as plain terminal text. Matrix
// environments become bracket art in block mode and [a b; c d] inline.
type TextRenderer struct {
	Style lipgloss.Style
}

func NewTextRenderer(s Styles) *TextRenderer {
	return &TextRenderer{Style: s.Math}
}

// Render lays out a math node.
func (r *TextRenderer) Render(n tex.Node) string {
	out := Typeset(n)
	if r == nil {
		return out
	}
	return r.Style.Render(out)
}

// Typeset lays out a math node without styling.
func Typeset(n tex.Node) string {
	var parts []string
	rest := n.Markup
	for {
		loc := envPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if text := strings.TrimSpace(rest[:loc[0]]); text != "" {
			parts = append(parts, " "+Symbols(text)+" ")
		}
		env, body := rest[loc[2]:loc[3]], rest[loc[4]:loc[5]]
		cells := splitCells(body)
		if n.Inline {
			parts = append(parts, inlineMatrix(env, cells))
		} else {
			parts = append(parts, blockMatrix(env, cells))
		}
		rest = rest[loc[1]:]
	}
	if text := strings.TrimSpace(rest); text != "" {
		if len(parts) > 0 {
			text = " " + text
		}
		parts = append(parts, Symbols(text))
	}
	if n.Inline {
		return strings.Join(parts, "")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// Symbols translates TeX commands outside matrix environments.
func Symbols(s string) string {
	s = overPattern.ReplaceAllString(s, "/")
	s = fracPattern.ReplaceAllString(s, "($1)/$2")
	s = hatPattern.ReplaceAllString(s, "${1}${2}̂")
	s = vecPattern.ReplaceAllString(s, "${1}⃗")
	s = mathbbPattern.ReplaceAllString(s, "ℝ")
	s = textPattern.ReplaceAllString(s, "$1")
	s = supPattern.ReplaceAllStringFunc(s, func(m string) string {
		return superscripts[supPattern.FindStringSubmatch(m)[1]]
	})
	return symbols.Replace(s)
}

func splitCells(body string) [][]string {
	var rows [][]string
	for _, row := range strings.Split(body, `\\`) {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		var cells []string
		for _, c := range strings.Split(row, "&") {
			cells = append(cells, Symbols(strings.TrimSpace(c)))
		}
		rows = append(rows, cells)
	}
	return rows
}

func inlineMatrix(env string, rows [][]string) string {
	b := bracketsFor(env)
	joined := make([]string, len(rows))
	for i, row := range rows {
		joined[i] = strings.Join(row, " ")
	}
	return b.inlineL + strings.Join(joined, "; ") + b.inlineR
}

func blockMatrix(env string, rows [][]string) string {
	b := bracketsFor(env)
	if len(rows) == 0 {
		return b.open + " " + b.close
	}
	widths := []int{}
	for _, row := range rows {
		for j, c := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(widths))
		for j := range widths {
			c := ""
			if j < len(row) {
				c = row[j]
			}
			cells[j] = strings.Repeat(" ", widths[j]-lipgloss.Width(c)) + c
		}
		l, r := b.mid[0], b.mid[1]
		switch {
		case len(rows) == 1:
			l, r = b.open, b.close
		case i == 0:
			l, r = b.top[0], b.top[1]
		case i == len(rows)-1:
			l, r = b.bot[0], b.bot[1]
		}
		lines[i] = l + " " + strings.Join(cells, "  ") + " " + r
	}
	return strings.Join(lines, "\n")
}

func bracketsFor(env string) brackets {
	if b, ok := envBrackets[env]; ok {
		return b
	}
	return envBrackets["bmatrix"]
}
