package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/linprimer/internal/scene"
)

// Theme defines color scheme for the TUI. Mono themes paint every scene
// node in Primary instead of its own colour.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Warning   lipgloss.Color
	Mono      bool
}

var (
	ThemeChalkboard = Theme{
		Name:      "chalkboard",
		Primary:   lipgloss.Color("#f5f5dc"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#e8e8e8"),
		Muted:     lipgloss.Color("#777777"),
		Border:    lipgloss.Color("#3c5a46"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Border:    lipgloss.Color("#444466"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeBlueprint = Theme{
		Name:      "blueprint",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Border:    lipgloss.Color("#224466"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Border:    lipgloss.Color("#003300"),
		Warning:   lipgloss.Color("#ffff00"),
		Mono:      true,
	}

	ThemePaper = Theme{
		Name:      "paper",
		Primary:   lipgloss.Color("#222222"),
		Secondary: lipgloss.Color("#005f87"),
		Accent:    lipgloss.Color("#af5f00"),
		Text:      lipgloss.Color("#1c1c1c"),
		Muted:     lipgloss.Color("#8a8a8a"),
		Border:    lipgloss.Color("#bcbcbc"),
		Warning:   lipgloss.Color("#d75f00"),
		Mono:      true,
	}

	CurrentTheme = ThemeChalkboard

	Themes = []Theme{
		ThemeChalkboard,
		ThemeCyberpunk,
		ThemeBlueprint,
		ThemeRetro,
		ThemePaper,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeChalkboard
}

func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Tint maps a scene colour to the terminal colour this theme draws it in.
func (t Theme) Tint(c scene.Color) lipgloss.Color {
	if t.Mono {
		return t.Primary
	}
	return lipgloss.Color(c.Hex())
}
