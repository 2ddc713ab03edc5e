package config

import "sort"

// Profiles are named display setups layered over the defaults.
var Profiles = map[string]*Config{
	"classroom": {
		Theme: "chalkboard", FPS: 30, Precision: 2,
		Canvas: CanvasConfig{Width: 72, Height: 27},
	},
	"compact": {
		Theme: "retro", FPS: 20, Precision: 2,
		Canvas: CanvasConfig{Width: 48, Height: 18},
	},
	"presenter": {
		Theme: "cyberpunk", FPS: 60, Precision: 2,
		Canvas: CanvasConfig{Width: 100, Height: 38},
	},
	"blueprint": {
		Theme: "blueprint", FPS: 30, Precision: 3,
		Canvas: CanvasConfig{Width: 80, Height: 30},
	},
	"print": {
		Theme: "paper", FPS: 10, Precision: 4,
		Canvas: CanvasConfig{Width: 64, Height: 24},
	},
}

// GetProfile returns a copy of the named profile, or nil.
func GetProfile(name string) *Config {
	p, ok := Profiles[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// Apply copies a profile's display settings onto c.
func (c *Config) Apply(p *Config) {
	if p == nil {
		return
	}
	c.Theme = p.Theme
	c.FPS = p.FPS
	c.Precision = p.Precision
	c.Canvas = p.Canvas
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
