package tui

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/san-kum/linprimer/internal/anim"
	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/scene"
	"github.com/san-kum/linprimer/internal/viz"
)

// Page is one section laid out for the terminal, with a running player for
// each of its animations.
type Page struct {
	Section *lesson.Section
	Reveal  bool

	blocks  []lesson.Block
	players map[int]lesson.Player
	host    *anim.Host

	prose     map[int]string
	proseKey  string
	lastLines int
}

// NewPage starts every animation of sec. When only is non-negative the page
// holds just that animation.
func NewPage(sec *lesson.Section, only int, logger *slog.Logger) *Page {
	p := &Page{
		Section: sec,
		players: make(map[int]lesson.Player),
		host:    anim.NewHost(logger),
		prose:   make(map[int]string),
	}
	for _, b := range sec.Blocks {
		a, ok := b.(lesson.Animated)
		if only >= 0 && (!ok || a.Index != only) {
			continue
		}
		p.blocks = append(p.blocks, b)
		if ok {
			pl := a.New()
			p.players[a.Index] = pl
			p.host.Add(lesson.AnimationName(sec.ID, a.Index), pl)
		}
	}
	return p
}

// Step advances every animation once.
func (p *Page) Step() int { return p.host.StepAll() }

// Restart puts every animation back at tick 0.
func (p *Page) Restart() {
	for _, pl := range p.players {
		pl.Reset()
	}
}

// Close stops the page's animations.
func (p *Page) Close() { p.host.StopAll() }

// Ticks is the tick count of the page's first animation.
func (p *Page) Ticks() int {
	for _, b := range p.blocks {
		if a, ok := b.(lesson.Animated); ok {
			return p.players[a.Index].Ticks()
		}
	}
	return 0
}

func (p *Page) Player(index int) (lesson.Player, bool) {
	pl, ok := p.players[index]
	return pl, ok
}

// Layout is everything rendering depends on besides the page itself.
type Layout struct {
	Cols     int
	Theme    viz.Theme
	Styles   viz.Styles
	Markdown Markdown
}

// Lines renders the page top to bottom.
func (p *Page) Lines(l Layout) []string {
	key := l.Theme.Name + "/" + strconv.Itoa(l.Cols)
	if key != p.proseKey {
		clear(p.prose)
		p.proseKey = key
	}

	tr := viz.NewTextRenderer(l.Styles)
	var out []string
	for i, b := range p.blocks {
		var chunk string
		switch b := b.(type) {
		case lesson.Prose:
			chunk = p.renderProse(i, b.Text, l.Markdown)
		case lesson.Math:
			chunk = tr.Render(b.Node)
		case lesson.Matrices:
			chunk = tr.Render(b.Node())
		case lesson.Static:
			chunk = p.renderScene(b.Scene, l)
			if b.Scene.Blankable && !p.Reveal {
				chunk += "\n" + l.Styles.KeyHint.Render("  b reveal")
			}
		case lesson.Animated:
			frame := p.players[b.Index].Frame()
			chunk = p.renderScene(frame.Scene, l) + "\n" + l.Styles.Subtle.Render("  "+b.Caption)
			if r := readouts(frame.Readouts, l.Styles); r != "" {
				chunk += "\n" + r
			}
		}
		out = append(out, strings.Split(chunk, "\n")...)
		out = append(out, "")
	}
	p.lastLines = len(out)
	return out
}

func (p *Page) renderProse(i int, text string, md Markdown) string {
	if s, ok := p.prose[i]; ok {
		return s
	}
	if md == nil {
		md = PlainMarkdown
	}
	s, err := md(text)
	if err != nil {
		s = text
	}
	p.prose[i] = s
	return s
}

func (p *Page) renderScene(s scene.Scene, l Layout) string {
	c := viz.CanvasFor(s, l.Cols)
	viz.RenderScene(c, s, p.Reveal)
	return l.Styles.Panel.Render(c.Render(l.Theme))
}

func readouts(rs []lesson.Readout, st viz.Styles) string {
	if len(rs) == 0 {
		return ""
	}
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = st.Value.Render(r.Text)
	}
	return "  " + strings.Join(parts, "   ")
}
