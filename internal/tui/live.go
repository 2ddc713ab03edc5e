package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws one animation in place without taking over the
// terminal. It is an anim.Observer: attach it to the host that ticks the
// player.
type LiveRenderer struct {
	out       io.Writer
	name      string
	player    lesson.Player
	theme     viz.Theme
	cols      int
	frameRate int
	color     bool
	lastFrame time.Time
}

type LiveOptions struct {
	Theme     viz.Theme
	Cols      int
	FrameRate int
	// Color styles the canvas with the theme; off, the output is plain
	// braille.
	Color bool
}

func NewLiveRenderer(out io.Writer, name string, p lesson.Player, opts LiveOptions) *LiveRenderer {
	if opts.Cols <= 0 {
		opts.Cols = 72
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	if opts.Theme.Name == "" {
		opts.Theme = viz.ThemeChalkboard
	}
	return &LiveRenderer{
		out:       out,
		name:      name,
		player:    p,
		theme:     opts.Theme,
		cols:      opts.Cols,
		frameRate: opts.FrameRate,
		color:     opts.Color,
	}
}

// OnTick redraws at most frameRate times per second.
func (r *LiveRenderer) OnTick(name string, tick int) {
	if name != r.name {
		return
	}
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.Draw()
}

// Draw writes the current frame.
func (r *LiveRenderer) Draw() {
	fmt.Fprint(r.out, clearScreen+r.Frame())
}

// Frame renders the current frame as text.
func (r *LiveRenderer) Frame() string {
	f := r.player.Frame()
	c := viz.CanvasFor(f.Scene, r.cols)
	viz.RenderScene(c, f.Scene, true)

	var b strings.Builder
	fmt.Fprintf(&b, "  %s  tick=%d\n", r.name, r.player.Ticks())
	b.WriteString("  " + strings.Repeat("-", c.Width) + "\n")

	body := c.String()
	if r.color {
		body = c.Render(r.theme)
	}
	for _, row := range strings.Split(body, "\n") {
		b.WriteString("  " + row + "\n")
	}

	b.WriteString("  " + strings.Repeat("-", c.Width) + "\n")
	if len(f.Readouts) > 0 {
		texts := make([]string, len(f.Readouts))
		for i, ro := range f.Readouts {
			texts[i] = ro.Text
		}
		b.WriteString("  " + strings.Join(texts, "   ") + "\n")
	}
	return b.String()
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
