// Package tui is the interactive primer: a section menu and scrolling
// section pages whose animations tick live.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/logging"
	"github.com/san-kum/linprimer/internal/viz"
)

type Options struct {
	Theme    string
	FPS      int
	Cols     int
	Logger   *slog.Logger
	Markdown func(width int, t viz.Theme) Markdown
}

type state int

const (
	stateMenu state = iota
	statePage
)

type model struct {
	state    state
	cursor   int
	sections []*lesson.Section

	page    *Page
	only    int
	scroll  int
	paused  bool
	single  bool
	fps     int
	cols    int
	theme   viz.Theme
	styles  viz.Styles
	md      Markdown
	newMD   func(int, viz.Theme) Markdown
	logger  *slog.Logger
	lastFPS float64
	last    time.Time

	width  int
	height int
}

func newModel(opts Options) model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Cols <= 0 {
		opts.Cols = 72
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Markdown == nil {
		opts.Markdown = NewMarkdown
	}
	theme := viz.GetTheme(opts.Theme)
	m := model{
		state:    stateMenu,
		sections: lesson.Catalog(),
		only:     -1,
		fps:      opts.FPS,
		cols:     opts.Cols,
		theme:    theme,
		styles:   viz.NewStyles(theme),
		newMD:    opts.Markdown,
		logger:   opts.Logger,
		width:    80,
		height:   24,
	}
	m.md = m.newMD(m.cols, theme)
	return m
}

// NewApp opens on the section menu.
func NewApp(opts Options) tea.Model {
	return newModel(opts)
}

// NewPlayer shows a single animation of sec. Leaving it quits.
func NewPlayer(sec *lesson.Section, index int, opts Options) (tea.Model, error) {
	if _, err := sec.Animation(index); err != nil {
		return nil, err
	}
	m := newModel(opts)
	m.single = true
	m.only = index
	m.open(indexOf(m.sections, sec.ID))
	return m, nil
}

// Run starts the program on the alternate screen.
func Run(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if cols := msg.Width - 6; cols > 8 && cols < m.cols {
			m.cols = cols
			m.md = m.newMD(m.cols, m.theme)
		}
		return m, nil
	case tickMsg:
		if m.state == statePage && !m.paused {
			now := time.Time(msg)
			if !m.last.IsZero() {
				if dt := now.Sub(m.last).Seconds(); dt > 0 {
					m.lastFPS = 1 / dt
				}
			}
			m.last = now
			m.page.Step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.close()
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case statePage:
		return m.pageKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sections)-1 {
			m.cursor++
		}
	case "t":
		m.cycleTheme()
	case "enter", " ":
		m.open(m.cursor)
	}
	return m, nil
}

func (m model) pageKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.close()
		return m, tea.Quit
	case "esc":
		m.close()
		if m.single {
			return m, tea.Quit
		}
		m.state = stateMenu
	case "down", "j":
		if m.scroll < m.page.lastLines-1 {
			m.scroll++
		}
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "pgdown", "ctrl+d":
		m.scroll = min(m.scroll+m.bodyHeight()/2, max(m.page.lastLines-1, 0))
	case "pgup", "ctrl+u":
		m.scroll = max(m.scroll-m.bodyHeight()/2, 0)
	case "n":
		if !m.single {
			m.close()
			m.open((m.cursor + 1) % len(m.sections))
		}
	case "p":
		if !m.single {
			m.close()
			m.open((m.cursor + len(m.sections) - 1) % len(m.sections))
		}
	case " ":
		m.paused = !m.paused
	case ".":
		if m.paused {
			m.page.Step()
		}
	case "r":
		m.page.Restart()
	case "t":
		m.cycleTheme()
	case "b":
		m.page.Reveal = !m.page.Reveal
	}
	return m, nil
}

func (m *model) open(i int) {
	m.cursor = i
	m.page = NewPage(m.sections[i], m.only, m.logger)
	m.state = statePage
	m.scroll = 0
	m.paused = false
	m.last = time.Time{}
	m.logger.Debug("section opened", "section", m.sections[i].ID, "animations", m.sections[i].NumAnimations())
}

func (m *model) close() {
	if m.page != nil {
		m.page.Close()
	}
}

func (m *model) cycleTheme() {
	m.theme = viz.NextTheme(m.theme.Name)
	m.styles = viz.NewStyles(m.theme)
	m.md = m.newMD(m.cols, m.theme)
	m.logger.Debug("theme changed", "theme", m.theme.Name)
}

func (m model) bodyHeight() int {
	return max(m.height-5, 3)
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case statePage:
		return m.viewPage()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	s := m.styles

	b.WriteString("\n")
	b.WriteString("    " + viz.GradientText("l i n e a r   a l g e b r a", m.theme.Secondary, m.theme.Primary) + "\n")
	b.WriteString("    " + viz.Separator(30, s) + "\n\n")

	for i, sec := range m.sections {
		count := fmt.Sprintf("%2d", sec.NumAnimations())
		if i == m.cursor {
			b.WriteString("   " + s.Selected.Render("▸ "+fmt.Sprintf("%-28s", sec.Title)) + s.Subtle.Render(count) + "\n")
		} else {
			b.WriteString("     " + s.Item.Render(fmt.Sprintf("%-28s", sec.Title)) + s.Subtle.Render(count) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.KeyHint.Render("     ↑↓ select   enter open   t theme   q quit") + "\n")
	return b.String()
}

func (m model) viewPage() string {
	s := m.styles
	var b strings.Builder

	status := s.Running.Render("● running")
	if m.paused {
		status = s.Paused.Render("○ paused")
	}
	b.WriteString(fmt.Sprintf(" %s  %s  %s  %s\n",
		s.Title.Render(m.page.Section.Title),
		s.Subtle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.sections))),
		status,
		s.Label.Render(fmt.Sprintf("tick %d  %.0ffps  %s", m.page.Ticks(), m.lastFPS, m.theme.Name))))
	b.WriteString(viz.ProgressBar(m.cursor+1, len(m.sections), max(min(m.width-2, 60), 0), s) + "\n")

	lines := m.page.Lines(Layout{Cols: m.cols, Theme: m.theme, Styles: s, Markdown: m.md})
	h := m.bodyHeight()
	start := min(m.scroll, max(len(lines)-1, 0))
	end := min(start+h, len(lines))
	for _, l := range lines[start:end] {
		b.WriteString(l + "\n")
	}
	for i := end - start; i < h; i++ {
		b.WriteString("\n")
	}

	hint := "j/k scroll  n/p section  space pause  . step  r restart  t theme  b reveal  esc back  q quit"
	if m.single {
		hint = "space pause  . step  r restart  t theme  esc quit"
	}
	b.WriteString(s.KeyHint.Render(" " + hint))
	return b.String()
}

func indexOf(sections []*lesson.Section, id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return 0
}
