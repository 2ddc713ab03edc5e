package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/viz"
)

func plain(int, viz.Theme) Markdown { return PlainMarkdown }

func testModel() model {
	return newModel(Options{Theme: "chalkboard", FPS: 30, Cols: 40, Markdown: plain})
}

func press(t *testing.T, m model, key string) (model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func tick(t *testing.T, m model) model {
	t.Helper()
	next, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(model)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMenuNavigation(t *testing.T) {
	m := testModel()

	m, _ = press(t, m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first section: %d", m.cursor)
	}
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "k")
	if m.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", m.cursor)
	}

	for range 20 {
		m, _ = press(t, m, "j")
	}
	if m.cursor != len(m.sections)-1 {
		t.Errorf("cursor moved past the last section: %d", m.cursor)
	}

	if !strings.Contains(m.View(), "Null Space") {
		t.Error("menu should list section titles")
	}

	_, cmd := press(t, m, "q")
	if !isQuit(cmd) {
		t.Error("q should quit from the menu")
	}
}

func TestPageTicking(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "enter")

	if m.state != statePage || m.page.Section.ID != "vectors" {
		t.Fatalf("expected vectors page, got state %d", m.state)
	}
	if len(m.page.players) != m.page.Section.NumAnimations() {
		t.Fatalf("expected a player per animation, got %d", len(m.page.players))
	}

	m = tick(t, m)
	if m.page.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", m.page.Ticks())
	}

	m, _ = press(t, m, " ")
	if !m.paused {
		t.Fatal("space should pause")
	}
	m = tick(t, m)
	if m.page.Ticks() != 1 {
		t.Errorf("paused page advanced to %d", m.page.Ticks())
	}

	m, _ = press(t, m, ".")
	if m.page.Ticks() != 2 {
		t.Errorf("single step should advance once, got %d", m.page.Ticks())
	}

	m, _ = press(t, m, "r")
	if m.page.Ticks() != 0 {
		t.Errorf("restart should rewind, got %d", m.page.Ticks())
	}

	for i := range m.page.Section.NumAnimations() {
		pl, ok := m.page.Player(i)
		if !ok || pl.Ticks() != 0 {
			t.Errorf("animation %d not rewound", i)
		}
	}
}

func TestLeavingPageStopsDrivers(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, "enter")
	first, ok := m.page.Player(0)
	if !ok {
		t.Fatal("first section should have an animation")
	}

	m, _ = press(t, m, "n")
	if m.cursor != 1 {
		t.Errorf("n should open the next section, cursor %d", m.cursor)
	}
	if !first.Stopped() {
		t.Error("previous page's animation still running")
	}

	second, _ := m.page.Player(0)
	m, _ = press(t, m, "esc")
	if m.state != stateMenu {
		t.Error("esc should return to the menu")
	}
	if !second.Stopped() {
		t.Error("esc should stop the page's animations")
	}
}

func TestSectionWrap(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "p")
	if m.cursor != len(m.sections)-1 {
		t.Errorf("p from the first section should wrap, cursor %d", m.cursor)
	}
	m, _ = press(t, m, "n")
	if m.cursor != 0 {
		t.Errorf("n from the last section should wrap, cursor %d", m.cursor)
	}
}

func TestThemeAndReveal(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, "enter")

	m, _ = press(t, m, "t")
	if m.theme.Name != "cyberpunk" {
		t.Errorf("expected cyberpunk, got %s", m.theme.Name)
	}

	m, _ = press(t, m, "b")
	if !m.page.Reveal {
		t.Error("b should reveal blank scenes")
	}
	m, _ = press(t, m, "b")
	if m.page.Reveal {
		t.Error("b should toggle")
	}
}

func TestPageView(t *testing.T) {
	m := testModel()
	m.height = 200
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "enter")

	view := m.View()
	for _, want := range []string{"Vectors", "a vector sliding along the x axis", "x = 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("page view missing %q", want)
		}
	}

	m, _ = press(t, m, "j")
	if m.scroll != 1 {
		t.Errorf("j should scroll once the page is laid out, got %d", m.scroll)
	}
}

func TestPlayer(t *testing.T) {
	sec, err := lesson.Lookup("vectors")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewPlayer(sec, 42, Options{Markdown: plain}); !errors.Is(err, lesson.ErrNoAnimation) {
		t.Errorf("expected ErrNoAnimation, got %v", err)
	}

	tm, err := NewPlayer(sec, 1, Options{Markdown: plain})
	if err != nil {
		t.Fatal(err)
	}
	m := tm.(model)
	if len(m.page.blocks) != 1 || len(m.page.players) != 1 {
		t.Fatalf("player should hold one animation, got %d blocks", len(m.page.blocks))
	}

	m, _ = press(t, m, "n")
	if m.page.Section.ID != "vectors" {
		t.Error("single animation mode should not change section")
	}

	pl, _ := m.page.Player(1)
	_, cmd := press(t, m, "esc")
	if !isQuit(cmd) {
		t.Error("esc should quit the player")
	}
	if !pl.Stopped() {
		t.Error("quitting should stop the animation")
	}
}

func TestLiveRenderer(t *testing.T) {
	sec, err := lesson.Lookup("vectors")
	if err != nil {
		t.Fatal(err)
	}
	p, err := sec.Animation(1)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "vectors/1", p, LiveOptions{Cols: 30})

	frame := r.Frame()
	if !strings.Contains(frame, "vectors/1  tick=0") || !strings.Contains(frame, "x = 0") {
		t.Errorf("unexpected frame:\n%s", frame)
	}

	if _, err := p.Tick(); err != nil {
		t.Fatal(err)
	}
	r.OnTick("other", 1)
	if buf.Len() != 0 {
		t.Error("renderer drew for another animation")
	}
	r.OnTick("vectors/1", 1)
	if !strings.HasPrefix(buf.String(), clearScreen) || !strings.Contains(buf.String(), "x = 0.04") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
