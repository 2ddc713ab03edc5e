package lesson

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/linprimer/internal/anim"
	"github.com/san-kum/linprimer/internal/numfmt"
	"github.com/san-kum/linprimer/internal/scene"
)

func TestCatalogOrder(t *testing.T) {
	want := []string{
		"spaces", "vectors", "matrices", "linear-independence", "subspaces", "spans",
		"basis", "elementary-row-operations", "row-space", "column-space", "null-space",
	}
	got := IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup("spans")
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "Spans" {
		t.Errorf("Title = %q", s.Title)
	}
	if _, err := Lookup("eigenvalues"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Lookup(unknown) error = %v, want ErrUnknownSection", err)
	}
}

func TestAnimationCounts(t *testing.T) {
	tests := map[string]int{
		"spaces":                    1,
		"vectors":                   6,
		"matrices":                  7,
		"linear-independence":       3,
		"subspaces":                 1,
		"spans":                     3,
		"basis":                     4,
		"elementary-row-operations": 7,
		"row-space":                 13,
		"column-space":              5,
		"null-space":                3,
	}
	for id, want := range tests {
		s, err := Lookup(id)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.NumAnimations(); got != want {
			t.Errorf("%s has %d animations, want %d", id, got, want)
		}
	}
}

func TestAnimationOutOfRange(t *testing.T) {
	s, _ := Lookup("spaces")
	for _, i := range []int{-1, 1, 99} {
		if _, err := s.Animation(i); !errors.Is(err, ErrNoAnimation) {
			t.Errorf("Animation(%d) error = %v, want ErrNoAnimation", i, err)
		}
	}
}

func TestEveryAnimationRuns(t *testing.T) {
	for _, s := range Catalog() {
		for i := 0; i < s.NumAnimations(); i++ {
			p, err := s.Animation(i)
			if err != nil {
				t.Fatal(err)
			}
			f, err := p.Advance(10)
			if err != nil {
				t.Fatalf("%s: %v", AnimationName(s.ID, i), err)
			}
			if len(f.Scene.Nodes) == 0 {
				t.Errorf("%s rendered an empty scene", AnimationName(s.ID, i))
			}
			if p.Ticks() != 10 {
				t.Errorf("%s Ticks() = %d", AnimationName(s.ID, i), p.Ticks())
			}
		}
	}
}

func TestBlocksIndexAnimations(t *testing.T) {
	for _, s := range Catalog() {
		next := 0
		for _, b := range s.Blocks {
			if a, ok := b.(Animated); ok {
				if a.Index != next {
					t.Errorf("%s: animated block has index %d, want %d", s.ID, a.Index, next)
				}
				next++
			}
		}
	}
}

func TestNumberLineReadout(t *testing.T) {
	s, _ := Lookup("vectors")
	p, _ := s.Animation(1)

	for n := 1; n <= 200; n++ {
		f, err := p.Tick()
		if err != nil {
			t.Fatal(err)
		}
		want := numfmt.Truncate(math.Sin(float64(n)*Rate), 2)
		if len(f.Readouts) != 1 || f.Readouts[0].Value != want {
			t.Fatalf("tick %d readouts = %+v, want x = %v", n, f.Readouts, want)
		}
		v := f.Scene.Nodes[1].(scene.Vector)
		if v.Position.X != 2*want {
			t.Fatalf("tick %d vector x = %v, want %v", n, v.Position.X, 2*want)
		}
	}
}

func TestInitialFrame(t *testing.T) {
	s, _ := Lookup("vectors")
	p, _ := s.Animation(1)
	f := p.Frame()
	if f.Readouts[0].Text != "x = 0" {
		t.Errorf("tick 0 readout = %q, want %q", f.Readouts[0].Text, "x = 0")
	}
}

func TestAdditionReadout(t *testing.T) {
	s, _ := Lookup("vectors")
	p, _ := s.Animation(4)

	// lerp(0) = 0.5, so b = (1, 0.5) and c = (2, 2.5).
	f := p.Frame()
	if got := f.Readouts[0].Text; got != "x = 1 + 1 = 2" {
		t.Errorf("x readout = %q", got)
	}
	if got := f.Readouts[1].Text; got != "y = 2 + 0.5 = 2.5" {
		t.Errorf("y readout = %q", got)
	}
}

func TestSpanReadoutsArePadded(t *testing.T) {
	s, _ := Lookup("spans")
	p, _ := s.Animation(1)
	f := p.Frame()
	if got := f.Readouts[0].Text; got != "1.25 (1, -1)" {
		t.Errorf("a readout = %q", got)
	}
	if got := f.Readouts[1].Text; got != "-0.75 (-1, -1)" {
		t.Errorf("b readout = %q", got)
	}
}

func TestSpinRates(t *testing.T) {
	tests := []struct {
		id   string
		rate float64
	}{
		{"spaces", SlowSpin},
		{"subspaces", ReverseSpin},
		{"elementary-row-operations", FastSpin},
	}
	for _, tt := range tests {
		s, _ := Lookup(tt.id)
		p, _ := s.Animation(0)
		before := p.Frame().Scene.Rotation
		f, _ := p.Advance(100)
		if d := f.Scene.Rotation.Y - before.Y; math.Abs(d-100*tt.rate) > 1e-9 {
			t.Errorf("%s turned %v in 100 ticks, want %v", tt.id, d, 100*tt.rate)
		}
		if f.Scene.Rotation.X != before.X {
			t.Errorf("%s pitch changed", tt.id)
		}
	}
}

func TestPlayersAreIndependent(t *testing.T) {
	s, _ := Lookup("basis")
	a, _ := s.Animation(1)
	b, _ := s.Animation(1)

	a.Advance(50)
	if b.Ticks() != 0 {
		t.Error("advancing one player moved another")
	}
	a.Stop()
	if _, err := a.Tick(); !errors.Is(err, anim.ErrStopped) {
		t.Errorf("Tick after Stop = %v", err)
	}
	if _, err := b.Tick(); err != nil {
		t.Errorf("stopping one player stopped another: %v", err)
	}
}

func TestFadeOut(t *testing.T) {
	s, _ := Lookup("elementary-row-operations")
	p, _ := s.Animation(6)

	// sin(t·0.05) = -1 at t = 30π; nearest tick is 94.
	f, _ := p.Advance(94)
	for _, n := range f.Scene.Nodes {
		if pl, ok := n.(scene.Plane); ok && pl.Opacity > 0.01 {
			t.Errorf("plane opacity = %v near the trough", pl.Opacity)
		}
	}
}

func TestDocument(t *testing.T) {
	s, _ := Lookup("null-space")
	doc := s.Document()
	if doc.ID != "null-space" || doc.Animations != 3 {
		t.Errorf("summary = %+v", doc.Summary)
	}
	var sawMatrix bool
	for _, b := range doc.Blocks {
		if b.Kind == KindMatrices && strings.Contains(b.Math.Markup, `\begin{bmatrix} z \\ -2z \\ z \end{bmatrix}`) {
			sawMatrix = true
		}
		if b.Kind == KindAnimated && (b.Scene == nil || b.Animation == nil) {
			t.Errorf("animated block missing scene or index: %+v", b)
		}
	}
	if !sawMatrix {
		t.Error("symbolic solution matrix missing")
	}
	if _, err := json.Marshal(doc); err != nil {
		t.Fatal(err)
	}
}

func TestMatricesMarkup(t *testing.T) {
	m := Matrices{Terms: []Term{col(1, 2), op("+"), col(3, 4)}}
	want := `\begin{bmatrix} 1 \\ 2 \end{bmatrix} + \begin{bmatrix} 3 \\ 4 \end{bmatrix}`
	if got := m.Markup(); got != want {
		t.Errorf("Markup() = %q, want %q", got, want)
	}
}
