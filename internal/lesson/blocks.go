package lesson

import (
	"strings"

	"github.com/san-kum/linprimer/internal/scene"
	"github.com/san-kum/linprimer/internal/tex"
)

type BlockKind string

const (
	KindProse    BlockKind = "prose"
	KindMath     BlockKind = "math"
	KindMatrices BlockKind = "matrices"
	KindStatic   BlockKind = "static"
	KindAnimated BlockKind = "animated"
)

// Block is one piece of a section. The set of kinds is closed.
type Block interface {
	Kind() BlockKind
	block()
}

// Prose is markdown text.
type Prose struct{ Text string }

// Math is a display or inline formula.
type Math struct{ tex.Node }

// Matrices is a row of literals joined by operators, e.g. A x = b.
type Matrices struct{ Terms []Term }

// Term is an operator or word followed by an optional literal.
type Term struct {
	Op     string
	Matrix tex.Literal
}

// Static is a still scene.
type Static struct{ Scene scene.Scene }

// Animated is a scene that changes on every tick. Index is its position
// among the section's animations.
type Animated struct {
	Animation
	Index int
}

func (Prose) Kind() BlockKind    { return KindProse }
func (Math) Kind() BlockKind     { return KindMath }
func (Matrices) Kind() BlockKind { return KindMatrices }
func (Static) Kind() BlockKind   { return KindStatic }
func (Animated) Kind() BlockKind { return KindAnimated }

func (Prose) block()    {}
func (Math) block()     {}
func (Matrices) block() {}
func (Static) block()   {}
func (Animated) block() {}

// Markup joins the terms into one TeX string.
func (m Matrices) Markup() string {
	parts := make([]string, 0, 2*len(m.Terms))
	for _, t := range m.Terms {
		if t.Op != "" {
			parts = append(parts, t.Op)
		}
		if t.Matrix != nil {
			parts = append(parts, tex.Format(t.Matrix))
		}
	}
	return strings.Join(parts, " ")
}

// Node returns the row as a display formula.
func (m Matrices) Node() tex.Node { return tex.Math(m.Markup(), false) }

func prose(text string) Block { return Prose{Text: strings.TrimSpace(text)} }

func display(markup string) Block { return Math{tex.Math(markup, false)} }

func matrices(terms ...Term) Block { return Matrices{Terms: terms} }

func mat(rows ...[]float64) Term { return Term{Matrix: tex.FromRows(rows)} }

func col(vs ...float64) Term { return Term{Matrix: tex.Column(vs...)} }

func symcol(labels ...string) Term { return Term{Matrix: tex.SymColumn(labels...)} }

func op(s string) Term { return Term{Op: s} }

func static(s scene.Scene) Block { return Static{Scene: s} }

func animated(caption string, build func() Player) Block {
	return Animated{Animation: Animation{Caption: caption, build: build}}
}
