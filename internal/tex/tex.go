// Package tex turns matrix literals into TeX markup for a math renderer.
package tex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

const (
	RowSep = ` \\ `
	ColSep = ` & `
)

var ErrEmptyLiteral = errors.New("tex: empty matrix literal")

// Cell is a number or a symbolic label such as "z" or "-1 \over 2".
type Cell struct {
	value    float64
	label    string
	symbolic bool
}

func Num(v float64) Cell   { return Cell{value: v} }
func Sym(s string) Cell    { return Cell{label: s, symbolic: true} }
func (c Cell) IsSym() bool { return c.symbolic }

// Value returns the numeric value; ok is false for symbolic cells.
func (c Cell) Value() (v float64, ok bool) { return c.value, !c.symbolic }

func (c Cell) String() string {
	if c.symbolic {
		return c.label
	}
	return strconv.FormatFloat(c.value, 'f', -1, 64)
}

// Literal is a grid of cells, row by row. Rows are expected to be the same
// length; ragged input still formats, it just typesets misaligned.
type Literal [][]Cell

func Rows(rows ...[]Cell) Literal { return Literal(rows) }

func FromRows(rows [][]float64) Literal {
	m := make(Literal, len(rows))
	for i, r := range rows {
		m[i] = make([]Cell, len(r))
		for j, v := range r {
			m[i][j] = Num(v)
		}
	}
	return m
}

// Column builds a column vector.
func Column(vs ...float64) Literal {
	m := make(Literal, len(vs))
	for i, v := range vs {
		m[i] = []Cell{Num(v)}
	}
	return m
}

// SymColumn builds a column vector of labels, e.g. x, y, z.
func SymColumn(labels ...string) Literal {
	m := make(Literal, len(labels))
	for i, l := range labels {
		m[i] = []Cell{Sym(l)}
	}
	return m
}

// Shape returns the row count, the widest row and whether all rows agree.
func (m Literal) Shape() (rows, cols int, rectangular bool) {
	rectangular = true
	for i, r := range m {
		if len(r) > cols {
			cols = len(r)
		}
		if i > 0 && len(r) != len(m[0]) {
			rectangular = false
		}
	}
	return len(m), cols, rectangular
}

// Environment is the bracket style wrapped around the grid.
type Environment int

const (
	BMatrix Environment = iota
	PMatrix
	VMatrix
)

func (e Environment) String() string {
	switch e {
	case PMatrix:
		return "pmatrix"
	case VMatrix:
		return "vmatrix"
	default:
		return "bmatrix"
	}
}

func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bmatrix", "square":
		return BMatrix, nil
	case "pmatrix", "paren":
		return PMatrix, nil
	case "vmatrix", "bar":
		return VMatrix, nil
	}
	return BMatrix, fmt.Errorf("tex: unknown environment %q", s)
}

// Options is everything a caller may pass along with a literal.
type Options struct {
	Inline bool
	Env    Environment
}

// Node is the markup plus the display mode the renderer should use.
type Node struct {
	Markup string `json:"markup"`
	Inline bool   `json:"inline"`
}

// Format wraps m in a bmatrix environment.
func Format(m Literal) string { return FormatEnv(m, BMatrix) }

func FormatEnv(m Literal, env Environment) string {
	rows := make([]string, len(m))
	for i, r := range m {
		cells := make([]string, len(r))
		for j, c := range r {
			cells[j] = c.String()
		}
		rows[i] = strings.Join(cells, ColSep)
	}
	name := env.String()
	return `\begin{` + name + `} ` + strings.Join(rows, RowSep) + ` \end{` + name + `}`
}

func NewNode(m Literal, opts Options) Node {
	return Node{Markup: FormatEnv(m, opts.Env), Inline: opts.Inline}
}

// Math wraps free-form TeX that is not a matrix.
func Math(markup string, inline bool) Node {
	return Node{Markup: markup, Inline: inline}
}

// ParseCell reads a number where it can and keeps anything else as a label.
func ParseCell(s string) Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sym("")
	}
	if v, err := cast.ToFloat64E(s); err == nil {
		return Num(v)
	}
	return Sym(s)
}

// ParseLiteral reads "1,2;3,4": rows split on ';', cells on ','.
func ParseLiteral(s string) (Literal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyLiteral
	}
	rows := strings.Split(s, ";")
	m := make(Literal, 0, len(rows))
	for _, r := range rows {
		parts := strings.Split(r, ",")
		row := make([]Cell, len(parts))
		for j, p := range parts {
			row[j] = ParseCell(p)
		}
		m = append(m, row)
	}
	return m, nil
}
