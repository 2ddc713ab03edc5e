package lesson

import (
	"github.com/san-kum/linprimer/internal/linalg"
	"github.com/san-kum/linprimer/internal/scene"
	"github.com/san-kum/linprimer/internal/tex"
)

var xyz = symcol("x", "y", "z")

// cells builds a column that mixes numbers and labels such as fractions.
func cells(cs ...any) Term {
	m := make(tex.Literal, len(cs))
	for i, c := range cs {
		switch c := c.(type) {
		case string:
			m[i] = []tex.Cell{tex.Sym(c)}
		case float64:
			m[i] = []tex.Cell{tex.Num(c)}
		case int:
			m[i] = []tex.Cell{tex.Num(float64(c))}
		}
	}
	return Term{Matrix: m}
}

func rows3(r ...[]float64) Term { return mat(r...) }

// planes3 spins three planes, one per row of a system, coloured yellow,
// magenta and cyan.
func planes3(caption string, extent float64, eqs [3][4]float64) Block {
	colors := [3]scene.Color{scene.Yellow, scene.Magenta, scene.Cyan}
	nodes := make([]scene.Node, 3)
	for i, e := range eqs {
		nodes[i] = plane(e[0], e[1], e[2], e[3], extent, colors[i])
	}
	return spin3D(caption, FastSpin, nodes...)
}

func eroSection() *Section {
	return newSection("elementary-row-operations", "Elementary Row Operations",
		prose(`Read a matrix as a system of equations again. Take:`),
		display("x + y = 2"),
		display("x - z = 1"),
		display("y - z = 0"),
		prose(`
You could substitute, or add and subtract multiples of whole equations.
Or write the system as a matrix-vector product and solve for the vector
in the middle:`),
		matrices(rows3([]float64{1, 1, 0}, []float64{1, 0, -1}, []float64{0, 1, -1}), xyz, op("="), col(2, 1, 0)),
		prose(`Drawn as planes, the three equations meet at a single point.`),
		planes3("three planes meeting at a point", 2, [3][4]float64{{1, 1, 0, 2}, {1, 0, -1, 1}, {0, 1, -1, 0}}),
		prose(`
The **elementary row operations** are the moves that keep that point
where it is:

- swap two rows,
- multiply a row by a non-zero scalar,
- add a multiple of one row to another.

Watch the planes move while their intersection stays put. First,
subtract the first row from the second.`),
		matrices(rows3([]float64{1, 1, 0}, []float64{0, -1, -1}, []float64{0, 1, -1}), xyz, op("="), col(2, -1, 0)),
		planes3("after subtracting row one from row two", 2, [3][4]float64{{1, 1, 0, 2}, {0, -1, -1, -1}, {0, 1, -1, 0}}),
		prose(`Then add the second row to the third.`),
		matrices(rows3([]float64{1, 1, 0}, []float64{0, -1, -1}, []float64{0, 0, -2}), xyz, op("="), col(2, -1, -1)),
		planes3("after adding row two to row three", 2, [3][4]float64{{1, 1, 0, 2}, {0, -1, -1, -1}, {0, 0, -2, -1}}),
		prose(`Subtract half of the third row from the second.`),
		matrices(rows3([]float64{1, 1, 0}, []float64{0, -1, 0}, []float64{0, 0, -2}), xyz, op("="), cells(2, `-1 \over 2`, -1)),
		planes3("after subtracting half of row three", 2, [3][4]float64{{1, 1, 0, 2}, {0, -1, 0, -0.5}, {0, 0, -2, -1}}),
		prose(`Add the second row to the first.`),
		matrices(rows3([]float64{1, 0, 0}, []float64{0, -1, 0}, []float64{0, 0, -2}), xyz, op("="), cells(`3 \over 2`, `-1 \over 2`, -1)),
		planes3("after adding row two to row one", 2, [3][4]float64{{1, 0, 0, 1.5}, {0, -1, 0, -0.5}, {0, 0, -2, -1}}),
		prose(`Finally divide the second row by -1 and the third by -2.`),
		matrices(rows3([]float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, 1}), xyz, op("="), cells(`3 \over 2`, `1 \over 2`, `1 \over 2`)),
		planes3("the reduced system", 2, [3][4]float64{{1, 0, 0, 1.5}, {0, 1, 0, 0.5}, {0, 0, 1, 0.5}}),
		prose(`Each plane is now perpendicular to an axis and the solution can be read straight off:`),
		matrices(cells(`3 \over 2`, `1 \over 2`, `1 \over 2`)),
		animated("the planes fading into their solution", spinTicking(FastSpin, func(s SpinClock) Frame {
			l := s.Lerp()
			fade := func(p scene.Plane) scene.Plane { p.Opacity = l; return p }
			return Frame{Scene: scene.New().Rotate(s.Rotation).Space3D().
				Vector(linalg.V(1.5, 0.5, 0.5).Scale(1-l), scene.Yellow).
				Add(fade(plane(1, 0, 0, 1.5, 2, scene.Yellow))).
				Add(fade(plane(0, 1, 0, 0.5, 2, scene.Magenta))).
				Add(fade(plane(0, 0, 1, 0.5, 2, scene.Cyan))).
				Build()}
		})),
		prose(`That is Gauss-Jordan elimination: row operations until the identity is left on the left-hand side.`),
	)
}

func rowSpaceSection() *Section {
	return newSection("row-space", "Row Space",
		prose(`
The **row space** of a matrix is the span of its rows, each read as a
vector. Its dimension tells you how many independent equations the system
really has.`),
		matrices(mat([]float64{1, 1}, []float64{2, 2})),
		static(flat().Blankable().Vector(linalg.V(1, 1, 0), scene.Yellow).Vector(linalg.V(2, 2, 0), scene.Magenta).Build()),
		prose(`The second row is twice the first, so the row space is only a line.`),
		matrices(mat([]float64{1, 1}, []float64{1, -1})),
		static(flat().Blankable().Vector(linalg.V(1, 1, 0), scene.Yellow).Vector(linalg.V(1, -1, 0), scene.Magenta).Build()),
		prose(`
These rows are independent and span the plane. In three dimensions, think
of each row as the normal of a plane through the origin, the homogeneous
system:`),
		matrices(rows3([]float64{1, 1, 0}, []float64{1, 0, -1}, []float64{0, 1, -1}), xyz, op("="), col(0, 0, 0)),
		planes3("a homogeneous system", 2, [3][4]float64{{1, 1, 0, 0}, {1, 0, -1, 0}, {0, 1, -1, 0}}),
		prose(`The identity has the simplest row space of all: every axis-aligned plane, all of ℝ³.`),
		matrices(rows3([]float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, 1})),
		planes3("the identity's planes", 2, [3][4]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}),
		prose(`When one row is a multiple of another, two of the planes coincide.`),
		matrices(rows3([]float64{1, 1, 0}, []float64{2, 2, 0}, []float64{0, 0, 1})),
		planes3("two coinciding planes", 2, [3][4]float64{{1, 1, 0, 0}, {2, 2, 0, 0}, {0, 0, 1, 0}}),
		prose(`Eliminating the duplicate leaves a zero row, which describes no plane at all.`),
		matrices(rows3([]float64{1, 1, 0}, []float64{0, 0, 0}, []float64{0, 0, 1})),
		planes3("a zero row", 2, [3][4]float64{{1, 1, 0, 0}, {0, 0, 0, 0}, {0, 0, 1, 0}}),
		prose(`The rows as vectors: two of them share a line, so together they span a plane.`),
		spin3D("rows spanning a plane", FastSpin,
			vec(1, 1, 0, scene.Yellow), vec(2, 2, 0, scene.Magenta), vec(0, 1, 1, scene.Cyan)),
		prose(`If every row is a multiple of the first, the row space is a line.`),
		matrices(rows3([]float64{1, 1, 0}, []float64{2, 2, 0}, []float64{3, 3, 0})),
		spin3D("rows on a line", FastSpin,
			vec(1, 1, 0, scene.Yellow), vec(2, 2, 0, scene.Magenta), vec(3, 3, 0, scene.Cyan)),
		prose(`A less obvious case. Row reduction will tell us what this one spans.`),
		matrices(rows3([]float64{1, 2, 3}, []float64{2, 2, 2}, []float64{-1, 0, 1})),
		planes3("the starting planes", 1, [3][4]float64{{1, 2, 3, 0}, {2, 2, 2, 0}, {-1, 0, 1, 0}}),
		prose(`Add the first row to the third.`),
		matrices(rows3([]float64{1, 2, 3}, []float64{2, 2, 2}, []float64{0, 2, 4})),
		planes3("third row replaced", 1, [3][4]float64{{1, 2, 3, 0}, {2, 2, 2, 0}, {0, 2, 4, 0}}),
		prose(`Subtract half of the third row from the second.`),
		matrices(rows3([]float64{1, 2, 3}, []float64{2, 1, 0}, []float64{0, 2, 4})),
		planes3("second row replaced", 1, [3][4]float64{{1, 2, 3, 0}, {2, 1, 0, 0}, {0, 2, 4, 0}}),
		prose(`Replace the first row with four times itself minus three times the third. It comes out as twice the second row.`),
		matrices(rows3([]float64{4, 2, 0}, []float64{2, 1, 0}, []float64{0, 2, 4})),
		planes3("first row a multiple of the second", 1, [3][4]float64{{4, 2, 0, 0}, {2, 1, 0, 0}, {0, 2, 4, 0}}),
		prose(`Subtract twice the second row from the first and it vanishes.`),
		matrices(rows3([]float64{0, 0, 0}, []float64{2, 1, 0}, []float64{0, 2, 4})),
		planes3("a vanished row", 1, [3][4]float64{{0, 0, 0, 0}, {2, 1, 0, 0}, {0, 2, 4, 0}}),
		prose(`Two independent rows remain, so the row space is the plane they span:`),
		spin3D("the remaining rows", FastSpin, vec(2, 1, 0, scene.Magenta), vec(0, 1, 2, scene.Cyan)),
		prose(`That plane is `+"`2x - 4y + 2z = 0`"+`.`),
		spin3D("the row space", FastSpin,
			vec(2, 1, 0, scene.Yellow), vec(0, 1, 2, scene.Magenta), plane(2, -4, 2, 0, 1, scene.Cyan)),
	)
}

func columnSpaceSection() *Section {
	return newSection("column-space", "Column Space",
		prose(`
The **column space** is the span of the columns. Recall that the columns
say where each basis vector lands under the transformation:`),
		matrices(mat([]float64{3, 1}, []float64{1, 1})),
		display(`\hat{i} \rightarrow (3, 1), \hat{j} \rightarrow (1, 1)`),
		animated("the basis vectors landing on the columns", ticking(func(c Clock) Frame {
			l := c.Lerp()
			m := linalg.Set(1+2*l, l, 0, l, 1, 0, 0, 0, 0)
			return Frame{Scene: flat().
				Vector(m.Apply(linalg.UnitX), scene.Yellow).
				Vector(m.Apply(linalg.UnitY), scene.Yellow).
				Build()}
		})),
		prose(`
So the column space is every place the transformation can send a vector.
To find it, transpose the matrix so the columns become rows and row
reduce, as with any `+"`n × m`"+` matrix.`),
		matrices(rows3([]float64{1, 2, 3}, []float64{1, 1, 3}, []float64{2, 1, 6}), op(`\rightarrow`), rows3([]float64{1, 1, 2}, []float64{2, 1, 1}, []float64{3, 3, 6})),
		planes3("the transposed rows", 1, [3][4]float64{{1, 1, 2, 0}, {1, 1, 3, 0}, {2, 1, 6, 0}}),
		prose(`Row reduce:`),
		matrices(rows3([]float64{1, 1, 2}, []float64{2, 1, 1}, []float64{3, 3, 6}), op(`\sim`), rows3([]float64{-1, 0, 1}, []float64{0, 1, 3}, []float64{0, 0, 0})),
		planes3("the reduced rows", 1, [3][4]float64{{-1, 0, 1, 0}, {0, 1, 3, 0}, {0, 0, 0, 0}}),
		prose(`Transpose back. The non-zero columns are a basis for the column space.`),
		matrices(rows3([]float64{-1, 0, 1}, []float64{0, 1, 3}, []float64{0, 0, 0}), op(`\rightarrow`), rows3([]float64{-1, 0, 0}, []float64{0, 1, 0}, []float64{1, 3, 0})),
		spin3D("the column space basis", FastSpin, vec(-1, 0, 0, scene.Magenta), vec(0, 1, 3, scene.Yellow)),
		prose(`They span the plane `+"`-3y + z = 0`"+`:`),
		spin3D("the column space", FastSpin,
			vec(-1, 0, 0, scene.Yellow), vec(0, 1, 3, scene.Magenta), plane(0, -3, 1, 0, 1, scene.Cyan)),
	)
}

func nullSpaceSection() *Section {
	return newSection("null-space", "Null Space",
		prose(`
The **null space** is every vector the matrix sends to zero. Together with
the **column space** and the **row space** it makes up the fundamental
subspaces of a matrix.

Go back to the row space from earlier, the plane spanned by two rows:`),
		spin3D("the row space again", FastSpin,
			vec(2, 1, 0, scene.Yellow), vec(0, 1, 2, scene.Magenta), plane(2, -4, 2, 0, 1, scene.Cyan)),
		prose(`
A vector sent to zero has a zero dot product with every row, so it is
perpendicular to the whole row space. Here that is a line:`),
		spin3D("the line perpendicular to the row space", FastSpin,
			vec(-1, 2, -1, scene.Yellow), vec(1, -2, 1, scene.Yellow), plane(2, -4, 2, 0, 1, scene.Cyan)),
		prose(`
(It is the plane's normal, in both directions.)

To compute it, start from the reduced matrix:`),
		matrices(rows3([]float64{1, 2, 3}, []float64{2, 2, 2}, []float64{-1, 0, 1}), op(`\sim`), rows3([]float64{0, 0, 0}, []float64{2, 1, 0}, []float64{0, 2, 4})),
		prose(`and solve the homogeneous system:`),
		matrices(rows3([]float64{0, 0, 0}, []float64{2, 1, 0}, []float64{0, 2, 4}), xyz, op("="), col(0, 0, 0)),
		prose(`
The leading entries sit in the `+"`x`"+` and `+"`y`"+` columns; `+"`z`"+` is free. Solve for `+"`y`"+`:`),
		display("2y + 4z = 0"),
		display("y = -2z"),
		prose(`and then for `+"`x`"+`:`),
		display("2x + y = 0"),
		display("2x - 2z = 0"),
		display("x = z"),
		prose(`Every solution has the form`),
		matrices(symcol("z", "-2z", "z")),
		prose(`which is a multiple of one vector:`),
		matrices(col(1, -2, 1), op("z")),
		spin3D("the null space", FastSpin, vec(1, -2, 1, scene.Yellow), plane(2, -4, 2, 0, 1, scene.Cyan)),
	)
}
