package lesson

import (
	"github.com/san-kum/linprimer/internal/linalg"
	"github.com/san-kum/linprimer/internal/scene"
)

// transform shows a 2x2 matrix easing in from the identity and what it
// does to one input vector. The matrix columns are drawn in yellow.
func transform(caption string, m func(lerp float64) linalg.Mat3, input linalg.Vec3) Block {
	return animated(caption, ticking(func(c Clock) Frame {
		mt := m(c.Lerp())
		return Frame{Scene: flat().
			Vector(mt.Col(0), scene.Yellow).
			Vector(mt.Col(1), scene.Yellow).
			Vector(mt.Apply(input), scene.Magenta).
			Build()}
	}))
}

// product shows m(lerp) applied to both columns of a fixed matrix.
func product(caption string, m func(lerp float64) linalg.Mat3, input linalg.Mat3) Block {
	return animated(caption, ticking(func(c Clock) Frame {
		mt := m(c.Lerp())
		out := mt.Mul(input)
		return Frame{Scene: flat().
			Vector(mt.Col(0), scene.Cyan).
			Vector(mt.Col(1), scene.Cyan).
			Vector(out.Col(0), scene.Magenta).
			Vector(out.Col(1), scene.Yellow).
			Build()}
	}))
}

func scaling(l float64) linalg.Mat3 { return linalg.Set(1+l, 0, 0, 0, 1+l, 0, 0, 0, 0) }

func rotation(l float64) linalg.Mat3 { return linalg.Set(1-l, l, 0, -l, 1-l, 0, 0, 0, 0) }

// line draws ax + by = c across the visible plane as a headless segment.
func line(a, b, c float64, color scene.Color) scene.Vector {
	at := func(x float64) linalg.Vec3 { return linalg.V(x, (c-a*x)/b, 0) }
	return vecFrom(at(-scene.AxisExtent), at(scene.AxisExtent), color)
}

func matricesSection() *Section {
	columns := linalg.Set(3, 1, 0, 1, 1, 0, 0, 0, 0)

	return newSection("matrices", "Matrices",
		prose(`The classic way to meet a matrix is as a system of linear equations, say:`),
		display("2x + 3y = 4"),
		display("6x + 2y = 1"),
		prose(`
Each equation is one relationship between `+"`x`"+` and `+"`y`"+`. With only the first
you cannot pin both down: any point on the line satisfies it.`),
		display("2x + 3y = 4"),
		display("3y = 4 - 2x"),
		display(`y = \frac{4 - 2x}{3}`),
		static(scene.New().Blankable().Plane2D().Add(line(2, 3, 4, scene.Yellow)).Build()),
		prose(`Add the second line and, unless the two are parallel, they cross at exactly one point: the solution.`),
		display("6x + 2y = 1"),
		display("2y = 1 - 6x"),
		display(`y = \frac{1 - 6x}{2}`),
		static(scene.New().Blankable().Plane2D().
			Add(line(2, 3, 4, scene.Magenta)).
			Add(line(6, 2, 1, scene.Yellow)).
			Build()),
		prose(`A matrix is shorthand for the system: drop the variables and keep the coefficients in brackets.`),
		matrices(mat([]float64{2, 3}, []float64{6, 2})),
		prose(`
Each row mentions both `+"`x`"+` and `+"`y`"+`, so each row is itself a vector, and the
number of rows bounds how many unknowns you can solve for. Rows tell you
about the input space, columns about the output space.

The rows, drawn as vectors:`),
		static(flat().Blankable().Vector(linalg.V(2, 3, 0), scene.Magenta).Vector(linalg.V(6, 2, 0), scene.Yellow).Build()),
		prose(`And the columns:`),
		static(flat().Blankable().Vector(linalg.V(2, 6, 0), scene.Magenta).Vector(linalg.V(3, 2, 0), scene.Yellow).Build()),
		prose(`Adding matrices of the same size is component by component:`),
		matrices(mat([]float64{1, 1}, []float64{2, 0}), op("+"), mat([]float64{2, 1}, []float64{1, 1})),
		animated("adding two matrices column by column", ticking(func(c Clock) Frame {
			l := c.Lerp()
			a1, b1 := linalg.V(1, 1, 0), linalg.V(2*l, l, 0)
			a2, b2 := linalg.V(2, 0, 0), linalg.V(l, l, 0)
			c1, c2 := a1.Add(b1), a2.Add(b2)
			return Frame{Scene: flat().
				Vector(a1, scene.Yellow).VectorFrom(a1, c1, scene.Yellow).Vector(c1, scene.Yellow).
				Vector(a2, scene.Lime).VectorFrom(a2, c2, scene.Lime).Vector(c2, scene.Lime).
				Build()}
		})),
		prose(`
Matrix-vector multiplication is where it gets interesting: it moves the
vector into the output space the matrix describes. Each output row is the
sum of that matrix row times the vector, so the vector needs as many
entries as the matrix has columns. This one scales by 2 in both `+"`x`"+` and `+"`y`"+`:`),
		matrices(mat([]float64{2, 0}, []float64{0, 2}), col(3, 1), op("="), col(6, 2)),
		transform("scaling a vector", scaling, linalg.V(3, 1, 0)),
		prose(`This one is a shear: one step along `+"`x`"+` for every step along `+"`y`"+`.`),
		matrices(mat([]float64{1, 1}, []float64{0, 1}), col(2, 3), op("="), col(5, 3)),
		transform("a shear", func(l float64) linalg.Mat3 {
			return linalg.Set(1, l, 0, 0, 1, 0, 0, 0, 0)
		}, linalg.V(2, 3, 0)),
		prose(`
Watch the two yellow vectors. They are a **basis** for the plane, eased
from their default position to the columns of the matrix. This next one
swaps `+"`x`"+` and `+"`y`"+`, which is a reflection.`),
		matrices(mat([]float64{0, 1}, []float64{1, 0}), col(2, 3), op("="), col(3, 2)),
		transform("a reflection", func(l float64) linalg.Mat3 {
			return linalg.Set(1-l, l, 0, l, 1-l, 0, 0, 0, 0)
		}, linalg.V(2, 3, 0)),
		prose(`And this one rotates the whole plane by a quarter turn.`),
		matrices(mat([]float64{0, 1}, []float64{-1, 0}), col(2, 3), op("="), col(3, -2)),
		transform("a rotation", rotation, linalg.V(2, 3, 0)),
		prose(`
Multiplying two matrices is the same idea applied to every column of the
right-hand matrix. Its first column is drawn in magenta and its second in
yellow; the left-hand matrix is in cyan.`),
		matrices(mat([]float64{2, 0}, []float64{0, 2}), mat([]float64{3, 1}, []float64{1, 1}), op("="), mat([]float64{6, 2}, []float64{2, 2})),
		product("scaling both columns", scaling, columns),
		prose(`
The column `+"`(1, 1)`"+` is scaled to `+"`(2, 2)`"+` and `+"`(3, 1)`"+` to `+"`(6, 2)`"+`. Here is the
earlier rotation applied the same way:`),
		matrices(mat([]float64{0, 1}, []float64{-1, 0}), mat([]float64{3, 1}, []float64{1, 1}), op("="), mat([]float64{1, 1}, []float64{-3, -1})),
		product("rotating both columns", rotation, columns),
	)
}

func independenceSection() *Section {
	surface := mesh(func(u, v float64) linalg.Vec3 { return linalg.V(u+v, u, u+v) })

	return newSection("linear-independence", "Linear Independence",
		prose(`
*Independence* is a slightly misleading word: surely any vector can be
moved on its own? The real question is whether a vector gives you access
to a new direction, or whether the others already reach everywhere it can.
A vector can have non-zero entries everywhere and still add nothing.`),
		matrices(mat([]float64{1, 2}, []float64{2, 4})),
		static(flat().Blankable().Vector(linalg.V(1, 2, 0), scene.Yellow).Vector(linalg.V(2, 4, 0), scene.Magenta).Build()),
		prose(`
These two are **linearly dependent**. The first lies on `+"`y = 2x`"+` and the second
on `+"`2y = 4x`"+`, which is the same line. No combination of them leaves it.

With two vectors in two dimensions that only happens when one is a multiple
of the other. Three vectors in two dimensions, though, are always dependent:`),
		matrices(col(1, 2), col(1, 1), col(4, 5)),
		static(flat().Blankable().
			Vector(linalg.V(1, 1, 0), scene.Yellow).
			Vector(linalg.V(1, 2, 0), scene.Magenta).
			Vector(linalg.V(4, 5, 0), scene.Cyan).
			Build()),
		prose(`
None of them share a line, but the first two already span the whole plane,
so the third brings nothing new. For example:`),
		display(`1 \times ((1, 2) - (1, 1)) + 4 \times (1, 1) = (4, 5)`),
		prose(`In three dimensions three vectors can still collapse onto one line:`),
		matrices(col(1, 2, 3), col(2, 4, 6), col(-1, -2, -3)),
		spin3D("three vectors on one line", SlowSpin,
			vec(1, 2, 3, scene.Yellow), vec(2, 4, 6, scene.Magenta), vec(-1, -2, -3, scene.Cyan)),
		prose(`Or onto one plane:`),
		matrices(col(1, 1, 1), col(1, 0, 1), col(2, 1, 2)),
		spin3D("three vectors on one plane", SlowSpin,
			vec(1, 1, 1, scene.Yellow), vec(1, 0, 1, scene.Magenta), vec(2, 1, 2, scene.Cyan), surface),
		prose(`The third vector never leaves the plane of the first two, so it can go and the plane stays the same.`),
		matrices(col(1, 1, 1), col(1, 0, 1)),
		spin3D("the same plane from two vectors", SlowSpin,
			vec(1, 1, 1, scene.Yellow), vec(1, 0, 1, scene.Magenta), surface),
	)
}
