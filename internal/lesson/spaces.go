package lesson

import (
	"github.com/san-kum/linprimer/internal/linalg"
	"github.com/san-kum/linprimer/internal/numfmt"
	"github.com/san-kum/linprimer/internal/scene"
)

func subspacesSection() *Section {
	return newSection("subspaces", "Subspaces",
		prose(`
A common question is whether some subset of an n-dimensional space is a
**subspace**. Formally a subset `+"`S`"+` is one when:

- it contains the zero vector,
- it is **closed under addition**: if `+"`v₁ ∈ S`"+` and `+"`v₂ ∈ S`"+` then `+"`v₁ + v₂ ∈ S`"+`,
- it is **closed under scalar multiplication**: if `+"`v ∈ S`"+` then `+"`αv ∈ S`"+`.

Informally: a line, plane or higher flat through the origin that runs off
to infinity in every direction it has. The plane `+"`z = 2x + 3y`"+` is one:`),
		spin3D("the plane z = 2x + 3y", ReverseSpin,
			mesh(func(u, v float64) linalg.Vec3 { return linalg.V(-2*u+2*v, -2*u+v, -10*u+7*v) })),
		prose(`
Check the three properties. The origin is in it, since `+"`0 = 2·0 + 3·0`"+`.
For addition take two members and add them:`),
		display(`v_1 + v_2 = (x_1 + x_2, y_1 + y_2, z_1 + z_2)`),
		display(`2(x_1 + x_2) + 3(y_1 + y_2) - (z_1 + z_2) = 0`),
		display(`(2x_1 + 3y_1 - z_1) + (2x_2 + 3y_2 - z_2) = 0`),
		prose(`Both brackets are zero because each vector is in the plane, so the sum is too. Scaling works the same way:`),
		display(`\alpha 2x + \alpha 3y = \alpha z`),
		prose(`
So `+"`{(x, y, z) : 2x + 3y = z}`"+` is a subspace of ℝ³.

Compare `+"`{(x, y, z) : |x + y + z| = 1}`"+`. One counterexample is enough to
show it is not closed under addition:`),
		display(`(1, 1, -1) \in S, |1 + 1 - 1| = 1`),
		display(`(-1, -1, 1) \in S, |-1 - 1 + 1| = 1`),
		display(`(1, 1, -1) + (-1, -1, 1) = (0, 0, 0), |0| = 0`),
		prose(`The sum falls outside the set, so it is not a subspace.`),
	)
}

func spansSection() *Section {
	return newSection("spans", "Spans",
		prose(`
The **span** of some vectors is every vector you can reach with linear
combinations of them. It is an infinite set, which is awkward to reason
about, but geometrically it is something we have already seen. Take:`),
		static(flat().Blankable().Vector(linalg.UnitX, scene.Yellow).Vector(linalg.UnitY, scene.Magenta).Build()),
		matrices(col(1, 0), col(0, 1)),
		prose(`
Their span is the whole plane: name any point and there is a multiple of
each that adds up to it. For `+"`(4, 1)`"+` it is `+"`4 × (1, 0) + 1 × (0, 1)`"+`.`),
		animated("reaching (4, 1) from the unit vectors", ticking(func(c Clock) Frame {
			l := c.Lerp()
			return Frame{Scene: flat().
				Vector(linalg.V(4*l, 0, 0), scene.Yellow).
				Vector(linalg.V(0, l, 0), scene.Magenta).
				Vector(linalg.V(4*l, l, 0), scene.Cyan).
				Build()}
		})),
		prose(`What about `+"`(1, -1)`"+` and `+"`(-1, -1)`"+`? They are independent, so can they reach everything?`),
		animated("combining (1, -1) and (-1, -1)", ticking(func(c Clock) Frame {
			l := c.Lerp()
			first := linalg.V(1+l*0.5, -1-l*0.5, 0)
			second := linalg.V(-1+l*3.5, -1+l*3.5, 0)
			a, b := trunc(l*0.5+1), trunc(l*-3.5+1)
			return Frame{
				Scene: flat().
					Vector(first, scene.Yellow).
					Vector(second, scene.Magenta).
					Vector(first.Add(second), scene.Cyan).
					Build(),
				Readouts: []Readout{
					{Name: "a", Value: a, Text: numfmt.Fixed(a, Precision) + " (1, -1)"},
					{Name: "b", Value: b, Text: numfmt.Fixed(b, Precision) + " (-1, -1)"},
				},
			}
		})),
		prose(`
Yes. `+"`1.5 × (1, -1)`"+` plus `+"`-2.5 × (-1, -1)`"+` is `+"`(4, 4)`"+`, and any other point works
the same way. Now try `+"`(1, -1)`"+` and `+"`(-1, 1)`"+`:`),
		animated("parallel vectors miss (4, 1)", ticking(func(c Clock) Frame {
			l := c.Lerp()
			return Frame{Scene: flat().
				Vector(linalg.V(2*l, -2*l, 0), scene.Yellow).
				Vector(linalg.V(-l, l, 0), scene.Magenta).
				Vector(linalg.V(4, 1, 0), scene.Cyan).
				Build()}
		})),
		prose(`
They are parallel, so no combination reaches `+"`(4, 1)`"+` or anything else off
their line. Their span is just the line `+"`y = -x`"+`.

The same holds in higher dimensions: three vectors may span all of 3D
space, or only a plane if one of them depends on the others.`),
	)
}

func basisSection() *Section {
	return newSection("basis", "Basis",
		prose(`
Going the other way from a span, a **basis** is a set of vectors that
describes a space. It must:

- span the space, and
- be linearly independent, with no redundant vectors.

So an n-dimensional space needs at least n basis vectors to reach
everything, and at most n so that none is redundant. The unit vectors are
the obvious basis for 3D space:`),
		matrices(col(1, 0, 0), col(0, 1, 0), col(0, 0, 1)),
		spin3D("the unit basis", SlowSpin,
			vec(1, 0, 0, scene.Yellow), vec(0, 1, 0, scene.Magenta), vec(0, 0, 1, scene.Yellow)),
		display(`\hat{i}, \hat{j}, \hat{k}`),
		prose(`They are not the only basis. Scale them by any amount and they still reach every point.`),
		animated("scaled basis vectors", spinTicking(SlowSpin, func(s SpinClock) Frame {
			l := s.Lerp()
			return Frame{Scene: scene.New().Rotate(s.Rotation).Space3D().
				Vector(linalg.V(1+2*l, 0, 0), scene.Yellow).
				Vector(linalg.V(0, 1+3*l, 0), scene.Magenta).
				Vector(linalg.V(0, 0, 1+l), scene.Cyan).
				Build()}
		})),
		prose(`Squeeze them toward one another and, as long as they still point in different directions, they remain a basis.`),
		animated("squeezed basis vectors", spinTicking(SlowSpin, func(s SpinClock) Frame {
			l := s.Lerp()
			return Frame{Scene: scene.New().Rotate(s.Rotation).Space3D().
				Vector(linalg.V(1, l, l), scene.Yellow).
				Vector(linalg.V(l, 1, l), scene.Magenta).
				Vector(linalg.V(l, l, 1), scene.Cyan).
				Build()}
		})),
		prose(`It is clearer when the rest of space is squeezed along with them:`),
		animated("space squeezed with its basis", spinTicking(SlowSpin, func(s SpinClock) Frame {
			l := s.Lerp()
			ext := scene.AxisExtent
			return Frame{Scene: scene.New().Rotate(s.Rotation).
				Axis(linalg.V(1, l, l), -ext, ext, scene.Red).
				Axis(linalg.V(l, 1, l), -ext, ext, scene.Lime).
				Axis(linalg.V(l, l, 1), -ext, ext, scene.Blue).
				Vector(linalg.V(1, l, l), scene.Yellow).
				Vector(linalg.V(l, 1, l), scene.Magenta).
				Vector(linalg.V(l, l, 1), scene.Cyan).
				Build()}
		})),
		prose(`Only when space is flattened onto a plane or a line do they stop being a basis.`),
	)
}
