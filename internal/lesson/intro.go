package lesson

import (
	"github.com/san-kum/linprimer/internal/linalg"
	"github.com/san-kum/linprimer/internal/scene"
)

func spacesSection() *Section {
	return newSection("spaces", "Co-ordinate Systems",
		prose(`
To talk about things geometrically we need a way to say where they are,
where they sit relative to one another and how big they are.

A *linear* co-ordinate system gives us that. It has **units** and
**dimensions**. Each dimension is one independent direction you can move
in, and we usually name them `+"`x`, `y`, `z`"+` and so on.`),
		spin3D("the three axes of 3D space", SlowSpin),
		prose(`
Fix a single point on one dimension and there are still infinitely many
choices on every other dimension. Hold `+"`x = 1`"+` in a plane and any `+"`y`"+`
will do; hold it in a volume and any `+"`y`"+` and any `+"`z`"+` will do.

In **one** dimension you have a number line made of every possible point.`),
		static(scene.New().Blankable().XAxis().Build()),
		prose(`In **two** dimensions you have a plane made of every possible line.`),
		static(scene.New().Blankable().Plane2D().Build()),
		prose(`In **three** dimensions you have a volume made of every possible plane.`),
		static(scene.New().Blankable().Rotate(linalg.DefaultView).Space3D().Build()),
		prose(`
Past three dimensions the pictures stop working but the pattern does not.
A four-dimensional space is made of every possible volume, and the same
reasoning carries on to any `+"`n`"+`.

We will assume every axis uses the same unit, so a step along one
dimension is the same length as a step along any other.`),
	)
}

func vectorsSection() *Section {
	return newSection("vectors", "Vectors",
		prose(`The basic building block of a linear system is the humble **vector**.`),
		spin3D("a vector in 3D space", SlowSpin, vec(2, 2, 2, scene.Orange)),
		prose(`
A vector is not quite a point, because it has a direction you can
compute with. It is not a pure direction either, because it ends
somewhere. A useful way to think of one is as a recipe for reaching a
point: the vector above is 2 steps along `+"`x`"+`, 2 along `+"`y`"+` and 2 along `+"`z`"+`.

We write vectors as a column of numbers, one slot per dimension:`),
		matrices(col(1, 2, 3)),
		prose(`Start from the simplest case, a number line with only an `+"`x`"+` axis.`),
		animated("a vector sliding along the x axis", ticking(func(c Clock) Frame {
			x := sinT(c.Time, Rate)
			return Frame{
				Scene:    scene.New().XAxis().Vector(linalg.V(2*x, 0, 0), scene.Orange).Build(),
				Readouts: []Readout{readout("x", x)},
			}
		})),
		prose(`
Add a `+"`y`"+` axis and let the vector trace a circle. Along `+"`x`"+` it does exactly
what it did before; the whole line is simply being carried up and down.`),
		animated("a vector tracing a circle", ticking(func(c Clock) Frame {
			x, y := sinT(c.Time, Rate), cosT(c.Time, Rate)
			tip := linalg.V(2*x, 2*y, 0)
			return Frame{
				Scene: flat().
					Vector(tip, scene.Orange).
					VectorFrom(linalg.V(0, 2*y, 0), tip, scene.Orange).
					Build(),
				Readouts: []Readout{readout("x", x), readout("y", y)},
			}
		})),
		prose(`
Going to three dimensions is the same trick once more: the flat picture
above now rides on a plane that itself moves through space.`),
		animated("a vector moving through 3D space", ticking(func(c Clock) Frame {
			x, y, z := sinT(c.Time, Rate), cosT(c.Time, Rate), sinT(c.Time, Rate/10)
			tip := linalg.V(2*x, 2*y, 2*z)
			return Frame{
				Scene: space().
					VectorFrom(linalg.V(2*x, 0, 2*z), tip, scene.Orange).
					VectorFrom(linalg.V(0, 2*y, 2*z), tip, scene.Orange).
					Vector(tip, scene.Orange).
					Build(),
				Readouts: []Readout{readout("x", x), readout("y", y), readout("z", z)},
			}
		})),
		prose(`Addition and subtraction work component by component.`),
		matrices(col(1, 2, 3), op("+"), col(1, 2, 3), op("="), col(2, 4, 6)),
		prose(`
Geometrically this is head to tail: follow the steps of the first vector,
then the steps of the second.`),
		animated("adding two vectors head to tail", ticking(func(c Clock) Frame {
			l := c.Lerp()
			a := linalg.V(1, 2, 0)
			b := linalg.V(2*l, l, 0)
			sum2 := a.Add(b)
			return Frame{
				Scene: flat().
					Vector(a, scene.Yellow).
					VectorFrom(a, sum2, scene.Magenta).
					Vector(sum2, scene.Cyan).
					Build(),
				Readouts: []Readout{
					sum("x", " + ", a.X, b.X, sum2.X),
					sum("y", " + ", a.Y, b.Y, sum2.Y),
				},
			}
		})),
		prose(`
This only works when both vectors have the same number of dimensions.

Multiplication is *not* defined component by component. Doing so scales
each component by a different amount and throws the direction away, as
the cyan vector shows.`),
		animated("component-wise products lose direction", ticking(func(c Clock) Frame {
			l := c.Lerp()
			a := linalg.V(1, 2, 0)
			b := linalg.V(2*l, l, 0)
			prod := a.Mul(b)
			return Frame{
				Scene: flat().
					Vector(a, scene.Yellow).
					Vector(b, scene.Magenta).
					Vector(prod, scene.Cyan).
					Build(),
				Readouts: []Readout{
					sum("x", " * ", a.X, b.X, prod.X),
					sum("y", " * ", a.Y, b.Y, prod.Y),
				},
			}
		})),
	)
}
