package scene

import "github.com/san-kum/linprimer/internal/linalg"

const (
	DefaultWidth  = 320
	DefaultHeight = 240
	AxisExtent    = 10.0
)

var (
	axisX = Axis{Basis: linalg.UnitX, Extents: [2]float64{-AxisExtent, AxisExtent}, Color: Red, Label: "x"}
	axisY = Axis{Basis: linalg.UnitY, Extents: [2]float64{-AxisExtent, AxisExtent}, Color: Lime, Label: "y"}
	axisZ = Axis{Basis: linalg.UnitZ, Extents: [2]float64{-AxisExtent, AxisExtent}, Color: Blue, Label: "z"}
)

// Builder assembles a Scene. The zero value is not usable; call New.
type Builder struct {
	s Scene
}

func New() *Builder {
	return &Builder{s: Scene{Width: DefaultWidth, Height: DefaultHeight}}
}

func (b *Builder) Size(w, h int) *Builder {
	b.s.Width, b.s.Height = w, h
	return b
}

func (b *Builder) Rotate(e linalg.Euler) *Builder {
	b.s.Rotation = e
	return b
}

func (b *Builder) Blankable() *Builder {
	b.s.Blankable = true
	return b
}

func (b *Builder) XAxis() *Builder { return b.Add(axisX) }
func (b *Builder) YAxis() *Builder { return b.Add(axisY) }
func (b *Builder) ZAxis() *Builder { return b.Add(axisZ) }

// Plane2D adds the x and y axes.
func (b *Builder) Plane2D() *Builder { return b.XAxis().YAxis() }

// Space3D adds all three axes.
func (b *Builder) Space3D() *Builder { return b.XAxis().YAxis().ZAxis() }

// Axis adds an axis along an arbitrary basis direction.
func (b *Builder) Axis(basis linalg.Vec3, lo, hi float64, c Color) *Builder {
	return b.Add(Axis{Basis: basis, Extents: [2]float64{lo, hi}, Color: c})
}

func (b *Builder) Vector(pos linalg.Vec3, c Color) *Builder {
	return b.Add(Vector{Position: pos, Color: c})
}

func (b *Builder) VectorFrom(base, pos linalg.Vec3, c Color) *Builder {
	return b.Add(Vector{Position: pos, Base: base, Color: c})
}

func (b *Builder) Plane(p linalg.Plane, lo, hi float64, c Color, opacity float64) *Builder {
	return b.Add(Plane{Plane: p, Extents: [2]float64{lo, hi}, Color: c, Opacity: opacity})
}

func (b *Builder) Mesh(s linalg.Surface, slices, stacks int, c Color) *Builder {
	return b.Add(Mesh{Surface: s, Slices: slices, Stacks: stacks, Color: c})
}

func (b *Builder) Add(n Node) *Builder {
	b.s.Nodes = append(b.s.Nodes, n)
	return b
}

// Build returns the scene. The builder may keep being used; later
// additions do not leak into scenes already built.
func (b *Builder) Build() Scene {
	out := b.s
	out.Nodes = append([]Node(nil), b.s.Nodes...)
	return out
}
