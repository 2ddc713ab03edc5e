// Package scene describes what a diagram contains, independent of how it
// is drawn. A renderer walks the nodes and decides what each kind means.
package scene

import (
	"github.com/san-kum/linprimer/internal/linalg"
)

// Color is a 0xRRGGBB value.
type Color uint32

const (
	Yellow  Color = 0xffff00
	Magenta Color = 0xff00ff
	Cyan    Color = 0x00ffff
	Orange  Color = 0xff8800
	Green   Color = 0x009900
	Red     Color = 0xff0000
	Lime    Color = 0x00ff00
	Blue    Color = 0x0000ff
	Gray    Color = 0x888888
)

type Kind string

const (
	KindAxis   Kind = "axis"
	KindVector Kind = "vector"
	KindPlane  Kind = "plane"
	KindMesh   Kind = "mesh"
)

// Node is one drawable element. The set of kinds is closed.
type Node interface {
	Kind() Kind
	node()
}

type Axis struct {
	Basis   linalg.Vec3
	Extents [2]float64
	Color   Color
	Label   string
}

// Vector is an arrow from Base to Position. A zero Base is the origin.
type Vector struct {
	Position linalg.Vec3
	Base     linalg.Vec3
	Color    Color
}

type Plane struct {
	linalg.Plane
	Extents [2]float64
	Color   Color
	Opacity float64
}

type Mesh struct {
	Surface linalg.Surface
	Slices  int
	Stacks  int
	Color   Color
}

func (Axis) Kind() Kind   { return KindAxis }
func (Vector) Kind() Kind { return KindVector }
func (Plane) Kind() Kind  { return KindPlane }
func (Mesh) Kind() Kind   { return KindMesh }

func (Axis) node()   {}
func (Vector) node() {}
func (Plane) node()  {}
func (Mesh) node()   {}

// Scene is a complete diagram. Blankable scenes start hidden until the
// reader asks to see them.
type Scene struct {
	Width     int
	Height    int
	Rotation  linalg.Euler
	Blankable bool
	Nodes     []Node
}

func (s Scene) Count(k Kind) int {
	n := 0
	for _, node := range s.Nodes {
		if node.Kind() == k {
			n++
		}
	}
	return n
}
