package scene

import (
	"encoding/json"

	"github.com/san-kum/linprimer/internal/linalg"
)

type jsonVec [3]float64

func toJSONVec(v linalg.Vec3) jsonVec { return jsonVec{v.X, v.Y, v.Z} }

type jsonNode struct {
	Kind     Kind        `json:"kind"`
	Color    string      `json:"color"`
	Basis    *jsonVec    `json:"basis,omitempty"`
	Label    string      `json:"label,omitempty"`
	Extents  *[2]float64 `json:"extents,omitempty"`
	Position *jsonVec    `json:"position,omitempty"`
	Base     *jsonVec    `json:"base,omitempty"`
	Equation *[4]float64 `json:"equation,omitempty"`
	Opacity  float64     `json:"opacity,omitempty"`
	Vertices [][]jsonVec `json:"vertices,omitempty"`
}

type jsonScene struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Rotation  [3]float64 `json:"rotation"`
	Blankable bool       `json:"blankable,omitempty"`
	Nodes     []jsonNode `json:"nodes"`
}

// Hex renders the colour as #rrggbb.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte("#000000")
	for i := 0; i < 6; i++ {
		b[6-i] = digits[(uint32(c)>>(4*i))&0xf]
	}
	return string(b)
}

// MarshalJSON tags every node with its kind. Meshes are sampled into a
// vertex grid so the output is plain data.
func (s Scene) MarshalJSON() ([]byte, error) {
	out := jsonScene{
		Width:     s.Width,
		Height:    s.Height,
		Rotation:  [3]float64{s.Rotation.X, s.Rotation.Y, s.Rotation.Z},
		Blankable: s.Blankable,
		Nodes:     make([]jsonNode, 0, len(s.Nodes)),
	}
	for _, n := range s.Nodes {
		out.Nodes = append(out.Nodes, encodeNode(n))
	}
	return json.Marshal(out)
}

func encodeNode(n Node) jsonNode {
	switch n := n.(type) {
	case Axis:
		b := toJSONVec(n.Basis)
		ext := n.Extents
		return jsonNode{Kind: KindAxis, Color: n.Color.Hex(), Basis: &b, Label: n.Label, Extents: &ext}
	case Vector:
		p, b := toJSONVec(n.Position), toJSONVec(n.Base)
		return jsonNode{Kind: KindVector, Color: n.Color.Hex(), Position: &p, Base: &b}
	case Plane:
		eq := [4]float64{n.A, n.B, n.C, n.D}
		ext := n.Extents
		return jsonNode{Kind: KindPlane, Color: n.Color.Hex(), Equation: &eq, Extents: &ext, Opacity: n.Opacity}
	case Mesh:
		grid := n.Surface.Sample(n.Slices, n.Stacks)
		verts := make([][]jsonVec, len(grid))
		for i, row := range grid {
			verts[i] = make([]jsonVec, len(row))
			for j, v := range row {
				verts[i][j] = toJSONVec(v)
			}
		}
		return jsonNode{Kind: KindMesh, Color: n.Color.Hex(), Vertices: verts}
	}
	return jsonNode{Kind: n.Kind()}
}
