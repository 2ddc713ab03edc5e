package viz

import (
	"math"
	"sort"

	"github.com/san-kum/linprimer/internal/linalg"
	"github.com/san-kum/linprimer/internal/scene"
)

const (
	planeGrid  = 4
	headRatio  = 0.15
	headMax    = 0.4
	minOpacity = 0.05
)

// Camera projects world points through a rotation onto the canvas. Span is
// the half-width of the visible world at the origin.
type Camera struct {
	Rotation linalg.Euler
	Distance float64
	Near     float64
	Span     float64
	Zoom     float64
}

func NewCamera(rot linalg.Euler) *Camera {
	return &Camera{Rotation: rot, Distance: 50, Near: 0.1, Span: 4, Zoom: 1.0}
}

// Project converts a world point to sub-pixel screen coordinates on a
// sw x sh surface. The last result is false when the point is behind the
// camera.
func (c *Camera) Project(p linalg.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.Rotation.Rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := math.Min(float64(sw), float64(sh))
	pScale := minDim / (2 * c.Span)
	sx := int(math.Round(rot.X*scale*pScale)) + sw/2
	sy := int(math.Round(-rot.Y*scale*pScale)) + sh/2
	return sx, sy, rot.Z, true
}

type Edge struct {
	Start, End linalg.Vec3
	Color      scene.Color
}

type Label struct {
	At    linalg.Vec3
	Text  string
	Color scene.Color
}

type Wireframe struct {
	Edges  []Edge
	Labels []Label
}

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) AddEdge(s, e linalg.Vec3, c scene.Color) {
	w.Edges = append(w.Edges, Edge{s, e, c})
}
func (w *Wireframe) AddPoint(p linalg.Vec3, c scene.Color) { w.AddEdge(p, p, c) }
func (w *Wireframe) AddLabel(p linalg.Vec3, text string, c scene.Color) {
	w.Labels = append(w.Labels, Label{p, text, c})
}
func (w *Wireframe) Clear() {
	w.Edges = w.Edges[:0]
	w.Labels = w.Labels[:0]
}

// Lower turns every node of a scene into edges.
func Lower(s scene.Scene) *Wireframe {
	w := NewWireframe()
	for _, n := range s.Nodes {
		switch n := n.(type) {
		case scene.Axis:
			lowerAxis(w, n)
		case scene.Vector:
			lowerVector(w, n)
		case scene.Plane:
			lowerPlane(w, n)
		case scene.Mesh:
			lowerMesh(w, n)
		}
	}
	return w
}

func lowerAxis(w *Wireframe, a scene.Axis) {
	dir := a.Basis.Normalize()
	w.AddEdge(dir.Scale(a.Extents[0]), dir.Scale(a.Extents[1]), a.Color)
	if a.Label != "" {
		w.AddLabel(dir.Scale(3.2), a.Label, a.Color)
	}
}

func lowerVector(w *Wireframe, v scene.Vector) {
	tip := v.Position
	shaft := tip.Sub(v.Base)
	length := shaft.Length()
	if length == 0 {
		w.AddPoint(tip, v.Color)
		return
	}
	w.AddEdge(v.Base, tip, v.Color)

	dir := shaft.Scale(1 / length)
	side := dir.Cross(linalg.UnitZ)
	if side.Length() < 1e-6 {
		side = dir.Cross(linalg.UnitY)
	}
	side = side.Normalize()
	h := math.Min(length*headRatio, headMax)
	back := tip.Sub(dir.Scale(h))
	w.AddEdge(tip, back.Add(side.Scale(h/2)), v.Color)
	w.AddEdge(tip, back.Sub(side.Scale(h/2)), v.Color)
}

func lowerPlane(w *Wireframe, p scene.Plane) {
	if p.Opacity < minOpacity {
		return
	}
	c := p.Patch(p.Extents[0], p.Extents[1])
	if c == nil {
		return
	}
	for i := range c {
		w.AddEdge(c[i], c[(i+1)%len(c)], p.Color)
	}
	lines := int(math.Round(p.Opacity * planeGrid))
	for i := 1; i < lines; i++ {
		t := float64(i) / float64(lines)
		w.AddEdge(c[0].Lerp(c[1], t), c[3].Lerp(c[2], t), p.Color)
		w.AddEdge(c[0].Lerp(c[3], t), c[1].Lerp(c[2], t), p.Color)
	}
}

func lowerMesh(w *Wireframe, m scene.Mesh) {
	if m.Surface == nil {
		return
	}
	grid := m.Surface.Sample(m.Slices, m.Stacks)
	for i, row := range grid {
		for j, p := range row {
			if j+1 < len(row) {
				w.AddEdge(p, row[j+1], m.Color)
			}
			if i+1 < len(grid) {
				w.AddEdge(p, grid[i+1][j], m.Color)
			}
		}
	}
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Color          scene.Color
}

// Render3D draws the wireframe to the canvas using a simple painter's
// algorithm: far edges first so nearer colours win shared cells.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pw, ph := c.PixelSize()
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, pw, ph)
		x2, y2, d2, v2 := cam.Project(e.End, pw, ph)
		if !v1 || !v2 {
			continue
		}
		x1, y1, x2, y2, ok := clip(x1, y1, x2, y2, pw, ph)
		if !ok {
			continue
		}
		proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color})
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	for _, e := range proj {
		c.DrawLine(e.X1, e.Y1, e.X2, e.Y2, e.Color)
	}
	for _, l := range w.Labels {
		x, y, _, ok := cam.Project(l.At, pw, ph)
		if ok {
			c.Text(x/2, y/4, l.Text, l.Color)
		}
	}
}

// RenderScene lowers and draws a scene. Blankable scenes stay empty until
// revealed.
func RenderScene(c *Canvas, s scene.Scene, reveal bool) {
	if s.Blankable && !reveal {
		return
	}
	Render3D(c, Lower(s), NewCamera(s.Rotation))
}

// clip trims a segment to the w x h surface (Liang-Barsky).
func clip(x1, y1, x2, y2, w, h int) (int, int, int, int, bool) {
	fx1, fy1 := float64(x1), float64(y1)
	dx, dy := float64(x2-x1), float64(y2-y1)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx1},
		{dx, float64(w-1) - fx1},
		{-dy, fy1},
		{dy, float64(h-1) - fy1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return int(math.Round(fx1 + t0*dx)), int(math.Round(fy1 + t0*dy)),
		int(math.Round(fx1 + t1*dx)), int(math.Round(fy1 + t1*dy)), true
}
