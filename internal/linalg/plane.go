package linalg

import "math"

const planeEps = 1e-12

// Plane is the set of points with A·x + B·y + C·z = D.
type Plane struct {
	A, B, C, D float64
}

func (p Plane) Normal() Vec3 { return Vec3{p.A, p.B, p.C} }

// Degenerate reports an all-zero normal, which describes no plane at all
// (0 = D). The row-space lesson draws one on purpose.
func (p Plane) Degenerate() bool { return p.Normal().Length() < planeEps }

func (p Plane) Contains(v Vec3, eps float64) bool {
	return math.Abs(p.Normal().Dot(v)-p.D) <= eps
}

// Patch returns the four corners of the plane inside the cube
// [lo, hi]^3, solved along the dominant normal component so the patch is
// never edge-on. A degenerate plane yields nil.
func (p Plane) Patch(lo, hi float64) []Vec3 {
	if p.Degenerate() {
		return nil
	}
	ax, ay, az := math.Abs(p.A), math.Abs(p.B), math.Abs(p.C)
	corners := [][2]float64{{lo, lo}, {hi, lo}, {hi, hi}, {lo, hi}}
	out := make([]Vec3, 0, 4)
	for _, c := range corners {
		u, v := c[0], c[1]
		switch {
		case az >= ax && az >= ay:
			out = append(out, Vec3{u, v, (p.D - p.A*u - p.B*v) / p.C})
		case ay >= ax:
			out = append(out, Vec3{u, (p.D - p.A*u - p.C*v) / p.B, v})
		default:
			out = append(out, Vec3{(p.D - p.B*u - p.C*v) / p.A, u, v})
		}
	}
	return out
}

// Surface is a parametric patch over u, v in [0, 1].
type Surface func(u, v float64) Vec3

// Sample evaluates s on a (slices+1) x (stacks+1) grid.
func (s Surface) Sample(slices, stacks int) [][]Vec3 {
	if slices < 1 {
		slices = 1
	}
	if stacks < 1 {
		stacks = 1
	}
	grid := make([][]Vec3, stacks+1)
	for j := 0; j <= stacks; j++ {
		grid[j] = make([]Vec3, slices+1)
		v := float64(j) / float64(stacks)
		for i := 0; i <= slices; i++ {
			grid[j][i] = s(float64(i)/float64(slices), v)
		}
	}
	return grid
}

// Span returns the surface u·a + v·b, the plane two vectors reach.
func Span(a, b Vec3) Surface {
	return func(u, v float64) Vec3 { return a.Scale(u).Add(b.Scale(v)) }
}
