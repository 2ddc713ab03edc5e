package linalg

import "math"

// Euler is a rotation about X, then Y, then Z, in radians.
type Euler struct {
	X, Y, Z float64
}

// DefaultView is the tilt every 3D diagram starts from.
var DefaultView = Euler{0.5, 0.5, 0}

func (e Euler) Add(o Euler) Euler { return Euler{e.X + o.X, e.Y + o.Y, e.Z + o.Z} }

// Yaw returns e turned about the vertical axis by d.
func (e Euler) Yaw(d float64) Euler { return Euler{e.X, e.Y + d, e.Z} }

func (e Euler) Rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(e.X), math.Sin(e.X)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(e.Y), math.Sin(e.Y)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(e.Z), math.Sin(e.Z)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}
