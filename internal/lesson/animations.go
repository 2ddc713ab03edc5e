package lesson

import (
	"math"

	"github.com/san-kum/linprimer/internal/anim"
	"github.com/san-kum/linprimer/internal/linalg"
	"github.com/san-kum/linprimer/internal/numfmt"
	"github.com/san-kum/linprimer/internal/scene"
)

// Yaw rates used by the spinning diagrams, in radians per tick.
const (
	SlowSpin    = 0.001
	ReverseSpin = -0.001
	FastSpin    = 0.004
)

// Rate is the angular frequency of every time-driven animation.
const Rate = 0.05

// Precision of every readout.
const Precision = 2

// Spin is the state of a diagram that only turns.
type Spin struct {
	Rotation linalg.Euler
}

// Clock is the state of a diagram driven by elapsed ticks.
type Clock struct {
	Time int
}

// SpinClock turns and counts.
type SpinClock struct {
	Rotation linalg.Euler
	Time     int
}

// Lerp is the 0..1 oscillation a clock drives.
func (c Clock) Lerp() float64     { return linalg.Oscillate(float64(c.Time), Rate) }
func (c SpinClock) Lerp() float64 { return linalg.Oscillate(float64(c.Time), Rate) }

func spinning(rate float64, render func(Spin) Frame) func() Player {
	return func() Player {
		return anim.MustNew(anim.Config[Spin, Frame]{
			Initial: Spin{Rotation: linalg.DefaultView},
			Update:  func(s Spin) Spin { return Spin{Rotation: s.Rotation.Yaw(rate)} },
			Render:  render,
		})
	}
}

func ticking(render func(Clock) Frame) func() Player {
	return func() Player {
		return anim.MustNew(anim.Config[Clock, Frame]{
			Update: func(c Clock) Clock { return Clock{Time: c.Time + 1} },
			Render: render,
		})
	}
}

func spinTicking(rate float64, render func(SpinClock) Frame) func() Player {
	return func() Player {
		return anim.MustNew(anim.Config[SpinClock, Frame]{
			Initial: SpinClock{Rotation: linalg.DefaultView},
			Update: func(s SpinClock) SpinClock {
				return SpinClock{Rotation: s.Rotation.Yaw(rate), Time: s.Time + 1}
			},
			Render: render,
		})
	}
}

// spin3D turns a fixed set of nodes inside the three axes.
func spin3D(caption string, rate float64, nodes ...scene.Node) Block {
	return animated(caption, spinning(rate, func(s Spin) Frame {
		b := scene.New().Rotate(s.Rotation).Space3D()
		for _, n := range nodes {
			b.Add(n)
		}
		return Frame{Scene: b.Build()}
	}))
}

func vec(x, y, z float64, c scene.Color) scene.Vector {
	return scene.Vector{Position: linalg.V(x, y, z), Color: c}
}

func vecFrom(base, pos linalg.Vec3, c scene.Color) scene.Vector {
	return scene.Vector{Position: pos, Base: base, Color: c}
}

func plane(a, b, c, d, extent float64, color scene.Color) scene.Plane {
	return scene.Plane{
		Plane:   linalg.Plane{A: a, B: b, C: c, D: d},
		Extents: [2]float64{-extent, extent},
		Color:   color,
		Opacity: 0.8,
	}
}

func mesh(s linalg.Surface) scene.Mesh {
	return scene.Mesh{Surface: s, Slices: 1, Stacks: 1, Color: scene.Green}
}

func flat() *scene.Builder { return scene.New().Plane2D() }

func space() *scene.Builder { return scene.New().Rotate(linalg.DefaultView).Space3D() }

func trunc(v float64) float64 { return numfmt.Truncate(v, Precision) }

func sinT(t int, rate float64) float64 { return trunc(math.Sin(float64(t) * rate)) }
func cosT(t int, rate float64) float64 { return trunc(math.Cos(float64(t) * rate)) }

func readout(name string, v float64) Readout {
	return Readout{Name: name, Value: v, Text: name + " = " + numfmt.Format(v, Precision)}
}

// sum shows a + b = c with the operands truncated the way the page prints them.
func sum(name, sep string, a, b, c float64) Readout {
	return Readout{
		Name:  name,
		Value: trunc(c),
		Text:  name + " = " + numfmt.Format(a, Precision) + sep + numfmt.Format(trunc(b), Precision) + " = " + numfmt.Format(trunc(c), Precision),
	}
}
