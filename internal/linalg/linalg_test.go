package linalg

import (
	"math"
	"testing"
)

func TestMat3Apply(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"scale", Diag(2, 2, 0), V(3, 1, 0), V(6, 2, 0)},
		{"shear", Set(1, 1, 0, 0, 1, 0, 0, 0, 0), V(2, 3, 0), V(5, 3, 0)},
		{"swap", Set(0, 1, 0, 1, 0, 0, 0, 0, 0), V(2, 3, 0), V(3, 2, 0)},
		{"rotate", Set(0, 1, 0, -1, 0, 0, 0, 0, 0), V(2, 3, 0), V(3, -2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.in); !got.Approx(tt.want, 1e-12) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMat3Mul(t *testing.T) {
	rot := Set(0, 1, 0, -1, 0, 0, 0, 0, 0)
	in := Set(3, 1, 0, 1, 1, 0, 0, 0, 0)
	got := rot.Mul(in)
	want := Set(1, 1, 0, -3, -1, 0, 0, 0, 0)
	if got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}

	if Identity().Mul(in) != in {
		t.Error("identity should not change the matrix")
	}
}

func TestMat3Col(t *testing.T) {
	m := Set(3, 1, 0, 1, 1, 0, 0, 0, 0)
	if c := m.Col(0); c != V(3, 1, 0) {
		t.Errorf("Col(0) = %v", c)
	}
	if c := m.Col(1); c != V(1, 1, 0) {
		t.Errorf("Col(1) = %v", c)
	}
	rows := m.Rows(2, 2)
	if len(rows) != 2 || rows[0][0] != 3 || rows[1][1] != 1 {
		t.Errorf("Rows(2,2) = %v", rows)
	}
}

func TestEulerRotate(t *testing.T) {
	p := V(1, 0, 0)
	got := Euler{0, math.Pi / 2, 0}.Rotate(p)
	if !got.Approx(V(0, 0, -1), 1e-12) {
		t.Errorf("yaw by pi/2 = %v", got)
	}

	if id := (Euler{}).Rotate(V(1, 2, 3)); id != V(1, 2, 3) {
		t.Error("zero rotation should be identity")
	}

	e := DefaultView.Yaw(0.001)
	if e.X != 0.5 || math.Abs(e.Y-0.501) > 1e-12 || e.Z != 0 {
		t.Errorf("Yaw = %v", e)
	}
}

func TestPlanePatch(t *testing.T) {
	planes := []Plane{
		{1, 1, 0, 2},
		{1, 0, -1, 1},
		{0, 1, -1, 0},
		{0, 0, -2, -1},
		{2, -4, 2, 0},
	}
	for _, p := range planes {
		corners := p.Patch(-2, 2)
		if len(corners) != 4 {
			t.Fatalf("plane %v: expected 4 corners, got %d", p, len(corners))
		}
		for _, c := range corners {
			if !p.Contains(c, 1e-9) {
				t.Errorf("plane %v: corner %v not on plane", p, c)
			}
		}
	}

	if (Plane{0, 0, 0, 0}).Patch(-2, 2) != nil {
		t.Error("degenerate plane should have no patch")
	}
}

func TestSurfaceSample(t *testing.T) {
	s := Span(V(1, 1, 1), V(1, 0, 1))
	grid := s.Sample(1, 1)
	if len(grid) != 2 || len(grid[0]) != 2 {
		t.Fatalf("unexpected grid shape %dx%d", len(grid), len(grid[0]))
	}
	if grid[1][1] != V(2, 1, 2) {
		t.Errorf("far corner = %v, want (2,1,2)", grid[1][1])
	}
	if grid[0][0] != Zero {
		t.Errorf("origin corner = %v", grid[0][0])
	}
}

func TestOscillate(t *testing.T) {
	for tick := 0; tick < 500; tick++ {
		l := Oscillate(float64(tick), 0.05)
		if l < 0 || l > 1 {
			t.Fatalf("tick %d: lerp %f outside [0,1]", tick, l)
		}
	}
	if Oscillate(0, 0.05) != 0.5 {
		t.Errorf("lerp at tick 0 = %f, want 0.5", Oscillate(0, 0.05))
	}
}
