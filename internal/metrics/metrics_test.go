package metrics

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/linprimer/internal/anim"
	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/linalg"
	"github.com/san-kum/linprimer/internal/scene"
)

func frame(x float64, tip linalg.Vec3) lesson.Frame {
	return lesson.Frame{
		Scene:    scene.New().Vector(tip, scene.Orange).Build(),
		Readouts: []lesson.Readout{{Name: "x", Value: x}},
	}
}

func TestReadoutMeanAndRange(t *testing.T) {
	mean, rng := NewReadoutMean("x"), NewReadoutRange("x")
	for i, x := range []float64{0.5, -0.25, 1} {
		f := frame(x, linalg.Vec3{})
		mean.Observe(f, i)
		rng.Observe(f, i)
	}

	if got := mean.Value(); math.Abs(got-0.4166666) > 1e-6 {
		t.Errorf("mean = %v", got)
	}
	if got := rng.Value(); got != 1.25 {
		t.Errorf("range = %v, want 1.25", got)
	}

	mean.Reset()
	rng.Reset()
	if mean.Value() != 0 || rng.Value() != 0 {
		t.Error("Reset did not clear")
	}
}

func TestMissingReadoutIgnored(t *testing.T) {
	m := NewReadoutMean("y")
	m.Observe(frame(3, linalg.Vec3{}), 0)
	if m.Value() != 0 {
		t.Errorf("mean of an absent readout = %v", m.Value())
	}
}

func TestTipTravel(t *testing.T) {
	tt := NewTipTravel()
	tt.Observe(frame(0, linalg.V(0, 0, 0)), 0)
	tt.Observe(frame(0, linalg.V(3, 4, 0)), 1)
	tt.Observe(frame(0, linalg.V(3, 4, 0)), 2)
	if got := tt.Value(); got != 2.5 {
		t.Errorf("travel = %v, want 2.5", got)
	}
}

func TestForFrame(t *testing.T) {
	ms := ForFrame(frame(0, linalg.Vec3{}))
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name()
	}
	want := []string{"x_mean", "x_range", "tip_travel"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names = %v, want %v", names, want)
			break
		}
	}
}

func TestObserverCountsTicks(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollectors(reg)
	var o anim.Observer = c.Observer()
	o.OnTick("vectors/1", 1)
	o.OnTick("vectors/1", 2)
	o.OnTick("spans/0", 1)
	c.TimeRender(func() {})

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	counts := map[string]float64{}
	var renders uint64
	for _, mf := range mfs {
		switch mf.GetName() {
		case "linprimer_ticks_total":
			for _, m := range mf.GetMetric() {
				counts[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			}
		case "linprimer_frame_render_seconds":
			renders = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	if counts["vectors/1"] != 2 || counts["spans/0"] != 1 {
		t.Errorf("tick counts = %v", counts)
	}
	if renders != 1 {
		t.Errorf("render samples = %d, want 1", renders)
	}
}
