// Package metrics measures animations: running statistics over frames for
// recordings, and prometheus collectors for the live process.
package metrics

import (
	"math"

	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/scene"
)

// Metric accumulates a statistic over the frames of one run.
type Metric interface {
	Name() string
	Observe(f lesson.Frame, tick int)
	Value() float64
	Reset()
}

// ReadoutMean averages one named readout.
type ReadoutMean struct {
	readout string
	sum     float64
	samples int
}

func NewReadoutMean(readout string) *ReadoutMean {
	return &ReadoutMean{readout: readout}
}

func (m *ReadoutMean) Name() string { return m.readout + "_mean" }

func (m *ReadoutMean) Observe(f lesson.Frame, tick int) {
	if v, ok := readoutValue(f, m.readout); ok {
		m.sum += v
		m.samples++
	}
}

func (m *ReadoutMean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *ReadoutMean) Reset() {
	m.sum = 0
	m.samples = 0
}

// ReadoutRange is the distance between the smallest and largest value a
// readout took.
type ReadoutRange struct {
	readout  string
	min, max float64
	samples  int
}

func NewReadoutRange(readout string) *ReadoutRange {
	return &ReadoutRange{readout: readout}
}

func (r *ReadoutRange) Name() string { return r.readout + "_range" }

func (r *ReadoutRange) Observe(f lesson.Frame, tick int) {
	v, ok := readoutValue(f, r.readout)
	if !ok {
		return
	}
	if r.samples == 0 {
		r.min, r.max = v, v
	}
	r.min = math.Min(r.min, v)
	r.max = math.Max(r.max, v)
	r.samples++
}

func (r *ReadoutRange) Value() float64 { return r.max - r.min }

func (r *ReadoutRange) Reset() {
	r.min, r.max = 0, 0
	r.samples = 0
}

// TipTravel is the mean distance vector tips move per tick. Spinning
// scenes score zero: only the world-space positions count.
type TipTravel struct {
	prev    []scene.Vector
	sum     float64
	samples int
}

func NewTipTravel() *TipTravel { return &TipTravel{} }

func (t *TipTravel) Name() string { return "tip_travel" }

func (t *TipTravel) Observe(f lesson.Frame, tick int) {
	var vs []scene.Vector
	for _, n := range f.Scene.Nodes {
		if v, ok := n.(scene.Vector); ok {
			vs = append(vs, v)
		}
	}
	if t.prev != nil && len(vs) == len(t.prev) {
		for i, v := range vs {
			t.sum += v.Position.Sub(t.prev[i].Position).Length()
		}
		t.samples++
	}
	t.prev = vs
}

func (t *TipTravel) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return t.sum / float64(t.samples)
}

func (t *TipTravel) Reset() {
	t.prev = nil
	t.sum = 0
	t.samples = 0
}

// ForFrame returns the metrics that make sense for an animation whose
// frames look like f: a mean and a range per readout, plus tip travel.
func ForFrame(f lesson.Frame) []Metric {
	ms := make([]Metric, 0, 2*len(f.Readouts)+1)
	for _, r := range f.Readouts {
		ms = append(ms, NewReadoutMean(r.Name), NewReadoutRange(r.Name))
	}
	return append(ms, NewTipTravel())
}

func readoutValue(f lesson.Frame, name string) (float64, bool) {
	for _, r := range f.Readouts {
		if r.Name == name {
			return r.Value, true
		}
	}
	return 0, false
}
