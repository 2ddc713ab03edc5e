package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/metrics"
)

var ErrBadTicks = errors.New("store: tick count must not be negative")

// Run is an animation played headlessly for a fixed number of ticks.
// Values holds one row per tick, starting with the initial frame, and one
// column per readout.
type Run struct {
	Section  string
	Index    int
	Caption  string
	Readouts []string
	Ticks    []int
	Values   [][]float64
	Final    lesson.Frame
	Metrics  map[string]float64
}

// Record plays animation index of sec for ticks ticks. The player is
// stopped before Record returns.
func Record(ctx context.Context, sec *lesson.Section, index, ticks int) (*Run, error) {
	if ticks < 0 {
		return nil, ErrBadTicks
	}

	p, err := sec.Animation(index)
	if err != nil {
		return nil, err
	}
	defer p.Stop()

	frame := p.Frame()
	run := &Run{
		Section:  sec.ID,
		Index:    index,
		Caption:  sec.Animations()[index].Caption,
		Readouts: readoutNames(frame),
		Ticks:    make([]int, 0, ticks+1),
		Values:   make([][]float64, 0, ticks+1),
	}

	ms := metrics.ForFrame(frame)
	observe := func(f lesson.Frame, tick int) {
		for _, m := range ms {
			m.Observe(f, tick)
		}
		run.Ticks = append(run.Ticks, tick)
		run.Values = append(run.Values, run.row(f))
	}

	observe(frame, 0)
	for i := 1; i <= ticks; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame, err = p.Tick()
		if err != nil {
			return nil, fmt.Errorf("tick %d: %w", i, err)
		}
		observe(frame, i)
	}

	run.Final = frame
	run.Metrics = make(map[string]float64, len(ms))
	for _, m := range ms {
		run.Metrics[m.Name()] = m.Value()
	}
	return run, nil
}

func (r *Run) row(f lesson.Frame) []float64 {
	row := make([]float64, len(r.Readouts))
	for i, name := range r.Readouts {
		for _, ro := range f.Readouts {
			if ro.Name == name {
				row[i] = ro.Value
				break
			}
		}
	}
	return row
}

// Column returns the values of one readout across the run.
func (r *Run) Column(name string) ([]float64, bool) {
	return column(r.Readouts, r.Values, name)
}

func column(names []string, rows [][]float64, name string) ([]float64, bool) {
	idx := -1
	for i, n := range names {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		if idx < len(row) {
			out = append(out, row[idx])
		}
	}
	return out, true
}

func readoutNames(f lesson.Frame) []string {
	names := make([]string, len(f.Readouts))
	for i, r := range f.Readouts {
		names[i] = r.Name
	}
	return names
}
