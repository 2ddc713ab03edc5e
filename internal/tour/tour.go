// Package tour plays scripted sequences of animations headlessly and keeps
// each one as a recorded run.
package tour

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/logging"
	"github.com/san-kum/linprimer/internal/store"
)

// DefaultTicks is used by steps that do not set their own length.
const DefaultTicks = 120

var ErrEmptyTour = errors.New("tour: no steps")

// Tour is a scripted sequence of recordings.
type Tour struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Ticks       int    `yaml:"ticks"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single recording in a tour.
type Step struct {
	Section   string `yaml:"section"`
	Animation int    `yaml:"animation"`
	Ticks     int    `yaml:"ticks"`
	SaveAs    string `yaml:"save_as"`
}

// Result describes one finished step.
type Result struct {
	Step      int                `json:"step"`
	Section   string             `json:"section"`
	Animation int                `json:"animation"`
	Ticks     int                `json:"ticks"`
	RunID     string             `json:"run_id,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Load reads a tour from a YAML file
func Load(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func Parse(data []byte) (*Tour, error) {
	var t Tour
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks every step against the lesson catalog.
func (t *Tour) Validate() error {
	if len(t.Steps) == 0 {
		return ErrEmptyTour
	}
	if t.Ticks < 0 {
		return fmt.Errorf("tour ticks: %w", store.ErrBadTicks)
	}

	var errs []error
	for i, step := range t.Steps {
		sec, err := lesson.Lookup(step.Section)
		if err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
			continue
		}
		if step.Animation < 0 || step.Animation >= sec.NumAnimations() {
			errs = append(errs, fmt.Errorf("step %d: %w: %s/%d", i+1, lesson.ErrNoAnimation, step.Section, step.Animation))
		}
		if step.Ticks < 0 {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, store.ErrBadTicks))
		}
	}
	return errors.Join(errs...)
}

func (t *Tour) ticks(s Step) int {
	switch {
	case s.Ticks > 0:
		return s.Ticks
	case t.Ticks > 0:
		return t.Ticks
	default:
		return DefaultTicks
	}
}

// Sweep builds a tour that records every animation of a section.
func Sweep(sectionID string, ticks int) (*Tour, error) {
	sec, err := lesson.Lookup(sectionID)
	if err != nil {
		return nil, err
	}
	if sec.NumAnimations() == 0 {
		return nil, fmt.Errorf("%w: %s has no animations", ErrEmptyTour, sectionID)
	}

	t := &Tour{Name: sec.Title, Ticks: ticks}
	for i := range sec.NumAnimations() {
		t.Steps = append(t.Steps, Step{Section: sectionID, Animation: i})
	}
	return t, nil
}

// Runner executes tours. A nil Store records without saving. Parallel > 1
// records up to that many steps at once; runs are still saved in step order.
type Runner struct {
	Store    *store.Store
	Options  store.SaveOptions
	Logger   *slog.Logger
	Parallel int
}

// Run executes all steps and stops at the first failure, returning the
// results gathered so far.
func (r *Runner) Run(ctx context.Context, t *Tour) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	runs := make([]*store.Run, len(t.Steps))
	errs := make([]error, len(t.Steps))
	if r.Parallel > 1 {
		r.recordAll(ctx, t, runs, errs, logger)
	}

	results := make([]Result, 0, len(t.Steps))
	for i, step := range t.Steps {
		if runs[i] == nil && errs[i] == nil {
			runs[i], errs[i] = r.record(ctx, t, i, logger)
		}
		if errs[i] != nil {
			return results, fmt.Errorf("step %d: %w", i+1, errs[i])
		}
		run := runs[i]

		res := Result{
			Step:      i + 1,
			Section:   step.Section,
			Animation: step.Animation,
			Ticks:     t.ticks(step),
			Metrics:   run.Metrics,
		}

		if r.Store != nil {
			opts := r.Options
			opts.Name = step.SaveAs
			id, err := r.Store.Save(run, opts)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			res.RunID = id
			logger.Debug("run saved", "id", id, "name", step.SaveAs)
		}

		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) record(ctx context.Context, t *Tour, i int, logger *slog.Logger) (*store.Run, error) {
	step := t.Steps[i]
	sec, err := lesson.Lookup(step.Section)
	if err != nil {
		return nil, err
	}
	ticks := t.ticks(step)
	logger.Info("tour step", "step", i+1, "of", len(t.Steps), "animation", lesson.AnimationName(step.Section, step.Animation), "ticks", ticks)
	return store.Record(ctx, sec, step.Animation, ticks)
}

func (r *Runner) recordAll(ctx context.Context, t *Tour, runs []*store.Run, errs []error, logger *slog.Logger) {
	sem := make(chan struct{}, r.Parallel)
	var wg sync.WaitGroup
	for i := range t.Steps {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			runs[idx], errs[idx] = r.record(ctx, t, idx, logger)
		}(i)
	}
	wg.Wait()
}
