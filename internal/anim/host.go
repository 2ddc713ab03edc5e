package anim

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Animator is the type-erased view of a Driver a Host can step.
type Animator interface {
	Step() error
	Stop()
	Stopped() bool
	Ticks() int
}

// Observer is notified after each successful tick.
type Observer interface {
	OnTick(name string, tick int)
}

type ObserverFunc func(name string, tick int)

func (f ObserverFunc) OnTick(name string, tick int) { f(name, tick) }

type entry struct {
	name string
	a    Animator
}

// Host owns a set of named animators and steps them together. Animators
// are independent of one another; the Host only promises that each one
// sees its own ticks in order.
type Host struct {
	mu        sync.Mutex
	entries   []entry
	observers []Observer
	logger    *slog.Logger
}

func NewHost(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{logger: logger}
}

func (h *Host) Add(name string, a Animator) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry{name: name, a: a})
}

func (h *Host) AddObserver(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, o)
}

func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// StepAll ticks every running animator once. Stopped animators are skipped.
// It returns the number of animators that advanced.
func (h *Host) StepAll() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	advanced := 0
	for _, e := range h.entries {
		if e.a.Stopped() {
			continue
		}
		if err := e.a.Step(); err != nil {
			h.logger.Debug("animator did not advance", "animation", e.name, "err", err)
			continue
		}
		advanced++
		for _, o := range h.observers {
			o.OnTick(e.name, e.a.Ticks())
		}
	}
	return advanced
}

// StopAll stops every animator. Further StepAll calls do nothing.
func (h *Host) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.entries {
		e.a.Stop()
	}
}

// Run steps all animators fps times per second until ctx is done, then
// stops them. Each tick is synchronous, so cancellation never leaves one
// half applied.
func (h *Host) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		return ErrBadCadence
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	defer h.StopAll()

	h.logger.Debug("host started", "animations", h.Len(), "fps", fps)
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("host stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			if h.StepAll() == 0 && h.Len() > 0 {
				return nil
			}
		}
	}
}
