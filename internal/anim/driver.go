package anim

// Config is the whole configuration surface of a driver.
type Config[S, R any] struct {
	Initial S
	Update  func(S) S
	Render  func(S) R
}

// Driver advances a state once per tick and renders it. Update and Render
// must treat the state as a value: neither may mutate what it is given.
type Driver[S, R any] struct {
	initial S
	state   S
	update  func(S) S
	render  func(S) R
	ticks   int
	stopped bool
}

func New[S, R any](cfg Config[S, R]) (*Driver[S, R], error) {
	if cfg.Update == nil {
		return nil, ErrNilUpdate
	}
	if cfg.Render == nil {
		return nil, ErrNilRender
	}
	return &Driver[S, R]{
		initial: cfg.Initial,
		state:   cfg.Initial,
		update:  cfg.Update,
		render:  cfg.Render,
	}, nil
}

// MustNew is New for configurations known to be complete.
func MustNew[S, R any](cfg Config[S, R]) *Driver[S, R] {
	d, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return d
}

// Tick runs one update and renders the result.
func (d *Driver[S, R]) Tick() (R, error) {
	if d.stopped {
		var zero R
		return zero, ErrStopped
	}
	d.state = d.update(d.state)
	d.ticks++
	return d.render(d.state), nil
}

// Step is Tick without the rendered output.
func (d *Driver[S, R]) Step() error {
	_, err := d.Tick()
	return err
}

// Advance runs n ticks and returns the last render. With n <= 0 it
// renders the current state.
func (d *Driver[S, R]) Advance(n int) (R, error) {
	if n <= 0 {
		if d.stopped {
			var zero R
			return zero, ErrStopped
		}
		return d.Frame(), nil
	}
	var out R
	for i := 0; i < n; i++ {
		var err error
		if out, err = d.Tick(); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Frame renders the current state without advancing it.
func (d *Driver[S, R]) Frame() R { return d.render(d.state) }

func (d *Driver[S, R]) State() S      { return d.state }
func (d *Driver[S, R]) Ticks() int    { return d.ticks }
func (d *Driver[S, R]) Stopped() bool { return d.stopped }

// Stop ends the cycle. It is safe to call more than once.
func (d *Driver[S, R]) Stop() { d.stopped = true }

// Reset returns the driver to its initial state and restarts it.
func (d *Driver[S, R]) Reset() {
	d.state = d.initial
	d.ticks = 0
	d.stopped = false
}
