package anim

import "errors"

var (
	// ErrStopped is returned by Tick once Stop has been called.
	ErrStopped = errors.New("anim: driver stopped")

	// ErrNilUpdate indicates a Config without an Update function.
	ErrNilUpdate = errors.New("anim: update function is required")

	// ErrNilRender indicates a Config without a Render function.
	ErrNilRender = errors.New("anim: render function is required")

	// ErrBadCadence indicates a non-positive host frame rate.
	ErrBadCadence = errors.New("anim: frames per second must be positive")
)
