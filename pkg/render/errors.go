package render

import (
	"errors"
	"fmt"
)

var (
	// ErrRendererRequired is returned when registering a nil renderer.
	ErrRendererRequired = errors.New("render: renderer is required")
	// ErrRendererNotFound is returned when a lookup misses.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrDuplicateRenderer is returned when two renderers share a name.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)

// Error wraps a failure raised by a named renderer.
type Error struct {
	Renderer string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Renderer, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap annotates err with the renderer name. Nil errors stay nil.
func Wrap(renderer string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) && existing.Renderer == renderer {
		return err
	}
	return &Error{Renderer: renderer, Err: err}
}
