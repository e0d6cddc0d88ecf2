package terminal

import (
	"errors"
	"fmt"
)

var errScreenClosed = errors.New("screen closed")

// InitError reports a console that could not be prepared for rendering
type InitError struct {
	Backend string
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("terminal: %s init failed: %v", e.Backend, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// RenderError reports a write to a closed or detached terminal
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
