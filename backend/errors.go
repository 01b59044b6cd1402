package backend

import "errors"

// Common backend errors.
var (
	// ErrNoDriver is returned when no driver is available.
	ErrNoDriver = errors.New("backend: no driver available")

	// ErrNoAdapter is returned when enumeration finds no adapter
	// matching the request.
	ErrNoAdapter = errors.New("backend: no suitable adapter")

	// ErrInstanceClosed is returned when operations are called on a
	// closed instance.
	ErrInstanceClosed = errors.New("backend: instance closed")
)
