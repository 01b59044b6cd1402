package gpudev

import "errors"

// Package errors for gpudev.
var (
	// ErrAdapterInvalid is returned when a device is requested from an
	// adapter its owning instance has withdrawn. Callers should
	// re-enumerate and retry with a fresh adapter.
	ErrAdapterInvalid = errors.New("gpudev: adapter no longer valid")

	// ErrOutOfMemory is returned when the per-request execution frame
	// cannot be allocated. The backend is never invoked in this case.
	ErrOutOfMemory = errors.New("gpudev: out of memory")
)
