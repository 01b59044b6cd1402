// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpudev

import "fmt"

// ErrorCode classifies a failed device request.
type ErrorCode uint32

const (
	// ErrorCodeError is a recoverable, descriptive failure: resource
	// exhaustion, a rejected descriptor, an invalid adapter.
	ErrorCodeError ErrorCode = iota

	// ErrorCodeUnknown is an unclassified backend failure.
	ErrorCodeUnknown
)

// String returns the canonical name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeError:
		return "Error"
	default:
		return "Unknown"
	}
}

// RequestDeviceError describes why a device request failed.
type RequestDeviceError struct {
	// Code classifies the failure.
	Code ErrorCode

	// Message is the backend- or protocol-supplied description.
	Message string

	cause error
}

// Error implements the error interface.
func (e *RequestDeviceError) Error() string {
	return fmt.Sprintf("gpudev: request device failed (%s): %s", e.Code, e.Message)
}

// Unwrap returns the sentinel behind protocol-originated failures
// (ErrAdapterInvalid, ErrOutOfMemory), or nil for backend failures.
func (e *RequestDeviceError) Unwrap() error {
	return e.cause
}

// DeviceOutcome is the discriminated result of a device request. Exactly
// one of Device and Err is populated.
type DeviceOutcome struct {
	Device *Device
	Err    *RequestDeviceError
}

// Fulfilled wraps a successfully created device into an outcome.
func Fulfilled(d *Device) DeviceOutcome {
	return DeviceOutcome{Device: d}
}

// Failed wraps a failure into an outcome.
func Failed(code ErrorCode, message string) DeviceOutcome {
	return DeviceOutcome{Err: &RequestDeviceError{Code: code, Message: message}}
}

func failedErr(code ErrorCode, message string, cause error) DeviceOutcome {
	return DeviceOutcome{Err: &RequestDeviceError{Code: code, Message: message, cause: cause}}
}

// requestFrame is the per-request execution context, allocated before the
// backend is invoked and released exactly once on every exit path. Its
// scratch is sized to the binding's declared requirement.
type requestFrame struct {
	desc     *DeviceDescriptor
	scratch  []byte
	released bool
}

// allocRequestFrame is the single allocation point of the request
// protocol. It is a package variable so tests can simulate allocator
// exhaustion; a failure here is reported as an outcome, never a panic.
var allocRequestFrame = func(size int) (*requestFrame, error) {
	f := &requestFrame{}
	if size > 0 {
		f.scratch = make([]byte, size)
	}
	return f, nil
}

func (f *requestFrame) release() {
	if f.released {
		panic("gpudev: request frame released twice")
	}
	f.released = true
	f.scratch = nil
}

// RequestDevice asks the adapter's backend for a device matching desc.
// A nil desc requests a default device (no features, baseline limits).
//
// The call blocks the calling goroutine until the backend completes; it
// must not be issued from a context that cannot tolerate blocking. Use
// RequestDeviceAsync to receive the outcome on a channel instead. There
// is no cancellation or timeout at this layer; callers needing one wrap
// the async form and Release a late device on arrival.
//
// Failure surfaces as a *RequestDeviceError: a stale adapter yields
// ErrAdapterInvalid before the backend is ever touched, frame allocation
// failure yields "Out of memory", and backend failures pass through with
// the backend's code and message.
func (a *Adapter) RequestDevice(desc *DeviceDescriptor) (*Device, error) {
	out := a.requestDevice(desc)
	if out.Err != nil {
		return nil, out.Err
	}
	return out.Device, nil
}

// RequestDeviceAsync issues a device request and returns a channel that
// delivers the single outcome. The adapter's validity is observed now, at
// issue time: invalidation racing with the in-flight request does not fail
// it. Concurrent requests are independent; no ordering is guaranteed
// between them.
func (a *Adapter) RequestDeviceAsync(desc *DeviceDescriptor) <-chan DeviceOutcome {
	ch := make(chan DeviceOutcome, 1)
	frame, out, ok := a.beginRequest(desc)
	if !ok {
		ch <- out
		return ch
	}
	go func() {
		defer frame.release()
		ch <- a.invoke(frame)
	}()
	return ch
}

func (a *Adapter) requestDevice(desc *DeviceDescriptor) DeviceOutcome {
	frame, out, ok := a.beginRequest(desc)
	if !ok {
		return out
	}
	defer frame.release()
	return a.invoke(frame)
}

// beginRequest runs the pre-backend phase: validity check, descriptor
// validation, and frame allocation. ok is false when the request already
// reached a terminal outcome and the backend must not be invoked.
func (a *Adapter) beginRequest(desc *DeviceDescriptor) (*requestFrame, DeviceOutcome, bool) {
	if !a.Valid() {
		return nil, failedErr(ErrorCodeError, "adapter no longer valid", ErrAdapterInvalid), false
	}

	resolved := desc.resolve()
	if out, ok := a.validateDescriptor(resolved); !ok {
		return nil, out, false
	}

	frame, err := allocRequestFrame(a.binding.RequestFrameSize())
	if err != nil {
		return nil, failedErr(ErrorCodeError, "Out of memory", ErrOutOfMemory), false
	}
	frame.desc = resolved
	return frame, DeviceOutcome{}, true
}

// validateDescriptor rejects descriptors asking for more than the adapter
// advertises, so a fulfilled device can never report capabilities broader
// than its adapter.
func (a *Adapter) validateDescriptor(desc *DeviceDescriptor) (DeviceOutcome, bool) {
	for _, f := range desc.RequiredFeatures {
		if !a.HasFeature(f) {
			return Failed(ErrorCodeError,
				fmt.Sprintf("required feature %s not supported by adapter", f)), false
		}
	}
	if !a.info.Limits.Covers(*desc.RequiredLimits) {
		return Failed(ErrorCodeError, "required limits exceed adapter limits"), false
	}
	return DeviceOutcome{}, true
}

// invoke is the single suspension point of the protocol: the backend's
// RequestDevice may block on native driver work.
func (a *Adapter) invoke(frame *requestFrame) DeviceOutcome {
	props := a.info.Properties
	Logger().Debug("gpudev: requesting device",
		"adapter", props.Name, "backend", props.BackendType.String())

	out := a.binding.RequestDevice(a.handle, frame.desc)

	// Normalize malformed binding outcomes so callers always observe the
	// one-of discipline.
	switch {
	case out.Device != nil && out.Err != nil:
		out.Device = nil
	case out.Device == nil && out.Err == nil:
		out = Failed(ErrorCodeUnknown, "backend returned no outcome")
	}

	if out.Err != nil {
		Logger().Debug("gpudev: device request failed",
			"adapter", props.Name, "code", out.Err.Code.String(), "message", out.Err.Message)
	}
	return out
}
