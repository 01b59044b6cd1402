package gpudev

import "sync/atomic"

// AdapterProperties identifies the hardware and driver behind an adapter.
type AdapterProperties struct {
	// VendorID is the PCI vendor ID, or 0 when the backend does not
	// expose one.
	VendorID uint32

	// DeviceID is the PCI device ID, or 0 when the backend does not
	// expose one.
	DeviceID uint32

	// Name is the human-readable adapter name.
	Name string

	// DriverDescription describes the driver behind the adapter.
	DriverDescription string

	// AdapterType classifies the hardware.
	AdapterType AdapterType

	// BackendType identifies the backend implementation.
	BackendType BackendType
}

// AdapterInfo is the capability descriptor of one adapter: its supported
// features, guaranteed limits, fallback classification, and identity.
// It is immutable for the lifetime of the adapter, including after the
// adapter is invalidated, so diagnostics remain possible.
type AdapterInfo struct {
	// Features is the set of features the adapter supports. Unique,
	// order-irrelevant.
	Features []Feature

	// Limits are the bounds the adapter guarantees. Each field is at
	// least as permissive as DefaultLimits.
	Limits Limits

	// Fallback is true only for software/compatibility adapters offered
	// when no native backend is usable.
	Fallback bool

	// Properties identify the hardware and driver.
	Properties AdapterProperties
}

// Adapter represents one usable GPU/compute backend instance. It pairs a
// capability descriptor with an opaque backend handle and the Binding that
// knows how to operate on it.
//
// Capability queries are synchronous, side-effect-free, and safe for
// concurrent use: the descriptor never mutates after construction. The
// validity flag is written only by the owning enumeration (via Invalidate)
// and read by the core before every device-yielding operation.
//
// Separate enumeration calls may return distinct Adapter values for the
// same physical hardware. Each value is reference-counted independently;
// releasing one does not affect the others while their counts remain
// positive.
type Adapter struct {
	info    AdapterInfo
	handle  Handle
	binding Binding
	stale   atomic.Bool
}

// NewAdapter wraps a backend handle and its binding into an Adapter.
// The caller (normally a driver's enumeration) must already hold a
// reference on the handle; the adapter assumes ownership of it. The
// feature slice is copied so the descriptor cannot be mutated afterwards.
func NewAdapter(info AdapterInfo, handle Handle, binding Binding) *Adapter {
	info.Features = cloneFeatures(info.Features)
	return &Adapter{
		info:    info,
		handle:  handle,
		binding: binding,
	}
}

// HasFeature reports whether the adapter supports f.
func (a *Adapter) HasFeature(f Feature) bool {
	return containsFeature(a.info.Features, f)
}

// Features returns a copy of the adapter's supported feature set.
func (a *Adapter) Features() []Feature {
	return cloneFeatures(a.info.Features)
}

// Limits returns the bounds the adapter guarantees.
func (a *Adapter) Limits() Limits {
	return a.info.Limits
}

// Fallback reports whether this is a software/compatibility adapter.
func (a *Adapter) Fallback() bool {
	return a.info.Fallback
}

// Properties returns the adapter's identity.
func (a *Adapter) Properties() AdapterProperties {
	return a.info.Properties
}

// Binding returns the dispatch table shared by everything this adapter's
// backend produces.
func (a *Adapter) Binding() Binding {
	return a.binding
}

// Valid reports whether the adapter can still vend devices. A stale
// adapter never becomes valid again.
func (a *Adapter) Valid() bool {
	return !a.stale.Load()
}

// Invalidate marks the adapter stale. Intended for the owning enumeration
// ("lose the device"); every subsequent RequestDevice fails with
// ErrAdapterInvalid. Requests already in flight are allowed to complete.
// Capability queries keep answering from the last-known descriptor.
func (a *Adapter) Invalidate() {
	a.stale.Store(true)
}

// Reference increments the reference count of the underlying backend
// object.
func (a *Adapter) Reference() {
	a.binding.Reference(a.handle)
}

// Release decrements the reference count of the underlying backend object,
// destroying it when the count reaches zero. Reference and Release calls
// must balance; an unmatched Release is a contract violation.
func (a *Adapter) Release() {
	a.binding.Release(a.handle)
}
