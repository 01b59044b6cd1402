package gpudev

// DeviceDescriptor describes the device an application wants from an
// adapter. The zero value (or a nil pointer) requests a default device:
// no optional features and baseline limits.
type DeviceDescriptor struct {
	// Label is an optional debug label for the device.
	Label string

	// RequiredFeatures lists features the device must be created with.
	// Every entry must be supported by the adapter.
	RequiredFeatures []Feature

	// RequiredLimits are the bounds the device must guarantee. Nil means
	// DefaultLimits. The adapter's limits must cover every field.
	RequiredLimits *Limits
}

// resolve returns a normalized copy of the descriptor: never nil,
// deduplicated features, and RequiredLimits filled in with the baseline.
func (d *DeviceDescriptor) resolve() *DeviceDescriptor {
	out := &DeviceDescriptor{}
	if d != nil {
		out.Label = d.Label
		out.RequiredFeatures = cloneFeatures(d.RequiredFeatures)
		if d.RequiredLimits != nil {
			lim := *d.RequiredLimits
			out.RequiredLimits = &lim
		}
	}
	if out.RequiredLimits == nil {
		lim := DefaultLimits()
		out.RequiredLimits = &lim
	}
	return out
}

// Device is the result of a successful device request. It owns a backend
// handle and shares the Binding of the adapter that vended it. The granted
// features and limits are never broader than the vending adapter's.
//
// Device acquisition is the extent of this layer; command submission and
// resource creation belong to the backend's own surface, reachable through
// the handle (see Provider).
type Device struct {
	label    string
	features []Feature
	limits   Limits
	handle   Handle
	binding  Binding
}

// NewDevice wraps a backend device handle and its binding into a Device.
// Intended for Binding implementations fulfilling a request; the caller
// must already hold a reference on the handle.
func NewDevice(label string, features []Feature, limits Limits, handle Handle, binding Binding) *Device {
	return &Device{
		label:    label,
		features: cloneFeatures(features),
		limits:   limits,
		handle:   handle,
		binding:  binding,
	}
}

// Label returns the debug label the device was created with.
func (d *Device) Label() string {
	return d.label
}

// HasFeature reports whether the device was created with f.
func (d *Device) HasFeature(f Feature) bool {
	return containsFeature(d.features, f)
}

// Features returns a copy of the device's granted feature set.
func (d *Device) Features() []Feature {
	return cloneFeatures(d.features)
}

// Limits returns the bounds the device guarantees.
func (d *Device) Limits() Limits {
	return d.limits
}

// Backend identifies the implementation the device is bound to.
func (d *Device) Backend() BackendType {
	return d.binding.Backend()
}

// Handle returns the opaque backend device handle for host integrations
// that need direct access to the underlying object.
func (d *Device) Handle() Handle {
	return d.handle
}

// Reference increments the reference count of the underlying backend
// object.
func (d *Device) Reference() {
	d.binding.Reference(d.handle)
}

// Release decrements the reference count of the underlying backend object,
// destroying it when the count reaches zero. Reference and Release calls
// must balance; an unmatched Release is a contract violation.
func (d *Device) Release() {
	d.binding.Release(d.handle)
}
