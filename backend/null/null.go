// Package null provides the CPU software fallback driver for gpudev.
//
// The null driver is always available and vends a single fallback adapter
// backed by a fully functional reference-counted object model. It is the
// adapter of last resort when no native backend is usable, and the
// backend of choice for hardware-free tests.
//
// The driver registers itself on import:
//
//	import _ "github.com/gogpu/gpudev/backend/null"
package null

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpudev"
	"github.com/gogpu/gpudev/backend"
)

// init registers the null driver on package import.
func init() {
	backend.Register(backend.DriverNull, func() backend.Driver {
		return &Driver{}
	})
}

// object is a reference-counted backend-side object. One object stands in
// for the "physical device" behind every adapter the driver vends; device
// requests mint fresh objects. The count is atomic: independent adapter
// values aliasing the same object may reference and release concurrently.
type object struct {
	refs      atomic.Int64
	destroyed atomic.Bool
}

func newObject() *object {
	o := &object{}
	o.refs.Store(1)
	return o
}

func (o *object) reference() {
	o.refs.Add(1)
}

// release drops one reference, destroying the object at zero. Releasing
// more times than referenced is a caller contract violation; it is not
// tolerated silently.
func (o *object) release() {
	n := o.refs.Add(-1)
	switch {
	case n == 0:
		o.destroyed.Store(true)
	case n < 0:
		panic("null: release without matching reference")
	}
}

// binding is the null backend's dispatch table. A single shared value
// serves every adapter and device the backend produces.
type binding struct{}

var table = &binding{}

// Backend identifies the null backend.
func (*binding) Backend() gpudev.BackendType { return gpudev.BackendTypeNull }

// Reference increments the object's reference count.
func (*binding) Reference(h gpudev.Handle) { h.(*object).reference() }

// Release decrements the object's reference count, destroying it at zero.
func (*binding) Release(h gpudev.Handle) { h.(*object).release() }

// RequestFrameSize returns 0: the null backend needs no request scratch.
func (*binding) RequestFrameSize() int { return 0 }

// RequestDevice opens a device on the null adapter. It always succeeds
// for descriptors the protocol has validated, granting exactly the
// requested features and limits.
func (*binding) RequestDevice(h gpudev.Handle, desc *gpudev.DeviceDescriptor) gpudev.DeviceOutcome {
	o := h.(*object)
	if o.destroyed.Load() {
		return gpudev.Failed(gpudev.ErrorCodeError, "null: adapter object destroyed")
	}
	dev := newObject()
	return gpudev.Fulfilled(gpudev.NewDevice(
		desc.Label, desc.RequiredFeatures, *desc.RequiredLimits, dev, table))
}

// shared is the driver-wide backend object. Enumeration calls alias it so
// separate adapters for the "same hardware" are counted independently;
// once fully released it is destroyed and the next enumeration mints a
// replacement.
var (
	sharedMu sync.Mutex
	shared   *object
)

// sharedObject returns the live shared object, reviving it after full
// teardown, with one fresh reference held for the caller.
func sharedObject() *object {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil || shared.destroyed.Load() {
		shared = newObject()
		return shared
	}
	shared.reference()
	return shared
}

// Driver vends the software fallback adapter.
type Driver struct{}

// NewDriver creates a new null driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (*Driver) Name() string { return backend.DriverNull }

// Backend identifies the implementation the driver vends adapters for.
func (*Driver) Backend() gpudev.BackendType { return gpudev.BackendTypeNull }

// Enumerate returns the single fallback adapter. Every call yields a
// fresh, independently reference-counted Adapter value aliasing the same
// backend object.
func (*Driver) Enumerate() ([]*gpudev.Adapter, error) {
	info := gpudev.AdapterInfo{
		Limits:   gpudev.DefaultLimits(),
		Fallback: true,
		Properties: gpudev.AdapterProperties{
			Name:              "Null Adapter",
			DriverDescription: "gpudev software fallback",
			AdapterType:       gpudev.AdapterTypeCPU,
			BackendType:       gpudev.BackendTypeNull,
		},
	}
	return []*gpudev.Adapter{gpudev.NewAdapter(info, sharedObject(), table)}, nil
}
