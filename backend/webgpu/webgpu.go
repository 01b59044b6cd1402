//go:build !nogpu

// Package webgpu provides a gpudev driver on top of the gogpu framework's
// gpu.Backend interface, which supports both Rust (wgpu-native) and Pure
// Go (gogpu/wgpu) implementations.
//
// The driver registers itself on import:
//
//	import _ "github.com/gogpu/gpudev/backend/webgpu"
package webgpu

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gogpu/gpu"
	"github.com/gogpu/gogpu/gpu/types"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpudev"
	"github.com/gogpu/gpudev/backend"
)

// ErrNoGPUBackend is returned when no gogpu backend is registered and the
// default backend cannot be initialized.
var ErrNoGPUBackend = errors.New("webgpu: no gogpu backend available")

func init() {
	backend.Register(backend.DriverWebGPU, func() backend.Driver {
		return &Driver{}
	})
}

// Driver vends adapters through the gogpu framework. The framework
// exposes a single best adapter per instance rather than a full device
// list, so enumeration yields at most one adapter.
type Driver struct {
	mu       sync.Mutex
	gb       gpu.Backend
	instance types.Instance
	started  bool
}

// Name returns the driver identifier.
func (*Driver) Name() string { return backend.DriverWebGPU }

// Backend identifies the implementation the driver vends adapters for.
func (*Driver) Backend() gpudev.BackendType { return gpudev.BackendTypeWebGPU }

// start acquires the active gogpu backend and creates the instance,
// initializing the default backend if none is registered yet.
func (d *Driver) start() error {
	if d.started {
		return nil
	}

	gb := gpu.GetBackend()
	if gb == nil {
		if err := gpu.InitDefaultBackend(); err != nil {
			return fmt.Errorf("%w: %w", ErrNoGPUBackend, err)
		}
		gb = gpu.GetBackend()
	}
	if gb == nil {
		return ErrNoGPUBackend
	}

	instance, err := gb.CreateInstance()
	if err != nil {
		return fmt.Errorf("webgpu: instance creation failed: %w", err)
	}

	d.gb = gb
	d.instance = instance
	d.started = true
	return nil
}

// Enumerate requests the framework's preferred adapter and wraps it.
func (d *Driver) Enumerate() ([]*gpudev.Adapter, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.start(); err != nil {
		return nil, err
	}

	adapter, err := d.gb.RequestAdapter(d.instance, &types.AdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: adapter request failed: %w", err)
	}

	h := &object{gb: d.gb, adapter: adapter}
	h.refs.Store(1)

	info := gpudev.AdapterInfo{
		Limits: gpudev.DefaultLimits(),
		Properties: gpudev.AdapterProperties{
			Name:              d.gb.Name(),
			DriverDescription: "gogpu framework",
			AdapterType:       gpudev.AdapterTypeUnknown,
			BackendType:       gpudev.BackendTypeWebGPU,
		},
	}
	return []*gpudev.Adapter{gpudev.NewAdapter(info, h, table)}, nil
}

// object is the reference-counted handle behind both adapters and
// devices on this backend. The framework manages the lifetime of its own
// handles, so releasing the last reference only zeroes the wrapper.
type object struct {
	refs    atomic.Int64
	gb      gpu.Backend
	adapter types.Adapter
	device  types.Device
	queue   types.Queue
}

// binding is the webgpu backend's shared dispatch table.
type binding struct{}

var table = &binding{}

// Backend identifies the webgpu backend.
func (*binding) Backend() gpudev.BackendType { return gpudev.BackendTypeWebGPU }

// Reference increments the object's reference count.
func (*binding) Reference(h gpudev.Handle) { h.(*object).refs.Add(1) }

// Release decrements the object's reference count. At zero the wrapper's
// handles are cleared; the framework owns the native objects.
func (*binding) Release(h gpudev.Handle) {
	o := h.(*object)
	n := o.refs.Add(-1)
	switch {
	case n == 0:
		o.adapter = 0
		o.device = 0
		o.queue = 0
	case n < 0:
		panic("webgpu: release without matching reference")
	}
}

// RequestFrameSize returns 0: device requests carry no scratch state on
// this backend.
func (*binding) RequestFrameSize() int { return 0 }

// RequestDevice opens a framework device on the adapter. Framework
// errors pass through with their message intact.
func (*binding) RequestDevice(h gpudev.Handle, desc *gpudev.DeviceDescriptor) gpudev.DeviceOutcome {
	a := h.(*object)
	device, err := a.gb.RequestDevice(a.adapter, &types.DeviceOptions{
		Label: desc.Label,
	})
	if err != nil {
		return gpudev.Failed(gpudev.ErrorCodeUnknown, err.Error())
	}

	dev := &object{gb: a.gb, adapter: a.adapter, device: device, queue: a.gb.GetQueue(device)}
	dev.refs.Store(1)
	return gpudev.Fulfilled(gpudev.NewDevice(
		desc.Label, desc.RequiredFeatures, *desc.RequiredLimits, dev, table))
}
