// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package vulkan provides the native Vulkan driver for gpudev, built on
// the gogpu/wgpu hardware abstraction layer.
//
// The driver registers itself on import:
//
//	import _ "github.com/gogpu/gpudev/backend/vulkan"
package vulkan

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/gpudev"
	"github.com/gogpu/gpudev/backend"
)

// ErrNotAvailable is returned when the Vulkan backend is not compiled in
// or no Vulkan loader is present on the system.
var ErrNotAvailable = errors.New("vulkan: backend not available")

func init() {
	backend.Register(backend.DriverVulkan, func() backend.Driver {
		return &Driver{}
	})
}

// Driver enumerates Vulkan adapters through the wgpu hal. A single hal
// instance is created lazily on first enumeration and kept for the life
// of the process; hal adapters vended from a destroyed instance would
// dangle.
type Driver struct {
	mu       sync.Mutex
	instance hal.Instance
}

// openInstance creates the hal instance. A package variable so tests can
// substitute the noop hal backend.
var openInstance = func() (hal.Instance, error) {
	api, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrNotAvailable
	}
	instance, err := api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("vulkan: create instance: %w", err)
	}
	return instance, nil
}

// Name returns the driver identifier.
func (*Driver) Name() string { return backend.DriverVulkan }

// Backend identifies the implementation the driver vends adapters for.
func (*Driver) Backend() gpudev.BackendType { return gpudev.BackendTypeVulkan }

// Enumerate discovers the Vulkan adapters currently visible to the hal.
func (d *Driver) Enumerate() ([]*gpudev.Adapter, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.instance == nil {
		instance, err := openInstance()
		if err != nil {
			return nil, err
		}
		d.instance = instance
	}

	exposed := d.instance.EnumerateAdapters(nil)
	adapters := make([]*gpudev.Adapter, 0, len(exposed))
	for i := range exposed {
		h := &vkAdapter{exposed: &exposed[i]}
		h.refs.Store(1)
		adapters = append(adapters, gpudev.NewAdapter(adapterInfo(&exposed[i]), h, table))
	}
	return adapters, nil
}

// adapterInfo converts hal adapter identity into the gpudev descriptor.
// The hal does not surface optional-feature bits in a form this layer can
// translate, so the feature set is left empty and limits stay at the
// WebGPU baseline every hal device is required to meet.
func adapterInfo(e *hal.ExposedAdapter) gpudev.AdapterInfo {
	t := gpudev.AdapterTypeUnknown
	switch e.Info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		t = gpudev.AdapterTypeDiscreteGPU
	case gputypes.DeviceTypeIntegratedGPU:
		t = gpudev.AdapterTypeIntegratedGPU
	}
	return gpudev.AdapterInfo{
		Limits: gpudev.DefaultLimits(),
		Properties: gpudev.AdapterProperties{
			Name:              e.Info.Name,
			DriverDescription: "gogpu/wgpu hal (vulkan)",
			AdapterType:       t,
			BackendType:       gpudev.BackendTypeVulkan,
		},
	}
}

// vkAdapter wraps a hal adapter with a reference count. The underlying
// hal adapter is owned by the instance; releasing the last reference
// drops the wrapper only.
type vkAdapter struct {
	refs    atomic.Int64
	exposed *hal.ExposedAdapter
}

// vkDevice wraps an open hal device. Releasing the last reference
// destroys the hal device.
type vkDevice struct {
	refs   atomic.Int64
	device hal.Device
	queue  hal.Queue
}

// binding is the Vulkan backend's dispatch table, shared by every adapter
// and device the driver vends.
type binding struct{}

var table = &binding{}

// Backend identifies the Vulkan backend.
func (*binding) Backend() gpudev.BackendType { return gpudev.BackendTypeVulkan }

// Reference increments the object's reference count.
func (*binding) Reference(h gpudev.Handle) {
	switch o := h.(type) {
	case *vkAdapter:
		o.refs.Add(1)
	case *vkDevice:
		o.refs.Add(1)
	}
}

// Release decrements the object's reference count. Dropping a device to
// zero destroys the underlying hal device.
func (*binding) Release(h gpudev.Handle) {
	switch o := h.(type) {
	case *vkAdapter:
		if o.refs.Add(-1) < 0 {
			panic("vulkan: release without matching reference")
		}
	case *vkDevice:
		n := o.refs.Add(-1)
		switch {
		case n == 0:
			if o.device != nil {
				o.device.Destroy()
				o.device = nil
				o.queue = nil
			}
		case n < 0:
			panic("vulkan: release without matching reference")
		}
	}
}

// RequestFrameSize returns 0: device requests carry no scratch state on
// this backend.
func (*binding) RequestFrameSize() int { return 0 }

// RequestDevice opens a hal device on the adapter. Hal errors pass
// through with their message intact.
func (*binding) RequestDevice(h gpudev.Handle, desc *gpudev.DeviceDescriptor) gpudev.DeviceOutcome {
	a := h.(*vkAdapter)
	openDev, err := a.exposed.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return gpudev.Failed(gpudev.ErrorCodeUnknown, err.Error())
	}
	dev := &vkDevice{device: openDev.Device, queue: openDev.Queue}
	dev.refs.Store(1)
	return gpudev.Fulfilled(gpudev.NewDevice(
		desc.Label, desc.RequiredFeatures, *desc.RequiredLimits, dev, table))
}

// HalDevice returns the underlying hal device for interop with packages
// that dispatch work directly on the hal.
func (d *vkDevice) HalDevice() any { return d.device }

// HalQueue returns the underlying hal queue.
func (d *vkDevice) HalQueue() any { return d.queue }
