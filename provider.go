// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpudev

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Provider adapts the device to the gpucontext.DeviceProvider interface so
// host frameworks (gogpu windows, gg renderers) can consume an acquired
// device through the shared gpucontext contract.
//
// If the backend's device handle implements gpucontext.DeviceProvider
// itself, it is returned directly. Otherwise a headless provider is
// returned: it exposes the handle where the gpucontext interfaces are
// satisfied and nil elsewhere, with an undefined surface format.
func (d *Device) Provider() gpucontext.DeviceProvider {
	if p, ok := d.handle.(gpucontext.DeviceProvider); ok {
		return p
	}
	return headlessProvider{dev: d}
}

// headlessProvider serves devices acquired without a window surface.
type headlessProvider struct {
	dev *Device
}

// Device returns the underlying gpucontext device, or nil when the backend
// handle does not implement it.
func (p headlessProvider) Device() gpucontext.Device {
	if d, ok := p.dev.handle.(gpucontext.Device); ok {
		return d
	}
	return nil
}

// Queue returns the underlying gpucontext queue, or nil when the backend
// handle does not implement it.
func (p headlessProvider) Queue() gpucontext.Queue {
	if q, ok := p.dev.handle.(gpucontext.Queue); ok {
		return q
	}
	return nil
}

// Adapter returns nil: the provider is bound to a device, not the adapter
// that vended it.
func (p headlessProvider) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns the underlying handle's adapter metadata when the
// backend exposes it, or the unknown adapter type otherwise.
func (p headlessProvider) AdapterInfo() gpucontext.AdapterInfo {
	if ip, ok := p.dev.handle.(interface{ AdapterInfo() gpucontext.AdapterInfo }); ok {
		return ip.AdapterInfo()
	}
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns the undefined format; headless devices have no
// presentation surface.
func (p headlessProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}
