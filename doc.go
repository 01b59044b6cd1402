// Package gpudev provides backend-agnostic GPU adapter and device acquisition
// for the GoGPU ecosystem.
//
// # Overview
//
// gpudev sits between application code and a concrete GPU implementation
// (Vulkan, Metal, D3D12, a WebGPU-style framework, or a software fallback).
// Applications enumerate adapters, inspect their features and limits, and
// request a device from the adapter they pick through one call surface,
// regardless of which backend is active underneath.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gpudev"
//	    "github.com/gogpu/gpudev/backend"
//
//	    _ "github.com/gogpu/gpudev/backend/null"   // software fallback
//	    _ "github.com/gogpu/gpudev/backend/vulkan" // native Vulkan via gogpu/wgpu
//	)
//
//	instance := backend.NewInstance()
//	defer instance.Close()
//
//	adapter, err := instance.RequestAdapter(&backend.AdapterOptions{
//	    PowerPreference: backend.PowerPreferenceHighPerformance,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer adapter.Release()
//
//	device, err := adapter.RequestDevice(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer device.Release()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Adapter, Device, Binding, DeviceDescriptor, DeviceOutcome
//   - backend: driver registry and the Instance enumeration/invalidation layer
//   - backend/null, backend/vulkan, backend/webgpu: driver implementations
//
// Every adapter and device is an opaque backend handle paired with a shared
// Binding dispatch value. Capability data is immutable after construction and
// safe for concurrent reads; reference counts are atomic.
//
// # Adapter Lifetime
//
// An adapter is valid from enumeration until its owning instance withdraws it.
// A stale adapter still reports its last-known capabilities for diagnostics but
// refuses to vend devices. Adapters never transition back to valid; callers
// re-enumerate instead.
package gpudev

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
