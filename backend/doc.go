// Package backend provides the driver registry and adapter enumeration
// layer for gpudev.
//
// A driver discovers adapters for one concrete GPU implementation and
// vends them as gpudev.Adapter values. Drivers are registered via init()
// functions and selected at runtime; importing a driver package is enough
// to make it available:
//
//	import (
//	    _ "github.com/gogpu/gpudev/backend/null"   // software fallback
//	    _ "github.com/gogpu/gpudev/backend/vulkan" // native Vulkan
//	    _ "github.com/gogpu/gpudev/backend/webgpu" // gogpu framework
//	)
//
// # Driver Selection
//
// Use Default() to get the best available driver, or Get() to request a
// specific one by name:
//
//	d := backend.Default()
//	d := backend.Get("vulkan")
//
// # Instances
//
// An Instance enumerates adapters across every registered driver and owns
// their invalidation:
//
//	instance := backend.NewInstance()
//	defer instance.Close()
//
//	adapters := instance.EnumerateAdapters()
//	for _, a := range adapters {
//	    fmt.Println(a.Properties().Name)
//	    a.Release()
//	}
//
// Closing the instance marks every adapter it vended stale; stale adapters
// keep answering capability queries but refuse to vend devices.
//
// # Available Drivers
//
// - "null": CPU software fallback (always available)
// - "vulkan": native Vulkan via gogpu/wgpu hal
// - "webgpu": WebGPU-style path via the gogpu framework
package backend
