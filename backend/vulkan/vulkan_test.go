//go:build !nogpu

package vulkan

import (
	"testing"

	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/gpudev"
	"github.com/gogpu/gpudev/backend"
)

// useNoopInstance routes instance creation through the noop hal backend so
// the driver path runs without GPU hardware.
func useNoopInstance(t *testing.T) {
	t.Helper()
	orig := openInstance
	openInstance = func() (hal.Instance, error) {
		return noop.API{}.CreateInstance(nil)
	}
	t.Cleanup(func() { openInstance = orig })
}

func TestDriverRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.DriverVulkan) {
		t.Fatal("vulkan driver not registered on import")
	}
	if d := backend.Get(backend.DriverVulkan); d.Backend() != gpudev.BackendTypeVulkan {
		t.Errorf("Backend() = %s, want Vulkan", d.Backend())
	}
}

func TestEnumerateAndRequestDevice(t *testing.T) {
	useNoopInstance(t)

	d := &Driver{}
	adapters, err := d.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(adapters) == 0 {
		t.Fatal("noop hal exposed no adapters")
	}
	a := adapters[0]
	defer a.Release()

	props := a.Properties()
	if props.BackendType != gpudev.BackendTypeVulkan {
		t.Errorf("BackendType = %s, want Vulkan", props.BackendType)
	}
	if a.Limits() != gpudev.DefaultLimits() {
		t.Error("adapter limits differ from the advertised baseline")
	}

	device, err := a.RequestDevice(&gpudev.DeviceDescriptor{Label: "hal-dev"})
	if err != nil {
		t.Fatalf("RequestDevice failed: %v", err)
	}
	if device.Label() != "hal-dev" {
		t.Errorf("Label = %q", device.Label())
	}
	if device.Backend() != gpudev.BackendTypeVulkan {
		t.Errorf("Backend = %s, want Vulkan", device.Backend())
	}

	// The handle exposes the hal device for interop.
	h, ok := device.Handle().(*vkDevice)
	if !ok {
		t.Fatalf("device handle type %T, want *vkDevice", device.Handle())
	}
	if h.HalDevice() == nil {
		t.Error("HalDevice() = nil for an open device")
	}

	device.Release()
	if h.device != nil {
		t.Error("hal device not destroyed after final release")
	}
}
