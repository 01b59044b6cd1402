package gpudev

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDeviceProviderHeadless(t *testing.T) {
	b := &mockBinding{}
	a := newTestAdapter(t, b)

	device, err := a.RequestDevice(nil)
	if err != nil {
		t.Fatalf("RequestDevice failed: %v", err)
	}

	p := device.Provider()
	if p == nil {
		t.Fatal("Provider() = nil")
	}
	// The mock handle implements none of the gpucontext interfaces.
	if p.Device() != nil {
		t.Error("headless provider vended a device from a non-gpucontext handle")
	}
	if p.Queue() != nil {
		t.Error("headless provider vended a queue from a non-gpucontext handle")
	}
	if p.Adapter() != nil {
		t.Error("headless provider is not bound to an adapter")
	}
	if p.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat = %v, want undefined", p.SurfaceFormat())
	}
}
