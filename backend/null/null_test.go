package null

import (
	"testing"

	"github.com/gogpu/gpudev"
	"github.com/gogpu/gpudev/backend"
)

func TestDriverRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.DriverNull) {
		t.Fatal("null driver not registered on import")
	}
	d := backend.Get(backend.DriverNull)
	if d == nil {
		t.Fatal("Get(null) = nil")
	}
	if d.Backend() != gpudev.BackendTypeNull {
		t.Errorf("Backend() = %s, want Null", d.Backend())
	}
}

func TestEnumerate(t *testing.T) {
	adapters, err := NewDriver().Enumerate()
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(adapters) != 1 {
		t.Fatalf("Enumerate returned %d adapters, want 1", len(adapters))
	}
	a := adapters[0]
	defer a.Release()

	if !a.Fallback() {
		t.Error("null adapter not marked fallback")
	}
	props := a.Properties()
	if props.AdapterType != gpudev.AdapterTypeCPU {
		t.Errorf("AdapterType = %s, want CPU", props.AdapterType)
	}
	if props.BackendType != gpudev.BackendTypeNull {
		t.Errorf("BackendType = %s, want Null", props.BackendType)
	}
	if a.Limits() != gpudev.DefaultLimits() {
		t.Error("null adapter limits differ from baseline")
	}
}

func TestRequestDeviceGrantsRequest(t *testing.T) {
	adapters, err := NewDriver().Enumerate()
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	a := adapters[0]
	defer a.Release()

	device, err := a.RequestDevice(&gpudev.DeviceDescriptor{Label: "null-dev"})
	if err != nil {
		t.Fatalf("RequestDevice failed: %v", err)
	}
	if device.Label() != "null-dev" {
		t.Errorf("Label = %q", device.Label())
	}
	if device.Backend() != gpudev.BackendTypeNull {
		t.Errorf("Backend = %s, want Null", device.Backend())
	}
	if device.Limits() != gpudev.DefaultLimits() {
		t.Error("device limits differ from resolved baseline")
	}

	obj := device.Handle().(*object)
	device.Release()
	if !obj.destroyed.Load() {
		t.Error("device object not destroyed after final release")
	}
}

func TestIndependentAdapterCounts(t *testing.T) {
	// Two enumerations alias one backend object but count independently;
	// the object survives until both adapters release.
	d := NewDriver()
	first, err := d.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	second, err := d.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}

	a1, a2 := first[0], second[0]
	obj := shared

	a1.Release()
	if obj.destroyed.Load() {
		t.Fatal("shared object destroyed while the second adapter held it")
	}
	a2.Release()
	if !obj.destroyed.Load() {
		t.Fatal("shared object not destroyed after the last release")
	}

	// The next enumeration revives the backend object.
	third, err := d.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if !third[0].Valid() {
		t.Error("revived adapter not valid")
	}
	if _, err := third[0].RequestDevice(nil); err != nil {
		t.Errorf("device request on revived adapter failed: %v", err)
	}
	third[0].Release()
}

func TestUnbalancedReleasePanics(t *testing.T) {
	adapters, err := NewDriver().Enumerate()
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	a := adapters[0]
	a.Release()

	defer func() {
		if recover() == nil {
			t.Error("release past zero did not panic")
		}
	}()
	a.Release()
}
