package gpudev

import "testing"

func TestDeviceAccessors(t *testing.T) {
	b := &mockBinding{}
	a := newTestAdapter(t, b, FeatureFloat32Filterable)

	device, err := a.RequestDevice(&DeviceDescriptor{
		Label:            "accessors",
		RequiredFeatures: []Feature{FeatureFloat32Filterable},
	})
	if err != nil {
		t.Fatalf("RequestDevice failed: %v", err)
	}

	if device.Label() != "accessors" {
		t.Errorf("Label = %q", device.Label())
	}
	if device.Backend() != BackendTypeNull {
		t.Errorf("Backend = %s, want Null", device.Backend())
	}
	if device.Handle() == nil {
		t.Error("Handle() = nil for a fulfilled device")
	}

	got := device.Features()
	got[0] = FeatureShaderF16
	if device.HasFeature(FeatureShaderF16) {
		t.Error("mutating the returned slice changed the device's feature set")
	}
}

func TestDeviceReferenceRelease(t *testing.T) {
	b := &mockBinding{}
	a := newTestAdapter(t, b)

	device, err := a.RequestDevice(nil)
	if err != nil {
		t.Fatalf("RequestDevice failed: %v", err)
	}
	obj := device.Handle().(*mockObject)

	device.Reference()
	device.Release()
	if obj.destroyed.Load() {
		t.Fatal("device object destroyed while the initial reference was held")
	}
	device.Release()
	if !obj.destroyed.Load() {
		t.Error("device object not destroyed at zero references")
	}
}

func TestDeviceDescriptorResolve(t *testing.T) {
	var nilDesc *DeviceDescriptor
	resolved := nilDesc.resolve()
	if resolved.RequiredLimits == nil {
		t.Fatal("resolve left RequiredLimits nil")
	}
	if *resolved.RequiredLimits != DefaultLimits() {
		t.Error("nil descriptor did not resolve to baseline limits")
	}

	lim := DefaultLimits()
	lim.MaxBindGroups = 2
	desc := &DeviceDescriptor{
		RequiredFeatures: []Feature{FeatureShaderF16, FeatureShaderF16},
		RequiredLimits:   &lim,
	}
	resolved = desc.resolve()
	if len(resolved.RequiredFeatures) != 1 {
		t.Errorf("resolve kept duplicate features: %v", resolved.RequiredFeatures)
	}
	if resolved.RequiredLimits == desc.RequiredLimits {
		t.Error("resolve aliased the caller's limits")
	}
	if resolved.RequiredLimits.MaxBindGroups != 2 {
		t.Error("resolve dropped the caller's limits")
	}
}
