package gpudev

import "testing"

func TestAdapterTypeString(t *testing.T) {
	cases := []struct {
		t    AdapterType
		want string
	}{
		{AdapterTypeDiscreteGPU, "Discrete GPU"},
		{AdapterTypeIntegratedGPU, "Integrated GPU"},
		{AdapterTypeCPU, "CPU"},
		{AdapterTypeUnknown, "Unknown"},
	}
	for _, c := range cases {
		if got := c.t.String(); got != c.want {
			t.Errorf("AdapterType(%d).String() = %q, want %q", c.t, got, c.want)
		}
	}
}

func TestBackendTypeString(t *testing.T) {
	cases := []struct {
		b    BackendType
		want string
	}{
		{BackendTypeNull, "Null"},
		{BackendTypeWebGPU, "WebGPU"},
		{BackendTypeVulkan, "Vulkan"},
		{BackendTypeOpenGLES, "OpenGL ES"},
	}
	for _, c := range cases {
		if got := c.b.String(); got != c.want {
			t.Errorf("BackendType(%d).String() = %q, want %q", c.b, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCodeError.String() != "Error" {
		t.Errorf("ErrorCodeError.String() = %q", ErrorCodeError.String())
	}
	if ErrorCodeUnknown.String() != "Unknown" {
		t.Errorf("ErrorCodeUnknown.String() = %q", ErrorCodeUnknown.String())
	}
}
